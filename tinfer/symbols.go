package tinfer

import (
	"github.com/cottand/tinfer/frontend/ast"
	"github.com/traefik/yaegi/interp"
	"reflect"
)

// Symbols exposes the ast package to scripts run by the yaegi interpreter,
// under its import path
var Symbols = interp.Exports{
	"github.com/cottand/tinfer/frontend/ast/ast": {
		// function, constant and variable definitions
		"NewBuilder": reflect.ValueOf(ast.NewBuilder),
		"ExprString": reflect.ValueOf(ast.ExprString),
		"Inspect":    reflect.ValueOf(ast.Inspect),
		"Children":   reflect.ValueOf(ast.Children),

		// type definitions
		"Binary":  reflect.ValueOf((*ast.Binary)(nil)),
		"Bool":    reflect.ValueOf((*ast.Bool)(nil)),
		"Builder": reflect.ValueOf((*ast.Builder)(nil)),
		"Call":    reflect.ValueOf((*ast.Call)(nil)),
		"Expr":    reflect.ValueOf((*ast.Expr)(nil)),
		"Func":    reflect.ValueOf((*ast.Func)(nil)),
		"If":      reflect.ValueOf((*ast.If)(nil)),
		"Node":    reflect.ValueOf((*ast.Node)(nil)),
		"NodeID":  reflect.ValueOf((*ast.NodeID)(nil)),
		"Number":  reflect.ValueOf((*ast.Number)(nil)),
		"String":  reflect.ValueOf((*ast.String)(nil)),
		"Var":     reflect.ValueOf((*ast.Var)(nil)),
	},
}
