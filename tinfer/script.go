package tinfer

import (
	"github.com/cottand/tinfer/frontend/ast"
	"github.com/pkg/errors"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"io"
)

// ScriptEntrypoint is the function a script must declare in package main:
//
//	func Build(b *ast.Builder) ast.Expr
const ScriptEntrypoint = "main.Build"

// LoadScript interprets src, a Go file in package main that builds an expression tree,
// and returns it as a Program called name.
//
// The script may import the standard library and github.com/cottand/tinfer/frontend/ast.
func LoadScript(name string, src string, stdout io.Writer) (program Program, err error) {
	// yaegi panics on some ill-typed programs instead of returning an error
	defer func() {
		if r := recover(); r != nil {
			program, err = Program{}, errors.Errorf("interpreting script %s: %v", name, r)
		}
	}()
	i := interp.New(interp.Options{Stdout: stdout, Stderr: stdout})
	if err := i.Use(stdlib.Symbols); err != nil {
		return Program{}, errors.Wrap(err, "loading Go interpreter stdlib")
	}
	if err := i.Use(Symbols); err != nil {
		return Program{}, errors.Wrap(err, "loading Go interpreter symbols")
	}
	if _, err := i.Eval(src); err != nil {
		return Program{}, errors.Wrapf(err, "interpreting script %s", name)
	}
	v, err := i.Eval(ScriptEntrypoint)
	if err != nil {
		return Program{}, errors.Wrapf(err, "script %s does not declare %s", name, ScriptEntrypoint)
	}
	build, ok := v.Interface().(func(*ast.Builder) ast.Expr)
	if !ok {
		return Program{}, errors.Errorf("script %s: %s has type %s, expected func(*ast.Builder) ast.Expr", name, ScriptEntrypoint, v.Type())
	}
	programLogger.Debug("loaded script", "name", name)
	return Program{
		Name:        name,
		Description: "script " + name,
		Build:       build,
	}, nil
}
