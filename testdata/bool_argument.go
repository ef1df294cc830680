//tinfer:test E002
package main

import "github.com/cottand/tinfer/frontend/ast"

func Build(b *ast.Builder) ast.Expr {
	addTwo := b.Func(b.Var('x'), b.Add(b.Var('x'), b.Num(2)))
	return b.Call(addTwo, b.Bool(false))
}
