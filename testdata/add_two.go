//tinfer:test Number
package main

import "github.com/cottand/tinfer/frontend/ast"

// (lambda(x) x + 2)(10)
func Build(b *ast.Builder) ast.Expr {
	addTwo := b.Func(b.Var('x'), b.Add(b.Var('x'), b.Num(2)))
	return b.Call(addTwo, b.Num(10))
}
