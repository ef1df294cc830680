//tinfer:test E003
package main

import "github.com/cottand/tinfer/frontend/ast"

// (lambda(x) x(x))(lambda(x) x(x))
func Build(b *ast.Builder) ast.Expr {
	selfApply := func() ast.Expr {
		return b.Func(b.Var('x'), b.Call(b.Var('x'), b.Var('x')))
	}
	return b.Call(selfApply(), selfApply())
}
