//tinfer:test Number
package main

import "github.com/cottand/tinfer/frontend/ast"

// (if d then ... else 0) - 1, nested a few times
func Build(b *ast.Builder) ast.Expr {
	var expr ast.Expr = b.Var('n')
	for i := 0; i < 5; i++ {
		expr = b.Sub(b.If(b.Var('d'), expr, b.Num(0)), b.Num(1))
	}
	return expr
}
