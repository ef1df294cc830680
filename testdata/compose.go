//tinfer:test ((Number -> Number) -> Number)
package main

import "github.com/cottand/tinfer/frontend/ast"

// applies f twice to its argument
func Build(b *ast.Builder) ast.Expr {
	twice := b.Func(b.Var('a'), b.Call(b.Var('f'), b.Call(b.Var('f'), b.Var('a'))))
	return b.Func(b.Var('f'), b.Sub(b.Call(twice, b.Num(1)), b.Num(0)))
}
