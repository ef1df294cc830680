package ast

import (
	"strings"
)

// ExprString renders expr in a readable surface syntax.
// Compound operands are parenthesised, so the rendering of two expressions
// is equal only when they are structurally equal.
func ExprString(expr Expr) string {
	ctx := newShowContext()
	ctx.showExprWalker(expr, 0)
	return ctx.String()
}

type showContext struct {
	*strings.Builder
}

func newShowContext() *showContext {
	return &showContext{
		Builder: &strings.Builder{},
	}
}

const (
	precedenceTop int16 = iota
	precedenceOperand
)

func (ctx *showContext) showExprWalker(expr Expr, outerPrecedence int16) {
	if expr == nil {
		ctx.WriteString("nil")
		return
	}
	switch expr := expr.(type) {
	case *Number, *Bool, *String, *Var:
		ctx.WriteString(expr.ExprName())
	case *Binary:
		if outerPrecedence > precedenceTop {
			ctx.WriteString("(")
			defer ctx.WriteString(")")
		}
		ctx.showExprWalker(expr.Lhs, precedenceOperand)
		ctx.WriteString(" " + expr.ExprName() + " ")
		ctx.showExprWalker(expr.Rhs, precedenceOperand)
	case *If:
		if outerPrecedence > precedenceTop {
			ctx.WriteString("(")
			defer ctx.WriteString(")")
		}
		ctx.WriteString("if ")
		ctx.showExprWalker(expr.Cond, precedenceTop)
		ctx.WriteString(" then ")
		ctx.showExprWalker(expr.Then, precedenceTop)
		ctx.WriteString(" else ")
		ctx.showExprWalker(expr.Else, precedenceTop)
	case *Func:
		ctx.WriteString("(lambda(")
		ctx.showExprWalker(expr.Arg, precedenceTop)
		ctx.WriteString(") ")
		ctx.showExprWalker(expr.Body, precedenceTop)
		ctx.WriteString(")")
	case *Call:
		ctx.showExprWalker(expr.Func, precedenceOperand)
		ctx.WriteString("(")
		ctx.showExprWalker(expr.Arg, precedenceTop)
		ctx.WriteString(")")
	default:
		ctx.WriteString("<" + expr.ExprName() + ">")
	}
}
