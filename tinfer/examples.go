package tinfer

import (
	"github.com/cottand/tinfer/frontend/ast"
	"github.com/cottand/tinfer/frontend/ilerr"
	"slices"
)

func addTwo(b *ast.Builder) *ast.Func {
	return b.Func(b.Var('x'), b.Add(b.Var('x'), b.Num(2)))
}

var examples = []Program{
	{
		Name:        "number",
		Description: "a numeric literal",
		Build:       func(b *ast.Builder) ast.Expr { return b.Num(2) },
	},
	{
		Name:        "bool",
		Description: "a boolean literal",
		Build:       func(b *ast.Builder) ast.Expr { return b.Bool(true) },
	},
	{
		Name:        "sum",
		Description: "binary arithmetic on literals",
		Build:       func(b *ast.Builder) ast.Expr { return b.Add(b.Num(1), b.Num(2)) },
	},
	{
		Name:        "add-two",
		Description: "a function adding two to its argument",
		Build:       func(b *ast.Builder) ast.Expr { return addTwo(b) },
	},
	{
		Name:        "add-two-applied",
		Description: "add-two applied to a number",
		Build:       func(b *ast.Builder) ast.Expr { return b.Call(addTwo(b), b.Num(10)) },
	},
	{
		Name:        "add-two-misapplied",
		Description: "add-two applied to a boolean",
		Build:       func(b *ast.Builder) ast.Expr { return b.Call(addTwo(b), b.Bool(true)) },
		Expect:      ilerr.TypeMismatch,
	},
	{
		Name:        "conditional",
		Description: "a conditional with numeric branches",
		Build: func(b *ast.Builder) ast.Expr {
			return b.If(b.Bool(true), b.Num(1), b.Num(2))
		},
	},
	{
		Name:        "mismatched-branches",
		Description: "a conditional whose branches disagree",
		Build: func(b *ast.Builder) ast.Expr {
			return b.If(b.Bool(true), b.Bool(false), b.Num(2))
		},
		Expect: ilerr.TypeMismatch,
	},
	{
		Name:        "numeric-condition",
		Description: "a conditional on a number",
		Build: func(b *ast.Builder) ast.Expr {
			return b.If(b.Num(1), b.Num(1), b.Num(2))
		},
		Expect: ilerr.TypeMismatch,
	},
	{
		Name:        "higher-order",
		Description: "a function taking a function, applied to one",
		Build: func(b *ast.Builder) ast.Expr {
			outer := b.Func(b.Var('x'), b.Add(b.Call(b.Var('x'), b.Num(5)), b.Num(2)))
			inner := b.Func(b.Var('y'), b.Add(b.Var('y'), b.Num(5)))
			return b.Call(outer, inner)
		},
	},
	{
		Name:        "identity",
		Description: "a function whose argument stays unconstrained",
		Build: func(b *ast.Builder) ast.Expr {
			return b.Func(b.Var('x'), b.Var('x'))
		},
	},
	{
		Name:        "self-application",
		Description: "a function applying its argument to itself",
		Build: func(b *ast.Builder) ast.Expr {
			return b.Func(b.Var('x'), b.Call(b.Var('x'), b.Var('x')))
		},
		Expect: ilerr.OccursCheck,
	},
	{
		Name:        "malformed-argument",
		Description: "a function whose argument is a literal",
		Build: func(b *ast.Builder) ast.Expr {
			return b.Func(b.Num(1), b.Num(2))
		},
		Expect: ilerr.MalformedFunctionArg,
	},
	{
		Name:        "string",
		Description: "a string literal, which has no type yet",
		Build:       func(b *ast.Builder) ast.Expr { return b.Str("hello") },
		Expect:      ilerr.NotImplemented,
	},
}

// Examples returns the built-in example programs
func Examples() []Program {
	return slices.Clone(examples)
}

func LookupExample(name string) (Program, bool) {
	i := slices.IndexFunc(examples, func(p Program) bool { return p.Name == name })
	if i < 0 {
		return Program{}, false
	}
	return examples[i], true
}
