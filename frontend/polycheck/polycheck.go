// Package polycheck infers the type of an expression with the wdamron/poly
// Hindley-Milner engine, to compare it against the constraint-based inference.
//
// The language has no scoping of its own (all variables with the same name share a type),
// while poly scopes function arguments, so programs that reuse a variable name across
// different functions may legitimately disagree.
package polycheck

import (
	"fmt"
	"github.com/cottand/tinfer/frontend/ast"
	"github.com/cottand/tinfer/frontend/ilerr"
	"github.com/cottand/tinfer/frontend/infer"
	"github.com/pkg/errors"
	"github.com/wdamron/poly"
	polyast "github.com/wdamron/poly/ast"
	"github.com/wdamron/poly/construct"
	"github.com/wdamron/poly/types"
)

const (
	numberLit = "#number"
	boolLit   = "#bool"
	arith     = "#arith"
	cond      = "#if"
)

// Check returns the type poly infers for expr, as rendered by types.TypeString
func Check(expr ast.Expr) (string, error) {
	env := poly.NewTypeEnv(nil)
	env.Declare(numberLit, construct.TConst("number"))
	env.Declare(boolLit, construct.TConst("bool"))
	env.Declare(arith, construct.TArrow2(construct.TConst("number"), construct.TConst("number"), construct.TConst("number")))
	a := env.NewGenericVar()
	env.Declare(cond, construct.TArrow3(construct.TConst("bool"), a, a, a))
	for _, name := range freeVars(expr) {
		env.Declare(string(name), env.NewVar(types.TopLevel))
	}

	translated, err := translate(expr)
	if err != nil {
		return "", err
	}
	t, err := poly.NewContext().Infer(translated, env)
	if err != nil {
		return "", errors.Wrapf(err, "poly could not infer '%s'", ast.ExprString(expr))
	}
	return types.TypeString(t), nil
}

// Agrees reports whether poly infers the same type as r does for r.Root.
// Types that are not concrete are not compared and always agree.
func Agrees(r *infer.Result) (bool, string, error) {
	t := r.Type()
	if !infer.Concrete(t) {
		return true, "", nil
	}
	ours, _ := Render(t)
	theirs, err := Check(r.Root)
	if err != nil {
		return false, "", err
	}
	return ours == theirs, theirs, nil
}

// Render renders a concrete term the way poly renders the equivalent type
func Render(t infer.Term) (string, bool) {
	switch t := t.(type) {
	case infer.BaseTerm:
		switch t {
		case infer.Number:
			return "number", true
		case infer.Bool:
			return "bool", true
		}
	case infer.ArrowTerm:
		domain, ok := Render(t.Domain)
		if !ok {
			return "", false
		}
		rng, ok := Render(t.Range)
		if !ok {
			return "", false
		}
		if _, isArrow := t.Domain.(infer.ArrowTerm); isArrow {
			domain = "(" + domain + ")"
		}
		return fmt.Sprintf("%s -> %s", domain, rng), true
	}
	return "", false
}

func translate(expr ast.Expr) (polyast.Expr, error) {
	switch e := expr.(type) {
	case *ast.Number:
		return construct.Var(numberLit), nil
	case *ast.Bool:
		return construct.Var(boolLit), nil
	case *ast.Var:
		return construct.Var(string(e.Name)), nil
	case *ast.Binary:
		lhs, err := translate(e.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := translate(e.Rhs)
		if err != nil {
			return nil, err
		}
		return construct.Call(construct.Var(arith), lhs, rhs), nil
	case *ast.If:
		args := make([]polyast.Expr, 0, 3)
		for _, child := range []ast.Expr{e.Cond, e.Then, e.Else} {
			translated, err := translate(child)
			if err != nil {
				return nil, err
			}
			args = append(args, translated)
		}
		return construct.Call(construct.Var(cond), args...), nil
	case *ast.Func:
		arg, ok := e.Arg.(*ast.Var)
		if !ok {
			return nil, ilerr.New(ilerr.NewMalformedFunctionArg{Func: e})
		}
		body, err := translate(e.Body)
		if err != nil {
			return nil, err
		}
		return construct.Func1(string(arg.Name), body), nil
	case *ast.Call:
		fn, err := translate(e.Func)
		if err != nil {
			return nil, err
		}
		arg, err := translate(e.Arg)
		if err != nil {
			return nil, err
		}
		return construct.Call(fn, arg), nil
	default:
		return nil, ilerr.New(ilerr.NewNotImplemented{Expr: expr})
	}
}

// freeVars returns the variables of expr not bound by an enclosing function, in order of appearance
func freeVars(expr ast.Expr) []rune {
	var free []rune
	seen := make(map[rune]bool)
	var walk func(e ast.Expr, bound map[rune]bool)
	walk = func(e ast.Expr, bound map[rune]bool) {
		switch e := e.(type) {
		case *ast.Var:
			if !bound[e.Name] && !seen[e.Name] {
				seen[e.Name] = true
				free = append(free, e.Name)
			}
		case *ast.Func:
			inner := bound
			if arg, ok := e.Arg.(*ast.Var); ok {
				inner = make(map[rune]bool, len(bound)+1)
				for k, v := range bound {
					inner[k] = v
				}
				inner[arg.Name] = true
			}
			walk(e.Body, inner)
		default:
			for _, child := range ast.Children(e) {
				walk(child, bound)
			}
		}
	}
	walk(expr, map[rune]bool{})
	return free
}
