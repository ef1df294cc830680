package infer

import (
	"github.com/cottand/tinfer/frontend/ast"
	"github.com/cottand/tinfer/util"
	"github.com/xtgo/set"
	"sort"
)

// Result is the outcome of a successful inference over one expression tree.
type Result struct {
	Root          ast.Expr
	Keying        Keying
	Constraints   []Constraint
	Substitutions []Substitution
}

// Infer generates the constraints of expr and unifies them.
// Inference is all or nothing: on error there is no partial Result.
func Infer(expr ast.Expr, opts ...Option) (*Result, error) {
	c := newConfig(opts)
	constraints, err := Generate(expr, opts...)
	if err != nil {
		return nil, err
	}
	logger := c.logger
	if logger == nil {
		logger = unifyLogger
	}
	subs, err := unifyWith(logger, constraints, nil)
	if err != nil {
		return nil, err
	}
	return &Result{
		Root:          expr,
		Keying:        c.keying,
		Constraints:   constraints,
		Substitutions: subs,
	}, nil
}

// Resolve follows substitutions through t until no more apply
func (r *Result) Resolve(t Term) Term {
	for rounds := 0; rounds <= len(r.Substitutions); rounds++ {
		resolved := t
		for _, s := range r.Substitutions {
			resolved = replace(resolved, s.Var, s.Is)
		}
		if resolved.Equals(t) {
			return resolved
		}
		t = resolved
	}
	return t
}

// TypeOf returns the inferred type of expr, which must be a node of r.Root.
// A function argument has no placeholder of its own, so for an *ast.Var
// without one the type of the variable is returned instead.
func (r *Result) TypeOf(expr ast.Expr) (Term, bool) {
	if is, ok := lookup(r.Substitutions, r.Keying.ExprTermFor(expr)); ok {
		return r.Resolve(is), true
	}
	if v, isVar := expr.(*ast.Var); isVar {
		return r.TypeOfVar(v.Name)
	}
	return nil, false
}

// TypeOfVar returns the inferred type of the variable name
func (r *Result) TypeOfVar(name rune) (Term, bool) {
	if is, ok := lookup(r.Substitutions, VarTerm{Name: name}); ok {
		return r.Resolve(is), true
	}
	return nil, false
}

// Type is the inferred type of the whole expression
func (r *Result) Type() Term {
	t, ok := r.TypeOf(r.Root)
	if !ok {
		return r.Keying.ExprTermFor(r.Root)
	}
	return t
}

// Types returns every node of the tree, in pre-order, with its inferred type.
// Nodes with no type (which only happens for unconstrained placeholders) are skipped.
func (r *Result) Types() []util.Pair[ast.Expr, Term] {
	var types []util.Pair[ast.Expr, Term]
	ast.Inspect(r.Root, func(e ast.Expr) bool {
		if t, ok := r.TypeOf(e); ok {
			types = append(types, util.NewPair(e, t))
		}
		return true
	})
	return types
}

// Unresolved lists the placeholders that nothing constrains to a concrete type,
// such as the type of a free variable never used as a number or boolean
func (r *Result) Unresolved() []string {
	var names sort.StringSlice
	for _, s := range r.Substitutions {
		placeholders(r.Resolve(s.Is), func(t Term) {
			if _, bound := lookup(r.Substitutions, t); !bound {
				names = append(names, t.String())
			}
		})
	}
	sort.Sort(names)
	return names[:set.Uniq(names)]
}
