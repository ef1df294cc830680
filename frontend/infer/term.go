package infer

import (
	"fmt"
	"github.com/cottand/tinfer/frontend/ast"
)

// Term is a type expression: a base type, an arrow between two Terms,
// or a placeholder (ExprTerm, VarTerm) standing for a type not known yet.
type Term interface {
	fmt.Stringer
	// Equals is deep structural equality
	Equals(Term) bool
	termNode()
}

// ExprTerm is the placeholder for the type of an expression node.
// Two ExprTerm are equal when their Key is, see Keying.
type ExprTerm struct {
	Key  string
	Expr ast.Expr
}

func (ExprTerm) termNode() {}
func (t ExprTerm) Equals(other Term) bool {
	o, ok := other.(ExprTerm)
	return ok && o.Key == t.Key
}
func (t ExprTerm) String() string { return "[" + ast.ExprString(t.Expr) + "]" }

// VarTerm is the placeholder for the type of a program variable.
type VarTerm struct {
	Name rune
}

func (VarTerm) termNode() {}
func (t VarTerm) Equals(other Term) bool {
	o, ok := other.(VarTerm)
	return ok && o.Name == t.Name
}
func (t VarTerm) String() string { return "'" + string(t.Name) }

type BaseTerm string

const (
	Number BaseTerm = "Number"
	Bool   BaseTerm = "Bool"
)

func (BaseTerm) termNode() {}
func (t BaseTerm) Equals(other Term) bool {
	o, ok := other.(BaseTerm)
	return ok && o == t
}
func (t BaseTerm) String() string { return string(t) }

// ArrowTerm is the type of a single-argument function.
type ArrowTerm struct {
	Domain, Range Term
}

func Arrow(domain, rng Term) ArrowTerm {
	return ArrowTerm{Domain: domain, Range: rng}
}

func (ArrowTerm) termNode() {}
func (t ArrowTerm) Equals(other Term) bool {
	o, ok := other.(ArrowTerm)
	return ok && t.Domain.Equals(o.Domain) && t.Range.Equals(o.Range)
}
func (t ArrowTerm) String() string {
	return fmt.Sprintf("(%v -> %v)", t.Domain, t.Range)
}

// IsPlaceholder reports whether t stands for an unknown type
func IsPlaceholder(t Term) bool {
	switch t.(type) {
	case ExprTerm, VarTerm:
		return true
	default:
		return false
	}
}

// Concrete reports whether t is made only of base types and arrows
func Concrete(t Term) bool {
	switch t := t.(type) {
	case BaseTerm:
		return true
	case ArrowTerm:
		return Concrete(t.Domain) && Concrete(t.Range)
	default:
		return false
	}
}

// Constraint requires Lhs and Rhs to denote the same type.
type Constraint struct {
	Lhs, Rhs Term
}

func (c Constraint) String() string {
	return fmt.Sprintf("%v = %v", c.Lhs, c.Rhs)
}

// Substitution records that the placeholder Var is known to equal Is.
type Substitution struct {
	Var, Is Term
}

func (s Substitution) String() string {
	return fmt.Sprintf("%v := %v", s.Var, s.Is)
}

// AsConstraints turns each substitution back into the constraint Var = Is
func AsConstraints(subs []Substitution) []Constraint {
	constraints := make([]Constraint, len(subs))
	for i, s := range subs {
		constraints[i] = Constraint{Lhs: s.Var, Rhs: s.Is}
	}
	return constraints
}

// replace returns t with every occurrence of v replaced by with
func replace(t Term, v Term, with Term) Term {
	if t.Equals(v) {
		return with
	}
	if arrow, ok := t.(ArrowTerm); ok {
		return ArrowTerm{
			Domain: replace(arrow.Domain, v, with),
			Range:  replace(arrow.Range, v, with),
		}
	}
	return t
}

// placeholders calls f for every placeholder in t, left to right
func placeholders(t Term, f func(Term)) {
	switch t := t.(type) {
	case ArrowTerm:
		placeholders(t.Domain, f)
		placeholders(t.Range, f)
	case ExprTerm, VarTerm:
		f(t)
	}
}
