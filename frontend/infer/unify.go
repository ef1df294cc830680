package infer

import (
	"github.com/cottand/tinfer/frontend/ilerr"
	"github.com/cottand/tinfer/internal/log"
	"github.com/cottand/tinfer/util"
	"log/slog"
	"slices"
)

var unifyLogger = log.DefaultLogger.With("section", "unify")

type unifier struct {
	logger *slog.Logger
	queue  *util.Stack[Constraint]
	subs   []Substitution
}

// Unify solves constraints into a most general substitution, starting from initial.
//
// Every placeholder that appears in constraints ends up either as the Var of exactly one
// Substitution, or inside the Is of one when nothing pins it down further.
// Substitutions are kept fully propagated: no Is mentions a placeholder that is itself the Var
// of another entry.
//
// It fails with ilerr.TypeMismatch or ilerr.OccursCheck.
func Unify(constraints []Constraint, initial ...Substitution) ([]Substitution, error) {
	return unifyWith(unifyLogger, constraints, initial)
}

func unifyWith(logger *slog.Logger, constraints []Constraint, initial []Substitution) ([]Substitution, error) {
	u := &unifier{
		logger: logger,
		queue:  util.NewStack(constraints...),
		subs:   slices.Clone(initial),
	}
	for _, s := range initial {
		u.queue.Map(func(c Constraint) Constraint {
			return Constraint{Lhs: replace(c.Lhs, s.Var, s.Is), Rhs: replace(c.Rhs, s.Var, s.Is)}
		})
	}
	if err := u.run(); err != nil {
		return nil, err
	}
	return u.subs, nil
}

func (u *unifier) run() error {
	for {
		c, ok := u.queue.Pop()
		if !ok {
			return nil
		}
		u.logger.Debug("step", "constraint", c, "remaining", u.queue.Len())
		left, right := c.Lhs, c.Rhs

		switch {
		case left.Equals(right):
			continue
		case IsPlaceholder(left):
			if err := u.eliminate(left, right); err != nil {
				return err
			}
		case IsPlaceholder(right):
			if err := u.eliminate(right, left); err != nil {
				return err
			}
		default:
			leftArrow, leftOk := left.(ArrowTerm)
			rightArrow, rightOk := right.(ArrowTerm)
			if !leftOk || !rightOk {
				return ilerr.New(ilerr.NewTypeMismatch{Left: left, Right: right})
			}
			// domains are popped first
			u.queue.PushAll(
				Constraint{Lhs: leftArrow.Domain, Rhs: rightArrow.Domain},
				Constraint{Lhs: leftArrow.Range, Rhs: rightArrow.Range},
			)
		}
	}
}

// eliminate records v = t, replacing v by t in the remaining constraints and in every
// substitution found so far
func (u *unifier) eliminate(v Term, t Term) error {
	if u.occurs(v, t) {
		return ilerr.New(ilerr.NewOccursCheck{Var: v, In: t})
	}
	u.queue.Map(func(c Constraint) Constraint {
		return Constraint{Lhs: replace(c.Lhs, v, t), Rhs: replace(c.Rhs, v, t)}
	})
	for i, s := range u.subs {
		u.subs[i] = Substitution{Var: replace(s.Var, v, t), Is: replace(s.Is, v, t)}
	}
	u.subs = append(u.subs, Substitution{Var: v, Is: t})
	u.logger.Debug("substitute", "var", v, "is", t)
	return nil
}

// occurs reports whether v appears in t, looking through arrows and
// through the substitutions found so far
func (u *unifier) occurs(v Term, t Term) bool {
	seen := make([]Term, 0)
	var walk func(Term) bool
	walk = func(t Term) bool {
		if t.Equals(v) {
			return true
		}
		switch t := t.(type) {
		case ArrowTerm:
			return walk(t.Domain) || walk(t.Range)
		case ExprTerm, VarTerm:
			if slices.ContainsFunc(seen, t.Equals) {
				return false
			}
			seen = append(seen, t)
			if is, ok := lookup(u.subs, t); ok {
				return walk(is)
			}
		}
		return false
	}
	return walk(t)
}

func lookup(subs []Substitution, v Term) (Term, bool) {
	for _, s := range subs {
		if s.Var.Equals(v) {
			return s.Is, true
		}
	}
	return nil, false
}
