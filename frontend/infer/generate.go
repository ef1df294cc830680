package infer

import (
	"github.com/cottand/tinfer/frontend/ast"
	"github.com/cottand/tinfer/frontend/ilerr"
	"github.com/cottand/tinfer/internal/log"
	"log/slog"
)

var generateLogger = log.DefaultLogger.With("section", "generate")

type generator struct {
	keying      Keying
	logger      *slog.Logger
	constraints []Constraint
}

// Generate walks expr and returns the type equality constraints its typing rules imply.
// Children's constraints come before the constraints of the node itself.
//
// It fails with ilerr.MalformedFunctionArg when a function argument is not a variable,
// and with ilerr.NotImplemented on expressions it has no rule for.
func Generate(expr ast.Expr, opts ...Option) ([]Constraint, error) {
	c := newConfig(opts)
	logger := c.logger
	if logger == nil {
		logger = generateLogger
	}
	g := &generator{
		keying: c.keying,
		logger: ast.ExprLogger(logger),
	}
	if err := g.generate(expr); err != nil {
		return nil, err
	}
	return g.constraints, nil
}

func (g *generator) of(expr ast.Expr) ExprTerm {
	return g.keying.ExprTermFor(expr)
}

func (g *generator) emit(lhs, rhs Term) {
	c := Constraint{Lhs: lhs, Rhs: rhs}
	g.logger.Debug("emit", "constraint", c)
	g.constraints = append(g.constraints, c)
}

func (g *generator) generate(expr ast.Expr) error {
	switch e := expr.(type) {
	case *ast.Number:
		g.emit(g.of(e), Number)

	case *ast.Bool:
		g.emit(g.of(e), Bool)

	case *ast.Var:
		g.emit(g.of(e), VarTerm{Name: e.Name})

	case *ast.Binary:
		if err := g.generate(e.Lhs); err != nil {
			return err
		}
		if err := g.generate(e.Rhs); err != nil {
			return err
		}
		// operators are numeric only, comparisons included
		g.emit(g.of(e.Lhs), Number)
		g.emit(g.of(e.Rhs), Number)
		g.emit(g.of(e), Number)

	case *ast.If:
		for _, child := range []ast.Expr{e.Cond, e.Then, e.Else} {
			if err := g.generate(child); err != nil {
				return err
			}
		}
		g.emit(g.of(e.Cond), Bool)
		g.emit(g.of(e), g.of(e.Then))
		g.emit(g.of(e), g.of(e.Else))

	case *ast.Func:
		arg, ok := e.Arg.(*ast.Var)
		if !ok {
			return ilerr.New(ilerr.NewMalformedFunctionArg{Func: e})
		}
		if err := g.generate(e.Body); err != nil {
			return err
		}
		g.emit(g.of(e), Arrow(VarTerm{Name: arg.Name}, g.of(e.Body)))

	case *ast.Call:
		if err := g.generate(e.Func); err != nil {
			return err
		}
		if err := g.generate(e.Arg); err != nil {
			return err
		}
		g.emit(g.of(e.Func), Arrow(g.of(e.Arg), g.of(e)))

	default:
		g.logger.Warn("no constraint rule for expression", "expr", expr)
		return ilerr.New(ilerr.NewNotImplemented{Expr: expr})
	}
	return nil
}
