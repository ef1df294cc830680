package tinfer

import (
	"github.com/cottand/tinfer/frontend/ast"
	"github.com/cottand/tinfer/frontend/ilerr"
	"github.com/cottand/tinfer/frontend/infer"
	"github.com/cottand/tinfer/frontend/polycheck"
	"github.com/cottand/tinfer/internal/log"
	"github.com/pkg/errors"
)

var programLogger = log.DefaultLogger.With("section", "program")

// Program is a named expression tree to infer types for.
type Program struct {
	Name        string
	Description string
	// Build creates the expression using b, so every node gets its own ast.NodeID
	Build func(b *ast.Builder) ast.Expr
	// Expect is the error code inference is expected to fail with, or ilerr.None
	Expect ilerr.ErrCode
}

// Expr builds a fresh tree for p
func (p Program) Expr() ast.Expr {
	return p.Build(ast.NewBuilder())
}

type RunSettings struct {
	Keying infer.Keying
	// CrossCheck additionally infers the type with the wdamron/poly engine and reports whether both agree
	CrossCheck bool
}

// Run builds p and infers the types of its expression
func Run(p Program, settings RunSettings) (*Report, error) {
	if p.Build == nil {
		return nil, errors.Errorf("program %q has nothing to build", p.Name)
	}
	expr, err := build(p)
	if err != nil {
		return nil, err
	}
	programLogger.Info("inferring", "program", p.Name, "nodes", countNodes(expr))

	result, err := infer.Infer(expr, infer.WithKeying(settings.Keying))
	if err != nil {
		return nil, errors.WithMessagef(err, "program %s", p.Name)
	}
	report := &Report{Program: p, Result: result}
	if settings.CrossCheck {
		agrees, theirs, err := polycheck.Agrees(result)
		if err != nil {
			return nil, errors.Wrapf(err, "cross-checking program %s", p.Name)
		}
		report.CrossCheck = &CrossCheck{Agrees: agrees, PolyType: theirs}
		if !agrees {
			programLogger.Warn("cross-check disagrees", "program", p.Name, "ours", result.Type(), "poly", theirs)
		}
	}
	return report, nil
}

// build calls p.Build, which for scripts is interpreted code that may panic
func build(p Program) (expr ast.Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			expr, err = nil, errors.Errorf("building program %s: %v", p.Name, r)
		}
	}()
	expr = p.Expr()
	if expr == nil {
		return nil, errors.Errorf("program %s built no expression", p.Name)
	}
	return expr, nil
}

func countNodes(expr ast.Expr) int {
	n := 0
	ast.Inspect(expr, func(ast.Expr) bool {
		n++
		return true
	})
	return n
}
