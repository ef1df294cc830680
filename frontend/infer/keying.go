package infer

import (
	"github.com/cottand/tinfer/frontend/ast"
	"log/slog"
	"strconv"
)

// Keying decides when two expression nodes share the same ExprTerm placeholder
type Keying int

const (
	// KeyByNode gives every node created by an ast.Builder its own placeholder
	KeyByNode Keying = iota
	// KeyByStructure makes structurally identical nodes share a placeholder,
	// even when they appear at different positions of the tree
	KeyByStructure
)

func (k Keying) String() string {
	switch k {
	case KeyByStructure:
		return "structure"
	default:
		return "node"
	}
}

// ParseKeying is the inverse of Keying.String
func ParseKeying(s string) (Keying, bool) {
	switch s {
	case "node", "":
		return KeyByNode, true
	case "structure":
		return KeyByStructure, true
	default:
		return KeyByNode, false
	}
}

// ExprTermFor returns the placeholder standing for the type of expr
func (k Keying) ExprTermFor(expr ast.Expr) ExprTerm {
	switch k {
	case KeyByStructure:
		return ExprTerm{Key: "s" + ast.Structure(expr), Expr: expr}
	default:
		return ExprTerm{Key: "#" + strconv.FormatUint(uint64(expr.ID()), 10), Expr: expr}
	}
}

type config struct {
	keying Keying
	logger *slog.Logger
}

type Option func(*config)

func WithKeying(k Keying) Option {
	return func(c *config) { c.keying = k }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) config {
	c := config{keying: KeyByNode}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
