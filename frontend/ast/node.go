package ast

import (
	"strconv"
	"strings"
)

// NodeID uniquely identifies an expression node within the Builder that created it.
// The zero NodeID is never handed out.
type NodeID uint32

// Node is the base interface for all AST nodes.
type Node interface {
	ID() NodeID
}

// Expr is the interface for all expression nodes in the AST.
type Expr interface {
	Node
	ExprName() string
	exprNode() // Marker method to distinguish expressions
}

type node struct {
	id NodeID
}

func (n node) ID() NodeID { return n.id }

// Builder creates expression nodes, assigning each a fresh NodeID.
// Nodes created by different Builders may share IDs and should not be mixed in one tree.
type Builder struct {
	last NodeID
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) next() node {
	b.last++
	return node{id: b.last}
}

// Len returns how many nodes b has created so far
func (b *Builder) Len() int {
	return int(b.last)
}

// Structure returns a prefix encoding of expr that ignores node IDs:
// two expressions have the same Structure exactly when they are structurally equal
func Structure(expr Expr) string {
	sb := &strings.Builder{}
	writeStructure(sb, expr)
	return sb.String()
}

func writeStructure(sb *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case nil:
		sb.WriteString("_")
		return
	case *Number:
		sb.WriteString("n" + strconv.FormatFloat(e.Value, 'g', -1, 64))
		return
	case *Bool:
		sb.WriteString("b" + strconv.FormatBool(e.Value))
		return
	case *String:
		sb.WriteString("s" + strconv.Quote(e.Value))
		return
	case *Var:
		sb.WriteString("v" + strconv.QuoteRune(e.Name))
		return
	case *Binary:
		sb.WriteString("(" + e.Op.String())
	case *If:
		sb.WriteString("(if")
	case *Func:
		sb.WriteString("(fn")
	case *Call:
		sb.WriteString("(call")
	default:
		sb.WriteString("(" + e.ExprName())
	}
	for _, child := range Children(expr) {
		sb.WriteString(" ")
		writeStructure(sb, child)
	}
	sb.WriteString(")")
}

// Inspect traverses expr in pre-order, calling f for every node.
// Children of a node are not visited when f returns false.
func Inspect(expr Expr, f func(Expr) bool) {
	if expr == nil || !f(expr) {
		return
	}
	for _, child := range Children(expr) {
		Inspect(child, f)
	}
}

// Children returns the direct sub-expressions of expr, in evaluation order
func Children(expr Expr) []Expr {
	switch e := expr.(type) {
	case *Binary:
		return []Expr{e.Lhs, e.Rhs}
	case *If:
		return []Expr{e.Cond, e.Then, e.Else}
	case *Func:
		return []Expr{e.Arg, e.Body}
	case *Call:
		return []Expr{e.Func, e.Arg}
	default:
		return nil
	}
}
