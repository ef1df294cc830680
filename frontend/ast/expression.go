package ast

import (
	"go/token"
	"strconv"
)

// Number represents a numeric literal.
type Number struct {
	node
	Value float64
}

func (*Number) exprNode() {}
func (e *Number) ExprName() string {
	return strconv.FormatFloat(e.Value, 'g', -1, 64)
}

// Bool represents a boolean literal.
type Bool struct {
	node
	Value bool
}

func (*Bool) exprNode() {}
func (e *Bool) ExprName() string {
	return strconv.FormatBool(e.Value)
}

// String represents a string literal.
// The language has no string type yet, so inference rejects it.
type String struct {
	node
	Value string
}

func (*String) exprNode() {}
func (e *String) ExprName() string {
	return strconv.Quote(e.Value)
}

// Var represents a reference to a single-character variable.
type Var struct {
	node
	Name rune
}

func (*Var) exprNode() {}
func (e *Var) ExprName() string {
	return string(e.Name)
}

// Binary represents a binary operation (a + b, a - b, a < b).
type Binary struct {
	node
	Op       token.Token // token.ADD, token.SUB or token.LSS
	Lhs, Rhs Expr
}

func (*Binary) exprNode() {}
func (e *Binary) ExprName() string {
	return e.Op.String()
}

// If represents a conditional expression.
type If struct {
	node
	Cond, Then, Else Expr
}

func (*If) exprNode() {}
func (*If) ExprName() string {
	return "if"
}

// Func represents a single-argument function.
// Arg is expected to be a *Var, but nothing stops a caller from building
// a Func with any other argument expression.
type Func struct {
	node
	Arg  Expr
	Body Expr
}

func (*Func) exprNode() {}
func (*Func) ExprName() string {
	return "lambda"
}

// Call represents the application of Func to a single Arg.
type Call struct {
	node
	Func Expr
	Arg  Expr
}

func (*Call) exprNode() {}
func (*Call) ExprName() string {
	return "call"
}

func (b *Builder) Num(value float64) *Number {
	return &Number{node: b.next(), Value: value}
}

func (b *Builder) Bool(value bool) *Bool {
	return &Bool{node: b.next(), Value: value}
}

func (b *Builder) Str(value string) *String {
	return &String{node: b.next(), Value: value}
}

func (b *Builder) Var(name rune) *Var {
	return &Var{node: b.next(), Name: name}
}

func (b *Builder) Binary(op token.Token, lhs, rhs Expr) *Binary {
	return &Binary{node: b.next(), Op: op, Lhs: lhs, Rhs: rhs}
}

func (b *Builder) Add(lhs, rhs Expr) *Binary { return b.Binary(token.ADD, lhs, rhs) }
func (b *Builder) Sub(lhs, rhs Expr) *Binary { return b.Binary(token.SUB, lhs, rhs) }
func (b *Builder) Less(lhs, rhs Expr) *Binary {
	return b.Binary(token.LSS, lhs, rhs)
}

func (b *Builder) If(cond, then, els Expr) *If {
	return &If{node: b.next(), Cond: cond, Then: then, Else: els}
}

func (b *Builder) Func(arg Expr, body Expr) *Func {
	return &Func{node: b.next(), Arg: arg, Body: body}
}

func (b *Builder) Call(fn, arg Expr) *Call {
	return &Call{node: b.next(), Func: fn, Arg: arg}
}
