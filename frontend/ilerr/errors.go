package ilerr

import (
	"errors"
	"fmt"
	"github.com/cottand/tinfer/frontend/ast"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes errors include the frame that created them when printed
var enableDebugErrorPrinting = false

const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None                 ErrCode = iota
	MalformedFunctionArg ErrCode = iota
	TypeMismatch
	OccursCheck
	NotImplemented
)

func (c ErrCode) String() string {
	switch c {
	case MalformedFunctionArg:
		return "malformed function argument"
	case TypeMismatch:
		return "type mismatch"
	case OccursCheck:
		return "cyclic type"
	case NotImplemented:
		return "not implemented"
	default:
		return "unclassified"
	}
}

type IleError interface {
	Error() string
	Code() ErrCode

	withStack([]byte) IleError
	getStack() []byte
}

// SetDebugPrinting toggles whether FormatWithCode prefixes errors with where they were created
func SetDebugPrinting(enabled bool) {
	enableDebugErrorPrinting = enabled
}

func FormatWithCode(e IleError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			lines := strings.Split(stack, "\n")
			if len(lines) > 6 {
				stack = strings.TrimSpace(lines[6])
			}
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

func New[E IleError](err E) IleError {
	return err.withStack(debug.Stack())
}

// CodeOf returns the ErrCode of the first IleError in err's chain, or None
func CodeOf(err error) ErrCode {
	var ileErr IleError
	if errors.As(err, &ileErr) {
		return ileErr.Code()
	}
	return None
}

type NewMalformedFunctionArg struct {
	Func  *ast.Func
	stack []byte
}

func (e NewMalformedFunctionArg) Error() string {
	return fmt.Sprintf("function argument is not a variable: '%s' in '%s'", ast.ExprString(e.Func.Arg), ast.ExprString(e.Func))
}
func (e NewMalformedFunctionArg) Code() ErrCode    { return MalformedFunctionArg }
func (e NewMalformedFunctionArg) getStack() []byte { return e.stack }
func (e NewMalformedFunctionArg) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewTypeMismatch struct {
	Left  fmt.Stringer
	Right fmt.Stringer
	stack []byte
}

func (e NewTypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: '%v' and '%v' do not unify", e.Left, e.Right)
}
func (e NewTypeMismatch) Code() ErrCode    { return TypeMismatch }
func (e NewTypeMismatch) getStack() []byte { return e.stack }
func (e NewTypeMismatch) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewOccursCheck struct {
	Var   fmt.Stringer
	In    fmt.Stringer
	stack []byte
}

func (e NewOccursCheck) Error() string {
	return fmt.Sprintf("occurs-check failed: '%v' occurs in '%v', which would make an infinite type", e.Var, e.In)
}
func (e NewOccursCheck) Code() ErrCode    { return OccursCheck }
func (e NewOccursCheck) getStack() []byte { return e.stack }
func (e NewOccursCheck) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}

type NewNotImplemented struct {
	Expr  ast.Expr
	stack []byte
}

func (e NewNotImplemented) Error() string {
	return fmt.Sprintf("not implemented: cannot generate constraints for %T '%s'", e.Expr, ast.ExprString(e.Expr))
}
func (e NewNotImplemented) Code() ErrCode    { return NotImplemented }
func (e NewNotImplemented) getStack() []byte { return e.stack }
func (e NewNotImplemented) withStack(stack []byte) IleError {
	e.stack = stack
	return e
}
