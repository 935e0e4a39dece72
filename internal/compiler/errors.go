package compiler

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the class of a compile error.
type ErrorKind int

const (
	// UnmatchedParenthesis: a ')' without '(' or a '(' never closed.
	UnmatchedParenthesis ErrorKind = iota + 1
	// EmptyOperand: an operator found fewer operands than it needs.
	EmptyOperand
	// TrailingOperators: operands and operators do not reduce to a single expression.
	TrailingOperators
)

// Sentinel errors matched by errors.Is against a *CompileError.
var (
	ErrUnmatchedParenthesis = errors.New("unmatched parenthesis")
	ErrEmptyOperand         = errors.New("operator is missing an operand")
	ErrTrailingOperators    = errors.New("pattern does not reduce to a single expression")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnmatchedParenthesis:
		return ErrUnmatchedParenthesis
	case EmptyOperand:
		return ErrEmptyOperand
	case TrailingOperators:
		return ErrTrailingOperators
	default:
		return nil
	}
}

func (k ErrorKind) String() string {
	switch k {
	case UnmatchedParenthesis:
		return "UnmatchedParenthesis"
	case EmptyOperand:
		return "EmptyOperand"
	case TrailingOperators:
		return "TrailingOperators"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// CompileError reports why a pattern could not be compiled.
// Offset is the byte offset of the offending token, or -1 when the problem
// concerns the pattern as a whole.
type CompileError struct {
	Kind    ErrorKind
	Pattern string
	Offset  int
	Detail  string
}

func (e *CompileError) Error() string {
	msg := e.Kind.sentinel().Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset %d in %q", msg, e.Offset, e.Pattern)
	}
	return fmt.Sprintf("%s in %q", msg, e.Pattern)
}

// Unwrap returns the sentinel error for the error kind.
func (e *CompileError) Unwrap() error {
	return e.Kind.sentinel()
}

func newError(kind ErrorKind, offset int, format string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}
