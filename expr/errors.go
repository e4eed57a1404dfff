package expr

import (
	"errors"
	"fmt"
)

// Compile-time failures
var (
	// ErrSyntax is returned for malformed expression source
	ErrSyntax = errors.New("syntax error")

	// ErrUnknownFunction is returned when a call names no built-in function
	ErrUnknownFunction = errors.New("unknown function")

	// ErrArity is returned when a call has the wrong number of arguments
	ErrArity = errors.New("wrong number of arguments")
)

// Evaluation failures
var (
	// ErrUnknownVariable is returned when an identifier is not bound
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrTypeMismatch is returned when operand types do not fit an operator
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrDivisionByZero is returned for integer division or modulo by zero
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow is returned when integer arithmetic leaves its range
	ErrOverflow = errors.New("integer overflow")

	// ErrInvalidArgument is returned by built-ins rejecting an argument value
	ErrInvalidArgument = errors.New("invalid argument")
)

// Binding failures
var (
	// ErrInvalidName is returned when a variable name is not an identifier
	ErrInvalidName = errors.New("invalid variable name")

	// ErrDuplicateVariable is returned when a name is bound twice in one scope
	ErrDuplicateVariable = errors.New("variable already bound")

	// ErrUnsupportedType is returned for Go values with no expression type
	ErrUnsupportedType = errors.New("unsupported value type")

	// ErrScopeFrozen is returned when binding into a scope after evaluation
	ErrScopeFrozen = errors.New("scope is frozen")
)

// CompileError reports why an expression could not be compiled
type CompileError struct {
	Source string
	Pos    int // byte offset into Source, -1 when not tied to a position
	Err    error
}

func (e *CompileError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("compile %q: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("compile %q: position %d: %v", e.Source, e.Pos, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// EvalError reports a runtime failure of a program against one scope
type EvalError struct {
	Expr string // rendering of the failing sub-expression
	Err  error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("evaluating %s: %v", e.Expr, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// BindError reports a variable that could not be added to a scope
type BindError struct {
	Name string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("binding %q: %v", e.Name, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}
