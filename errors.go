package lispster

import (
	"errors"
	"fmt"

	"github.com/xiam/lispster/parser"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrMaxDepth       = errors.New("maximum evaluation depth exceeded")
)

// SyntaxError is raised by the reader, see parser.SyntaxError.
type SyntaxError = parser.SyntaxError

// UnboundSymbolError is returned when a symbol is not bound in any frame of
// the environment chain.
type UnboundSymbolError struct {
	Symbol string
}

func (e *UnboundSymbolError) Error() string {
	return fmt.Sprintf("unbound symbol: %s", e.Symbol)
}

// ArityError is returned when a procedure, primitive or special form gets the
// wrong number of arguments. Variadic is set when Expected is a minimum and
// AtMost when it is a maximum.
type ArityError struct {
	Name     string
	Expected int
	Actual   int
	Variadic bool
	AtMost   bool
}

func (e *ArityError) Error() string {
	qualifier := ""
	switch {
	case e.Variadic:
		qualifier = "at least "
	case e.AtMost:
		qualifier = "at most "
	}
	return fmt.Sprintf("%s: expected %s%d arguments, got %d", e.Name, qualifier, e.Expected, e.Actual)
}

// TypeError is returned when an operation gets an operand of the wrong kind.
type TypeError struct {
	Operation string
	Operand   *Value
	Expected  string
}

func (e *TypeError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("%s: invalid operand %v (%v)", e.Operation, e.Operand, e.Operand.Type)
	}
	return fmt.Sprintf("%s: expected %s, got %v (%v)", e.Operation, e.Expected, e.Operand, e.Operand.Type)
}
