package parser

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEOF        = errors.New("unexpected EOF")
	ErrUnexpectedCloseParen = errors.New("unexpected )")
)

// SyntaxError is returned by the reader when the token stream does not form a
// well-formed expression. Kind is either ErrUnexpectedEOF or
// ErrUnexpectedCloseParen.
type SyntaxError struct {
	Kind error

	Line int
	Col  int
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("syntax error: %v", e.Kind)
	}
	return fmt.Sprintf("syntax error: %v at %d:%d", e.Kind, e.Line, e.Col)
}

// Unwrap allows errors.Is(err, ErrUnexpectedEOF) and friends.
func (e *SyntaxError) Unwrap() error {
	return e.Kind
}
