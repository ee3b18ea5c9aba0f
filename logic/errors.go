package logic

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrUnboundVariable is matched by every *UnboundVariableError.
	ErrUnboundVariable = errors.New("unbound variable")
	// ErrMalformedProgram is matched by every *MalformedProgramError.
	ErrMalformedProgram = errors.New("malformed program")
	// ErrTooManyVariables is returned by drivers asked to enumerate more
	// than MaxVariables variables.
	ErrTooManyVariables = errors.New("too many variables")
)

// SyntaxError reports the first token of a proposition that the grammar
// cannot accept.
type SyntaxError struct {
	Input    string // the proposition being compiled
	Offset   int    // byte offset of the offending token
	Column   int    // 1-based rune column of the offending token
	Found    string // offending token, or "end of input"
	Expected string // what the parser was looking for
}

func newSyntaxError(input string, tok Token, expected string) *SyntaxError {
	return &SyntaxError{
		Input:    input,
		Offset:   tok.Offset,
		Column:   utf8.RuneCountInString(input[:tok.Offset]) + 1,
		Found:    tok.String(),
		Expected: expected,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at column %d: unexpected %s, expected %s", e.Column, e.Found, e.Expected)
}

// Message is the error text without the position prefix.
func (e *SyntaxError) Message() string {
	return fmt.Sprintf("unexpected %s, expected %s", e.Found, e.Expected)
}

// Caret renders the input with a caret under the offending token.
//
//	(A ∧ B
//	      ^
func (e *SyntaxError) Caret() string {
	return e.Input + "\n" + strings.Repeat(" ", e.Column-1) + "^"
}

// UnboundVariableError is returned when an assignment lacks a variable the
// program reads.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %q", e.Name)
}

func (e *UnboundVariableError) Unwrap() error { return ErrUnboundVariable }

// MalformedProgramError reports a program that breaks the stack discipline
// or contains an unknown instruction.
type MalformedProgramError struct {
	Index  int // instruction index, or the program length for end-of-program checks
	Reason string
}

func (e *MalformedProgramError) Error() string {
	return fmt.Sprintf("malformed program at instruction %d: %s", e.Index, e.Reason)
}

func (e *MalformedProgramError) Unwrap() error { return ErrMalformedProgram }
