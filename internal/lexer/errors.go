package lexer

import (
	"errors"
	"fmt"

	"exprlex/internal/diag"
	"exprlex/internal/source"
)

var (
	// ErrUnrecognizedCharacter is matched by errors for characters that are
	// not whitespace, alphabetic, a decimal digit or an operator symbol.
	ErrUnrecognizedCharacter = errors.New("unrecognized character")
	// ErrNumericOverflow is matched by errors for digit runs above 2^127-1.
	ErrNumericOverflow = errors.New("numeric overflow")
)

// Error describes the failure that stopped lexing.
type Error struct {
	Code diag.Code
	Span source.Span
	Pos  source.LineCol
	Text string // offending character or digit run
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

func (e *Error) Unwrap() error {
	switch e.Code {
	case diag.LexUnknownChar:
		return ErrUnrecognizedCharacter
	case diag.LexIntOverflow:
		return ErrNumericOverflow
	default:
		return nil
	}
}

// Diagnostic converts the error for rendering by diagfmt.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Code, e.Span, e.Msg)
}
