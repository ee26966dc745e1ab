package lexer

import (
	"exprlex/internal/diag"
	"exprlex/internal/source"
	"exprlex/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
	err    *Error
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий значимый токен.
// После EOF или ошибки всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}
	}

	r, _ := lx.cursor.PeekRune()
	switch {
	case isAlphabetic(r):
		return lx.scanVariable()
	case isDec(r):
		return lx.scanNumber()
	default:
		return lx.scanOperator()
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Err returns the error that stopped the lexer, if any.
func (lx *Lexer) Err() error {
	if lx.err == nil {
		return nil
	}
	return lx.err
}

// fail records the first error, reports it and fast-forwards to EOF.
func (lx *Lexer) fail(code diag.Code, sp source.Span, msg string) token.Token {
	text := string(lx.file.Slice(sp))
	if lx.err == nil {
		pos, _ := lx.file.Resolve(sp)
		lx.err = &Error{Code: code, Span: sp, Pos: pos, Text: text, Msg: msg}
		lx.report(code, sp, msg)
	}
	lx.cursor.Skip()
	return token.Token{Kind: token.Invalid, Span: sp, Text: text}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{Start: lx.cursor.Off, End: lx.cursor.Off}
}
