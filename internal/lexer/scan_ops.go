package lexer

import (
	"fmt"
	"unicode/utf8"

	"exprlex/internal/diag"
	"exprlex/internal/token"
)

// scanOperator consumes exactly one rune, which must be an operator symbol.
func (lx *Lexer) scanOperator() token.Token {
	start := lx.cursor.Mark()
	r, sz := lx.cursor.PeekRune()
	lx.cursor.BumpRune()
	sp := lx.cursor.SpanFrom(start)

	if op, ok := token.LookupOp(r); ok {
		return token.Token{Kind: token.Operator, Op: op, Span: sp, Text: op.Symbol()}
	}

	// неизвестный символ
	if r == utf8.RuneError && sz == 1 {
		return lx.fail(diag.LexUnknownChar, sp,
			fmt.Sprintf("invalid UTF-8 byte 0x%02x", lx.file.Content[sp.Start]))
	}
	return lx.fail(diag.LexUnknownChar, sp, fmt.Sprintf("unrecognized character %q", r))
}
