package lexer

import (
	"exprlex/internal/token"
)

// scanVariable сканирует максимальную последовательность букв.
// Цифры не продолжают идентификатор: "abc123" → Variable(abc), Literal(123).
func (lx *Lexer) scanVariable() token.Token {
	start := lx.cursor.Mark()
	for {
		r, sz := lx.cursor.PeekRune()
		if sz == 0 || !isAlphabetic(r) {
			break
		}
		lx.cursor.BumpRune()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Variable, Span: sp, Text: string(lx.file.Slice(sp))}
}
