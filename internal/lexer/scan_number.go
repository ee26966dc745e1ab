package lexer

import (
	"fmt"
	"math/big"

	"exprlex/internal/diag"
	"exprlex/internal/token"
)

// scanNumber consumes the maximal run of ASCII digits and parses it as a
// non-negative base-10 value. Values above token.MaxLiteral fail the lexer.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for isDec(rune(lx.cursor.Peek())) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Slice(sp))

	v, ok := new(big.Int).SetString(text, 10)
	if !ok {
		panic(fmt.Errorf("digit run %q is not a base-10 integer", text))
	}
	if v.Cmp(token.MaxLiteral) > 0 {
		return lx.fail(diag.LexIntOverflow, sp,
			fmt.Sprintf("integer literal %s exceeds the 128-bit signed range", text))
	}
	return token.Token{Kind: token.Literal, Value: v, Span: sp, Text: text}
}
