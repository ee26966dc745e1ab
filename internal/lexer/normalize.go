package lexer

import (
	"math/big"

	"exprlex/internal/token"
)

// NormalizeSigns folds a minus that sits between another operator and a
// literal into the literal's sign: (op, -, 5) becomes (op, -5).
//
// The scan runs once, left to right, over the original indices; matching
// minus tokens are only collected, and the slice is compacted after the scan.
// The operator before the minus must not be the first token of the sequence,
// so a leading "-5", "(-5)" or "- -5" is left as is. The slice is modified in
// place and the compacted prefix is returned.
func NormalizeSigns(toks []token.Token) []token.Token {
	var drop []int
	for i := 3; i < len(toks); i++ {
		if !toks[i].IsLiteral() || !toks[i-1].IsOp(token.Minus) || !toks[i-2].IsOperator() {
			continue
		}
		toks[i] = negate(toks[i-1], toks[i])
		drop = append(drop, i-1)
	}
	if len(drop) == 0 {
		return toks
	}

	out := toks[:0]
	next := 0
	for i := range toks {
		if next < len(drop) && drop[next] == i {
			next++
			continue
		}
		out = append(out, toks[i])
	}
	clear(toks[len(out):])
	return out
}

func negate(minus, lit token.Token) token.Token {
	lit.Value = new(big.Int).Neg(lit.Value)
	lit.Span = minus.Span.Cover(lit.Span)
	lit.Text = "-" + lit.Text
	return lit
}
