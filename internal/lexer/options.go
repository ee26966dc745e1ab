package lexer

import (
	"exprlex/internal/diag"
	"exprlex/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil, тогда ошибка видна только через Err()
	// NFC composes the input to Unicode normalization form C before lexing,
	// so a letter followed by a combining mark lexes as one rune.
	NFC bool
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
