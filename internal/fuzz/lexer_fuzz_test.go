package fuzztests

import (
	"errors"
	"testing"

	"exprlex/internal/lexer"
	"exprlex/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzTokenize(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}

		toks, err := lexer.Tokenize(string(input), lexer.Options{})
		if err != nil {
			if toks != nil {
				t.Fatalf("partial result on error: %v", toks)
			}
			if !errors.Is(err, lexer.ErrUnrecognizedCharacter) && !errors.Is(err, lexer.ErrNumericOverflow) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			return
		}

		for i, tok := range toks {
			switch tok.Kind {
			case token.Literal:
				if tok.Value == nil || !token.InRange(tok.Value) {
					t.Fatalf("token %d: literal out of range: %v", i, tok)
				}
			case token.Variable:
				if tok.Text == "" {
					t.Fatalf("token %d: empty variable", i)
				}
			case token.Operator:
				if tok.Op == token.OpNone {
					t.Fatalf("token %d: operator without op", i)
				}
			default:
				t.Fatalf("token %d: unexpected kind %v", i, tok.Kind)
			}
			// порядок исходного текста сохраняется
			if i > 0 && tok.Span.Start < toks[i-1].Span.End {
				t.Fatalf("token %d: span %v overlaps previous %v", i, tok.Span, toks[i-1].Span)
			}
		}
	})
}
