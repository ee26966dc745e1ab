package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"exprlex/internal/source"
	"exprlex/internal/token"
)

// TokenOutput is the serialized form of a token for json and msgpack.
// Value is a decimal string since literals exceed 64 bits.
type TokenOutput struct {
	Kind  string    `json:"kind" msgpack:"kind"`
	Op    string    `json:"op,omitempty" msgpack:"op,omitempty"`
	Value string    `json:"value,omitempty" msgpack:"value,omitempty"`
	Name  string    `json:"name,omitempty" msgpack:"name,omitempty"`
	Text  string    `json:"text" msgpack:"text"`
	Span  [2]uint32 `json:"span" msgpack:"span"`
}

// NewTokenOutput converts a token for serialization.
func NewTokenOutput(tok token.Token) TokenOutput {
	out := TokenOutput{
		Kind: tok.Kind.String(),
		Text: tok.Text,
		Span: [2]uint32{tok.Span.Start, tok.Span.End},
	}
	switch tok.Kind {
	case token.Literal:
		if tok.Value != nil {
			out.Value = tok.Value.String()
		}
	case token.Operator:
		out.Op = tok.Op.String()
	case token.Variable:
		out.Name = tok.Name()
	}
	return out
}

// TokenOutputs converts a sequence, stopping at EOF.
func TokenOutputs(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		output = append(output, NewTokenOutput(tok))
	}
	return output
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, file *source.File, opts TokenOpts) error {
	kindColors := map[token.Kind]*color.Color{
		token.Literal:  color.New(color.FgGreen),
		token.Operator: color.New(color.FgYellow),
		token.Variable: color.New(color.FgCyan),
	}
	for _, c := range kindColors {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	width := 0
	for _, tok := range tokens {
		width = max(width, runewidth.StringWidth(displayText(tok, opts)))
	}

	for i, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		kind := runewidth.FillRight(tok.Kind.String(), 8)
		if c, ok := kindColors[tok.Kind]; ok {
			kind = c.Sprint(kind)
		}

		text := runewidth.FillRight(displayText(tok, opts), width)
		if _, err := fmt.Fprintf(w, "%3d: %s %s", i+1, kind, text); err != nil {
			return err
		}

		if file != nil {
			startPos, endPos := file.Resolve(tok.Span)
			if _, err := fmt.Fprintf(w, "  at %d:%d-%d:%d",
				startPos.Line, startPos.Col,
				endPos.Line, endPos.Col); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func displayText(tok token.Token, opts TokenOpts) string {
	switch tok.Kind {
	case token.Literal:
		if tok.Value != nil {
			return tok.Value.String()
		}
	case token.Operator:
		return tok.Op.Symbol()
	case token.Variable:
		if opts.NameWidth > 0 {
			return runewidth.Truncate(tok.Name(), opts.NameWidth, "…")
		}
		return tok.Name()
	}
	return tok.Text
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(TokenOutputs(tokens))
}

// FormatTokensMsgpack пишет токены как msgpack-массив TokenOutput.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(TokenOutputs(tokens))
}

// DecodeTokensMsgpack reads back a stream written by FormatTokensMsgpack.
func DecodeTokensMsgpack(r io.Reader) ([]TokenOutput, error) {
	var out []TokenOutput
	if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
