package lexer

import (
	"golang.org/x/text/unicode/norm"

	"exprlex/internal/source"
	"exprlex/internal/token"
)

// Tokenize lexes a whole expression and normalizes signs.
// It either returns the complete token sequence (without EOF) or a nil slice
// and a *Error matching ErrUnrecognizedCharacter or ErrNumericOverflow.
func Tokenize(input string, opts Options) ([]token.Token, error) {
	return TokenizeFile(source.NewFile("<input>", []byte(input)), opts)
}

// TokenizeFile is Tokenize over an already loaded file.
func TokenizeFile(file *source.File, opts Options) ([]token.Token, error) {
	if opts.NFC {
		file = ComposeNFC(file)
	}

	lx := New(file, opts)
	var toks []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind == token.Invalid {
			return nil, lx.Err()
		}
		toks = append(toks, tok)
	}
	if err := lx.Err(); err != nil {
		return nil, err
	}
	return NormalizeSigns(toks), nil
}

// ComposeNFC returns file itself when it is already in NFC, otherwise a
// composed copy. Spans of the resulting tokens refer to the returned file.
func ComposeNFC(file *source.File) *source.File {
	if norm.NFC.IsNormal(file.Content) {
		return file
	}
	composed := source.FromBytes(file.Name, norm.NFC.Bytes(file.Content))
	composed.Flags |= file.Flags
	return composed
}
