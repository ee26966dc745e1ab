package lexer

import (
	"unicode"
)

// ===== Классификаторы =====

// isAlphabetic mirrors the Unicode Alphabetic property: letters, letter
// numbers and Other_Alphabetic marks.
func isAlphabetic(r rune) bool {
	if r < unicode.MaxASCII {
		return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
	}
	return unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_Alphabetic)
}

// Only ASCII decimal digits start or extend a literal.
func isDec(r rune) bool { return r >= '0' && r <= '9' }

func isSpace(r rune) bool { return unicode.IsSpace(r) }

// skipWhitespace drops blanks before the next token; they never become tokens.
func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		r, _ := lx.cursor.PeekRune()
		if !isSpace(r) {
			return
		}
		lx.cursor.BumpRune()
	}
}
