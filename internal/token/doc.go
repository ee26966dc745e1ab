// Package token defines the lexical tokens of arithmetic expressions.
// Invariants:
//   - Token.Text is the lexeme as it appears in the input; folded literals
//     carry a leading '-'.
//   - Token.Span covers Text in the original input (Start..End, bytes).
//   - A Variable name is never empty and contains only alphabetic runes.
//   - A Literal value always fits the signed 128-bit range.
//   - Op carries no precedence; the order of the constants is tagging only.
package token
