// Package fuzztests houses Go fuzz harnesses for the expression lexer. The
// goal is to guard against panics and to check the all-or-nothing and sign
// folding invariants on arbitrary inputs.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
