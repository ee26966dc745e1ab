// Package diag defines the diagnostic model shared by the lexer, the driver
// and the CLI.
//
// Diagnostic is the central record: Severity, a compact numeric Code with a
// stable string form, a short Message, the Primary span and optional Notes.
// Producers emit through a Reporter so they stay decoupled from storage;
// BagReporter collects into a Bag, which supports limits, sorting and merging.
// Rendering lives in internal/diagfmt.
package diag
