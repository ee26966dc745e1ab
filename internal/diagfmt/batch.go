package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"exprlex/internal/diag"
	"exprlex/internal/source"
	"exprlex/internal/token"
)

// BatchEntry is the outcome of one batch line.
// Tokens is nil when the line failed; Bag then holds the reason.
type BatchEntry struct {
	Line   int
	File   *source.File
	Tokens []token.Token
	Bag    *diag.Bag
}

func (e BatchEntry) failed() bool {
	return e.Bag != nil && e.Bag.HasErrors()
}

// BatchLineOutput is the serialized form of a BatchEntry.
type BatchLineOutput struct {
	Line        int              `json:"line" msgpack:"line"`
	Source      string           `json:"source" msgpack:"source"`
	OK          bool             `json:"ok" msgpack:"ok"`
	Tokens      []TokenOutput    `json:"tokens,omitempty" msgpack:"tokens,omitempty"`
	Diagnostics []DiagnosticJSON `json:"diagnostics,omitempty" msgpack:"diagnostics,omitempty"`
}

func batchOutputs(entries []BatchEntry) []BatchLineOutput {
	out := make([]BatchLineOutput, 0, len(entries))
	for _, e := range entries {
		line := BatchLineOutput{
			Line:   e.Line,
			Source: string(e.File.Content),
			OK:     !e.failed(),
		}
		if line.OK {
			line.Tokens = TokenOutputs(e.Tokens)
		} else {
			line.Diagnostics = BuildDiagnosticsOutput(e.Bag, e.File, JSONOpts{IncludePositions: true}).Diagnostics
		}
		out = append(out, line)
	}
	return out
}

// FormatBatchPretty prints each successful line's tokens under a "<file>:" header
// and the diagnostics of failed lines to errw.
func FormatBatchPretty(w, errw io.Writer, entries []BatchEntry, tokOpts TokenOpts, diagOpts PrettyOpts) error {
	for _, e := range entries {
		if e.failed() {
			Pretty(errw, e.Bag, e.File, diagOpts)
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", e.File.Name, e.File.Content); err != nil {
			return err
		}
		if err := FormatTokensPretty(w, e.Tokens, e.File, tokOpts); err != nil {
			return err
		}
	}
	return nil
}

// FormatBatchJSON пишет все строки одним JSON-массивом.
func FormatBatchJSON(w io.Writer, entries []BatchEntry) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(batchOutputs(entries))
}

// FormatBatchMsgpack пишет все строки одним msgpack-массивом.
func FormatBatchMsgpack(w io.Writer, entries []BatchEntry) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag("json")
	return enc.Encode(batchOutputs(entries))
}
