package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"exprlex/internal/diag"
	"exprlex/internal/lexer"
	"exprlex/internal/source"
)

func batchEntries(t *testing.T, lines ...string) []BatchEntry {
	t.Helper()
	entries := make([]BatchEntry, 0, len(lines))
	for i, line := range lines {
		file := source.NewFile("b#"+string(rune('1'+i)), []byte(line))
		bag := diag.NewBag(4)
		toks, _ := lexer.TokenizeFile(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		entries = append(entries, BatchEntry{Line: i + 1, File: file, Tokens: toks, Bag: bag})
	}
	return entries
}

func TestFormatBatchPretty(t *testing.T) {
	entries := batchEntries(t, "1 + x", "2 & 3")

	var out, errOut bytes.Buffer
	if err := FormatBatchPretty(&out, &errOut, entries, TokenOpts{}, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "b#1: 1 + x\n") {
		t.Errorf("unexpected stdout:\n%s", out.String())
	}
	if strings.Contains(out.String(), "b#2") {
		t.Errorf("failed line leaked to stdout:\n%s", out.String())
	}
	if !strings.HasPrefix(errOut.String(), "b#2:1:3: ERROR LEX1001: unrecognized character '&'") {
		t.Errorf("unexpected stderr:\n%s", errOut.String())
	}
}

func TestFormatBatchJSON(t *testing.T) {
	entries := batchEntries(t, "a - -1", "99999999999999999999999999999999999999999")

	var buf bytes.Buffer
	if err := FormatBatchJSON(&buf, entries); err != nil {
		t.Fatal(err)
	}
	var out []BatchLineOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(out))
	}
	if !out[0].OK || len(out[0].Tokens) != 3 || out[0].Tokens[2].Value != "-1" {
		t.Errorf("line 1 = %+v", out[0])
	}
	if out[1].OK || len(out[1].Diagnostics) != 1 || out[1].Diagnostics[0].Code != "LEX1006" {
		t.Errorf("line 2 = %+v", out[1])
	}
}

func TestFormatBatchMsgpack(t *testing.T) {
	entries := batchEntries(t, "x", "y ? z")

	var buf bytes.Buffer
	if err := FormatBatchMsgpack(&buf, entries); err != nil {
		t.Fatal(err)
	}
	var out []map[string]any
	if err := msgpack.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0]["ok"] != true || out[1]["ok"] != false {
		t.Errorf("unexpected decode %v", out)
	}
	if _, ok := out[1]["diagnostics"]; !ok {
		t.Errorf("failed line has no diagnostics: %v", out[1])
	}
}
