package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"exprlex/internal/diag"
	"exprlex/internal/source"
)

// TestJSONBasic проверяет базовое JSON форматирование
func TestJSONBasic(t *testing.T) {
	file := source.NewFile("exprs/test.txt", []byte("1 + 2\n3 # 4"))

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{Start: 8, End: 9}, "unrecognized character '#'"))

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
	}
	if err := JSON(&buf, bag, file, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}
	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %+v", output)
	}

	d := output.Diagnostics[0]
	if d.Severity != "ERROR" {
		t.Errorf("Expected severity=ERROR, got %s", d.Severity)
	}
	if d.Code != "LEX1001" {
		t.Errorf("Expected code=LEX1001, got %s", d.Code)
	}
	if d.Location.File != "test.txt" {
		t.Errorf("Expected file=test.txt, got %s", d.Location.File)
	}
	if d.Location.StartByte != 8 || d.Location.EndByte != 9 {
		t.Errorf("Expected bytes 8-9, got %d-%d", d.Location.StartByte, d.Location.EndByte)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 3 {
		t.Errorf("Expected 2:3, got %d:%d", d.Location.StartLine, d.Location.StartCol)
	}
}

// TestJSONWithoutPositions проверяет, что line/col опускаются
func TestJSONWithoutPositions(t *testing.T) {
	file := source.NewFile("<input>", []byte("%"))
	bag := diag.NewBag(2)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{Start: 0, End: 1}, "unrecognized character '%'"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, file, JSONOpts{}); err != nil {
		t.Fatal(err)
	}

	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	loc := raw["diagnostics"].([]any)[0].(map[string]any)["location"].(map[string]any)
	if _, ok := loc["start_line"]; ok {
		t.Error("start_line should be omitted")
	}
	if loc["file"] != "<input>" {
		t.Errorf("file = %v, want <input>", loc["file"])
	}
}

// TestJSONMaxAndNotes проверяет обрезку и заметки
func TestJSONMaxAndNotes(t *testing.T) {
	file := source.NewFile("n", []byte("a ? b ! c"))
	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{Start: 2, End: 3}, "first").
		WithNote(source.Span{Start: 0, End: 1}, "after a"))
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{Start: 6, End: 7}, "second"))

	out := BuildDiagnosticsOutput(bag, file, JSONOpts{Max: 1, IncludeNotes: true})
	if out.Count != 1 {
		t.Fatalf("Max not applied: count=%d", out.Count)
	}
	if len(out.Diagnostics[0].Notes) != 1 || out.Diagnostics[0].Notes[0].Message != "after a" {
		t.Errorf("unexpected notes %+v", out.Diagnostics[0].Notes)
	}

	out = BuildDiagnosticsOutput(bag, file, JSONOpts{})
	if out.Count != 2 || out.Diagnostics[0].Notes != nil {
		t.Errorf("unexpected output without notes %+v", out)
	}
}
