package trace_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"exprlex/internal/trace"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want trace.Level
		err  bool
	}{
		{"", trace.LevelOff, false},
		{"off", trace.LevelOff, false},
		{"ERROR", trace.LevelError, false},
		{"phase", trace.LevelPhase, false},
		{" detail ", trace.LevelDetail, false},
		{"debug", trace.LevelDebug, false},
		{"verbose", trace.LevelOff, true},
	}
	for _, tt := range tests {
		got, err := trace.ParseLevel(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseLevel(%q) err = %v, want err %v", tt.in, err, tt.err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestShouldEmit(t *testing.T) {
	if trace.LevelPhase.ShouldEmit(trace.ScopeItem) {
		t.Error("phase level must not emit item scope")
	}
	if !trace.LevelPhase.ShouldEmit(trace.ScopePass) {
		t.Error("phase level must emit pass scope")
	}
	if !trace.LevelDetail.ShouldEmit(trace.ScopeItem) {
		t.Error("detail level must emit item scope")
	}
	if trace.LevelError.ShouldEmit(trace.ScopeDriver) {
		t.Error("error level must not emit spans")
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := trace.New(trace.Config{Level: trace.LevelOff})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Enabled() {
		t.Error("off tracer reports enabled")
	}
}

func TestSpanText(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelPhase, trace.FormatText)

	root := trace.Begin(tr, trace.ScopeDriver, "tokenize", 0)
	lex := trace.Begin(tr, trace.ScopePass, "lex", root.ID())
	lex.WithExtra("tokens", "15").End("")
	item := trace.Begin(tr, trace.ScopeItem, "line:1", root.ID())
	item.End("")
	root.End("ok")

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (item scope filtered), got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "→ driver:tokenize") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[2], "← pass:lex") || !strings.Contains(lines[2], "{tokens=15}") {
		t.Errorf("unexpected lex end line %q", lines[2])
	}
	if !strings.Contains(lines[3], "(ok)") {
		t.Errorf("unexpected last line %q", lines[3])
	}
}

func TestSpanNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDebug, trace.FormatNDJSON)

	sp := trace.Begin(tr, trace.ScopePass, "lex", 0)
	sp.End("done")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	var ev map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &ev); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if ev["kind"] != "end" || ev["scope"] != "pass" || ev["name"] != "lex" || ev["detail"] != "done" {
		t.Errorf("unexpected event %v", ev)
	}
}

func TestFailEmittedAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelError, trace.FormatText)

	trace.Begin(tr, trace.ScopeDriver, "tokenize", 0).End("")
	trace.Fail(tr, trace.ScopePass, "lex", 0, errors.New("1:3: unrecognized character '%'"))

	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected only the error line, got:\n%s", out)
	}
	if !strings.Contains(out, "! pass:lex (1:3: unrecognized character '%')") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestContextPropagation(t *testing.T) {
	ctx := context.Background()
	if trace.FromContext(ctx).Enabled() {
		t.Error("empty context must yield the nop tracer")
	}

	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelPhase, trace.FormatText)
	ctx = trace.WithTracer(ctx, tr)
	if trace.FromContext(ctx) != trace.Tracer(tr) {
		t.Error("tracer not propagated")
	}

	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: 7})
	if got := trace.CurrentSpan(ctx).SpanID; got != 7 {
		t.Errorf("CurrentSpan = %d, want 7", got)
	}
}
