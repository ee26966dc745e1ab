package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"exprlex/internal/diag"
	"exprlex/internal/source"
)

func singleDiag(code diag.Code, sp source.Span, msg string) *diag.Bag {
	bag := diag.NewBag(4)
	bag.Add(diag.NewError(code, sp, msg))
	return bag
}

func TestPrettyUnknownChar(t *testing.T) {
	file := source.NewFile("expr.txt", []byte("5 % 2"))
	bag := singleDiag(diag.LexUnknownChar, source.Span{Start: 2, End: 3}, "unrecognized character '%'")

	var buf bytes.Buffer
	Pretty(&buf, bag, file, PrettyOpts{})

	want := "expr.txt:1:3: ERROR LEX1001: unrecognized character '%'\n" +
		" 1 | 5 % 2\n" +
		"   |   ^\n"
	if got := buf.String(); got != want {
		t.Errorf("Pretty output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyOverflowUnderline(t *testing.T) {
	content := "x + 1701411834604692317316873037158841057280"
	file := source.NewFile("<input>", []byte(content))
	bag := singleDiag(diag.LexIntOverflow, source.Span{Start: 4, End: 44}, "integer literal exceeds the 128-bit signed range")

	var buf bytes.Buffer
	Pretty(&buf, bag, file, PrettyOpts{})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "<input>:1:5: ERROR LEX1006:") {
		t.Errorf("unexpected header %q", lines[0])
	}
	marker := strings.TrimLeft(strings.TrimPrefix(lines[2], "   |"), " ")
	if marker != "^"+strings.Repeat("~", 39) {
		t.Errorf("underline should cover 40 digits, got %q", marker)
	}
}

func TestPrettyWideRunes(t *testing.T) {
	file := source.NewFile("wide", []byte("日本 % 1"))
	bag := singleDiag(diag.LexUnknownChar, source.Span{Start: 7, End: 8}, "unrecognized character '%'")

	var buf bytes.Buffer
	Pretty(&buf, bag, file, PrettyOpts{})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if !strings.HasPrefix(lines[0], "wide:1:8:") {
		t.Errorf("column should be byte based, got %q", lines[0])
	}
	// 日本 занимает 4 ячейки, плюс пробел
	if lines[2] != "   |      ^" {
		t.Errorf("caret misaligned: %q", lines[2])
	}
}

func TestPrettySecondLine(t *testing.T) {
	file := source.NewFile("multi", []byte("1 + 2\nx $ y"))
	bag := singleDiag(diag.LexUnknownChar, source.Span{Start: 8, End: 9}, "unrecognized character '$'")

	var buf bytes.Buffer
	Pretty(&buf, bag, file, PrettyOpts{})

	out := buf.String()
	if !strings.Contains(out, "multi:2:3:") || !strings.Contains(out, " 2 | x $ y\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestPrettyNotesAndPaths(t *testing.T) {
	file := source.NewFile("/very/long/absolute/path/to/some/nested/directory/expr.txt", []byte("1 + 2 ^ 3"))
	d := diag.NewError(diag.LexUnknownChar, source.Span{Start: 6, End: 7}, "unrecognized character '^'").
		WithNote(source.Span{Start: 0, End: 5}, "the expression up to here lexed fine")
	bag := diag.NewBag(1)
	bag.Add(d)

	tests := []struct {
		name     string
		opts     PrettyOpts
		contains []string
		absent   []string
	}{
		{
			name:     "auto shortens long paths",
			opts:     PrettyOpts{PathMode: PathModeAuto},
			contains: []string{"expr.txt:1:7:"},
			absent:   []string{"/very/long", "note:"},
		},
		{
			name:     "absolute keeps path",
			opts:     PrettyOpts{PathMode: PathModeAbsolute, ShowNotes: true},
			contains: []string{"/very/long/absolute/path/to/some/nested/directory/expr.txt:1:7:", "note: /very/long"},
		},
		{
			name:     "basename with notes",
			opts:     PrettyOpts{PathMode: PathModeBasename, ShowNotes: true},
			contains: []string{"note: expr.txt:1:1: the expression up to here lexed fine"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, file, tt.opts)
			out := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("expected %q in output:\n%s", s, out)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(out, s) {
					t.Errorf("unexpected %q in output:\n%s", s, out)
				}
			}
		})
	}
}

func TestPrettyColor(t *testing.T) {
	file := source.NewFile("c", []byte("%"))
	bag := singleDiag(diag.LexUnknownChar, source.Span{Start: 0, End: 1}, "unrecognized character '%'")

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, file, PrettyOpts{Color: false})
	Pretty(&colored, bag, file, PrettyOpts{Color: true})

	if strings.Contains(plain.String(), "\x1b[") {
		t.Error("plain output contains escape sequences")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Error("colored output has no escape sequences")
	}
}

func TestPrettyEmptySpanSkipsSnippet(t *testing.T) {
	file := source.NewFile("big.txt", []byte(strings.Repeat("1 + ", 1000)+"1"))
	bag := singleDiag(diag.IOInputTooLarge, source.Span{}, "input too large: big.txt exceeds the 16 byte limit")

	var buf bytes.Buffer
	Pretty(&buf, bag, file, PrettyOpts{})

	want := "big.txt:1:1: ERROR IO4002: input too large: big.txt exceeds the 16 byte limit\n"
	if got := buf.String(); got != want {
		t.Errorf("Pretty output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
