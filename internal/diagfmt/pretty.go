package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"exprlex/internal/diag"
	"exprlex/internal/source"
)

type palette struct {
	err, warn, info, code, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() в порядке bag, сортировка на вызывающем.
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
// Для пустого Span (ошибки ввода-вывода) строка исходника не печатается.
func Pretty(w io.Writer, bag *diag.Bag, file *source.File, opts PrettyOpts) {
	if bag == nil || file == nil {
		return
	}
	p := newPalette(opts.Color)
	path := formatPath(file.Name, opts.PathMode)

	for _, d := range bag.Items() {
		start, _ := file.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			path, start.Line, start.Col,
			p.severity(d.Severity).Sprint(d.Severity.String()),
			p.code.Sprint(d.Code.ID()),
			d.Message,
		)
		if !d.Primary.Empty() {
			writeSnippet(w, file, d.Primary, p)
		}

		if opts.ShowNotes {
			for _, n := range d.Notes {
				pos, _ := file.Resolve(n.Span)
				fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"), path, pos.Line, pos.Col, n.Msg)
			}
		}
	}
}

// writeSnippet prints the line holding span and a caret underline.
// Columns are measured in display cells so wide runes stay aligned.
func writeSnippet(w io.Writer, file *source.File, span source.Span, p palette) {
	start, end := file.Resolve(span)
	line := file.GetLine(start.Line)

	gutter := fmt.Sprintf("%d", start.Line)
	pad := strings.Repeat(" ", len(gutter))
	fmt.Fprintf(w, " %s %s %s\n", p.gutter.Sprint(gutter), p.gutter.Sprint("|"), line)

	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	lead := runewidth.StringWidth(line[:col])

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		stop := min(int(end.Col)-1, len(line))
		width = max(runewidth.StringWidth(line[col:stop]), 1)
	}
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, " %s %s %s%s\n", pad, p.gutter.Sprint("|"), strings.Repeat(" ", lead), p.caret.Sprint(marker))
}
