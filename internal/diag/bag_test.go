package diag_test

import (
	"testing"

	"exprlex/internal/diag"
	"exprlex/internal/source"
)

func TestBagLimit(t *testing.T) {
	bag := diag.NewBag(2)
	for i := range 3 {
		ok := bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{Start: uint32(i), End: uint32(i + 1)}, "x"))
		if want := i < 2; ok != want {
			t.Errorf("Add #%d = %v, want %v", i, ok, want)
		}
	}
	if bag.Len() != 2 || bag.Cap() != 2 {
		t.Errorf("len=%d cap=%d", bag.Len(), bag.Cap())
	}
}

func TestBagSeverities(t *testing.T) {
	bag := diag.NewBag(4)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("empty bag reports problems")
	}
	bag.Add(diag.New(diag.SevInfo, diag.LexUnknownChar, source.Span{}, "info"))
	if bag.HasWarnings() {
		t.Error("info is not a warning")
	}
	bag.Add(diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{}, "warn"))
	if !bag.HasWarnings() || bag.HasErrors() {
		t.Error("warning not detected")
	}
	bag.Add(diag.NewError(diag.LexIntOverflow, source.Span{}, "err"))
	if !bag.HasErrors() {
		t.Error("error not detected")
	}
}

func TestBagSort(t *testing.T) {
	bag := diag.NewBag(3)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{Start: 5, End: 6}, "late"))
	bag.Add(diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{Start: 1, End: 2}, "warn"))
	bag.Add(diag.NewError(diag.LexIntOverflow, source.Span{Start: 1, End: 2}, "err"))

	bag.Sort()
	items := bag.Items()
	got := []string{items[0].Message, items[1].Message, items[2].Message}
	want := []string{"err", "warn", "late"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted = %v, want %v", got, want)
		}
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := diag.NewBag(4)
	b := diag.ReportError(diag.BagReporter{Bag: bag}, diag.LexUnknownChar, source.Span{Start: 0, End: 1}, "bad").
		WithNote(source.Span{Start: 0, End: 0}, "here")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("emitted %d times", bag.Len())
	}
	d := bag.Items()[0]
	if d.Severity != diag.SevError || len(d.Notes) != 1 || d.Notes[0].Msg != "here" {
		t.Errorf("unexpected diagnostic %+v", d)
	}
}

func TestCodeID(t *testing.T) {
	tests := map[diag.Code]string{
		diag.LexUnknownChar:  "LEX1001",
		diag.LexIntOverflow:  "LEX1006",
		diag.IOLoadFileError: "IO4001",
		diag.IOInputTooLarge: "IO4002",
		diag.UnknownCode:     "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
	if diag.LexIntOverflow.Title() != "Integer literal out of range" {
		t.Errorf("Title = %q", diag.LexIntOverflow.Title())
	}
}
