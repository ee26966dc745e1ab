package driver

import (
	"context"
	"errors"
	"sync"
	"testing"

	"exprlex/internal/lexer"
	"exprlex/internal/source"
	"exprlex/internal/token"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSink) count(status Status) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, ev := range s.events {
		if ev.Status == status {
			n++
		}
	}
	return n
}

func TestSplitBatch(t *testing.T) {
	file := source.NewFile("exprs.txt", []byte("1 + 2\n\n   \nx * y\n-3\n"))
	items := SplitBatch(file)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	wantLines := []int{1, 4, 5}
	wantLabels := []string{"exprs.txt#1", "exprs.txt#4", "exprs.txt#5"}
	for i, it := range items {
		if it.Line != wantLines[i] || it.Label != wantLabels[i] || it.File.Name != wantLabels[i] {
			t.Errorf("item %d = %+v", i, it)
		}
	}
	if string(items[1].File.Content) != "x * y" {
		t.Errorf("item content = %q", items[1].File.Content)
	}
}

func TestTokenizeBatchOrderAndFailures(t *testing.T) {
	file := source.NewFile("b", []byte("1 + 2\n3 % 4\nx - -1\n170141183460469231731687303715884105728\n(-5)"))
	items := SplitBatch(file)

	sink := &recordingSink{}
	results, err := TokenizeBatch(context.Background(), items, Options{}, 2, sink)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Item.Line != i+1 {
			t.Errorf("result %d is line %d, order not preserved", i, r.Item.Line)
		}
	}

	if results[0].Result.Failed() || len(results[0].Result.Tokens) != 3 {
		t.Errorf("line 1: %+v", results[0].Result)
	}
	if !errors.Is(results[1].Result.Err, lexer.ErrUnrecognizedCharacter) {
		t.Errorf("line 2 err = %v", results[1].Result.Err)
	}
	want := []token.Token{token.NewVariable("x"), token.NewOperator(token.Minus), token.Int(-1)}
	if !token.EqualSlices(results[2].Result.Tokens, want) {
		t.Errorf("line 3 tokens = %v", results[2].Result.Tokens)
	}
	if !errors.Is(results[3].Result.Err, lexer.ErrNumericOverflow) {
		t.Errorf("line 4 err = %v", results[3].Result.Err)
	}
	if len(results[4].Result.Tokens) != 4 {
		t.Errorf("line 5: (-5) must stay unfolded, got %v", results[4].Result.Tokens)
	}

	if got := sink.count(StatusQueued); got != 5 {
		t.Errorf("queued events = %d", got)
	}
	if got := sink.count(StatusDone); got != 3 {
		t.Errorf("done events = %d", got)
	}
	if got := sink.count(StatusError); got != 2 {
		t.Errorf("error events = %d", got)
	}
}

func TestTokenizeBatchEmpty(t *testing.T) {
	results, err := TokenizeBatch(context.Background(), nil, Options{}, 0, nil)
	if err != nil || len(results) != 0 {
		t.Errorf("got %v, %v", results, err)
	}
}

func TestTokenizeBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	items := SplitBatch(source.NewFile("c", []byte("1\n2\n3")))
	if _, err := TokenizeBatch(ctx, items, Options{}, 1, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestChannelSink(t *testing.T) {
	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{Item: "x", Status: StatusDone})
	if ev := <-ch; ev.Item != "x" || ev.Status != StatusDone {
		t.Errorf("unexpected event %+v", ev)
	}
	ChannelSink{}.OnEvent(Event{})
}
