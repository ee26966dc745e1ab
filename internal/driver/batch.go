package driver

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"exprlex/internal/source"
	"exprlex/internal/trace"
)

// BatchItem is one expression of a batch file.
type BatchItem struct {
	Line  int    // 1-based line in the batch file
	Label string // "<name>#<line>", used as file name and progress key
	File  *source.File
}

// BatchResult pairs an item with its outcome.
type BatchResult struct {
	Item   BatchItem
	Result *TokenizeResult
}

// SplitBatch turns every non-blank line of file into an independent expression.
func SplitBatch(file *source.File) []BatchItem {
	var items []BatchItem
	for i, line := range bytes.Split(file.Content, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		label := fmt.Sprintf("%s#%d", file.Name, i+1)
		items = append(items, BatchItem{
			Line:  i + 1,
			Label: label,
			File:  source.NewFile(label, line),
		})
	}
	return items
}

// TokenizeBatch токенизирует элементы параллельно, не более jobs одновременно.
// Результаты возвращаются в порядке items. Ошибка одного элемента не
// останавливает остальные; ошибка возвращается только при отмене ctx.
func TokenizeBatch(ctx context.Context, items []BatchItem, opts Options, jobs int, sink ProgressSink) ([]BatchResult, error) {
	if sink == nil {
		sink = nopSink{}
	}
	results := make([]BatchResult, len(items))
	if len(items) == 0 {
		return results, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	tr := trace.FromContext(ctx)
	batchSpan := trace.Begin(tr, trace.ScopePass, "batch", trace.CurrentSpan(ctx).SpanID).
		WithExtra("items", strconv.Itoa(len(items))).
		WithExtra("jobs", strconv.Itoa(jobs))
	defer batchSpan.End("")

	for i, item := range items {
		sink.OnEvent(Event{Item: item.Label, Index: i, Status: StatusQueued})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(items)))

	for i, item := range items {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			sink.OnEvent(Event{Item: item.Label, Index: i, Status: StatusWorking})
			started := time.Now()

			sp := trace.Begin(tr, trace.ScopeItem, "line:"+strconv.Itoa(item.Line), batchSpan.ID())
			ictx := trace.WithSpanContext(gctx, trace.SpanContext{SpanID: sp.ID()})
			res := TokenizeFile(ictx, item.File, opts)
			sp.End("")

			// индекс i уникален для горутины, мьютекс не нужен
			results[i] = BatchResult{Item: item, Result: res}

			ev := Event{Item: item.Label, Index: i, Status: StatusDone, Elapsed: time.Since(started)}
			if res.Failed() {
				ev.Status = StatusError
				ev.Err = res.Err
			}
			sink.OnEvent(ev)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
