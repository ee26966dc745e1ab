package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"exprlex/internal/driver"
	"exprlex/internal/ui"
)

type batchOutcome struct {
	results []driver.BatchResult
	err     error
}

// runWithProgress runs work in the background, feeding its progress events to
// the terminal UI until work returns.
func runWithProgress(ctx context.Context, out io.Writer, title string, items []driver.BatchItem, work func(driver.ProgressSink) ([]driver.BatchResult, error)) ([]driver.BatchResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		res, err := work(driver.ChannelSink{Ch: events})
		outcomeCh <- batchOutcome{results: res, err: err}
		close(events)
	}()

	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label
	}

	model := ui.NewProgressModel(title, labels, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx), tea.WithInput(nil))
	_, uiErr := program.Run()
	if uiErr != nil {
		// UI завершился раньше: дочитываем события, чтобы воркеры не заблокировались
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
