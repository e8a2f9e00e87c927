package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"lexiscope/internal/batch"
	"lexiscope/internal/source"
	"lexiscope/internal/ui"
)

type batchOutcome struct {
	fs      *source.FileSet
	results []batch.FileResult
	err     error
}

// runBatchWithUI runs req in the background and renders its progress on
// stderr until the batch finishes.
func runBatchWithUI(ctx context.Context, title string, req batch.Request) (*source.FileSet, []batch.FileResult, error) {
	events := make(chan batch.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		reqCopy := req
		reqCopy.Progress = batch.ChannelSink{Ch: events}
		fs, results, err := batch.Run(ctx, reqCopy)
		outcomeCh <- batchOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewBoard(title, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithInput(nil))
	_, uiErr := program.Run()
	if uiErr != nil {
		// UI упал: дочитываем события, чтобы batch не заблокировался
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
