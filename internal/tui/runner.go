package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/assetref/pkg/assetref"
)

// programProgress forwards scanner events into a running program.
type programProgress struct {
	send func(tea.Msg)
}

func (p programProgress) PassStarted(selector string, index, total int) {
	p.send(passStartedMsg{selector: selector, index: index, total: total})
}

func (p programProgress) FileScanned(path string) {
	p.send(fileScannedMsg{path: path})
}

func (p programProgress) FileSkipped(path string, err error) {
	p.send(fileSkippedMsg{path: path, err: err})
}

func (p programProgress) PassCompleted(selector string, matches []string) {
	p.send(passCompletedMsg{selector: selector, matches: len(matches)})
}

var _ assetref.Progress = programProgress{}

// SearchFunc runs a search, reporting to progress.
type SearchFunc func(ctx context.Context, progress assetref.Progress) error

// RunSearch draws a live progress view on out while search runs. Pressing
// q cancels the context passed to search. The error returned is the one
// search returned. Extra program options are applied after the defaults.
func RunSearch(ctx context.Context, out io.Writer, title string, passes int, search SearchFunc, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewSearchModel(title, passes, cancel)
	program := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithOutput(out), tea.WithContext(ctx)}, opts...)...)

	errCh := make(chan error, 1)
	go func() {
		err := search(ctx, programProgress{send: program.Send})
		errCh <- err
		program.Send(searchDoneMsg{err: err})
	}()

	if _, err := program.Run(); err != nil {
		cancel()
		searchErr := <-errCh
		if searchErr != nil {
			return searchErr
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return <-errCh
}
