package cli

import "github.com/vvka-141/assetref/pkg/assetref"

// logProgress reports scanner progress as verbose log lines when no live
// view is drawn.
type logProgress struct {
	logger assetref.Logger
}

func (p logProgress) PassStarted(selector string, index, total int) {
	p.logger.Verbose("pass %d/%d: %s", index+1, total, selector)
}

func (p logProgress) FileScanned(path string) {}

func (p logProgress) FileSkipped(path string, err error) {
	p.logger.Verbose("skipped %s: %v", path, err)
}

func (p logProgress) PassCompleted(selector string, matches []string) {
	p.logger.Verbose("pass %s done: %d match(es)", selector, len(matches))
}

var _ assetref.Progress = logProgress{}
