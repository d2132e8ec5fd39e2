// Package cli implements the tableaxis command-line interface.
//
// This package provides commands for switching a table frame between
// row-major and column-major layout, previewing its grid, undoing a switch
// and serving the same operation over HTTP. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - switch: Switch the selected table of a document file
//   - inspect: Show the grid of the selected table without changing it
//   - outline: Render a node subtree as DOT or SVG
//   - undo: Restore a document from the snapshot taken by its last switch
//   - panel: Interactive panel with Switch Axis and Close actions
//   - serve: Run the HTTP API
//   - snapshots, config: Manage undo snapshots and the config file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is handed to the pipeline runner so library code logs through it.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created,
// rounded to the millisecond. Example output: "Wrote table.json (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
