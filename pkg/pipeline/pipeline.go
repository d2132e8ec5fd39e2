// Package pipeline runs a complete table axis switch against a document.
//
// This package chains the steps of package table into one operation that
// the CLI, the panel and the HTTP API share, so every entry point validates,
// snapshots and logs the same way.
//
// # Architecture
//
// A switch runs these stages in order:
//
//  1. Select: check the selection and find the table container
//  2. Extract: read the cells into a row/column matrix
//  3. Validate: reject empty or ragged grids, and tables without a parent
//  4. Snapshot: store the document so the switch can be undone (optional)
//  5. Rebuild: build the transposed table off-tree
//  6. Replace: swap it in at the old table's position
//
// Every check runs before the first change to the document, so a failed
// switch leaves the document exactly as it was.
//
// # Usage
//
//	runner := pipeline.NewRunner(snapshots, logger)
//	result, err := runner.Switch(ctx, doc, pipeline.Options{SnapshotPath: path})
//	if err != nil {
//	    fmt.Println(table.Status(table.AxisNone, err))
//	}
//	fmt.Println(result.Status)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	apperr "github.com/matzehuels/tableaxis/pkg/errors"
	docio "github.com/matzehuels/tableaxis/pkg/io"
	"github.com/matzehuels/tableaxis/pkg/scene"
	"github.com/matzehuels/tableaxis/pkg/table"
)

// =============================================================================
// Options - Switch Configuration
// =============================================================================

// Options contains the configuration of one switch.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Select replaces the document's selection before the switch. Each entry
	// is a node id or a node name.
	Select []string `json:"select,omitempty"`

	// Name labels the rebuilt table container. Empty keeps "Table".
	Name string `json:"name,omitempty"`

	// SnapshotPath, when set, stores the document under this path in the
	// runner's snapshot store before it is changed.
	SnapshotPath string `json:"-"`

	// SnapshotFormat is the encoding used for snapshots (default: json).
	SnapshotFormat docio.Format `json:"-"`

	// DryRun runs every check but leaves the document untouched.
	DryRun bool `json:"dry_run,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	for _, ref := range o.Select {
		if err := apperr.ValidateNodeRef(ref); err != nil {
			return err
		}
	}
	if o.SnapshotFormat == "" {
		o.SnapshotFormat = docio.FormatJSON
	}
	if !docio.ValidFormats[o.SnapshotFormat] {
		return apperr.New(apperr.ErrCodeInvalidFormat, "invalid snapshot format: %q", o.SnapshotFormat)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outcome of a switch.
type Result struct {
	// Table is the rebuilt container, now selected. It is the untouched
	// source container on a dry run.
	Table *scene.Node

	// From and To are the axes before and after the switch.
	From, To table.Axis

	// Status is the message shown to the user.
	Status string

	// Snapshot reports whether the previous document was stored.
	Snapshot bool

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains switch statistics.
type Stats struct {
	Rows        int // matrix rows
	Cols        int // matrix columns
	Cells       int
	Overlays    int
	ExtractTime time.Duration
	RebuildTime time.Duration
	TotalTime   time.Duration
}
