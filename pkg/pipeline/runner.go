package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tableaxis/pkg/cache"
	apperr "github.com/matzehuels/tableaxis/pkg/errors"
	docio "github.com/matzehuels/tableaxis/pkg/io"
	"github.com/matzehuels/tableaxis/pkg/observability"
	"github.com/matzehuels/tableaxis/pkg/scene"
	"github.com/matzehuels/tableaxis/pkg/table"
)

// Runner encapsulates switch execution with snapshots.
// Both CLI and API use it to avoid duplicating the validation order.
//
// The Runner is stateless except for the snapshot store and logger.
// Multiple goroutines can share a Runner as long as they switch different
// documents.
type Runner struct {
	Snapshots *cache.SnapshotStore
	Logger    *log.Logger
}

// NewRunner creates a runner.
// If snapshots is nil, snapshots are disabled.
// If logger is nil, the default logger is used.
func NewRunner(snapshots *cache.SnapshotStore, logger *log.Logger) *Runner {
	if snapshots == nil {
		snapshots = cache.NewSnapshotStore(nil, nil, 0)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Snapshots: snapshots,
		Logger:    logger,
	}
}

// Inspect checks the document's selection and reads the selected table
// without changing anything.
//
// The extraction is returned whenever the table could be read, even if the
// grid then fails validation, so callers can show which cells are missing.
func (r *Runner) Inspect(ctx context.Context, doc *scene.Document, opts Options) (*table.Extraction, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := r.applySelection(doc, opts); err != nil {
		return nil, err
	}
	container, err := table.Select(doc.Selection())
	if err != nil {
		return nil, err
	}
	ex, err := table.Extract(container)
	if err != nil {
		return nil, err
	}
	if err := table.ValidateMatrix(ex.Matrix); err != nil {
		return ex, err
	}
	return ex, table.CanReplace(container)
}

// Switch toggles the selected table between row-major and column-major.
//
// On success the rebuilt table is selected in doc and described by the
// result. On failure doc is unchanged and the error carries one of the
// validation codes of package errors (see [apperr.IsValidation]) or, if the
// snapshot could not be stored, INTERNAL_ERROR.
func (r *Runner) Switch(ctx context.Context, doc *scene.Document, opts Options) (*Result, error) {
	start := time.Now()
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	if err := r.applySelection(doc, opts); err != nil {
		return nil, err
	}
	container, err := table.Select(doc.Selection())
	if err != nil {
		return nil, err
	}

	from := table.AxisOf(container)
	to := from.Opposite()
	hooks := observability.Pipeline()
	hooks.OnSwitchStart(ctx, container.ID, from.String())

	result, err := r.run(ctx, doc, container, opts, logger)
	if err != nil {
		hooks.OnSwitchComplete(ctx, container.ID, to.String(), time.Since(start), err)
		return nil, err
	}
	result.Stats.TotalTime = time.Since(start)
	hooks.OnSwitchComplete(ctx, container.ID, to.String(), result.Stats.TotalTime, nil)

	if !opts.DryRun {
		logger.Info("switched table",
			"from", result.From,
			"to", result.To,
			"rows", result.Stats.Rows,
			"cols", result.Stats.Cols,
			"duration", result.Stats.TotalTime)
	}
	return result, nil
}

func (r *Runner) run(ctx context.Context, doc *scene.Document, container *scene.Node, opts Options, logger *log.Logger) (*Result, error) {
	hooks := observability.Pipeline()

	extractStart := time.Now()
	ex, err := table.Extract(container)
	if err != nil {
		return nil, err
	}
	m := ex.Matrix
	err = table.ValidateMatrix(m)
	hooks.OnValidateComplete(ctx, m.RowCount(), m.MaxCols, err)
	if err != nil {
		return nil, err
	}
	if err := table.CanReplace(container); err != nil {
		return nil, err
	}

	result := &Result{
		Table: container,
		From:  ex.Axis(),
		To:    ex.Axis().Opposite(),
		Stats: Stats{
			Rows:        m.RowCount(),
			Cols:        m.MaxCols,
			Cells:       m.CellCount(),
			Overlays:    len(ex.Overlays),
			ExtractTime: time.Since(extractStart),
		},
	}
	logger.Debug("read table",
		"container", container.ID,
		"axis", result.From,
		"rows", result.Stats.Rows,
		"cols", result.Stats.Cols,
		"overlays", result.Stats.Overlays)

	if opts.DryRun {
		result.Status = "ready to switch to " + result.To.Plural()
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.SnapshotPath != "" {
		data, err := docio.Marshal(doc, opts.SnapshotFormat)
		if err != nil {
			return nil, err
		}
		if err := r.Snapshots.Save(ctx, opts.SnapshotPath, data); err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "store snapshot")
		}
		result.Snapshot = true
		logger.Debug("stored snapshot", "path", opts.SnapshotPath, "bytes", len(data))
	}

	// No check may fail past this point.
	rebuildStart := time.Now()
	overlays := table.StashOverlays(doc, ex.Overlays)
	built := table.Rebuild(doc, ex, overlays, table.RebuildOptions{Name: opts.Name})
	built, err = table.Replace(doc, container, built)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "replace table")
	}
	result.Stats.RebuildTime = time.Since(rebuildStart)
	hooks.OnRebuildComplete(ctx, result.Stats.Cells, result.Stats.Overlays, result.Stats.RebuildTime)

	if err := doc.Select(built.ID); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "select rebuilt table")
	}
	result.Table = built
	result.Status = table.Status(result.To, nil)
	return result, nil
}

// Undo restores the document stored by the last switch of the document at
// path and drops the snapshot.
func (r *Runner) Undo(ctx context.Context, path string, format docio.Format) (*scene.Document, error) {
	data, err := r.Snapshots.Load(ctx, path)
	if errors.Is(err, cache.ErrNotFound) {
		return nil, apperr.Wrap(apperr.ErrCodeSnapshotNotFound, err, "nothing to undo for %s", path)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "load snapshot")
	}
	doc, err := docio.Unmarshal(data, format)
	if err != nil {
		return nil, err
	}
	if err := r.Snapshots.Drop(ctx, path); err != nil {
		r.Logger.Warn("could not drop snapshot", "path", path, "err", err)
	}
	return doc, nil
}

// Close releases resources held by the runner (primarily the snapshot store).
func (r *Runner) Close() error {
	if r.Snapshots != nil {
		return r.Snapshots.Close()
	}
	return nil
}

func (r *Runner) applySelection(doc *scene.Document, opts Options) error {
	if len(opts.Select) == 0 {
		return nil
	}
	ids, err := Resolve(doc, opts.Select)
	if err != nil {
		return err
	}
	return doc.Select(ids...)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
