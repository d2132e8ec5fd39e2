package pipeline

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/tableaxis/pkg/cache"
	apperr "github.com/matzehuels/tableaxis/pkg/errors"
	docio "github.com/matzehuels/tableaxis/pkg/io"
	"github.com/matzehuels/tableaxis/pkg/observability"
	"github.com/matzehuels/tableaxis/pkg/scene"
	"github.com/matzehuels/tableaxis/pkg/table"
)

const pricing = `{
  "name": "Pricing",
  "selection": ["grid"],
  "nodes": [
    {"id": "title", "name": "Title", "type": "TEXT"},
    {
      "id": "grid", "name": "Grid", "type": "FRAME", "layout": "VERTICAL",
      "x": 40, "y": 60, "width": 240, "height": 48,
      "children": [
        {"id": "r1", "name": "Row 1", "type": "FRAME", "layout": "HORIZONTAL", "children": [
          {"id": "a1", "name": "Plan", "type": "TEXT", "width": 80, "height": 24},
          {"id": "a2", "name": "Price", "type": "TEXT", "width": 80, "height": 24},
          {"id": "a3", "name": "Seats", "type": "TEXT", "width": 80, "height": 24}
        ]},
        {"id": "r2", "name": "Row 2", "type": "FRAME", "layout": "HORIZONTAL", "children": [
          {"id": "b1", "name": "Pro", "type": "TEXT", "width": 80, "height": 24},
          {"id": "b2", "name": "$10", "type": "TEXT", "width": 80, "height": 24},
          {"id": "b3", "name": "5", "type": "TEXT", "width": 80, "height": 24}
        ]},
        {"id": "note", "name": "Note", "type": "TEXT", "positioning": "ABSOLUTE", "x": 4, "y": 4}
      ]
    }
  ]
}`

func loadDoc(t *testing.T, src string) *scene.Document {
	t.Helper()
	d, err := docio.Read(strings.NewReader(src), docio.FormatJSON)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	return d
}

func encode(t *testing.T, d *scene.Document) []byte {
	t.Helper()
	data, err := docio.Marshal(d, docio.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewRunner(cache.NewSnapshotStore(fc, nil, 0), nil)
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Valid options should pass: %v", err)
	}
	if opts.SnapshotFormat != docio.FormatJSON {
		t.Errorf("SnapshotFormat should be json, got %q", opts.SnapshotFormat)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discarding logger")
	}

	// Second call should be idempotent
	opts.SnapshotFormat = "bogus"
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("Second validation should be a no-op: %v", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code apperr.Code
	}{
		{"blank reference", Options{Select: []string{"  "}}, apperr.ErrCodeInvalidInput},
		{"control character", Options{Select: []string{"a\x00b"}}, apperr.ErrCodeInvalidInput},
		{"unknown snapshot format", Options{SnapshotFormat: "xml"}, apperr.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); !apperr.Is(err, tt.code) {
				t.Errorf("ValidateAndSetDefaults() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	d := loadDoc(t, pricing)
	dup, _ := d.Node("b1")
	dup.Name = "Plan"

	tests := []struct {
		ref  string
		want string
		code apperr.Code
	}{
		{"grid", "grid", ""},
		{"Grid", "grid", ""},
		{"Title", "title", ""},
		{"Plan", "", apperr.ErrCodeInvalidInput},
		{"Missing", "", apperr.ErrCodeNotFound},
	}
	for _, tt := range tests {
		ids, err := Resolve(d, []string{tt.ref})
		if tt.code != "" {
			if !apperr.Is(err, tt.code) {
				t.Errorf("Resolve(%q) error = %v, want %s", tt.ref, err, tt.code)
			}
			continue
		}
		if err != nil || len(ids) != 1 || ids[0] != tt.want {
			t.Errorf("Resolve(%q) = %v, %v; want [%s]", tt.ref, ids, err, tt.want)
		}
	}
}

func TestSwitch(t *testing.T) {
	d := loadDoc(t, pricing)
	r := newTestRunner(t)

	res, err := r.Switch(context.Background(), d, Options{})
	if err != nil {
		t.Fatalf("Switch() error = %v", err)
	}

	if res.Status != "switched to columns" {
		t.Errorf("Status = %q", res.Status)
	}
	if res.From != table.RowMajor || res.To != table.ColumnMajor {
		t.Errorf("axes = %v -> %v", res.From, res.To)
	}
	if res.Stats.Rows != 2 || res.Stats.Cols != 3 || res.Stats.Cells != 6 || res.Stats.Overlays != 1 {
		t.Errorf("Stats = %+v", res.Stats)
	}
	if res.Snapshot {
		t.Error("no snapshot was requested")
	}

	built := res.Table
	if ids := d.SelectionIDs(); len(ids) != 1 || ids[0] != built.ID {
		t.Errorf("selection = %v, want the rebuilt table", ids)
	}
	if _, ok := d.Node("grid"); ok {
		t.Error("old table should be removed")
	}
	if built.Index() != 1 || built.X != 40 || built.Y != 60 || built.Width != 240 || built.Height != 48 {
		t.Errorf("rebuilt table at index %d, %v,%v %vx%v", built.Index(), built.X, built.Y, built.Width, built.Height)
	}
	if built.ChildCount() != 4 || built.Children()[0].ChildCount() != 2 {
		t.Errorf("rebuilt table has %d children", built.ChildCount())
	}
	note := built.Children()[3]
	if note.Name != "Note" || !note.IsAbsolute() {
		t.Errorf("overlay = %v", note)
	}
}

func TestSwitchWithSelectAndName(t *testing.T) {
	d := loadDoc(t, pricing)
	if err := d.Select(); err != nil {
		t.Fatal(err)
	}
	r := newTestRunner(t)

	res, err := r.Switch(context.Background(), d, Options{Select: []string{"Grid"}, Name: "Pricing table"})
	if err != nil {
		t.Fatalf("Switch() error = %v", err)
	}
	if res.Table.Name != "Pricing table" {
		t.Errorf("Name = %q", res.Table.Name)
	}
}

func TestSwitchFailureLeavesDocument(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		prepare func(t *testing.T, d *scene.Document)
		code    apperr.Code
	}{
		{
			name: "no selection",
			src:  pricing,
			prepare: func(t *testing.T, d *scene.Document) {
				if err := d.Select(); err != nil {
					t.Fatal(err)
				}
			},
			code: apperr.ErrCodeNoSelection,
		},
		{
			name: "two nodes",
			src:  pricing,
			prepare: func(t *testing.T, d *scene.Document) {
				if err := d.Select("grid", "title"); err != nil {
					t.Fatal(err)
				}
			},
			code: apperr.ErrCodeMultipleSelection,
		},
		{
			name: "text selected",
			src:  pricing,
			prepare: func(t *testing.T, d *scene.Document) {
				if err := d.Select("title"); err != nil {
					t.Fatal(err)
				}
			},
			code: apperr.ErrCodeUnsupportedType,
		},
		{
			name: "ragged grid",
			src:  pricing,
			prepare: func(t *testing.T, d *scene.Document) {
				cell, _ := d.Node("b3")
				d.Remove(cell)
			},
			code: apperr.ErrCodeNonRectangularMatrix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := loadDoc(t, tt.src)
			if tt.prepare != nil {
				tt.prepare(t, d)
			}
			before := encode(t, d)
			r := newTestRunner(t)
			path := filepath.Join(t.TempDir(), "doc.json")

			_, err := r.Switch(context.Background(), d, Options{SnapshotPath: path})
			if !apperr.Is(err, tt.code) {
				t.Fatalf("Switch() error = %v, want %s", err, tt.code)
			}
			if !apperr.IsValidation(err) {
				t.Error("switch failures should be validation errors")
			}
			if after := encode(t, d); !bytes.Equal(before, after) {
				t.Errorf("document changed on failure:\n%s", after)
			}
			if _, err := r.Snapshots.Load(context.Background(), path); !errors.Is(err, cache.ErrNotFound) {
				t.Error("no snapshot should be stored for a failed switch")
			}
		})
	}
}

func TestSwitchDetachedTable(t *testing.T) {
	d := loadDoc(t, pricing)
	grid, _ := d.Node("grid")
	detached := d.Clone(grid)
	if err := d.Select(detached.ID); err != nil {
		t.Fatal(err)
	}

	_, err := newTestRunner(t).Switch(context.Background(), d, Options{})
	if !apperr.Is(err, apperr.ErrCodeNoParent) {
		t.Errorf("Switch() error = %v, want NO_PARENT", err)
	}
	if detached.ChildCount() != 3 {
		t.Error("detached table should be untouched")
	}
}

func TestSwitchDryRun(t *testing.T) {
	d := loadDoc(t, pricing)
	before := encode(t, d)

	res, err := newTestRunner(t).Switch(context.Background(), d, Options{DryRun: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != "ready to switch to columns" {
		t.Errorf("Status = %q", res.Status)
	}
	if !bytes.Equal(before, encode(t, d)) {
		t.Error("dry run must not change the document")
	}
}

func TestSwitchCanceled(t *testing.T) {
	d := loadDoc(t, pricing)
	before := encode(t, d)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := newTestRunner(t).Switch(ctx, d, Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Switch() error = %v, want context.Canceled", err)
	}
	if !bytes.Equal(before, encode(t, d)) {
		t.Error("canceled switch must not change the document")
	}
}

func TestSwitchAndUndo(t *testing.T) {
	ctx := context.Background()
	d := loadDoc(t, pricing)
	before := encode(t, d)
	r := newTestRunner(t)
	path := filepath.Join(t.TempDir(), "pricing.json")

	res, err := r.Switch(ctx, d, Options{SnapshotPath: path})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Snapshot {
		t.Error("snapshot should be reported")
	}

	restored, err := r.Undo(ctx, path, docio.FormatJSON)
	if err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if !bytes.Equal(before, encode(t, restored)) {
		t.Error("undo should restore the document as it was before the switch")
	}

	if _, err := r.Undo(ctx, path, docio.FormatJSON); !apperr.Is(err, apperr.ErrCodeSnapshotNotFound) {
		t.Errorf("second Undo() error = %v, want SNAPSHOT_NOT_FOUND", err)
	}
}

func TestSwitchTwiceRestoresGrid(t *testing.T) {
	d := loadDoc(t, pricing)
	r := newTestRunner(t)

	if _, err := r.Switch(context.Background(), d, Options{}); err != nil {
		t.Fatal(err)
	}
	res, err := r.Switch(context.Background(), d, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != "switched to rows" {
		t.Errorf("Status = %q", res.Status)
	}

	want := [][]string{{"Plan", "Price", "Seats"}, {"Pro", "$10", "5"}}
	rows := res.Table.Children()
	for i, w := range want {
		for j, name := range w {
			if got := rows[i].Children()[j].Name; got != name {
				t.Errorf("cell (%d, %d) = %q, want %q", i+1, j+1, got, name)
			}
		}
	}
}

func TestInspect(t *testing.T) {
	d := loadDoc(t, pricing)
	ex, err := newTestRunner(t).Inspect(context.Background(), d, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if ex.Matrix.RowCount() != 2 || ex.Matrix.MaxCols != 3 {
		t.Errorf("matrix = %dx%d", ex.Matrix.RowCount(), ex.Matrix.MaxCols)
	}

	cell, _ := d.Node("b3")
	d.Remove(cell)
	ex, err = newTestRunner(t).Inspect(context.Background(), d, Options{})
	if !apperr.Is(err, apperr.ErrCodeNonRectangularMatrix) || ex == nil {
		t.Errorf("Inspect() = %v, %v; want the extraction and the grid error", ex, err)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	events []string
}

func (h *recordingHooks) OnSwitchStart(context.Context, string, string) {
	h.events = append(h.events, "start")
}

func (h *recordingHooks) OnValidateComplete(_ context.Context, _, _ int, err error) {
	h.events = append(h.events, "validate")
}

func (h *recordingHooks) OnRebuildComplete(context.Context, int, int, time.Duration) {
	h.events = append(h.events, "rebuild")
}

func (h *recordingHooks) OnSwitchComplete(_ context.Context, _, _ string, _ time.Duration, err error) {
	if err != nil {
		h.events = append(h.events, "failed")
		return
	}
	h.events = append(h.events, "complete")
}

func TestSwitchHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	d := loadDoc(t, pricing)
	r := newTestRunner(t)
	if _, err := r.Switch(context.Background(), d, Options{}); err != nil {
		t.Fatal(err)
	}
	cell := d.Selection()[0].Children()[0].Children()[0]
	d.Remove(cell)
	if _, err := r.Switch(context.Background(), d, Options{}); err == nil {
		t.Fatal("ragged table should fail")
	}

	want := "start validate rebuild complete start validate failed"
	if got := strings.Join(hooks.events, " "); got != want {
		t.Errorf("events = %q, want %q", got, want)
	}
}
