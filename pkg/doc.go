// Package pkg provides the libraries behind tableaxis.
//
// # Overview
//
// Tableaxis switches a table built from nested auto-layout frames between
// row-major (a vertical stack of horizontal rows) and column-major (a
// horizontal stack of vertical columns). The cells keep their logical
// (row, column) positions, their styling and their visibility; only the
// grouping into lines changes.
//
// # Architecture
//
// The data flow of one switch:
//
//	document file (json, toml, yaml)
//	         ↓
//	    [io] package (decode into a scene)
//	         ↓
//	    [table] package (select, extract, validate, rebuild, replace)
//	         ↓
//	    [io] package (encode the changed scene)
//
// [pipeline] chains the table steps in their fixed order so the CLI, the
// panel and the HTTP API all reject the same tables before touching the
// document.
//
// # Quick Start
//
//	doc, _ := io.Import("pricing.json")
//	runner := pipeline.NewRunner(nil, nil)
//	result, err := runner.Switch(ctx, doc, pipeline.Options{})
//	if err != nil {
//	    fmt.Println(table.Status(table.AxisNone, err)) // "Error: ..."
//	    return
//	}
//	fmt.Println(result.Status) // "switched to columns"
//	_ = io.Export(doc, "pricing.json")
//
// # Main Packages
//
// [scene] - In-memory design document: pages, frames, text, groups and
// instances with auto-layout properties, plus a small reflow engine.
//
// [table] - The axis switch itself, working against the [table.Host]
// interface that a scene document implements.
//
// [pipeline] - Orchestration with selection by id or name, dry runs, undo
// snapshots, logging and observability hooks.
//
// [io] - Document encoding in JSON, TOML and YAML.
//
// [cache] - TTL file cache holding undo snapshots.
//
// [render/outline] - Graphviz diagrams (DOT, SVG) of a node tree.
//
// [api] - HTTP API serving switch and inspect.
//
// [errors] - Structured error codes shared by every entry point.
//
// [observability] - Hooks for metrics and tracing.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/table/...    # Specific package
//	go test -run Example       # Examples only
//
// [scene]: https://pkg.go.dev/github.com/matzehuels/tableaxis/pkg/scene
// [table]: https://pkg.go.dev/github.com/matzehuels/tableaxis/pkg/table
// [table.Host]: https://pkg.go.dev/github.com/matzehuels/tableaxis/pkg/table#Host
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/tableaxis/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/tableaxis/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/tableaxis/pkg/cache
// [render/outline]: https://pkg.go.dev/github.com/matzehuels/tableaxis/pkg/render/outline
// [api]: https://pkg.go.dev/github.com/matzehuels/tableaxis/pkg/api
// [errors]: https://pkg.go.dev/github.com/matzehuels/tableaxis/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/tableaxis/pkg/observability
package pkg
