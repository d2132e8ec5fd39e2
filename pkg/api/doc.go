// Package api exposes the table axis switch over HTTP.
//
// # Endpoints
//
//	POST /v1/switch    switch the selected table of a document
//	POST /v1/inspect   report the grid of the selected table without changing it
//	GET  /v1/version   build information
//	GET  /healthz      liveness probe
//
// Requests and responses are JSON. The document travels in the same format
// that package io reads and writes:
//
//	POST /v1/switch
//	{"document": {"selection": ["grid"], "nodes": [...]}, "name": "Pricing"}
//
//	200 OK
//	{"status": "switched to columns", "from": "row-major", "to": "column-major",
//	 "table_id": "...", "rows": 2, "cols": 3, "document": {...}}
//
// A switch that fails validation answers 422 with the error code and the
// same "Error: ..." status line the panel shows:
//
//	{"status": "Error: selected frame must have auto layout", "code": "NO_AXIS_LAYOUT",
//	 "error": "selected frame must have auto layout"}
//
// The server is stateless: every request carries its whole document, so no
// snapshot is taken.
package api
