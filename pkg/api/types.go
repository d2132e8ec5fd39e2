package api

import "encoding/json"

// SwitchRequest is the body of POST /v1/switch and POST /v1/inspect.
type SwitchRequest struct {
	// Document is the document in the JSON document format.
	Document json.RawMessage `json:"document"`

	// Select replaces the document's selection (ids or names).
	Select []string `json:"select,omitempty"`

	// Name labels the rebuilt table.
	Name string `json:"name,omitempty"`

	// DryRun validates without switching.
	DryRun bool `json:"dry_run,omitempty"`
}

// SwitchResponse is the body returned by POST /v1/switch.
type SwitchResponse struct {
	Status   string          `json:"status"`
	From     string          `json:"from"`
	To       string          `json:"to"`
	TableID  string          `json:"table_id"`
	Rows     int             `json:"rows"`
	Cols     int             `json:"cols"`
	Overlays int             `json:"overlays,omitempty"`
	Document json.RawMessage `json:"document,omitempty"`
}

// InspectResponse is the body returned by POST /v1/inspect.
type InspectResponse struct {
	Axis       string     `json:"axis"`
	Rows       int        `json:"rows"`
	Cols       int        `json:"cols"`
	Cells      [][]string `json:"cells"` // cell names, "" for missing cells
	Overlays   []string   `json:"overlays,omitempty"`
	Switchable bool       `json:"switchable"`
	Problem    string     `json:"problem,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Status string `json:"status"`
	Code   string `json:"code,omitempty"`
	Error  string `json:"error"`
}
