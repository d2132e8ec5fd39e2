// Package io reads and writes scene documents as JSON, TOML or YAML.
//
// # Overview
//
// A document file holds the page's node tree and the current selection, so a
// table can be switched from the command line, the panel, or the HTTP API and
// written back:
//
//	{
//	  "name": "Pricing",
//	  "selection": ["table"],
//	  "nodes": [
//	    {
//	      "id": "table",
//	      "type": "FRAME",
//	      "layout": "VERTICAL",
//	      "children": [
//	        {"type": "FRAME", "layout": "HORIZONTAL", "children": [
//	          {"type": "TEXT", "text": "Plan"},
//	          {"type": "TEXT", "text": "Price"}
//	        ]}
//	      ]
//	    }
//	  ]
//	}
//
// The same structure is used for TOML and YAML; keys are identical in all
// three formats.
//
// # Node Fields
//
// Required:
//   - type: FRAME, COMPONENT, INSTANCE, GROUP, RECTANGLE, ELLIPSE or TEXT
//
// Optional:
//   - id: unique identifier (generated when omitted)
//   - name, text
//   - layout: NONE, HORIZONTAL or VERTICAL
//   - sizing_h, sizing_v: INHERIT, FIXED, HUG or FILL (STRETCH is accepted)
//   - grow, positioning (AUTO or ABSOLUTE), item_spacing, padding
//   - x, y, width, height
//   - visible: defaults to true
//   - fills: list of {color, opacity}; omitted means transparent
//
// # Formats
//
// [FormatFromPath] picks the format from a file extension (.json, .toml,
// .yaml, .yml). [Import] and [Export] use it; [Read] and [Write] take the
// format explicitly.
//
// Decoded nodes are attached with [scene.Document.Graft], so every stored
// property survives loading exactly as written.
package io
