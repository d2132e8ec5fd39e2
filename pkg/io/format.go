package io

import (
	"path/filepath"
	"strings"

	apperr "github.com/matzehuels/tableaxis/pkg/errors"
)

// Format is a document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ValidFormats is the set of supported document formats.
var ValidFormats = map[Format]bool{
	FormatJSON: true,
	FormatTOML: true,
	FormatYAML: true,
}

// ParseFormat parses a format name. "yml" is accepted as YAML.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "yml" {
		f = FormatYAML
	}
	if !ValidFormats[f] {
		return "", apperr.New(apperr.ErrCodeInvalidFormat, "invalid format: %q (must be one of: json, toml, yaml)", s)
	}
	return f, nil
}

// FormatFromPath returns the format implied by a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", apperr.New(apperr.ErrCodeInvalidFormat, "cannot infer format of %s (use .json, .toml or .yaml)", path)
	}
	return ParseFormat(ext)
}
