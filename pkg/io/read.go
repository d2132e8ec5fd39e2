package io

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	apperr "github.com/matzehuels/tableaxis/pkg/errors"
	"github.com/matzehuels/tableaxis/pkg/scene"
)

// Read decodes a document in the given format from r.
//
// Read returns an INVALID_FORMAT error if the input is malformed or names
// an unknown node type, layout, sizing or positioning, and an INVALID_INPUT
// error if node ids collide or the selection names a node that does not
// exist. Read does not close r.
func Read(r io.Reader, format Format) (*scene.Document, error) {
	var in document
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&in)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&in)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&in)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		_, err = ParseFormat(string(format))
		return nil, err
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "decode %s", format)
	}

	d, err := fromWire(in)
	if err != nil {
		if errors.Is(err, scene.ErrDuplicateID) || errors.Is(err, scene.ErrUnknownNode) {
			return nil, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "invalid document")
		}
		return nil, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "invalid document")
	}
	return d, nil
}

// Import reads the document file at path, picking the format from its
// extension.
func Import(path string) (*scene.Document, error) {
	if err := apperr.ValidateDocumentPath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, apperr.Wrap(apperr.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return Read(f, format)
}
