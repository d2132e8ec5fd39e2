package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	apperr "github.com/matzehuels/tableaxis/pkg/errors"
	"github.com/matzehuels/tableaxis/pkg/scene"
)

// Write encodes d in the given format and writes it to w.
// The output can be read back with [Read] for round-trip processing.
func Write(d *scene.Document, w io.Writer, format Format) error {
	out := toWire(d)
	var err error
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(out)
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.Indent = "  "
		err = enc.Encode(out)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(out); err == nil {
			err = enc.Close()
		}
	default:
		_, err = ParseFormat(string(format))
		return err
	}
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeInternal, err, "encode %s", format)
	}
	return nil
}

// Marshal returns the encoding of d in the given format.
func Marshal(d *scene.Document, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(d, &buf, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a document from data.
func Unmarshal(data []byte, format Format) (*scene.Document, error) {
	return Read(bytes.NewReader(data), format)
}

// Export writes d to the file at path, picking the format from its extension.
// The file is replaced only once the document has been encoded.
func Export(d *scene.Document, path string) error {
	if err := apperr.ValidateDocumentPath(path); err != nil {
		return err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(d, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperr.Wrap(apperr.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
