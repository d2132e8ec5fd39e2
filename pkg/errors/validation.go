package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateNodeRef validates a node reference (id or name) passed on the
// command line or in an API request.
//
// The validation rules are intentionally conservative:
//   - No empty references
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateNodeRef(ref string) error {
	if strings.TrimSpace(ref) == "" {
		return New(ErrCodeInvalidInput, "node reference cannot be empty")
	}

	if len(ref) > 256 {
		return New(ErrCodeInvalidInput, "node reference too long (max 256 characters)")
	}

	for _, r := range ref {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "node reference contains invalid control characters")
		}
	}

	return nil
}

// supportedExts lists the document file extensions tableaxis can read and write.
var supportedExts = map[string]bool{
	".json": true,
	".toml": true,
	".yaml": true,
	".yml":  true,
}

// ValidateDocumentPath validates the path of a scene document on disk.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Extension must be .json, .toml, .yaml or .yml
func ValidateDocumentPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExts[ext] {
		return New(ErrCodeInvalidFormat, "unsupported document extension %q (must be one of: .json, .toml, .yaml, .yml)", ext)
	}

	return nil
}
