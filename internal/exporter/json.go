// Package exporter writes conversion outputs to disk.
package exporter

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "cmicli/internal/errors"
)

// WriteJSON writes v as indented UTF-8 JSON to path, creating parent
// directories as needed. An existing file is overwritten.
func WriteJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory", err).
			WithContext("path", path)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return apperrors.NewStorageError("failed to encode JSON output", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.NewStorageError("failed to write JSON output", err).
			WithContext("path", path)
	}

	slog.Info("Wrote JSON output",
		slog.String("path", path),
		slog.Int("bytes", len(data)))

	return nil
}

// ReadJSON loads the JSON document at path into v.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.NewStorageError("failed to read JSON document", err).
			WithContext("path", path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return apperrors.NewParsingError("failed to decode JSON document", err).
			WithContext("path", path)
	}
	return nil
}
