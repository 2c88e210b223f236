// Package output serializes collected geocoding results to disk.
package output

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/oselednik/trackplace/internal/models"
)

// Suffix is appended to the input track path to derive the output path.
const Suffix = ".geocoding.json"

// Writer serializes a result set to a pretty-printed JSON file.
type Writer struct {
	log *slog.Logger
}

// NewWriter creates a new result writer with the provided logger.
func NewWriter(log *slog.Logger) *Writer {
	return &Writer{log: log}
}

// PathFor derives the output file path for the given input track path.
func PathFor(inputPath string) string {
	return inputPath + Suffix
}

// Write serializes results as indented JSON to path, creating or truncating
// the file. Non-ASCII place names are written verbatim rather than escaped.
func (w *Writer) Write(path string, results []models.GeocodeResult) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "    ")
	encoder.SetEscapeHTML(false)

	if err = encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results to %q: %w", path, err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close output file %q: %w", path, err)
	}

	w.log.Debug("Result set serialized", "file", path, "results", len(results))

	return nil
}
