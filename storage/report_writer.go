package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReportWriter writes the rendered report to a file, replacing any previous
// run's output.
type ReportWriter struct {
	path string
	file *os.File
}

// NewReportWriter creates (or truncates) the report file at the given path.
// Intermediate directories are created automatically.
func NewReportWriter(path string) (*ReportWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("report: create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("report: create file %q: %w", path, err)
	}

	return &ReportWriter{path: path, file: f}, nil
}

// Write writes the full report body as UTF-8.
func (w *ReportWriter) Write(report string) error {
	if _, err := w.file.WriteString(report); err != nil {
		return fmt.Errorf("report: write %q: %w", w.path, err)
	}
	return nil
}

// Close closes the underlying file.
func (w *ReportWriter) Close() error {
	return w.file.Close()
}
