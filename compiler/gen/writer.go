package gen

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/tools/imports"
)

// Writer renders artifacts to disk below a target directory.
type Writer struct {
	target string

	mu      sync.Mutex
	metrics WriterMetrics
}

// WriterMetrics tracks what a Writer produced.
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
}

// NewWriter creates a writer for the target directory.
func NewWriter(target string) *Writer {
	return &Writer{target: target}
}

// Metrics returns a snapshot of the writer metrics.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// Render returns the formatted source of a.
func (w *Writer) Render(a *Artifact) ([]byte, error) {
	var buf bytes.Buffer
	if err := a.File.Render(&buf); err != nil {
		return nil, NewGenerationError("render", a.Path, "", err)
	}
	fullPath := filepath.Join(w.target, a.Path)
	formatted, err := imports.Process(fullPath, buf.Bytes(), nil)
	if err != nil {
		// Keep the unformatted file around for debugging; we are already failing.
		debugPath := fullPath + ".error"
		_ = os.MkdirAll(filepath.Dir(debugPath), 0o755)
		_ = os.WriteFile(debugPath, buf.Bytes(), 0o644)
		return nil, NewGenerationError("format", a.Path, "unformatted source written to "+debugPath, err)
	}
	return formatted, nil
}

// Write renders a and writes it below the target directory.
func (w *Writer) Write(a *Artifact) error {
	src, err := w.Render(a)
	if err != nil {
		return err
	}
	fullPath := filepath.Join(w.target, a.Path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return NewGenerationError("write", a.Path, "create directory", err)
	}
	if err := os.WriteFile(fullPath, src, 0o644); err != nil {
		return NewGenerationError("write", a.Path, "", err)
	}

	w.mu.Lock()
	w.metrics.FilesGenerated++
	w.metrics.TotalBytes += int64(len(src))
	w.mu.Unlock()
	return nil
}
