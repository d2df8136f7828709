// Package jsonl writes and reads corpus files: one JSON-encoded string per
// line, gzip compressed.
package jsonl

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cybernic/zimtocorpus"
	"github.com/klauspost/compress/gzip"
)

// Ensure Writer implements zimtocorpus.CorpusWriter at compile time.
var _ zimtocorpus.CorpusWriter = (*Writer)(nil)

// Writer appends records to one corpus file. The file is created up front
// and overwritten if present; closing a writer that never saw a record
// leaves a valid, empty corpus file behind.
type Writer struct {
	file *os.File
	gz   *gzip.Writer
	enc  *json.Encoder
}

// Create creates or truncates the corpus file at path.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create corpus file: %w", err)
	}

	gz := gzip.NewWriter(f)
	enc := json.NewEncoder(gz)
	// The records are HTML; keep them readable instead of \u-escaping
	// every angle bracket.
	enc.SetEscapeHTML(false)
	return &Writer{file: f, gz: gz, enc: enc}, nil
}

// WriteRecord appends one rendered document as a JSON string line.
func (w *Writer) WriteRecord(rendered string) error {
	return w.enc.Encode(rendered)
}

// Close flushes the compressed stream and closes the corpus file.
func (w *Writer) Close() error {
	gzErr := w.gz.Close()
	if err := w.file.Close(); err != nil {
		return err
	}
	return gzErr
}

// Ensure Factory implements zimtocorpus.CorpusFactory at compile time.
var _ zimtocorpus.CorpusFactory = (*Factory)(nil)

// Factory creates file-backed corpus writers.
type Factory struct{}

// Create creates or truncates the corpus file at path.
func (Factory) Create(path string) (zimtocorpus.CorpusWriter, error) {
	return Create(path)
}
