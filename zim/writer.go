package zim

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/cybernic/zimtocorpus"
	"github.com/klauspost/compress/gzip"
)

// Writer builds an archive file record by record. It exists for producing
// fixtures and repacking dumps; the conversion pipeline itself only reads.
type Writer struct {
	file *os.File
	gz   *gzip.Writer
}

// Create creates or truncates the archive at path.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive: %w", err)
	}
	return &Writer{file: f, gz: gzip.NewWriter(f)}, nil
}

// WriteRecord appends one HTML record.
func (w *Writer) WriteRecord(html string) error {
	if len(html) > maxRecordBytes {
		return zimtocorpus.Errorf(zimtocorpus.EINVALID, "record length %d exceeds %d bytes", len(html), maxRecordBytes)
	}

	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(len(html)))
	if _, err := w.gz.Write(buf[:]); err != nil {
		return err
	}
	_, err := w.gz.Write([]byte(html))
	return err
}

// Close flushes the compressed stream and closes the archive file.
func (w *Writer) Close() error {
	gzErr := w.gz.Close()
	if err := w.file.Close(); err != nil {
		return err
	}
	return gzErr
}
