// Package zim reads and writes the static-dump archive format: a gzip
// stream of records, each a 4-byte big-endian payload length followed by
// that many bytes of UTF-8 HTML.
package zim

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cybernic/zimtocorpus"
	"github.com/klauspost/compress/gzip"
)

// maxRecordBytes bounds a single record payload. A length prefix beyond it
// means the stream is not a record stream.
const maxRecordBytes = 1 << 28

// Ensure Reader implements zimtocorpus.DumpReader at compile time.
var _ zimtocorpus.DumpReader = (*Reader)(nil)

// Reader yields the HTML records of one archive file in order. A Reader is
// single use; reopen the file to restart.
type Reader struct {
	file *os.File
	gz   *gzip.Reader
	buf  [4]byte
}

// Open opens the archive at path. An empty or header-truncated file is
// reported as a truncated archive, not as a distinct condition.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return nil, zimtocorpus.Errorf(zimtocorpus.ETRUNCATED, "archive ended before the gzip header")
		case errors.Is(err, gzip.ErrHeader):
			return nil, zimtocorpus.Errorf(zimtocorpus.EINVALID, "not a gzip archive")
		default:
			return nil, fmt.Errorf("failed to read archive header: %w", err)
		}
	}

	return &Reader{file: f, gz: gz}, nil
}

// Next returns the next HTML record. It returns io.EOF at a clean record
// boundary and a truncated-archive error when the stream ends mid-record.
func (r *Reader) Next() (string, error) {
	if _, err := io.ReadFull(r.gz, r.buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", readErr(err, "record length")
	}

	n := binary.BigEndian.Uint32(r.buf[:])
	if n > maxRecordBytes {
		return "", zimtocorpus.Errorf(zimtocorpus.EINVALID, "record length %d exceeds %d bytes", n, maxRecordBytes)
	}

	payload := make([]byte, n)
	if _, err := io.ReadFull(r.gz, payload); err != nil {
		return "", readErr(err, "record payload")
	}
	return string(payload), nil
}

// Close releases the archive file.
func (r *Reader) Close() error {
	gzErr := r.gz.Close()
	if err := r.file.Close(); err != nil {
		return err
	}
	return gzErr
}

// readErr maps a mid-record read failure onto the error taxonomy: an early
// end of data is recoverable truncation, a failed integrity check is a
// corrupt archive, anything else passes through untouched.
func readErr(err error, what string) error {
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return zimtocorpus.Errorf(zimtocorpus.ETRUNCATED, "archive ended inside a %s", what)
	case errors.Is(err, gzip.ErrChecksum):
		return zimtocorpus.Errorf(zimtocorpus.EINVALID, "archive failed its integrity check")
	case errors.Is(err, gzip.ErrHeader):
		return zimtocorpus.Errorf(zimtocorpus.EINVALID, "corrupt gzip framing")
	default:
		return err
	}
}
