package slog

import (
	"log/slog"
	"time"

	"github.com/cybernic/zimtocorpus"
)

// Ensure LoggingOpener implements zimtocorpus.DumpOpener.
var _ zimtocorpus.DumpOpener = (*LoggingOpener)(nil)

// LoggingOpener wraps a DumpOpener so every archive logs its record count
// and read time when it is closed.
type LoggingOpener struct {
	next   zimtocorpus.DumpOpener
	logger *slog.Logger
}

// NewLoggingOpener creates a new LoggingOpener.
func NewLoggingOpener(next zimtocorpus.DumpOpener, logger *slog.Logger) *LoggingOpener {
	return &LoggingOpener{next: next, logger: logger}
}

// Open delegates to the wrapped opener and logs the outcome.
func (o *LoggingOpener) Open(path string) (zimtocorpus.DumpReader, error) {
	reader, err := o.next.Open(path)
	if err != nil {
		o.logger.Debug("failed to open archive", "path", path, "err", err)
		return nil, err
	}
	return &loggingReader{next: reader, logger: o.logger, path: path, begin: time.Now()}, nil
}

// loggingReader counts records as they are read.
type loggingReader struct {
	next    zimtocorpus.DumpReader
	logger  *slog.Logger
	path    string
	begin   time.Time
	records int
}

func (r *loggingReader) Next() (string, error) {
	record, err := r.next.Next()
	if err == nil {
		r.records++
	}
	return record, err
}

func (r *loggingReader) Close() error {
	r.logger.Debug("read archive",
		"path", r.path,
		"records", r.records,
		"duration", time.Since(r.begin),
	)
	return r.next.Close()
}
