// Package slog provides logging decorators for the conversion pipeline's
// interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/cybernic/zimtocorpus"
)

// Ensure LoggingParser implements zimtocorpus.Parser.
var _ zimtocorpus.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   zimtocorpus.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next zimtocorpus.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(html string) (doc *zimtocorpus.Document, err error) {
	defer func(begin time.Time) {
		sections := 0
		if doc != nil {
			sections = doc.SectionCount()
		}
		p.logger.Debug("parsed record",
			"bytes", len(html),
			"sections", sections,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(html)
}
