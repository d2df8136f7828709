// Package convert implements the conversion pipeline: it pulls raw HTML
// records out of archive files, recovers their section structure, and
// writes corpus files, fanning the per-file work out across a bounded pool.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/cybernic/zimtocorpus"
	"golang.org/x/time/rate"
)

// progressInterval throttles the in-progress log line of long archives.
const progressInterval = 10 * time.Second

// Ensure Worker implements zimtocorpus.FileConverter at compile time.
var _ zimtocorpus.FileConverter = (*Worker)(nil)

// Worker converts one archive file into one corpus file. Truncation of the
// archive is a recoverable outcome that keeps every record written so far;
// any other failure is fatal for the file.
type Worker struct {
	Dumps    zimtocorpus.DumpOpener
	Parser   zimtocorpus.Parser
	Renderer zimtocorpus.Renderer
	Corpus   zimtocorpus.CorpusFactory
	Logger   *slog.Logger
}

// ConvertFile reads every record from the archive at inputPath and writes
// the rendered documents to outputPath in order. The returned outcome is
// non-nil even on a fatal error and reports the progress made before the
// failure; whatever was written stays on disk.
func (w *Worker) ConvertFile(ctx context.Context, inputPath, outputPath string) (*zimtocorpus.Outcome, error) {
	logger := w.logger().With("input", inputPath, "output", outputPath)
	logger.Debug("converting archive")
	start := time.Now()

	outcome := &zimtocorpus.Outcome{Input: inputPath, Output: outputPath}

	out, err := w.Corpus.Create(outputPath)
	if err != nil {
		logger.Error("failed to create output", "error", err)
		outcome.Err = err
		return outcome, err
	}

	err = w.convert(ctx, logger, inputPath, out, outcome)

	// The output is closed on every path; a fatal error keeps the records
	// flushed before it.
	if closeErr := out.Close(); err == nil && closeErr != nil {
		logger.Error("failed to finalize output", "error", closeErr)
		err = closeErr
	}
	if err != nil {
		outcome.Err = err
		return outcome, err
	}

	logger.Debug("converted archive",
		"records", outcome.Converted,
		"bytes", outcome.Bytes,
		"truncated", outcome.Truncated,
		"duration", time.Since(start),
	)
	return outcome, nil
}

// convert runs the per-record loop. It returns nil on a clean end of the
// archive and on truncation; every other error is fatal for the file.
func (w *Worker) convert(ctx context.Context, logger *slog.Logger, inputPath string, out zimtocorpus.CorpusWriter, outcome *zimtocorpus.Outcome) error {
	in, err := w.Dumps.Open(inputPath)
	if err != nil {
		if zimtocorpus.ErrorCode(err) == zimtocorpus.ETRUNCATED {
			logger.Error("archive truncated", "record", 1, "detail", zimtocorpus.ErrorMessage(err))
			outcome.Truncated = true
			return nil
		}
		logger.Error("failed to open archive", "error", err)
		return err
	}
	defer in.Close()

	digest := xxhash.New()
	start := time.Now()
	progress := rate.Sometimes{Interval: progressInterval}

	for {
		if err := ctx.Err(); err != nil {
			logger.Error("conversion canceled", "record", outcome.Converted+1, "error", err)
			return err
		}

		record := outcome.Converted + 1
		raw, err := in.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			if zimtocorpus.ErrorCode(err) == zimtocorpus.ETRUNCATED {
				logger.Error("archive truncated", "record", record, "detail", zimtocorpus.ErrorMessage(err))
				outcome.Truncated = true
				break
			}
			logger.Error("failed to read record", "record", record, "error", err)
			return err
		}

		doc, err := w.Parser.Parse(raw)
		if err != nil {
			logger.Error("failed to parse record", "record", record, "error", err)
			return err
		}

		rendered, err := w.Renderer.Render(doc)
		if err != nil {
			logger.Error("failed to render record", "record", record, "error", err)
			return err
		}

		if err := out.WriteRecord(rendered); err != nil {
			logger.Error("failed to write record", "record", record, "error", err)
			return err
		}

		_, _ = digest.WriteString(rendered)
		outcome.Converted++
		outcome.Bytes += len(rendered)

		// Only archives that take a while get progress lines.
		if time.Since(start) >= progressInterval {
			progress.Do(func() {
				logger.Info("converting", "records", outcome.Converted)
			})
		}
	}

	if outcome.Converted > 0 {
		outcome.Checksum = fmt.Sprintf("%x", digest.Sum64())
	}
	return nil
}

func (w *Worker) logger() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return slog.Default()
}
