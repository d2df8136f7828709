package convert

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cybernic/zimtocorpus"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Batch fans archive conversions out across a fixed-size pool, one worker
// invocation per archive file. Files are independent: no state is shared
// between invocations and each owns its input and output exclusively.
type Batch struct {
	Worker    zimtocorpus.FileConverter
	Processes int

	// FailFast stops scheduling new files after the first fatal failure.
	// The default is to keep going and report the failure in the result.
	FailFast bool

	// Runs, when set, records the run and its per-file outcomes.
	Runs zimtocorpus.RunService

	Logger *slog.Logger
}

// Result aggregates one batch run.
type Result struct {
	RunID     string
	Files     int
	Documents int
	Bytes     int
	Failed    int
	Truncated int

	// Outcomes holds the per-file outcomes in input order. Files never
	// started because the batch stopped early are absent.
	Outcomes []*zimtocorpus.Outcome
}

// fileResult tags one worker invocation's outcome with its input position.
type fileResult struct {
	position int
	outcome  *zimtocorpus.Outcome
	err      error
}

// Run converts every archive file in inputDir into a corpus file of the
// same name in outputDir, creating outputDir if needed. The listing is one
// level deep; subdirectories are skipped. Partial counts from truncated
// archives are included in the aggregate; fatally failed files contribute
// nothing.
func (b *Batch) Run(ctx context.Context, inputDir, outputDir string) (*Result, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list input directory: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, entry.Name())
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	processes := b.Processes
	if processes <= 0 {
		processes = 1
	}

	run := &zimtocorpus.Run{
		ID:        uuid.NewString(),
		InputDir:  inputDir,
		OutputDir: outputDir,
		Processes: processes,
	}

	// Ledger writes survive cancellation so an aborted run is still
	// accounted for.
	ledgerCtx := context.WithoutCancel(ctx)
	if b.Runs != nil {
		if err := b.Runs.BeginRun(ledgerCtx, run); err != nil {
			return nil, fmt.Errorf("failed to begin run: %w", err)
		}
	}

	logger := b.logger().With("run", run.ID)
	logger.Info("scheduled files for conversion", "files", len(files), "processes", processes)

	resultCh := make(chan fileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(processes)

	var groupErr error
	go func() {
		for i, name := range files {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				result := b.convertOne(gctx, i, filepath.Join(inputDir, name), filepath.Join(outputDir, name))
				resultCh <- result
				if b.FailFast {
					return result.err
				}
				return nil
			})
		}
		groupErr = g.Wait()
		close(resultCh)
	}()

	outcomes := make([]*zimtocorpus.Outcome, len(files))
	res := &Result{RunID: run.ID, Files: len(files)}
	for result := range resultCh {
		outcomes[result.position] = result.outcome

		switch {
		case result.err != nil:
			res.Failed++
		case result.outcome.Truncated:
			res.Truncated++
			res.Documents += result.outcome.Converted
			res.Bytes += result.outcome.Bytes
		default:
			res.Documents += result.outcome.Converted
			res.Bytes += result.outcome.Bytes
		}

		b.recordFile(ledgerCtx, logger, run.ID, result)
	}

	for _, outcome := range outcomes {
		if outcome != nil {
			res.Outcomes = append(res.Outcomes, outcome)
		}
	}

	if b.Runs != nil {
		run.Files = res.Files
		run.Documents = res.Documents
		run.Failed = res.Failed
		run.Truncated = res.Truncated
		if err := b.Runs.FinishRun(ledgerCtx, run); err != nil {
			logger.Error("failed to finish run", "error", err)
		}
	}

	logger.Info("done",
		"files", res.Files,
		"documents", res.Documents,
		"bytes", res.Bytes,
		"failed", res.Failed,
		"truncated", res.Truncated,
	)

	if groupErr != nil {
		return res, groupErr
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	return res, nil
}

// convertOne runs one worker invocation, turning a panic into an internal
// error so a defect in one file cannot take down the whole batch.
func (b *Batch) convertOne(ctx context.Context, position int, inputPath, outputPath string) (result fileResult) {
	result.position = position
	defer func() {
		if r := recover(); r != nil {
			err := zimtocorpus.Errorf(zimtocorpus.EINTERNAL, "panic converting %s: %v", inputPath, r)
			if result.outcome == nil {
				result.outcome = &zimtocorpus.Outcome{Input: inputPath, Output: outputPath}
			}
			result.outcome.Err = err
			result.err = err
		}
	}()

	result.outcome, result.err = b.Worker.ConvertFile(ctx, inputPath, outputPath)
	if result.outcome == nil {
		result.outcome = &zimtocorpus.Outcome{Input: inputPath, Output: outputPath, Err: result.err}
	}
	return result
}

// recordFile persists one per-file outcome to the ledger. Ledger failures
// are logged, not propagated; bookkeeping must not fail a conversion.
func (b *Batch) recordFile(ctx context.Context, logger *slog.Logger, runID string, result fileResult) {
	if b.Runs == nil {
		return
	}

	file := &zimtocorpus.RunFile{
		RunID:     runID,
		Input:     result.outcome.Input,
		Output:    result.outcome.Output,
		Converted: result.outcome.Converted,
		Checksum:  result.outcome.Checksum,
	}
	switch {
	case result.err != nil:
		file.Status = zimtocorpus.FileFailed
		file.Detail = result.err.Error()
	case result.outcome.Truncated:
		file.Status = zimtocorpus.FileTruncated
		file.Detail = "archive ended mid-record"
	default:
		file.Status = zimtocorpus.FileConverted
	}

	if err := b.Runs.RecordFile(ctx, file); err != nil {
		logger.Error("failed to record file outcome", "input", file.Input, "error", err)
	}
}

func (b *Batch) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}
