package zimtocorpus

import (
	"context"
	"time"
)

// FileStatus classifies how a single archive finished within a run.
type FileStatus string

const (
	// FileConverted means every document in the archive was written.
	FileConverted FileStatus = "converted"

	// FileTruncated means the archive ended mid-record and the documents
	// read before the cut were kept.
	FileTruncated FileStatus = "truncated"

	// FileFailed means a fatal error stopped the conversion.
	FileFailed FileStatus = "failed"
)

// Run is one batch conversion recorded in the ledger.
type Run struct {
	ID        string `json:"id"`
	InputDir  string `json:"inputDir"`
	OutputDir string `json:"outputDir"`

	// Processes is the worker count the batch ran with.
	Processes int `json:"processes"`

	// Aggregate counts, filled in when the run finishes.
	Files     int `json:"files"`
	Documents int `json:"documents"`
	Failed    int `json:"failed"`
	Truncated int `json:"truncated"`

	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

// Validate returns an error if the run has invalid fields.
func (r *Run) Validate() error {
	if r.InputDir == "" {
		return Errorf(EINVALID, "run input directory required")
	}
	if r.OutputDir == "" {
		return Errorf(EINVALID, "run output directory required")
	}
	if r.Processes < 1 {
		return Errorf(EINVALID, "run process count must be positive")
	}
	return nil
}

// RunFile is the per-archive row of a run.
type RunFile struct {
	RunID  string     `json:"runId"`
	Input  string     `json:"input"`
	Output string     `json:"output"`
	Status FileStatus `json:"status"`

	// Converted is the number of documents written for this archive.
	Converted int `json:"converted"`

	// Checksum is the digest of the written records, empty when none were.
	Checksum string `json:"checksum,omitempty"`

	// Detail holds the error message for truncated and failed files.
	Detail string `json:"detail,omitempty"`
}

// Validate returns an error if the run file has invalid fields.
func (f *RunFile) Validate() error {
	if f.RunID == "" {
		return Errorf(EINVALID, "run file run ID required")
	}
	if f.Input == "" {
		return Errorf(EINVALID, "run file input path required")
	}
	switch f.Status {
	case FileConverted, FileTruncated, FileFailed:
	default:
		return Errorf(EINVALID, "run file status %q not recognized", f.Status)
	}
	return nil
}

// RunService records batch conversions and their per-file outcomes.
type RunService interface {
	// BeginRun persists a new run. Assigns an ID and start time when unset.
	BeginRun(ctx context.Context, run *Run) error

	// FinishRun stores the aggregate counts and finish time of a run.
	// Returns ENOTFOUND if the run does not exist.
	FinishRun(ctx context.Context, run *Run) error

	// RecordFile persists the outcome of one archive within a run.
	RecordFile(ctx context.Context, file *RunFile) error

	// FindRuns returns runs matching the filter, most recent first, plus
	// the total count of matches.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, int, error)

	// FindRunFiles returns the per-archive rows of a run ordered by input
	// path.
	FindRunFiles(ctx context.Context, runID string) ([]*RunFile, error)
}

// RunFilter selects runs in FindRuns. Nil fields are ignored.
type RunFilter struct {
	ID *string

	Offset int
	Limit  int
}
