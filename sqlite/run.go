package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/cybernic/zimtocorpus"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ zimtocorpus.RunService = (*RunService)(nil)

// RunService implements zimtocorpus.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// BeginRun persists a new run. Assigns an ID and start time when unset.
func (s *RunService) BeginRun(ctx context.Context, run *zimtocorpus.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, input_dir, output_dir, processes, files, documents, failed, truncated, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.InputDir, run.OutputDir, run.Processes,
		run.Files, run.Documents, run.Failed, run.Truncated,
		run.StartedAt.Format(time.RFC3339))

	return err
}

// FinishRun stores the aggregate counts and finish time of a run.
func (s *RunService) FinishRun(ctx context.Context, run *zimtocorpus.Run) error {
	now := time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		UPDATE runs
		SET files = ?, documents = ?, failed = ?, truncated = ?, finished_at = ?
		WHERE id = ?
	`, run.Files, run.Documents, run.Failed, run.Truncated,
		now.Format(time.RFC3339), run.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return zimtocorpus.Errorf(zimtocorpus.ENOTFOUND, "run not found")
	}

	run.FinishedAt = &now
	return nil
}

// RecordFile persists the outcome of one archive within a run.
func (s *RunService) RecordFile(ctx context.Context, file *zimtocorpus.RunFile) error {
	if err := file.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO run_files (run_id, input, output, status, converted, checksum, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, file.RunID, file.Input, file.Output, string(file.Status),
		file.Converted, file.Checksum, file.Detail)

	return err
}

// FindRuns retrieves runs matching the filter, most recent first, plus the
// total count of matches.
func (s *RunService) FindRuns(ctx context.Context, filter zimtocorpus.RunFilter) ([]*zimtocorpus.Run, int, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT id, input_dir, output_dir, processes, files, documents, failed, truncated,
		       started_at, finished_at, COUNT(*) OVER()
		FROM runs
		WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}

	query.WriteString(" ORDER BY started_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var runs []*zimtocorpus.Run
	n := 0
	for rows.Next() {
		var run zimtocorpus.Run
		var startedAt string
		var finishedAt sql.NullString

		if err := rows.Scan(&run.ID, &run.InputDir, &run.OutputDir, &run.Processes,
			&run.Files, &run.Documents, &run.Failed, &run.Truncated,
			&startedAt, &finishedAt, &n); err != nil {
			return nil, 0, err
		}

		if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, 0, err
		}
		if finishedAt.Valid {
			finished, err := parseRFC3339(finishedAt.String, "finished_at")
			if err != nil {
				return nil, 0, err
			}
			run.FinishedAt = &finished
		}

		runs = append(runs, &run)
	}

	return runs, n, rows.Err()
}

// FindRunFiles retrieves the per-archive rows of a run ordered by input path.
func (s *RunService) FindRunFiles(ctx context.Context, runID string) ([]*zimtocorpus.RunFile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, input, output, status, converted, checksum, detail
		FROM run_files
		WHERE run_id = ?
		ORDER BY input
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []*zimtocorpus.RunFile
	for rows.Next() {
		var file zimtocorpus.RunFile
		var status string

		if err := rows.Scan(&file.RunID, &file.Input, &file.Output, &status,
			&file.Converted, &file.Checksum, &file.Detail); err != nil {
			return nil, err
		}
		file.Status = zimtocorpus.FileStatus(status)

		files = append(files, &file)
	}

	return files, rows.Err()
}
