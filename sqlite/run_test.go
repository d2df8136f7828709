package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/cybernic/zimtocorpus"
	"github.com/cybernic/zimtocorpus/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func testRun() *zimtocorpus.Run {
	return &zimtocorpus.Run{
		InputDir:  "/dumps/wiki_en",
		OutputDir: "/corpus/wiki_en",
		Processes: 4,
	}
}

func TestRunService_BeginRun(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and start time", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		run := testRun()
		err := svc.BeginRun(ctx, run)
		require.NoError(t, err)

		assert.NotEmpty(t, run.ID, "ID should be generated")
		assert.False(t, run.StartedAt.IsZero(), "StartedAt should be set")
	})

	t.Run("keeps a caller-assigned ID and start time", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		started := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
		run := testRun()
		run.ID = "run-1"
		run.StartedAt = started

		require.NoError(t, svc.BeginRun(ctx, run))

		assert.Equal(t, "run-1", run.ID)
		assert.True(t, run.StartedAt.Equal(started))

		id := "run-1"
		found, n, err := svc.FindRuns(ctx, zimtocorpus.RunFilter{ID: &id})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, 1, n)
		assert.True(t, found[0].StartedAt.Equal(started))
	})

	t.Run("returns error for invalid run", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		err := svc.BeginRun(ctx, &zimtocorpus.Run{}) // missing required fields
		require.Error(t, err)
		assert.Equal(t, zimtocorpus.EINVALID, zimtocorpus.ErrorCode(err))
	})
}

func TestRunService_FinishRun(t *testing.T) {
	t.Parallel()

	t.Run("stores aggregates and finish time", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		run := testRun()
		require.NoError(t, svc.BeginRun(ctx, run))

		run.Files = 3
		run.Documents = 120
		run.Failed = 1
		run.Truncated = 1
		require.NoError(t, svc.FinishRun(ctx, run))
		require.NotNil(t, run.FinishedAt)

		found, _, err := svc.FindRuns(ctx, zimtocorpus.RunFilter{ID: &run.ID})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, 3, found[0].Files)
		assert.Equal(t, 120, found[0].Documents)
		assert.Equal(t, 1, found[0].Failed)
		assert.Equal(t, 1, found[0].Truncated)
		require.NotNil(t, found[0].FinishedAt)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		run := testRun()
		run.ID = "nonexistent-id"

		err := svc.FinishRun(ctx, run)
		require.Error(t, err)
		assert.Equal(t, zimtocorpus.ENOTFOUND, zimtocorpus.ErrorCode(err))
	})
}

func TestRunService_RecordFile(t *testing.T) {
	t.Parallel()

	t.Run("records files and lists them ordered by input", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		run := testRun()
		require.NoError(t, svc.BeginRun(ctx, run))

		require.NoError(t, svc.RecordFile(ctx, &zimtocorpus.RunFile{
			RunID:     run.ID,
			Input:     "/dumps/wiki_en/b.zim",
			Output:    "/corpus/wiki_en/b.zim",
			Status:    zimtocorpus.FileTruncated,
			Converted: 7,
			Detail:    "archive ended mid-record",
		}))
		require.NoError(t, svc.RecordFile(ctx, &zimtocorpus.RunFile{
			RunID:     run.ID,
			Input:     "/dumps/wiki_en/a.zim",
			Output:    "/corpus/wiki_en/a.zim",
			Status:    zimtocorpus.FileConverted,
			Converted: 42,
			Checksum:  "8d3f6b2a9c1e4d07",
		}))
		require.NoError(t, svc.RecordFile(ctx, &zimtocorpus.RunFile{
			RunID:  run.ID,
			Input:  "/dumps/wiki_en/c.zim",
			Output: "/corpus/wiki_en/c.zim",
			Status: zimtocorpus.FileFailed,
			Detail: "no header in section",
		}))

		files, err := svc.FindRunFiles(ctx, run.ID)
		require.NoError(t, err)
		require.Len(t, files, 3)

		assert.Equal(t, "/dumps/wiki_en/a.zim", files[0].Input)
		assert.Equal(t, zimtocorpus.FileConverted, files[0].Status)
		assert.Equal(t, 42, files[0].Converted)
		assert.Equal(t, "8d3f6b2a9c1e4d07", files[0].Checksum)

		assert.Equal(t, "/dumps/wiki_en/b.zim", files[1].Input)
		assert.Equal(t, zimtocorpus.FileTruncated, files[1].Status)
		assert.Equal(t, 7, files[1].Converted)
		assert.Equal(t, "archive ended mid-record", files[1].Detail)

		assert.Equal(t, "/dumps/wiki_en/c.zim", files[2].Input)
		assert.Equal(t, zimtocorpus.FileFailed, files[2].Status)
		assert.Equal(t, "no header in section", files[2].Detail)
	})

	t.Run("returns error for invalid file", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		err := svc.RecordFile(ctx, &zimtocorpus.RunFile{}) // missing required fields
		require.Error(t, err)
		assert.Equal(t, zimtocorpus.EINVALID, zimtocorpus.ErrorCode(err))
	})

	t.Run("returns no files for an unknown run", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		files, err := svc.FindRunFiles(ctx, "nonexistent-id")
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}

func TestRunService_FindRuns(t *testing.T) {
	t.Parallel()

	t.Run("returns runs most recent first with total count", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			run := testRun()
			run.ID = "run-" + string(rune('a'+i))
			run.StartedAt = time.Date(2026, 8, 20, 10+i, 0, 0, 0, time.UTC)
			require.NoError(t, svc.BeginRun(ctx, run))
		}

		runs, n, err := svc.FindRuns(ctx, zimtocorpus.RunFilter{})
		require.NoError(t, err)
		require.Len(t, runs, 3)
		assert.Equal(t, 3, n)
		assert.Equal(t, "run-c", runs[0].ID)
		assert.Equal(t, "run-b", runs[1].ID)
		assert.Equal(t, "run-a", runs[2].ID)
	})

	t.Run("filters by ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		first := testRun()
		require.NoError(t, svc.BeginRun(ctx, first))
		second := testRun()
		require.NoError(t, svc.BeginRun(ctx, second))

		runs, n, err := svc.FindRuns(ctx, zimtocorpus.RunFilter{ID: &second.ID})
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, 1, n)
		assert.Equal(t, second.ID, runs[0].ID)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRunService(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			run := testRun()
			run.StartedAt = time.Date(2026, 8, 20, 10+i, 0, 0, 0, time.UTC)
			require.NoError(t, svc.BeginRun(ctx, run))
		}

		runs, n, err := svc.FindRuns(ctx, zimtocorpus.RunFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Len(t, runs, 2)
		assert.Equal(t, 5, n, "count covers every match, not just the page")
	})
}
