package mock

import (
	"context"

	"github.com/cybernic/zimtocorpus"
)

var _ zimtocorpus.RunService = (*RunService)(nil)

// RunService is a mock implementation of zimtocorpus.RunService.
type RunService struct {
	BeginRunFn     func(ctx context.Context, run *zimtocorpus.Run) error
	FinishRunFn    func(ctx context.Context, run *zimtocorpus.Run) error
	RecordFileFn   func(ctx context.Context, file *zimtocorpus.RunFile) error
	FindRunsFn     func(ctx context.Context, filter zimtocorpus.RunFilter) ([]*zimtocorpus.Run, int, error)
	FindRunFilesFn func(ctx context.Context, runID string) ([]*zimtocorpus.RunFile, error)
}

func (s *RunService) BeginRun(ctx context.Context, run *zimtocorpus.Run) error {
	return s.BeginRunFn(ctx, run)
}

func (s *RunService) FinishRun(ctx context.Context, run *zimtocorpus.Run) error {
	return s.FinishRunFn(ctx, run)
}

func (s *RunService) RecordFile(ctx context.Context, file *zimtocorpus.RunFile) error {
	return s.RecordFileFn(ctx, file)
}

func (s *RunService) FindRuns(ctx context.Context, filter zimtocorpus.RunFilter) ([]*zimtocorpus.Run, int, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) FindRunFiles(ctx context.Context, runID string) ([]*zimtocorpus.RunFile, error) {
	return s.FindRunFilesFn(ctx, runID)
}
