package mock

import (
	"context"

	"github.com/cybernic/zimtocorpus"
)

var _ zimtocorpus.FileConverter = (*FileConverter)(nil)

// FileConverter is a mock implementation of zimtocorpus.FileConverter.
type FileConverter struct {
	ConvertFileFn func(ctx context.Context, inputPath, outputPath string) (*zimtocorpus.Outcome, error)
}

func (c *FileConverter) ConvertFile(ctx context.Context, inputPath, outputPath string) (*zimtocorpus.Outcome, error) {
	return c.ConvertFileFn(ctx, inputPath, outputPath)
}
