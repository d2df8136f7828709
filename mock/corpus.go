package mock

import "github.com/cybernic/zimtocorpus"

var _ zimtocorpus.CorpusWriter = (*CorpusWriter)(nil)

// CorpusWriter is a mock implementation of zimtocorpus.CorpusWriter.
type CorpusWriter struct {
	WriteRecordFn func(rendered string) error
	CloseFn       func() error
}

func (w *CorpusWriter) WriteRecord(rendered string) error {
	return w.WriteRecordFn(rendered)
}

func (w *CorpusWriter) Close() error {
	return w.CloseFn()
}

var _ zimtocorpus.CorpusFactory = (*CorpusFactory)(nil)

// CorpusFactory is a mock implementation of zimtocorpus.CorpusFactory.
type CorpusFactory struct {
	CreateFn func(path string) (zimtocorpus.CorpusWriter, error)
}

func (f *CorpusFactory) Create(path string) (zimtocorpus.CorpusWriter, error) {
	return f.CreateFn(path)
}
