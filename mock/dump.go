package mock

import "github.com/cybernic/zimtocorpus"

var _ zimtocorpus.DumpReader = (*DumpReader)(nil)

// DumpReader is a mock implementation of zimtocorpus.DumpReader.
type DumpReader struct {
	NextFn  func() (string, error)
	CloseFn func() error
}

func (r *DumpReader) Next() (string, error) {
	return r.NextFn()
}

func (r *DumpReader) Close() error {
	return r.CloseFn()
}

var _ zimtocorpus.DumpOpener = (*DumpOpener)(nil)

// DumpOpener is a mock implementation of zimtocorpus.DumpOpener.
type DumpOpener struct {
	OpenFn func(path string) (zimtocorpus.DumpReader, error)
}

func (o *DumpOpener) Open(path string) (zimtocorpus.DumpReader, error) {
	return o.OpenFn(path)
}
