package zim

import "github.com/cybernic/zimtocorpus"

// Ensure Opener implements zimtocorpus.DumpOpener at compile time.
var _ zimtocorpus.DumpOpener = (*Opener)(nil)

// Opener opens archive files for the conversion pipeline.
type Opener struct{}

// Open opens the archive at path as a record stream.
func (Opener) Open(path string) (zimtocorpus.DumpReader, error) {
	return Open(path)
}
