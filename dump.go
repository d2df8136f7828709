package zimtocorpus

// DumpReader yields the raw HTML records of one static-dump archive, in
// archive order. Next returns io.EOF once the sequence is cleanly exhausted
// and an ETRUNCATED error if the archive ends mid-record; both end the
// sequence. Readers are single-use and not safe for concurrent use.
type DumpReader interface {
	// Next returns the next raw HTML record.
	Next() (string, error)

	// Close releases the underlying file handle.
	Close() error
}

// DumpOpener opens archive files for reading.
// Implementations hide the on-disk record format.
type DumpOpener interface {
	Open(path string) (DumpReader, error)
}
