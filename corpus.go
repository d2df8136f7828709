package zimtocorpus

// CorpusWriter appends rendered records to a single corpus file. The file
// exists from the moment the writer is created, so every input artifact maps
// to exactly one output artifact even when no records survive; whatever was
// written before a failure stays on disk.
type CorpusWriter interface {
	// WriteRecord appends one rendered document as a single line.
	WriteRecord(rendered string) error

	// Close flushes and finalizes the corpus file. It must be called even
	// when no records were written.
	Close() error
}

// CorpusFactory creates corpus writers for output paths.
type CorpusFactory interface {
	Create(path string) (CorpusWriter, error)
}
