package zimtocorpus

import "context"

// Outcome reports the result of converting a single archive file.
type Outcome struct {
	// Input is the path of the archive that was converted.
	Input string `json:"input"`

	// Output is the path of the corpus file that was written.
	Output string `json:"output"`

	// Converted is the number of documents written to the output before the
	// conversion ended, whether it ended cleanly or not.
	Converted int `json:"converted"`

	// Bytes is the total size of the rendered records before compression.
	Bytes int `json:"bytes"`

	// Checksum is a hex digest over the rendered records, in order. Empty
	// when no records were written.
	Checksum string `json:"checksum,omitempty"`

	// Truncated reports that the archive ended mid-record. The documents
	// read before the cut are kept and counted in Converted.
	Truncated bool `json:"truncated,omitempty"`

	// Err is the fatal error that stopped the conversion, if any. Truncation
	// is not fatal and does not set Err.
	Err error `json:"-"`
}

// FileConverter converts one archive file into one corpus file.
type FileConverter interface {
	// ConvertFile reads every document from the archive at inputPath and
	// writes the rendered records to outputPath. On a fatal error the
	// returned outcome is still non-nil and describes the progress made
	// before the failure; whatever was written remains on disk.
	ConvertFile(ctx context.Context, inputPath, outputPath string) (*Outcome, error)
}
