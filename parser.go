package zimtocorpus

// Parser reconstructs the structural document from one raw HTML record.
// Implementations hide markup parsing, chrome stripping, and section-tree
// recovery.
type Parser interface {
	// Parse extracts the section hierarchy of one article.
	// Returns an ESTRUCTURE error if a section has no discoverable title;
	// a document without sections parses to an empty hierarchy.
	Parse(html string) (*Document, error)
}
