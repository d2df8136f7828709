package zimtocorpus

// Renderer produces the per-record textual form written to the corpus.
type Renderer interface {
	// Render serializes one document. The result is deterministic for a
	// given document.
	Render(doc *Document) (string, error)
}

// Ensure HTMLRenderer implements Renderer at compile time.
var _ Renderer = (*HTMLRenderer)(nil)

// HTMLRenderer renders documents as their minimal structural HTML. This is
// the default corpus form.
type HTMLRenderer struct{}

// Render returns the minimal HTML rendering of the document.
func (HTMLRenderer) Render(doc *Document) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}
	return doc.HTML(), nil
}
