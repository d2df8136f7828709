package mock

import "github.com/cybernic/zimtocorpus"

var _ zimtocorpus.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of zimtocorpus.Renderer.
type Renderer struct {
	RenderFn func(doc *zimtocorpus.Document) (string, error)
}

func (r *Renderer) Render(doc *zimtocorpus.Document) (string, error) {
	return r.RenderFn(doc)
}
