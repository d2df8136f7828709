// Package htmltomarkdown renders documents as Markdown for corpora consumed
// by plain-text tooling.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/cybernic/zimtocorpus"
)

// Ensure Renderer implements zimtocorpus.Renderer at compile time.
var _ zimtocorpus.Renderer = (*Renderer)(nil)

// Renderer wraps html-to-markdown to render documents as Markdown.
type Renderer struct {
	conv *converter.Converter
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Renderer{conv: conv}
}

// Render converts the document's minimal HTML into Markdown, with the page
// title as a top-level heading.
func (r *Renderer) Render(doc *zimtocorpus.Document) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}

	md, err := r.conv.ConvertString(doc.HTML())
	if err != nil {
		return "", err
	}
	md = strings.TrimSpace(md)

	var b strings.Builder
	if doc.Title != "" {
		b.WriteString("# ")
		b.WriteString(doc.Title)
		b.WriteString("\n")
		if md != "" {
			b.WriteString("\n")
		}
	}
	if md != "" {
		b.WriteString(md)
		b.WriteString("\n")
	}
	return b.String(), nil
}
