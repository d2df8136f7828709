// Package bluemonday sanitizes extracted content fragments down to the
// minimal structural markup kept in the corpus.
package bluemonday

import (
	"strings"

	"github.com/cybernic/zimtocorpus"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements zimtocorpus.Sanitizer at compile time.
var _ zimtocorpus.Sanitizer = (*Sanitizer)(nil)

// Sanitizer wraps a bluemonday policy that keeps structural elements and
// drops styling, scripting and every attribute except link targets.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a new Sanitizer with the structural allowlist.
func NewSanitizer() *Sanitizer {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"p", "br",
		"ul", "ol", "li",
		"dl", "dt", "dd",
		"b", "strong", "i", "em", "code", "pre",
		"blockquote", "q", "cite",
		"sub", "sup", "span",
		"table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption",
		"figure", "figcaption",
		"a",
	)
	p.AllowAttrs("href").OnElements("a")
	return &Sanitizer{policy: p}
}

// Sanitize strips disallowed markup from the fragment. Text inside dropped
// elements is kept, except for script and style bodies.
func (s *Sanitizer) Sanitize(fragment string) string {
	return strings.TrimSpace(s.policy.Sanitize(fragment))
}
