package zimtocorpus

// Sanitizer strips disallowed markup from an HTML fragment. Implementations
// decide the allowed element and attribute set; callers get back a fragment
// that is safe to embed verbatim in the corpus.
type Sanitizer interface {
	Sanitize(fragment string) string
}
