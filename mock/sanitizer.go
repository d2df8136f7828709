package mock

import "github.com/cybernic/zimtocorpus"

var _ zimtocorpus.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of zimtocorpus.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(fragment string) string
}

func (s *Sanitizer) Sanitize(fragment string) string {
	return s.SanitizeFn(fragment)
}

// PassthroughSanitizer returns a Sanitizer that leaves fragments untouched.
func PassthroughSanitizer() *Sanitizer {
	return &Sanitizer{SanitizeFn: func(fragment string) string { return fragment }}
}
