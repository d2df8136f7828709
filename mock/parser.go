package mock

import "github.com/cybernic/zimtocorpus"

var _ zimtocorpus.Parser = (*Parser)(nil)

// Parser is a mock implementation of zimtocorpus.Parser.
type Parser struct {
	ParseFn func(html string) (*zimtocorpus.Document, error)
}

func (p *Parser) Parse(html string) (*zimtocorpus.Document, error) {
	return p.ParseFn(html)
}
