// Package goquery provides a goquery-based implementation of
// zimtocorpus.Parser that recovers the section hierarchy of one article
// from its raw dump HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cybernic/zimtocorpus"
)

// DefaultContentSelector selects the element whose direct section children
// form the top level of the article.
const DefaultContentSelector = "body"

// defaultChrome is removed from the tree before extraction. Zim dumps carry
// the page's scripting, styling and navigation scaffolding, none of which is
// structural content.
var defaultChrome = []string{
	"script", "style", "link", "meta", "noscript",
	"nav", "header", "footer",
	".mw-editsection",
}

// Ensure Parser implements zimtocorpus.Parser at compile time.
var _ zimtocorpus.Parser = (*Parser)(nil)

// Parser turns one raw HTML record into a structural document. Navigation
// chrome is dropped with CSS selectors; the surviving content fragments are
// run through the sanitizer.
type Parser struct {
	sanitizer zimtocorpus.Sanitizer
	content   string
	chrome    []string
}

// Option configures a Parser.
type Option func(*Parser)

// WithContentSelector sets the selector for the element holding the
// top-level sections. Defaults to DefaultContentSelector.
func WithContentSelector(selector string) Option {
	return func(p *Parser) {
		p.content = selector
	}
}

// WithChromeSelectors replaces the set of selectors removed from the tree
// before extraction.
func WithChromeSelectors(selectors ...string) Option {
	return func(p *Parser) {
		p.chrome = selectors
	}
}

// NewParser creates a new Parser that cleans fragments with sanitizer.
func NewParser(sanitizer zimtocorpus.Sanitizer, opts ...Option) *Parser {
	p := &Parser{
		sanitizer: sanitizer,
		content:   DefaultContentSelector,
		chrome:    defaultChrome,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts the titled section hierarchy from one raw HTML record.
// A record without any section elements yields a document with no sections;
// a section without a header among its direct children is a structural
// error.
func (p *Parser) Parse(raw string) (*zimtocorpus.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, zimtocorpus.Errorf(zimtocorpus.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, selector := range p.chrome {
		doc.Find(selector).Remove()
	}

	title := strings.TrimSpace(doc.Find("head > title").First().Text())

	root := doc.Find(p.content).First()
	if root.Length() == 0 {
		return nil, zimtocorpus.Errorf(zimtocorpus.EINVALID, "no %q element in record", p.content)
	}

	sections, err := p.sections(root.Get(0))
	if err != nil {
		return nil, err
	}

	return &zimtocorpus.Document{Title: title, Sections: sections}, nil
}
