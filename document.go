package zimtocorpus

import "strings"

// Document is the root structural object recovered from one article: the
// page title plus the ordered top-level sections. A Document is built in one
// piece during parsing, serialized to a single corpus line, and discarded;
// it is never shared across records.
type Document struct {
	Title    string     `json:"title"`
	Sections []*Section `json:"sections"`
}

// Validate returns an error if any section in the document is missing a
// title. A document with no sections at all is valid.
func (d *Document) Validate() error {
	for _, s := range d.Sections {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SectionCount returns the total number of sections reachable from the
// document root.
func (d *Document) SectionCount() int {
	n := 0
	for _, s := range d.Sections {
		n += s.Count()
	}
	return n
}

// HTML returns the minimal structural rendering of the document: an
// html/head/title skeleton whose body nests one <section> element per
// recovered section. The output is deterministic for a given document and
// parses back to an equivalent hierarchy.
func (d *Document) HTML() string {
	var b strings.Builder
	b.WriteString("<html>\n")
	b.WriteString("  <head>\n")
	b.WriteString("    <title>")
	b.WriteString(escapeText(d.Title))
	b.WriteString("</title>\n")
	b.WriteString("  </head>\n")
	b.WriteString("  <body>\n")
	for _, s := range d.Sections {
		s.writeHTML(&b, 2)
	}
	b.WriteString("  </body>\n")
	b.WriteString("</html>\n")
	return b.String()
}
