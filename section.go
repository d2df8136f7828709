package zimtocorpus

import (
	"strconv"
	"strings"
)

// FragmentKind classifies a piece of section content.
type FragmentKind string

// Fragment kinds. Lists are recognized structures kept whole; everything
// else is carried as an opaque block or bare text.
const (
	FragmentList  FragmentKind = "list"
	FragmentBlock FragmentKind = "block"
	FragmentText  FragmentKind = "text"
)

// Fragment is one piece of non-header, non-subsection content inside a
// section, in minimal sanitized HTML form.
type Fragment struct {
	Kind FragmentKind `json:"kind"`
	HTML string       `json:"html"`
}

// Section is one titled structural unit recovered from an article. Children
// and Content preserve source document order.
type Section struct {
	Title    string     `json:"title"`
	Level    int        `json:"level"`
	Content  []Fragment `json:"content,omitempty"`
	Children []*Section `json:"children,omitempty"`
}

// Validate returns an error if the section or any descendant is missing a
// title. A section is never materialized without one; this guards the
// boundary before serialization.
func (s *Section) Validate() error {
	if s.Title == "" {
		return Errorf(ESTRUCTURE, "section has no title")
	}
	for _, child := range s.Children {
		if err := child.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of sections in the subtree rooted at s,
// including s itself.
func (s *Section) Count() int {
	n := 1
	for _, child := range s.Children {
		n += child.Count()
	}
	return n
}

// writeHTML appends the minimal HTML form of the section to b, indented by
// depth levels. The title header is emitted inline so round-tripping the
// rendering preserves title text exactly.
func (s *Section) writeHTML(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString("<section>\n")

	b.WriteString(indent)
	b.WriteString("  ")
	b.WriteString(headerTag(s.Level, s.Title))
	b.WriteString("\n")

	for _, f := range s.Content {
		b.WriteString(indent)
		b.WriteString("  ")
		b.WriteString(f.HTML)
		b.WriteString("\n")
	}

	for _, child := range s.Children {
		child.writeHTML(b, depth+1)
	}

	b.WriteString(indent)
	b.WriteString("</section>\n")
}

// headerTag renders a header element for the given level and title. Header
// depth is not capped at 6; any h<digits> element round-trips through the
// rendering unchanged.
func headerTag(level int, title string) string {
	if level < 1 {
		level = 1
	}
	name := "h" + strconv.Itoa(level)
	return "<" + name + ">" + escapeText(title) + "</" + name + ">"
}

// escapeText escapes the characters that are unsafe in HTML text content.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)
