package goquery

import (
	"slices"
	"strings"

	"github.com/cybernic/zimtocorpus"
	"golang.org/x/net/html"
)

// sections collects the section elements among parent's direct children into
// completed nodes. Siblings are visited back to front so that the most
// deeply nested, most recently opened section is completed before the
// sections preceding it can be assembled; the collected list is reversed
// afterwards to restore source order.
func (p *Parser) sections(parent *html.Node) ([]*zimtocorpus.Section, error) {
	var sections []*zimtocorpus.Section
	for child := parent.LastChild; child != nil; child = child.PrevSibling {
		if child.Type != html.ElementNode || child.Data != "section" {
			continue
		}
		section, err := p.section(child)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	slices.Reverse(sections)
	return sections, nil
}

// section builds one titled node from a section element. The backward
// sibling walk sees the forward-first header last, so later title
// assignments win.
func (p *Parser) section(node *html.Node) (*zimtocorpus.Section, error) {
	section := &zimtocorpus.Section{}
	titled := false

	for child := node.LastChild; child != nil; child = child.PrevSibling {
		switch {
		case child.Type == html.TextNode:
			text := strings.TrimSpace(child.Data)
			if text == "" {
				continue
			}
			section.Content = append(section.Content, zimtocorpus.Fragment{
				Kind: zimtocorpus.FragmentText,
				HTML: html.EscapeString(text),
			})

		case child.Type != html.ElementNode:
			continue

		case child.Data == "section":
			sub, err := p.section(child)
			if err != nil {
				return nil, err
			}
			section.Children = append(section.Children, sub)

		default:
			if level, ok := headerLevel(child.Data); ok {
				section.Title = strings.TrimSpace(nodeText(child))
				section.Level = level
				titled = true
				continue
			}
			fragment := p.fragment(child)
			if fragment.HTML == "" {
				continue
			}
			section.Content = append(section.Content, fragment)
		}
	}

	if !titled {
		return nil, zimtocorpus.Errorf(zimtocorpus.ESTRUCTURE, "no header in section")
	}

	slices.Reverse(section.Children)
	slices.Reverse(section.Content)
	return section, nil
}

// fragment renders one content element and runs it through the sanitizer.
// List containers stay opaque; everything else becomes a block.
func (p *Parser) fragment(node *html.Node) zimtocorpus.Fragment {
	kind := zimtocorpus.FragmentBlock
	if node.Data == "ul" || node.Data == "ol" {
		kind = zimtocorpus.FragmentList
	}

	var b strings.Builder
	if err := html.Render(&b, node); err != nil {
		return zimtocorpus.Fragment{}
	}
	return zimtocorpus.Fragment{Kind: kind, HTML: p.sanitizer.Sanitize(b.String())}
}

// headerLevel reports whether name is a header element and at which depth.
// A header is "h" followed by one or more digits, with no fixed upper bound
// on the depth.
func headerLevel(name string) (int, bool) {
	if len(name) < 2 || (name[0] != 'h' && name[0] != 'H') {
		return 0, false
	}
	level := 0
	for i := 1; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		level = level*10 + int(c-'0')
	}
	return level, true
}

// nodeText returns the concatenated text of every text node under n.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
