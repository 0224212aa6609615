// Package page locates the episode sections inside a show page and extracts
// their text, one logical line per line.
package page

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nextep-cli/nextep/constant"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrEmpty is wrapped by MarkupError when the page has no content at all.
var ErrEmpty = errors.New("empty page")

// MarkupError reports a page that could not be interpreted as HTML.
type MarkupError struct {
	Err error
}

func (e *MarkupError) Error() string {
	return fmt.Sprintf("uninterpretable markup: %v", e.Err)
}

func (e *MarkupError) Unwrap() error {
	return e.Err
}

// Sections holds the text of the previous and next episode regions.
// A region missing from the page is None.
type Sections struct {
	Previous mo.Option[string]
	Next     mo.Option[string]
}

// Locate parses markup and extracts the episode sections.
func Locate(markup []byte) (Sections, error) {
	if len(bytes.TrimSpace(markup)) == 0 {
		return Sections{}, &MarkupError{Err: ErrEmpty}
	}

	root, err := html.Parse(bytes.NewReader(markup))
	if err != nil {
		return Sections{}, &MarkupError{Err: err}
	}

	doc := goquery.NewDocumentFromNode(root)
	return Sections{
		Previous: section(doc, constant.PreviousEpisodeID),
		Next:     section(doc, constant.NextEpisodeID),
	}, nil
}

func section(doc *goquery.Document, id string) mo.Option[string] {
	selection := doc.Find("#" + id).First()
	if selection.Length() == 0 {
		return mo.None[string]()
	}

	return mo.Some(Text(selection.Get(0)))
}

// blocks are the elements that start a new line of text.
var blocks = map[atom.Atom]bool{
	atom.Div: true, atom.P: true, atom.Li: true, atom.Ul: true, atom.Ol: true,
	atom.Tr: true, atom.Td: true, atom.Th: true, atom.Table: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Section: true, atom.Article: true, atom.Header: true, atom.Footer: true,
	atom.Dl: true, atom.Dt: true, atom.Dd: true, atom.Hr: true,
}

// Text returns the text content of node. Line breaks and block elements
// end a line; lines are trimmed and blank lines dropped.
func Text(node *html.Node) string {
	var b strings.Builder
	walk(&b, node)

	lines := lo.FilterMap(strings.Split(b.String(), "\n"), func(line string, _ int) (string, bool) {
		line = strings.Join(strings.Fields(line), " ")
		return line, line != ""
	})
	return strings.Join(lines, "\n")
}

func walk(b *strings.Builder, node *html.Node) {
	switch node.Type {
	case html.TextNode:
		b.WriteString(node.Data)
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		switch node.DataAtom {
		case atom.Script, atom.Style, atom.Noscript:
			return
		case atom.Br:
			b.WriteByte('\n')
			return
		}
	}

	block := node.Type == html.ElementNode && blocks[node.DataAtom]
	if block {
		b.WriteByte('\n')
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		walk(b, child)
	}

	if block {
		b.WriteByte('\n')
	}
}
