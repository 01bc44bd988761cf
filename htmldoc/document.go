// Package htmldoc provides the reflowable-document geometry source for
// the view engine, backed by HTML content.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/model"
)

// flowElement is one block-level piece of document flow.
type flowElement struct {
	text    string
	heading int // 1-6 for headings, 0 otherwise
}

// Document is a reflowable HTML document paginated at a given viewport
// and font size. It implements the view engine's DocumentGeometry and
// Reflowable capabilities: changing the font size re-lays the flow out
// into a fresh set of pages.
type Document struct {
	title    string
	elements []flowElement
	cfg      LayoutConfig
	geom     *layout.Geometry
}

// Open opens an HTML file and paginates it with default layout
// configuration.
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses and paginates HTML from an io.Reader.
func OpenReader(r io.Reader) (*Document, error) {
	return OpenReaderWithConfig(r, DefaultLayoutConfig())
}

// OpenReaderWithConfig parses HTML and paginates it with custom layout
// configuration.
func OpenReaderWithConfig(r io.Reader, cfg LayoutConfig) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	d := &Document{cfg: cfg}
	d.title = extractTitle(root)
	d.extractFlow(findElement(root, "body"))
	d.geom = layout.NewGeometry(d.paginate())
	return d, nil
}

// OpenReaders parses several HTML fragments in order and paginates
// the combined flow as one continuous document. The title comes from
// the first fragment that carries one.
func OpenReaders(rs []io.Reader, cfg LayoutConfig) (*Document, error) {
	d := &Document{cfg: cfg}
	for _, r := range rs {
		root, err := html.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("parsing HTML: %w", err)
		}
		if d.title == "" {
			d.title = extractTitle(root)
		}
		d.extractFlow(findElement(root, "body"))
	}
	d.geom = layout.NewGeometry(d.paginate())
	return d, nil
}

// Title returns the document title from the HTML head, if any.
func (d *Document) Title() string {
	return d.title
}

// PageCount returns the number of pages at the current layout.
func (d *Document) PageCount() int {
	return d.geom.PageCount()
}

// NativePageSize returns the layout page size; all reflowed pages share
// the configured dimensions.
func (d *Document) NativePageSize(page int) model.Size {
	return d.geom.NativePageSize(page)
}

// UsedBBox returns the content extent of the page at the given scale.
func (d *Document) UsedBBox(page int, scale float64) (model.BBox, bool) {
	return d.geom.UsedBBox(page, scale)
}

// ContentBlockAt returns the flow element block covering the given
// page-fraction position.
func (d *Document) ContentBlockAt(page int, pos model.Point) (model.BBox, bool) {
	return d.geom.ContentBlockAt(page, pos)
}

// Text returns the document's flow text in reading order, one line
// per element.
func (d *Document) Text() string {
	parts := make([]string, 0, len(d.elements))
	for _, e := range d.elements {
		parts = append(parts, e.text)
	}
	return strings.Join(parts, "\n")
}

// Relayout re-paginates the document at a new base font size.
func (d *Document) Relayout(fontSize float64) error {
	if fontSize <= 0 {
		return fmt.Errorf("relayout: font size must be positive, got %f", fontSize)
	}
	d.cfg.FontSize = fontSize
	d.geom = layout.NewGeometry(d.paginate())
	return nil
}

// extractFlow collects block-level text elements from the body in
// document order.
func (d *Document) extractFlow(n *html.Node) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			if text := textContent(n); text != "" {
				d.elements = append(d.elements, flowElement{
					text:    text,
					heading: int(n.Data[1] - '0'),
				})
			}
			return
		case "p", "li", "pre", "blockquote":
			if text := textContent(n); text != "" {
				d.elements = append(d.elements, flowElement{text: text})
			}
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.extractFlow(c)
	}
}

func extractTitle(root *html.Node) string {
	if t := findElement(root, "title"); t != nil {
		return textContent(t)
	}
	return ""
}

// shouldSkipElement returns true for non-content elements.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math",
		"iframe", "object", "embed", "nav", "aside":
		return true
	}
	return false
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// textContent extracts the trimmed text content of a node and its
// descendants, skipping non-content subtrees.
func textContent(n *html.Node) string {
	var b strings.Builder
	textContentRecursive(n, &b)
	return strings.Join(strings.Fields(b.String()), " ")
}

func textContentRecursive(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			b.WriteString(" ")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textContentRecursive(c, b)
	}
}
