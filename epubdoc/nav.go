package epubdoc

import (
	"bytes"
	"encoding/xml"
	"strings"

	"golang.org/x/net/html"
)

// TOCEntry is one entry in the book's navigation tree.
type TOCEntry struct {
	Title    string
	Href     string
	Children []TOCEntry
}

// tableOfContents builds the navigation tree. EPUB 3 nav documents
// take priority, then EPUB 2 NCX files, then a flat list derived from
// the spine.
func tableOfContents(a *archive, manifest map[string]manifestItem, base string, spine []spineEntry) []TOCEntry {
	for _, item := range manifest {
		if strings.Contains(item.Properties, "nav") {
			if data, err := a.read(resolveHref(base, item.Href)); err == nil {
				if entries := parseNavDoc(data); len(entries) > 0 {
					return entries
				}
			}
		}
	}
	for _, item := range manifest {
		if item.MediaType == "application/x-dtbncx+xml" {
			if data, err := a.read(resolveHref(base, item.Href)); err == nil {
				if entries := parseNCX(data); len(entries) > 0 {
					return entries
				}
			}
		}
	}

	entries := make([]TOCEntry, 0, len(spine))
	for _, s := range spine {
		entries = append(entries, TOCEntry{Title: s.id, Href: s.href})
	}
	return entries
}

// parseNavDoc reads an EPUB 3 nav document: the first ordered list
// inside the nav element typed "toc".
func parseNavDoc(data []byte) []TOCEntry {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	nav := findTOCNav(root)
	if nav == nil {
		return nil
	}
	ol := findList(nav)
	if ol == nil {
		return nil
	}
	return listEntries(ol)
}

func findTOCNav(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "nav" {
		for _, attr := range n.Attr {
			if (attr.Key == "epub:type" || attr.Key == "type") && strings.Contains(attr.Val, "toc") {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if nav := findTOCNav(c); nav != nil {
			return nav
		}
	}
	return nil
}

func findList(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "ol" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if ol := findList(c); ol != nil {
			return ol
		}
	}
	return nil
}

// listEntries converts the li children of an ol into TOC entries,
// recursing into nested lists.
func listEntries(ol *html.Node) []TOCEntry {
	var entries []TOCEntry
	for li := ol.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.Data != "li" {
			continue
		}
		var e TOCEntry
		for c := li.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "a":
				e.Title = nodeText(c)
				for _, attr := range c.Attr {
					if attr.Key == "href" {
						e.Href = attr.Val
					}
				}
			case "span":
				if e.Title == "" {
					e.Title = nodeText(c)
				}
			case "ol":
				e.Children = listEntries(c)
			}
		}
		if e.Title != "" || e.Href != "" {
			entries = append(entries, e)
		}
	}
	return entries
}

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
	return strings.Join(strings.Fields(b.String()), " ")
}

type ncxPoint struct {
	Label   string `xml:"navLabel>text"`
	Content struct {
		Src string `xml:"src,attr"`
	} `xml:"content"`
	Children []ncxPoint `xml:"navPoint"`
}

type ncxDoc struct {
	Points []ncxPoint `xml:"navMap>navPoint"`
}

// parseNCX reads an EPUB 2 NCX navigation file.
func parseNCX(data []byte) []TOCEntry {
	var ncx ncxDoc
	if err := xml.Unmarshal(data, &ncx); err != nil {
		return nil
	}
	return ncxEntries(ncx.Points)
}

func ncxEntries(points []ncxPoint) []TOCEntry {
	var entries []TOCEntry
	for _, p := range points {
		entries = append(entries, TOCEntry{
			Title:    strings.TrimSpace(p.Label),
			Href:     p.Content.Src,
			Children: ncxEntries(p.Children),
		})
	}
	return entries
}
