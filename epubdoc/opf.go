package epubdoc

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Metadata holds the book's Dublin Core metadata from the package
// document.
type Metadata struct {
	Title      string
	Creators   []string
	Language   string
	Identifier string
	Publisher  string
	Date       string
	Subjects   []string
}

// manifestItem is one file declared by the package document.
type manifestItem struct {
	ID         string `xml:"id,attr"`
	Href       string `xml:"href,attr"`
	MediaType  string `xml:"media-type,attr"`
	Properties string `xml:"properties,attr"`
}

type packageDoc struct {
	Version  string `xml:"version,attr"`
	Metadata struct {
		Title      []string `xml:"title"`
		Creator    []string `xml:"creator"`
		Language   []string `xml:"language"`
		Identifier []string `xml:"identifier"`
		Publisher  []string `xml:"publisher"`
		Date       []string `xml:"date"`
		Subject    []string `xml:"subject"`
	} `xml:"metadata"`
	Manifest struct {
		Items []manifestItem `xml:"item"`
	} `xml:"manifest"`
	Spine struct {
		ItemRefs []struct {
			IDRef  string `xml:"idref,attr"`
			Linear string `xml:"linear,attr"`
		} `xml:"itemref"`
	} `xml:"spine"`
}

// spineEntry is a content document in reading order, with its href
// resolved against the package document's directory.
type spineEntry struct {
	id   string
	href string
}

// parsePackage reads the OPF package document and returns the book
// metadata, the linear spine in reading order, and the manifest keyed
// by item ID.
func parsePackage(a *archive, opfPath string) (Metadata, []spineEntry, map[string]manifestItem, error) {
	var pkg packageDoc
	if err := a.readXML(opfPath, &pkg); err != nil {
		return Metadata{}, nil, nil, fmt.Errorf("epubdoc: reading package document: %w", err)
	}

	meta := Metadata{
		Title:      first(pkg.Metadata.Title),
		Language:   first(pkg.Metadata.Language),
		Identifier: first(pkg.Metadata.Identifier),
		Publisher:  first(pkg.Metadata.Publisher),
		Date:       first(pkg.Metadata.Date),
	}
	for _, c := range pkg.Metadata.Creator {
		if c = strings.TrimSpace(c); c != "" {
			meta.Creators = append(meta.Creators, c)
		}
	}
	for _, s := range pkg.Metadata.Subject {
		if s = strings.TrimSpace(s); s != "" {
			meta.Subjects = append(meta.Subjects, s)
		}
	}

	manifest := make(map[string]manifestItem, len(pkg.Manifest.Items))
	for _, item := range pkg.Manifest.Items {
		manifest[item.ID] = item
	}

	base := path.Dir(opfPath)
	var spine []spineEntry
	for _, ref := range pkg.Spine.ItemRefs {
		if ref.Linear == "no" {
			continue
		}
		item, ok := manifest[ref.IDRef]
		if !ok {
			continue
		}
		spine = append(spine, spineEntry{id: item.ID, href: resolveHref(base, item.Href)})
	}
	if len(spine) == 0 {
		return Metadata{}, nil, nil, ErrEmptySpine
	}

	return meta, spine, manifest, nil
}

func first(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return strings.TrimSpace(vals[0])
}

// resolveHref URL-decodes a manifest href and joins it to the package
// document's directory.
func resolveHref(base, href string) string {
	if decoded, err := url.QueryUnescape(href); err == nil {
		href = decoded
	}
	if base == "." || base == "" {
		return href
	}
	return path.Join(base, href)
}
