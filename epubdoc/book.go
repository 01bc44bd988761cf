// Package epubdoc opens EPUB books as paginated, reflowable documents
// for the view engine. The linear spine is extracted chapter by
// chapter and paginated as one continuous flow through the htmldoc
// layout, so a Book offers the same geometry and relayout surface an
// HTML document does.
//
// DRM-protected books are rejected at open time. Font obfuscation is
// not treated as DRM.
package epubdoc

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"

	"github.com/tsawler/folio/htmldoc"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/text"
)

// Book is an EPUB opened for viewing. Page numbers run across chapter
// boundaries the way they do for any reflowable document.
type Book struct {
	meta  Metadata
	toc   []TOCEntry
	spine []spineEntry
	doc   *htmldoc.Document
	rc    *zip.ReadCloser
}

// Open opens an EPUB file with the default layout configuration.
func Open(filename string) (*Book, error) {
	return OpenWithConfig(filename, htmldoc.DefaultLayoutConfig())
}

// OpenWithConfig opens an EPUB file and paginates it with a custom
// layout configuration.
func OpenWithConfig(filename string, cfg htmldoc.LayoutConfig) (*Book, error) {
	rc, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("epubdoc: opening archive: %w", err)
	}

	b, err := open(&rc.Reader, cfg)
	if err != nil {
		rc.Close()
		return nil, err
	}
	b.rc = rc
	return b, nil
}

// OpenReader opens an EPUB from an io.ReaderAt, for books that are not
// files on disk.
func OpenReader(ra io.ReaderAt, size int64) (*Book, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("epubdoc: opening archive: %w", err)
	}
	return open(zr, htmldoc.DefaultLayoutConfig())
}

func open(zr *zip.Reader, cfg htmldoc.LayoutConfig) (*Book, error) {
	a := newArchive(zr)
	if err := a.checkMimetype(); err != nil {
		return nil, err
	}
	if err := a.checkDRM(); err != nil {
		return nil, err
	}

	opfPath, err := a.packagePath()
	if err != nil {
		return nil, err
	}
	meta, spine, manifest, err := parsePackage(a, opfPath)
	if err != nil {
		return nil, err
	}

	// Spine entries whose files are missing are skipped rather than
	// failing the whole book.
	readers := make([]io.Reader, 0, len(spine))
	kept := make([]spineEntry, 0, len(spine))
	for _, s := range spine {
		data, err := a.read(s.href)
		if err != nil {
			continue
		}
		readers = append(readers, bytes.NewReader(data))
		kept = append(kept, s)
	}
	if len(readers) == 0 {
		return nil, ErrEmptySpine
	}

	doc, err := htmldoc.OpenReaders(readers, cfg)
	if err != nil {
		return nil, err
	}

	return &Book{
		meta:  meta,
		toc:   tableOfContents(a, manifest, path.Dir(opfPath), kept),
		spine: kept,
		doc:   doc,
	}, nil
}

// Close releases the underlying file, if the book was opened from one.
func (b *Book) Close() error {
	if b.rc != nil {
		return b.rc.Close()
	}
	return nil
}

// Metadata returns the book's package metadata.
func (b *Book) Metadata() Metadata {
	return b.meta
}

// TableOfContents returns the book's navigation entries.
func (b *Book) TableOfContents() []TOCEntry {
	return b.toc
}

// ChapterCount returns the number of spine documents that were read.
func (b *Book) ChapterCount() int {
	return len(b.spine)
}

// RightToLeft reports whether the book's text reads right to left,
// detected from the paginated flow. Use it to seed the viewer's pan
// settings.
func (b *Book) RightToLeft() bool {
	return text.RightToLeft(b.doc.Text())
}

// PageCount returns the number of pages at the current layout.
func (b *Book) PageCount() int {
	return b.doc.PageCount()
}

// NativePageSize returns the layout page size.
func (b *Book) NativePageSize(page int) model.Size {
	return b.doc.NativePageSize(page)
}

// UsedBBox returns the content extent of the page at the given scale.
func (b *Book) UsedBBox(page int, scale float64) (model.BBox, bool) {
	return b.doc.UsedBBox(page, scale)
}

// ContentBlockAt returns the flow element block covering the given
// page-fraction position.
func (b *Book) ContentBlockAt(page int, pos model.Point) (model.BBox, bool) {
	return b.doc.ContentBlockAt(page, pos)
}

// Relayout re-paginates the whole book at a new base font size.
func (b *Book) Relayout(fontSize float64) error {
	return b.doc.Relayout(fontSize)
}
