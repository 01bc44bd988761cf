package format

import (
	"errors"
	"fmt"
	"os"

	"github.com/tsawler/folio"
	"github.com/tsawler/folio/epubdoc"
	"github.com/tsawler/folio/htmldoc"
)

// ErrUnsupported is returned for files that are neither EPUB nor HTML.
var ErrUnsupported = errors.New("format: unsupported document format")

// Open opens a document as a view geometry source, detecting the
// format from the file content and falling back to the extension.
// EPUB books come back as *epubdoc.Book, HTML files as
// *htmldoc.Document; both satisfy the view engine's geometry and
// relayout capabilities.
func Open(path string) (folio.DocumentGeometry, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Unknown, fmt.Errorf("format: opening file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, Unknown, fmt.Errorf("format: stat: %w", err)
	}

	detected, err := DetectFromReader(f, info.Size())
	if err != nil || detected == Unknown {
		detected = Detect(path)
	}

	switch detected {
	case EPUB:
		book, err := epubdoc.Open(path)
		if err != nil {
			return nil, EPUB, err
		}
		return book, EPUB, nil
	case HTML:
		doc, err := htmldoc.Open(path)
		if err != nil {
			return nil, HTML, err
		}
		return doc, HTML, nil
	default:
		return nil, Unknown, ErrUnsupported
	}
}
