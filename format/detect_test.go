package format

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"book.epub", EPUB},
		{"Book.EPUB", EPUB},
		{"page.html", HTML},
		{"page.htm", HTML},
		{"chapter.xhtml", HTML},
		{"document.pdf", Unknown},
		{"noextension", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	if EPUB.String() != "EPUB" {
		t.Errorf("EPUB.String() = %q", EPUB.String())
	}
	if HTML.Extension() != ".html" {
		t.Errorf("HTML.Extension() = %q", HTML.Extension())
	}
	if Unknown.String() != "Unknown" {
		t.Errorf("Unknown.String() = %q", Unknown.String())
	}
}

// epubArchive builds a minimal EPUB zip in memory.
func epubArchive(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	mw, err := w.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		t.Fatal(err)
	}
	mw.Write([]byte("application/epub+zip"))

	cw, err := w.Create("META-INF/container.xml")
	if err != nil {
		t.Fatal(err)
	}
	cw.Write([]byte(`<?xml version="1.0"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`))

	ow, err := w.Create("content.opf")
	if err != nil {
		t.Fatal(err)
	}
	ow.Write([]byte(`<?xml version="1.0"?>
<package xmlns="http://www.idpf.org/2007/opf" version="3.0">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/"><dc:title>T</dc:title></metadata>
  <manifest><item id="c1" href="c1.xhtml" media-type="application/xhtml+xml"/></manifest>
  <spine><itemref idref="c1"/></spine>
</package>`))

	hw, err := w.Create("c1.xhtml")
	if err != nil {
		t.Fatal(err)
	}
	hw.Write([]byte(`<html><body><p>Hello.</p></body></html>`))

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	return buf.Bytes()
}

func TestDetectFromReader(t *testing.T) {
	epub := epubArchive(t)
	got, err := DetectFromReader(bytes.NewReader(epub), int64(len(epub)))
	if err != nil {
		t.Fatalf("DetectFromReader failed: %v", err)
	}
	if got != EPUB {
		t.Errorf("EPUB archive detected as %v", got)
	}

	html := []byte("\n  <!DOCTYPE html><html><body></body></html>")
	got, err = DetectFromReader(bytes.NewReader(html), int64(len(html)))
	if err != nil {
		t.Fatalf("DetectFromReader failed: %v", err)
	}
	if got != HTML {
		t.Errorf("HTML content detected as %v", got)
	}

	xhtml := []byte(`<?xml version="1.0"?><html xmlns="http://www.w3.org/1999/xhtml"></html>`)
	got, err = DetectFromReader(bytes.NewReader(xhtml), int64(len(xhtml)))
	if err != nil {
		t.Fatalf("DetectFromReader failed: %v", err)
	}
	if got != HTML {
		t.Errorf("XHTML content detected as %v", got)
	}

	plain := []byte("just some text")
	got, err = DetectFromReader(bytes.NewReader(plain), int64(len(plain)))
	if err != nil {
		t.Fatalf("DetectFromReader failed: %v", err)
	}
	if got != Unknown {
		t.Errorf("Plain text detected as %v", got)
	}
}

func TestOpenHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	content := `<html><head><title>Page</title></head><body><p>Hello.</p></body></html>`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	geom, f, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if f != HTML {
		t.Errorf("Format = %v, want HTML", f)
	}
	if geom.NativePageSize(1).Width <= 0 {
		t.Error("Expected a valid native page size")
	}
}

func TestOpenEPUB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.epub")
	if err := os.WriteFile(path, epubArchive(t), 0644); err != nil {
		t.Fatal(err)
	}

	geom, f, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if f != EPUB {
		t.Errorf("Format = %v, want EPUB", f)
	}
	if geom.NativePageSize(1).Width <= 0 {
		t.Error("Expected a valid native page size")
	}
}

func TestOpenUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("plain text"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := Open(path); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Expected ErrUnsupported, got: %v", err)
	}
}
