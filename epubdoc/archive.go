package epubdoc

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Errors reported when opening a book.
var (
	ErrNotEPUB      = errors.New("epubdoc: not an EPUB archive")
	ErrDRMProtected = errors.New("epubdoc: DRM-protected book")
	ErrNoRootfile   = errors.New("epubdoc: container.xml names no package document")
	ErrEmptySpine   = errors.New("epubdoc: spine has no readable content")
)

// archive indexes the entries of an EPUB zip by name.
type archive struct {
	files map[string]*zip.File
}

func newArchive(zr *zip.Reader) *archive {
	a := &archive{files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		a.files[f.Name] = f
	}
	return a
}

func (a *archive) read(name string) ([]byte, error) {
	f, ok := a.files[name]
	if !ok {
		return nil, fmt.Errorf("epubdoc: missing archive entry %q", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (a *archive) readXML(name string, v any) error {
	data, err := a.read(name)
	if err != nil {
		return err
	}
	return xml.Unmarshal(data, v)
}

// checkMimetype verifies the archive's mimetype entry. Books without
// one are accepted; a wrong value is rejected.
func (a *archive) checkMimetype() error {
	data, err := a.read("mimetype")
	if err != nil {
		return nil
	}
	if strings.TrimSpace(string(data)) != "application/epub+zip" {
		return ErrNotEPUB
	}
	return nil
}

type containerDoc struct {
	Rootfiles []struct {
		FullPath  string `xml:"full-path,attr"`
		MediaType string `xml:"media-type,attr"`
	} `xml:"rootfiles>rootfile"`
}

// packagePath locates the OPF package document via
// META-INF/container.xml.
func (a *archive) packagePath() (string, error) {
	var c containerDoc
	if err := a.readXML("META-INF/container.xml", &c); err != nil {
		return "", fmt.Errorf("epubdoc: reading container: %w", err)
	}
	for _, rf := range c.Rootfiles {
		if rf.FullPath != "" && (rf.MediaType == "" || rf.MediaType == "application/oebps-package+xml") {
			return rf.FullPath, nil
		}
	}
	return "", ErrNoRootfile
}

type encryptionDoc struct {
	Data []struct {
		Method struct {
			Algorithm string `xml:"Algorithm,attr"`
		} `xml:"EncryptionMethod"`
		Cipher struct {
			Reference struct {
				URI string `xml:"URI,attr"`
			} `xml:"CipherReference"`
		} `xml:"CipherData"`
	} `xml:"EncryptedData"`
}

// checkDRM rejects books whose content files are encrypted. An Adobe
// rights.xml always means DRM. An encryption.xml needs inspection
// since font obfuscation is declared there too and is harmless.
func (a *archive) checkDRM() error {
	if _, ok := a.files["META-INF/rights.xml"]; ok {
		return ErrDRMProtected
	}
	if _, ok := a.files["META-INF/encryption.xml"]; !ok {
		return nil
	}

	var enc encryptionDoc
	if err := a.readXML("META-INF/encryption.xml", &enc); err != nil {
		return ErrDRMProtected
	}
	for _, d := range enc.Data {
		if fontObfuscation(d.Method.Algorithm) {
			continue
		}
		if contentFile(d.Cipher.Reference.URI) {
			return ErrDRMProtected
		}
	}
	return nil
}

func fontObfuscation(algorithm string) bool {
	return strings.Contains(algorithm, "obfuscation") &&
		(strings.Contains(algorithm, "adobe.com") || strings.Contains(algorithm, "idpf.org"))
}

// contentFile reports whether an encrypted resource URI points at
// markup or styling rather than a font or image.
func contentFile(uri string) bool {
	uri = strings.ToLower(uri)
	for _, ext := range []string{".xhtml", ".html", ".htm", ".xml", ".css"} {
		if strings.HasSuffix(uri, ext) {
			return true
		}
	}
	return false
}
