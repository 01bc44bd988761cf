//go:build !ocr

// Package ocr detects content regions on scanned pages, backing the
// view engine's content-block queries for image-only documents.
//
// This is the stub implementation used when the "ocr" build tag is not
// set. All functions return ErrOCRNotEnabled.
//
// To enable region detection, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"errors"

	"github.com/tsawler/folio/model"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
// To enable region detection, rebuild with: go build -tags ocr
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client.
// It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// DetectRegions returns an error indicating OCR support is not enabled.
func (c *Client) DetectRegions(imageData []byte) ([]model.BBox, error) {
	return nil, ErrOCRNotEnabled
}

// ContentBlocks returns an error indicating OCR support is not enabled.
func (c *Client) ContentBlocks(imageData []byte, bitmap model.Size) ([]model.BBox, error) {
	return nil, ErrOCRNotEnabled
}
