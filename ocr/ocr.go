//go:build ocr

// Package ocr detects content regions on scanned pages, backing the
// view engine's content-block queries for image-only documents.
//
// This package wraps the Tesseract OCR engine via gosseract. It
// requires Tesseract to be installed on the system. On macOS, install
// via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/folio/model"
)

// Client wraps Tesseract for content-region detection.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for region detection.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// DetectRegions runs layout analysis on a rendered page bitmap (PNG,
// TIFF, JPEG, etc.) and returns the bounding boxes of detected text
// blocks in bitmap pixel coordinates.
func (c *Client) DetectRegions(imageData []byte) ([]model.BBox, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_BLOCK)
	if err != nil {
		return nil, fmt.Errorf("region detection failed: %w", err)
	}

	regions := make([]model.BBox, 0, len(boxes))
	for _, b := range boxes {
		r := b.Box
		regions = append(regions, model.NewBBox(
			float64(r.Min.X),
			float64(r.Min.Y),
			float64(r.Dx()),
			float64(r.Dy()),
		))
	}
	return regions, nil
}

// ContentBlocks detects regions and normalizes them to page fractions
// against the bitmap size, the coordinate space the view engine's
// content-block queries use.
func (c *Client) ContentBlocks(imageData []byte, bitmap model.Size) ([]model.BBox, error) {
	regions, err := c.DetectRegions(imageData)
	if err != nil {
		return nil, err
	}
	if !bitmap.IsValid() {
		return nil, fmt.Errorf("invalid bitmap size %gx%g", bitmap.Width, bitmap.Height)
	}

	blocks := make([]model.BBox, len(regions))
	for i, r := range regions {
		blocks[i] = r.Normalize(bitmap)
	}
	return blocks, nil
}
