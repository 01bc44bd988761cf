package htmldoc

import (
	"math"

	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/model"
)

// LayoutConfig holds configuration for reflowable pagination
type LayoutConfig struct {
	// PageSize is the layout page size in points
	// Default: 600 x 800
	PageSize model.Size

	// FontSize is the base font size in points
	// Default: 12
	FontSize float64

	// LineSpacing is the line height as a multiple of the font size
	// Default: 1.4
	LineSpacing float64

	// Margin is the page margin in points on all sides
	// Default: 36
	Margin float64

	// ElementSpacing is the vertical gap between flow elements as a
	// multiple of the font size
	// Default: 0.8
	ElementSpacing float64

	// GlyphAspect approximates average glyph width as a fraction of
	// the font size, for line-count estimation without font metrics
	// Default: 0.5
	GlyphAspect float64
}

// DefaultLayoutConfig returns sensible default layout configuration
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		PageSize:       model.Size{Width: 600, Height: 800},
		FontSize:       12,
		LineSpacing:    1.4,
		Margin:         36,
		ElementSpacing: 0.8,
		GlyphAspect:    0.5,
	}
}

// fontFor returns the font size for a flow element; headings scale up
// from the base size by level.
func (c LayoutConfig) fontFor(e flowElement) float64 {
	if e.heading == 0 {
		return c.FontSize
	}
	scale := 1.7 - 0.1*float64(e.heading)
	if scale < 1 {
		scale = 1
	}
	return c.FontSize * scale
}

// paginate flows the extracted elements into pages, producing the page
// descriptions the geometry queries run against. Text height is
// estimated from character counts; the estimate only needs to be
// self-consistent, since zoom fitting depends on relative geometry
// rather than exact typesetting.
func (d *Document) paginate() []layout.PageDesc {
	cfg := d.cfg
	contentWidth := cfg.PageSize.Width - 2*cfg.Margin
	contentHeight := cfg.PageSize.Height - 2*cfg.Margin
	if contentWidth <= 0 || contentHeight <= 0 {
		return []layout.PageDesc{{Native: cfg.PageSize}}
	}

	var pages []layout.PageDesc
	current := layout.PageDesc{Native: cfg.PageSize}
	cursor := cfg.Margin

	flush := func() {
		for _, f := range current.Fragments {
			if !current.HasUsed {
				current.Used = f.BBox
				current.HasUsed = true
			} else {
				current.Used = current.Used.Union(f.BBox)
			}
		}
		pages = append(pages, current)
		current = layout.PageDesc{Native: cfg.PageSize}
		cursor = cfg.Margin
	}

	for _, e := range d.elements {
		font := cfg.fontFor(e)
		lineHeight := font * cfg.LineSpacing
		charsPerLine := math.Max(1, math.Floor(contentWidth/(font*cfg.GlyphAspect)))
		lines := math.Ceil(float64(len([]rune(e.text))) / charsPerLine)
		height := lines * lineHeight

		width := contentWidth
		if lines == 1 {
			width = math.Min(contentWidth, float64(len([]rune(e.text)))*font*cfg.GlyphAspect)
		}

		// Elements taller than a full page split across pages.
		for height > contentHeight {
			avail := cfg.PageSize.Height - cfg.Margin - cursor
			part := math.Floor(avail/lineHeight) * lineHeight
			if part <= 0 && len(current.Fragments) == 0 {
				// A single line taller than the page still consumes one
				part = avail
			}
			if part > 0 {
				current.Fragments = append(current.Fragments, layout.Fragment{
					BBox: model.NewBBox(cfg.Margin, cursor, width, part),
					Text: e.text,
				})
				height -= part
			}
			flush()
		}

		if cursor+height > cfg.PageSize.Height-cfg.Margin && len(current.Fragments) > 0 {
			flush()
		}

		current.Fragments = append(current.Fragments, layout.Fragment{
			BBox: model.NewBBox(cfg.Margin, cursor, width, height),
			Text: e.text,
		})
		cursor += height + cfg.ElementSpacing*cfg.FontSize
	}

	if len(current.Fragments) > 0 || len(pages) == 0 {
		flush()
	}
	return pages
}
