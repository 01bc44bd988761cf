package layout

import "github.com/tsawler/folio/model"

// PageDesc describes one fixed-layout page: its native size, the
// used-content box reported by the renderer at scale 1 (optional), and
// the positioned fragments content-block queries run against.
type PageDesc struct {
	Native    model.Size
	Used      model.BBox
	HasUsed   bool
	Fragments []Fragment
}

// Geometry answers the view engine's page geometry queries for a
// fixed-layout document from static page descriptions. It implements
// the engine's DocumentGeometry capability.
//
// Queries are recomputed on every call; the engine does not debounce
// and neither does Geometry. Viewers issuing high-frequency queries
// (per gesture frame) should debounce upstream.
type Geometry struct {
	pages    []PageDesc
	detector *BlockDetector
}

// NewGeometry creates a geometry source over 1-indexed page
// descriptions with default block detection.
func NewGeometry(pages []PageDesc) *Geometry {
	return NewGeometryWithConfig(pages, DefaultBlockConfig())
}

// NewGeometryWithConfig creates a geometry source with custom block
// detection configuration.
func NewGeometryWithConfig(pages []PageDesc, config BlockConfig) *Geometry {
	return &Geometry{
		pages:    pages,
		detector: NewBlockDetectorWithConfig(config),
	}
}

// PageCount returns the number of pages.
func (g *Geometry) PageCount() int {
	return len(g.pages)
}

func (g *Geometry) page(number int) (PageDesc, bool) {
	if number < 1 || number > len(g.pages) {
		return PageDesc{}, false
	}
	return g.pages[number-1], true
}

// NativePageSize returns the native size of the page in points. An
// out-of-range page yields the zero size.
func (g *Geometry) NativePageSize(page int) model.Size {
	p, ok := g.page(page)
	if !ok {
		return model.Size{}
	}
	return p.Native
}

// UsedBBox returns the used-content bounding box of the page scaled
// from the stored reference scale 1, and whether one is known.
func (g *Geometry) UsedBBox(page int, scale float64) (model.BBox, bool) {
	p, ok := g.page(page)
	if !ok || !p.HasUsed {
		return model.BBox{}, false
	}
	return model.BBox{
		X:      p.Used.X * scale,
		Y:      p.Used.Y * scale,
		Width:  p.Used.Width * scale,
		Height: p.Used.Height * scale,
	}, true
}

// ContentBlockAt returns the content block covering the given
// page-fraction position, in page-fraction coordinates.
func (g *Geometry) ContentBlockAt(page int, pos model.Point) (model.BBox, bool) {
	p, ok := g.page(page)
	if !ok || !p.Native.IsValid() {
		return model.BBox{}, false
	}

	blocks := g.detector.Detect(p.Fragments)
	point := model.Point{X: pos.X * p.Native.Width, Y: pos.Y * p.Native.Height}

	block, found := BlockAt(blocks, point)
	if !found {
		return model.BBox{}, false
	}
	return block.Normalize(p.Native), true
}
