package folio

import "github.com/tsawler/folio/model"

// regionalCenter computes the zoom level and focal point for entering
// free zoom centered on the content block under a gesture.
//
// The screen position maps into page space through the inverse of the
// current single-page projection, is normalized to page fractions, and
// keys a content-block lookup. With a block the zoom fits the block
// width to the viewport width and the focal point places the block's
// horizontal midpoint under the gesture's vertical offset, rescaled to
// the new magnification. Without a block only a fallback zoom of twice
// the page-width fit is returned; the caller derives the focal point
// via FallbackZoomCenter.
func (v *View) regionalCenter(screen model.Point) (float64, model.Point, bool) {
	native := v.geom.NativePageSize(v.page)
	vp := v.renderViewport()

	projection := model.Scale(v.zoom, v.zoom)
	inv, ok := projection.Invert()
	if !ok {
		inv = model.Identity()
	}
	pagePos := inv.Transform(screen)
	frac := model.Point{X: pagePos.X / native.Width, Y: pagePos.Y / native.Height}

	block, found := v.geom.ContentBlockAt(v.page, frac)
	if !found || block.Width <= 0 {
		z := v.compensateMargin(2*vp.Width/native.Width, native.Width)
		return z, model.Point{}, false
	}

	blockWidth := block.Width * native.Width
	z := v.compensateMargin(vp.Width/blockWidth, native.Width)

	midX := (block.X + block.Width/2) * native.Width
	center := model.Point{
		X: midX * z,
		Y: screen.Y * (z / v.zoom),
	}
	return z, center, true
}

// compensateMargin widens a block fit so the configured page margin
// stays visible around it: zoom /= 1 + 3*margin/(zoom*pageWidth).
func (v *View) compensateMargin(z, pageWidth float64) float64 {
	m := v.opts.PageMargin
	if m <= 0 || z <= 0 || pageWidth <= 0 {
		return z
	}
	return z / (1 + 3*m/(z*pageWidth))
}

// FallbackZoomCenter derives a free-zoom focal point when no content
// block was found: the raw gesture position scaled by the old-to-new
// zoom ratio.
func FallbackZoomCenter(pos model.Point, oldZoom, newZoom float64) model.Point {
	if oldZoom == 0 {
		return pos
	}
	return pos.Scale(newZoom / oldZoom)
}
