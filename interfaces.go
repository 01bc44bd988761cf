package folio

import (
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/zoom"
)

// DocumentGeometry is the capability the view engine needs from a
// document source. Implementations exist for fixed-layout documents
// (package layout) and reflowable HTML documents (package htmldoc).
//
// The queries are synchronous and may be expensive (a reflowable source
// may need partial re-layout to answer); the engine does not memoize
// them. Callers issuing the same query repeatedly should debounce.
type DocumentGeometry interface {
	// NativePageSize returns the native size of the page in points.
	NativePageSize(page int) model.Size

	// UsedBBox returns the used-content bounding box of the page at the
	// given render scale, in page points, and whether one is known.
	UsedBBox(page int, scale float64) (model.BBox, bool)

	// ContentBlockAt returns the content block covering the given
	// page-fraction position, in page-fraction coordinates, and whether
	// a block was found.
	ContentBlockAt(page int, pos model.Point) (model.BBox, bool)
}

// Reflowable is the optional capability of geometry sources whose page
// layout depends on a font size. The view engine re-lays such documents
// out before recomputing zoom (see View.Reflow).
type Reflowable interface {
	// Relayout recomputes the document's pagination at the given base
	// font size in points.
	Relayout(fontSize float64) error
}

// ZoomSink receives the engine's notifications. All calls happen inline
// on the thread that delivered the triggering event, in a fixed order
// per event (bounding box before zoom, zoom before redraw).
type ZoomSink interface {
	// ModeChanged reports that the active fit policy changed.
	ModeChanged(mode zoom.Mode)

	// ZoomChanged reports the new absolute magnification. The value 0
	// is a poison sentinel meaning no viable zoom exists for the
	// current page/viewport combination; receivers must not render.
	ZoomChanged(zoom float64)

	// BBoxChanged reports the adopted used-content box in page points,
	// or nil when fitting against the native page. Viewers may use it
	// to indicate visual cropping.
	BBoxChanged(box *model.BBox)

	// SetZoomCenter sets the focal point for free zoom, in screen
	// coordinates at the new magnification.
	SetZoomCenter(center model.Point)

	// PanSettingsChanged reports which pan-related settings changed,
	// keyed by their persisted names (overlap_h, right_to_left, ...).
	PanSettingsChanged(changed map[string]interface{})

	// InitScrollState asks the viewer to reset its scroll position,
	// after a page turn or fit policy change.
	InitScrollState()

	// RequestRedraw asks the viewer to repaint with the current state.
	RequestRedraw()
}
