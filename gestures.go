package folio

import "github.com/tsawler/folio/zoom"

// GestureDirection is the dominant axis of a pinch or spread gesture.
type GestureDirection int

const (
	// Horizontal gestures act on the width fit
	Horizontal GestureDirection = iota
	// Vertical gestures act on the height fit
	Vertical
	// Diagonal gestures act on the whole-fit policy
	Diagonal
)

// Spread maps a two-finger spread to the matching content fit: wider
// along one axis fits that axis of the used-content box, a diagonal
// spread fits the whole box.
func (v *View) Spread(dir GestureDirection) {
	switch dir {
	case Horizontal:
		v.SetMode(zoom.ContentWidth)
	case Vertical:
		v.SetMode(zoom.ContentHeight)
	default:
		v.SetMode(zoom.Content)
	}
}

// Pinch maps a pinch to the matching page fit: narrower along one axis
// fits that axis of the native page, a diagonal pinch fits the whole
// page.
func (v *View) Pinch(dir GestureDirection) {
	switch dir {
	case Horizontal:
		v.SetMode(zoom.PageWidth)
	case Vertical:
		v.SetMode(zoom.PageHeight)
	default:
		v.SetMode(zoom.Page)
	}
}
