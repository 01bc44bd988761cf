package zoom

import (
	"fmt"

	"github.com/tsawler/folio/model"
)

// Request carries the inputs for one zoom computation.
type Request struct {
	// Mode is the active fit policy
	Mode Mode

	// Viewport is the on-screen rectangle available for the page,
	// already net of any reserved footer region
	Viewport model.Size

	// Effective is the page size to fit against: the native page size,
	// or the used-content box for content-aware modes
	Effective model.Size

	// Rotation is the device rotation, normalized to 0/90/180/270
	Rotation int

	// PanFactor is the column count or pan multiplier for Pan and
	// Column modes (>= 1)
	PanFactor float64

	// Current is the stored absolute zoom, returned unchanged in Free mode
	Current float64
}

// Ratios returns the width and height viewport/page ratios for the
// request. At 90 and 270 degrees the page dimensions swap roles, so a
// page rotated onto its side fits against the opposite viewport axis.
func (r Request) Ratios() (ratioW, ratioH float64) {
	eff := r.Effective.Oriented(r.Rotation)
	return r.Viewport.Width / eff.Width, r.Viewport.Height / eff.Height
}

// Calculate maps a request to a candidate magnification.
//
// Geometric preconditions (positive viewport and page dimensions) are
// the caller's responsibility; results are undefined when violated. An
// out-of-range mode returns an error rather than a value so the caller
// can keep the previous zoom and record a diagnostic.
func Calculate(req Request) (float64, error) {
	ratioW, ratioH := req.Ratios()

	switch req.Mode {
	case Content, Page:
		if ratioW < ratioH {
			return ratioW, nil
		}
		return ratioH, nil
	case ContentWidth, PageWidth:
		return ratioW, nil
	case ContentHeight, PageHeight:
		return ratioH, nil
	case Pan, Column:
		return ratioW * req.PanFactor, nil
	case Free:
		return req.Current, nil
	default:
		return 0, fmt.Errorf("zoom: unrecognized mode %d", int(req.Mode))
	}
}
