package folio

import "github.com/tsawler/folio/zoom"

// Zoom step factors applied by View.ZoomBy. Zooming in then out (or the
// reverse) returns to the starting magnification.
const (
	ZoomInFactor  = 4.0 / 3.0
	ZoomOutFactor = 0.75
)

// ViewOptions holds construction-time configuration for a View. The
// precedence between per-document and global persisted settings is
// resolved by the caller (package settings) before the options reach
// the engine.
type ViewOptions struct {
	// DefaultMode is the fit policy unknown or absent mode values
	// resolve to
	// Default: zoom.Page
	DefaultMode zoom.Mode

	// FooterHeight is the height in points of the reserved footer
	// region subtracted from the viewport before fitting
	// Default: 0
	FooterHeight float64

	// FooterReclaims indicates the footer is configured to reclaim
	// layout space, in which case the full viewport height is used
	// Default: false
	FooterReclaims bool

	// PageMargin is the configured page margin in points, used by the
	// regional zoom center margin compensation
	// Default: 10
	PageMargin float64

	// PanFactor is the resolved pan/column factor (>= 1)
	// Default: 2
	PanFactor float64

	// Admit is the render cache's admission predicate. Nil disables
	// cache-budget limiting.
	Admit zoom.AdmitFunc

	// Degrade is the cache-budget degrade policy
	// Default: zoom.DefaultDegradeSchedule()
	Degrade zoom.DegradeSchedule
}

// DefaultViewOptions returns sensible default view options.
func DefaultViewOptions() ViewOptions {
	return ViewOptions{
		DefaultMode:    zoom.Page,
		FooterHeight:   0,
		FooterReclaims: false,
		PageMargin:     10,
		PanFactor:      2,
		Admit:          nil,
		Degrade:        zoom.DefaultDegradeSchedule(),
	}
}
