package folio

import (
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/settings"
	"github.com/tsawler/folio/zoom"
)

// ZoomDirection selects the direction of a relative zoom step.
type ZoomDirection int

const (
	// ZoomIn increases the magnification by ZoomInFactor
	ZoomIn ZoomDirection = iota
	// ZoomOut decreases the magnification by ZoomOutFactor
	ZoomOut
)

// View owns the zoom state of one open document view and resolves every
// qualifying event (page turn, rotation, resize, mode switch, gesture)
// to a final magnification, notifying the sink of the outcome.
//
// A View is confined to a single logical thread of control: all methods
// must be called from the thread delivering the triggering events, and
// all sink notifications happen inline. A later event supersedes the
// result of an earlier one; there is nothing in flight to cancel.
type View struct {
	geom DocumentGeometry
	sink ZoomSink
	opts ViewOptions

	mode    zoom.Mode
	modeSet bool // false until the first SetMode, which always fires

	zoom         float64
	savedZoom    float64
	hasSavedZoom bool

	// flipping mode holds at most one saved fit policy
	savedMode    zoom.Mode
	hasSavedMode bool

	page     int
	rotation int
	viewport model.Size

	panFactor float64

	overlapH    float64
	overlapV    float64
	rightToLeft bool
	bottomToTop bool
	verticalPan bool

	warnings []Warning
}

// NewView creates a View over the given document geometry and sink.
// The viewport starts empty; callers deliver the initial dimensions via
// ViewportChanged before the first fit computation matters.
func NewView(geom DocumentGeometry, sink ZoomSink, opts ViewOptions) *View {
	return &View{
		geom:      geom,
		sink:      sink,
		opts:      opts,
		mode:      opts.DefaultMode,
		zoom:      1,
		page:      1,
		panFactor: opts.PanFactor,
	}
}

// Mode returns the active fit policy.
func (v *View) Mode() zoom.Mode {
	return v.mode
}

// Zoom returns the current magnification. The value 0 means no viable
// zoom exists for the current page/viewport combination; callers must
// not render at it.
func (v *View) Zoom() float64 {
	return v.zoom
}

// Page returns the current 1-indexed page number.
func (v *View) Page() int {
	return v.page
}

// Warnings returns a copy of the accumulated non-fatal diagnostics.
func (v *View) Warnings() []Warning {
	return append([]Warning(nil), v.warnings...)
}

// SetMode switches the active fit policy. Out-of-range modes resolve to
// the configured default. The very first call always recomputes and
// notifies; afterwards a call with the already-active mode is a no-op
// and in particular emits no second ModeChanged notification.
func (v *View) SetMode(m zoom.Mode) {
	if !m.IsValid() {
		m = v.opts.DefaultMode
	}
	if v.modeSet && m == v.mode {
		return
	}
	v.mode = m
	v.modeSet = true
	v.recompute()
	v.sink.ModeChanged(m)
	v.sink.InitScrollState()
}

// SetModeByName switches the fit policy by its persisted name, coercing
// unknown names to the configured default.
func (v *View) SetModeByName(name string) {
	v.SetMode(zoom.ParseMode(name, v.opts.DefaultMode))
}

// ZoomBy applies a relative zoom step, forcing Free mode. The new
// magnification is set directly, independent of the fit calculator.
func (v *View) ZoomBy(dir ZoomDirection) {
	factor := ZoomInFactor
	if dir == ZoomOut {
		factor = ZoomOutFactor
	}
	v.forceMode(zoom.Free)
	v.zoom *= factor
	v.sink.ZoomChanged(v.zoom)
	v.sink.RequestRedraw()
}

// PageChanged records a page turn and recomputes the fit.
func (v *View) PageChanged(page int) {
	v.page = page
	v.recompute()
	v.sink.InitScrollState()
}

// RotationChanged records a device rotation and recomputes the fit.
func (v *View) RotationChanged(degrees int) {
	v.rotation = model.NormalizeRotation(degrees)
	v.recompute()
}

// ViewportChanged records a viewport resize or restore and recomputes
// the fit.
func (v *View) ViewportChanged(size model.Size) {
	v.viewport = size
	v.recompute()
}

// Reflow re-lays a reflowable document out at the given base font size,
// then recomputes the fit. Documents without the Reflowable capability
// just recompute.
func (v *View) Reflow(fontSize float64) {
	if r, ok := v.geom.(Reflowable); ok {
		if err := r.Relayout(fontSize); err != nil {
			v.warn("reflow", v.page, err.Error())
		}
	}
	v.recompute()
}

// EnterFlippingMode forces a page-oriented fit policy for the duration
// of a preview interaction, saving the current policy for restoration.
// Free is substituted by Page since flipping needs a page-oriented fit.
// Only one saved policy is held: re-entering while already flipping
// keeps the original saved policy.
func (v *View) EnterFlippingMode(m zoom.Mode) {
	if !v.hasSavedMode {
		v.savedMode = v.mode
		v.hasSavedMode = true
	}
	if m == zoom.Free || !m.IsValid() {
		m = zoom.Page
	}
	v.SetMode(m)
}

// ExitFlippingMode restores the fit policy saved by EnterFlippingMode.
// Without a saved policy the supplied mode applies instead.
func (v *View) ExitFlippingMode(m zoom.Mode) {
	if v.hasSavedMode {
		m = v.savedMode
		v.hasSavedMode = false
	}
	v.SetMode(m)
}

// ToggleFreeZoom enters free zoom centered on the content block under
// the gesture position, or reverts to Page fit when already free.
//
// When the regional center locator finds a block, the sink receives the
// block-centered focal point; otherwise the focal point falls back to
// the raw gesture position scaled by the old-to-new zoom ratio.
func (v *View) ToggleFreeZoom(pos model.Point) {
	if v.modeSet && v.mode == zoom.Free {
		v.SetMode(zoom.Page)
		return
	}

	v.savedZoom = v.zoom
	v.hasSavedZoom = true

	old := v.zoom
	z, center, found := v.regionalCenter(pos)

	v.forceMode(zoom.Free)
	v.zoom = z
	v.sink.ZoomChanged(z)

	if found {
		v.sink.SetZoomCenter(center)
	} else {
		v.sink.SetZoomCenter(FallbackZoomCenter(pos, old, z))
	}
	v.sink.RequestRedraw()
}

// ApplySettings applies resolved viewer settings: pan-related fields
// are diffed and reported via PanSettingsChanged, the zoom factor feeds
// the pan factor, and the persisted mode name drives a mode switch.
func (v *View) ApplySettings(s settings.Settings) {
	changed := make(map[string]interface{})
	if s.OverlapH != v.overlapH {
		v.overlapH = s.OverlapH
		changed["overlap_h"] = s.OverlapH
	}
	if s.OverlapV != v.overlapV {
		v.overlapV = s.OverlapV
		changed["overlap_v"] = s.OverlapV
	}
	if s.RightToLeft != v.rightToLeft {
		v.rightToLeft = s.RightToLeft
		changed["right_to_left"] = s.RightToLeft
	}
	if s.BottomToTop != v.bottomToTop {
		v.bottomToTop = s.BottomToTop
		changed["bottom_to_top"] = s.BottomToTop
	}
	if s.VerticalPan != v.verticalPan {
		v.verticalPan = s.VerticalPan
		changed["vertical_pan"] = s.VerticalPan
	}
	if len(changed) > 0 {
		v.sink.PanSettingsChanged(changed)
	}

	panChanged := false
	if s.ZoomFactor >= 1 && s.ZoomFactor != v.panFactor {
		v.panFactor = s.ZoomFactor
		panChanged = true
	}

	mode := zoom.ParseMode(s.ZoomMode, v.opts.DefaultMode)
	if !v.modeSet || mode != v.mode {
		v.SetMode(mode)
	} else if panChanged {
		v.recompute()
	}
}

// forceMode switches the fit policy without recomputing, for operations
// that set the magnification themselves.
func (v *View) forceMode(m zoom.Mode) {
	if v.modeSet && m == v.mode {
		return
	}
	v.mode = m
	v.modeSet = true
	v.sink.ModeChanged(m)
}

// renderViewport returns the viewport net of the reserved footer
// region. A footer configured to reclaim layout space costs no height.
func (v *View) renderViewport() model.Size {
	vp := v.viewport
	if v.opts.FooterHeight > 0 && !v.opts.FooterReclaims {
		vp.Height -= v.opts.FooterHeight
	}
	return vp
}

// recompute resolves the effective page size, maps it through the fit
// calculator, degrades the result against the cache budget, and
// notifies the sink. An unrecognized mode records a diagnostic and
// leaves the previous zoom in place.
func (v *View) recompute() {
	eff := v.resolveEffective()
	vp := v.renderViewport()

	z, err := zoom.Calculate(zoom.Request{
		Mode:      v.mode,
		Viewport:  vp,
		Effective: eff,
		Rotation:  v.rotation,
		PanFactor: v.panFactor,
		Current:   v.zoom,
	})
	if err != nil {
		v.warn("unknown_mode", v.page, err.Error())
		return
	}

	z = zoom.Limit(z, vp, v.opts.Admit, v.opts.Degrade)

	v.zoom = z
	v.sink.ZoomChanged(z)
	v.sink.RequestRedraw()
}

func (v *View) warn(code string, page int, message string) {
	v.warnings = append(v.warnings, Warning{Code: code, Page: page, Message: message})
}
