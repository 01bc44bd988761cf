package folio

import "github.com/tsawler/folio/model"

// resolveEffective determines the page size the active fit policy
// measures against.
//
// Content-aware policies query the used-content bounding box at the
// reference scale 1 and adopt it when it is no larger than the native
// page in both dimensions, reporting the adopted box to the sink.
// Every other outcome clears the reported box and fits against the
// native page: non-content policies, a missing or degenerate box, a box
// exceeding the native page, and the should-never-happen case of an
// out-of-range mode (recorded as a diagnostic).
func (v *View) resolveEffective() model.Size {
	native := v.geom.NativePageSize(v.page)

	if !v.mode.IsValid() {
		v.warn("unknown_mode", v.page, "effective size requested for unrecognized mode, using native page")
		v.sink.BBoxChanged(nil)
		return native
	}

	if v.mode.ContentAware() {
		if box, ok := v.geom.UsedBBox(v.page, 1); ok && box.IsValid() && box.FitsWithin(native) {
			reported := box
			v.sink.BBoxChanged(&reported)
			return box.Size()
		}
	}

	v.sink.BBoxChanged(nil)
	return native
}
