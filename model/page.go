package model

// PageGeometry describes the geometry of a single page as reported by a
// document source: the native page size and, when known, the smallest
// rectangle containing rendered content ("used bounding box").
//
// The used box is advisory. It may exceed the native page when a source
// reports unreliable layout data; consumers fall back to the native size
// in that case (see BBox.FitsWithin).
type PageGeometry struct {
	Number  int  // 1-indexed page number
	Native  Size // Native page size in points
	UsedBox BBox // Used-content bounding box at scale 1 (zero value when unknown)
	HasUsed bool // Whether UsedBox carries meaningful data
}

// Effective returns the size a fit policy should fit against: the used
// box when present and no larger than the native page, otherwise the
// native size. The second result reports whether the used box was adopted.
func (g PageGeometry) Effective() (Size, bool) {
	if g.HasUsed && g.UsedBox.IsValid() && g.UsedBox.FitsWithin(g.Native) {
		return g.UsedBox.Size(), true
	}
	return g.Native, false
}
