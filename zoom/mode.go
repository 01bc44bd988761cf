package zoom

// Mode is a fit policy governing how page content maps to the viewport.
type Mode int

const (
	// Content fits the used-content box entirely inside the viewport
	Content Mode = iota
	// ContentWidth fits the used-content box width to the viewport width
	ContentWidth
	// ContentHeight fits the used-content box height to the viewport height
	ContentHeight
	// Column fits one of several columns of the used-content box
	Column
	// PageWidth fits the native page width to the viewport width
	PageWidth
	// PageHeight fits the native page height to the viewport height
	PageHeight
	// Page fits the whole native page inside the viewport
	Page
	// Pan fits a pan_factor-th slice of the native page width
	Pan
	// Free is manual zoom; the magnification is whatever the user set
	Free
)

var modeNames = map[Mode]string{
	Content:       "content",
	ContentWidth:  "contentwidth",
	ContentHeight: "contentheight",
	Column:        "column",
	PageWidth:     "pagewidth",
	PageHeight:    "pageheight",
	Page:          "page",
	Pan:           "pan",
	Free:          "free",
}

// String returns the persisted name of the mode ("page", "contentwidth", ...).
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// IsValid reports whether m is a member of the closed mode set.
func (m Mode) IsValid() bool {
	_, ok := modeNames[m]
	return ok
}

// ContentAware reports whether the mode fits against the used-content
// bounding box rather than the native page.
func (m Mode) ContentAware() bool {
	switch m {
	case Content, ContentWidth, ContentHeight, Column, Pan:
		return true
	}
	return false
}

// ParseMode maps a persisted mode name to a Mode. Unknown or empty names
// resolve to the supplied default; a missing setting never hard-fails.
func ParseMode(name string, def Mode) Mode {
	for m, n := range modeNames {
		if n == name {
			return m
		}
	}
	return def
}
