package settings

// Settings holds the fully resolved viewer settings for one document.
// All fields carry concrete values; precedence between per-document,
// global, and built-in values is applied by Resolve.
type Settings struct {
	// ZoomMode is the persisted fit policy name ("page", "contentwidth", ...).
	// Unknown names are coerced to the engine's default mode downstream.
	ZoomMode string `yaml:"zoom_mode"`

	// ZoomFactor is the pan/column factor for pan and column fits (>= 1)
	ZoomFactor float64 `yaml:"zoom_factor"`

	// OverlapH is the horizontal scroll overlap percentage [0,100]
	OverlapH float64 `yaml:"overlap_h"`

	// OverlapV is the vertical scroll overlap percentage [0,100]
	OverlapV float64 `yaml:"overlap_v"`

	// RightToLeft reverses the horizontal pan/reading direction
	RightToLeft bool `yaml:"right_to_left"`

	// BottomToTop reverses the vertical pan direction
	BottomToTop bool `yaml:"bottom_to_top"`

	// VerticalPan pans column by column vertically first
	VerticalPan bool `yaml:"vertical_pan"`
}

// Partial is a settings fragment where every field is optional. A nil
// field means "not set here, fall through to the next layer".
type Partial struct {
	ZoomMode    *string  `yaml:"zoom_mode,omitempty"`
	ZoomFactor  *float64 `yaml:"zoom_factor,omitempty"`
	OverlapH    *float64 `yaml:"overlap_h,omitempty"`
	OverlapV    *float64 `yaml:"overlap_v,omitempty"`
	RightToLeft *bool    `yaml:"right_to_left,omitempty"`
	BottomToTop *bool    `yaml:"bottom_to_top,omitempty"`
	VerticalPan *bool    `yaml:"vertical_pan,omitempty"`
}

// Defaults returns the built-in settings used when neither a
// per-document nor a global value exists.
func Defaults() Settings {
	return Settings{
		ZoomMode:    "page",
		ZoomFactor:  2,
		OverlapH:    0,
		OverlapV:    0,
		RightToLeft: false,
		BottomToTop: false,
		VerticalPan: false,
	}
}

// Resolve merges settings layers with per-document values taking
// precedence over global values, which take precedence over the
// built-in defaults. Either layer may be nil.
func Resolve(doc, global *Partial) Settings {
	s := Defaults()
	apply(&s, global)
	apply(&s, doc)
	return s
}

func apply(s *Settings, p *Partial) {
	if p == nil {
		return
	}
	if p.ZoomMode != nil {
		s.ZoomMode = *p.ZoomMode
	}
	if p.ZoomFactor != nil {
		s.ZoomFactor = *p.ZoomFactor
	}
	if p.OverlapH != nil {
		s.OverlapH = *p.OverlapH
	}
	if p.OverlapV != nil {
		s.OverlapV = *p.OverlapV
	}
	if p.RightToLeft != nil {
		s.RightToLeft = *p.RightToLeft
	}
	if p.BottomToTop != nil {
		s.BottomToTop = *p.BottomToTop
	}
	if p.VerticalPan != nil {
		s.VerticalPan = *p.VerticalPan
	}
}
