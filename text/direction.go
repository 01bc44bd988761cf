// Package text provides writing-direction detection for document
// content, used to derive the right_to_left default of the viewer's
// pan settings from a document's text.
package text

import "golang.org/x/text/unicode/bidi"

// Direction represents the dominant writing direction of text.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, CJK, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// Neutral for numbers, punctuation, or empty text
	Neutral
)

// String returns a string representation of the direction ("LTR", "RTL", or "Neutral").
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// DetectDirection analyzes a string and returns its dominant writing
// direction based on Unicode bidi character classes. Strong
// left-to-right and right-to-left characters are counted and the
// majority wins; text with no strong directional characters is Neutral.
func DetectDirection(text string) Direction {
	ltrCount := 0
	rtlCount := 0

	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			ltrCount++
		case bidi.R, bidi.AL:
			rtlCount++
		}
	}

	if ltrCount == 0 && rtlCount == 0 {
		return Neutral
	}
	if rtlCount > ltrCount {
		return RTL
	}
	return LTR
}

// RightToLeft reports whether a sample of document text reads right to
// left, for seeding the viewer's right_to_left setting. Neutral text
// defaults to false.
func RightToLeft(sample string) bool {
	return DetectDirection(sample) == RTL
}
