package folio

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue encountered by the view engine,
// such as an unrecognized fit mode reaching internal dispatch. Warnings
// accumulate on the View and never interrupt processing.
type Warning struct {
	// Code identifies the warning category (e.g. "unknown_mode")
	Code string

	// Page is the 1-indexed page the warning concerns, or 0
	Page int

	// Message is a human-readable description
	Message string
}

// String returns a formatted representation of the warning.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("[%s] page %d: %s", w.Code, w.Page, w.Message)
	}
	return fmt.Sprintf("[%s] %s", w.Code, w.Message)
}

// FormatWarnings joins a slice of warnings into a single string for
// logging or display.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
