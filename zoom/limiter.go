package zoom

import "github.com/tsawler/folio/model"

// AdmitFunc is the render cache's admission predicate: it reports
// whether a prospective bitmap of the given estimated byte cost would be
// accepted for caching.
type AdmitFunc func(bytes int64) bool

// DegradeStep is one band of the degrade schedule: zooms above Threshold
// shrink by Step per iteration.
type DegradeStep struct {
	Threshold float64
	Step      float64
}

// DegradeSchedule is a policy table mapping the current magnification to
// the amount the limiter subtracts per degrade iteration. Bands must be
// ordered by descending threshold; the final band's step applies below
// the last threshold.
type DegradeSchedule struct {
	// ApplyAbove is the magnification above which the limiter engages
	// at all; smaller candidate zooms pass through untouched
	ApplyAbove float64

	// Overhead is the constant added to the viewport pixel count in the
	// byte cost estimate, covering per-bitmap bookkeeping
	Overhead float64

	// Steps are the magnitude bands, ordered by descending threshold
	Steps []DegradeStep

	// FloorStep applies below the smallest threshold
	FloorStep float64
}

// DefaultDegradeSchedule returns the degrade policy tuned against the
// render cache's cost model. The band values are empirical; treat them
// as policy, not derivation.
func DefaultDegradeSchedule() DegradeSchedule {
	return DegradeSchedule{
		ApplyAbove: 10,
		Overhead:   512 * 1024,
		Steps: []DegradeStep{
			{Threshold: 100, Step: 50},
			{Threshold: 10, Step: 5},
			{Threshold: 1, Step: 0.5},
			{Threshold: 0.1, Step: 0.05},
		},
		FloorStep: 0.005,
	}
}

// step returns the degrade decrement for the given magnification.
func (s DegradeSchedule) step(zoom float64) float64 {
	for _, band := range s.Steps {
		if zoom > band.Threshold {
			return band.Step
		}
	}
	return s.FloorStep
}

// EstimateCost returns the estimated decoded-bitmap byte cost of
// rendering the viewport at the given magnification.
func (s DegradeSchedule) EstimateCost(zoom float64, viewport model.Size) int64 {
	return int64(zoom * (viewport.Width*viewport.Height + s.Overhead))
}

// Limit degrades an over-large candidate zoom until the admission
// predicate accepts its estimated cost, stepping down through the
// schedule's magnitude bands.
//
// The loop is bounded for any positive starting zoom because every step
// is strictly positive. When no magnification is admissible the sentinel
// 0 is returned; callers must treat 0 as "do not render", never as a
// valid magnification. A nil admit predicate disables limiting.
func Limit(zoom float64, viewport model.Size, admit AdmitFunc, schedule DegradeSchedule) float64 {
	if admit == nil || zoom <= schedule.ApplyAbove {
		return zoom
	}

	for !admit(schedule.EstimateCost(zoom, viewport)) {
		zoom -= schedule.step(zoom)
		if zoom < 0 {
			return 0
		}
	}
	return zoom
}
