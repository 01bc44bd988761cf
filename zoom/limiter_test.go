package zoom

import (
	"testing"

	"github.com/tsawler/folio/model"
)

var limiterViewport = model.Size{Width: 600, Height: 800}

func TestLimitPassThroughBelowThreshold(t *testing.T) {
	rejectAll := func(int64) bool { return false }

	// Zooms at or below ApplyAbove are never degraded, even when the
	// cache would reject them.
	for _, z := range []float64{0.5, 1, 5, 10} {
		if got := Limit(z, limiterViewport, rejectAll, DefaultDegradeSchedule()); got != z {
			t.Errorf("Limit(%f) = %f, want pass-through", z, got)
		}
	}
}

func TestLimitNilPredicate(t *testing.T) {
	if got := Limit(500, limiterViewport, nil, DefaultDegradeSchedule()); got != 500 {
		t.Errorf("Limit with nil predicate = %f, want 500", got)
	}
}

func TestLimitDegradesToBudget(t *testing.T) {
	schedule := DefaultDegradeSchedule()
	budget := schedule.EstimateCost(20, limiterViewport)
	admit := func(bytes int64) bool { return bytes <= budget }

	got := Limit(100, limiterViewport, admit, schedule)
	if got > 20 {
		t.Errorf("Limit = %f, want at most 20", got)
	}
	if got <= 0 {
		t.Errorf("Limit = %f, want a positive accepted zoom", got)
	}
	if !admit(schedule.EstimateCost(got, limiterViewport)) {
		t.Errorf("Limit returned %f whose cost is not admissible", got)
	}
}

func TestLimitReturnsAtMostStart(t *testing.T) {
	schedule := DefaultDegradeSchedule()
	admit := func(bytes int64) bool { return true }

	for _, z := range []float64{11, 50, 150, 1000} {
		if got := Limit(z, limiterViewport, admit, schedule); got != z {
			t.Errorf("Limit(%f) with accepting cache = %f, want unchanged", z, got)
		}
	}
}

func TestLimitInfeasibleReturnsPoison(t *testing.T) {
	rejectAll := func(int64) bool { return false }

	got := Limit(150, limiterViewport, rejectAll, DefaultDegradeSchedule())
	if got != 0 {
		t.Errorf("Limit with rejecting cache = %f, want sentinel 0", got)
	}
}

func TestLimitStrictlyDecreasing(t *testing.T) {
	schedule := DefaultDegradeSchedule()

	var seen []float64
	admit := func(bytes int64) bool {
		seen = append(seen, 0)
		return false
	}

	// Track the zoom at each probe by re-deriving it from the step
	// count: every iteration must shrink the value.
	Limit(120, limiterViewport, admit, schedule)

	z := 120.0
	prev := z
	for i := 1; i < len(seen); i++ {
		z -= schedule.step(z)
		if z >= prev {
			t.Fatalf("step %d: zoom %f did not decrease from %f", i, z, prev)
		}
		prev = z
	}
}

func TestDegradeScheduleSteps(t *testing.T) {
	schedule := DefaultDegradeSchedule()

	tests := []struct {
		zoom float64
		want float64
	}{
		{150, 50},
		{100.5, 50},
		{50, 5},
		{10.5, 5},
		{5, 0.5},
		{1.5, 0.5},
		{0.5, 0.05},
		{0.11, 0.05},
		{0.05, 0.005},
		{0.001, 0.005},
	}

	for _, tt := range tests {
		if got := schedule.step(tt.zoom); got != tt.want {
			t.Errorf("step(%f) = %f, want %f", tt.zoom, got, tt.want)
		}
	}
}

func TestEstimateCostScalesWithZoom(t *testing.T) {
	schedule := DefaultDegradeSchedule()

	c1 := schedule.EstimateCost(1, limiterViewport)
	c2 := schedule.EstimateCost(2, limiterViewport)
	if c2 != 2*c1 {
		t.Errorf("EstimateCost(2) = %d, want double of %d", c2, c1)
	}
}
