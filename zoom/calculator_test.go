package zoom

import (
	"math"
	"testing"

	"github.com/tsawler/folio/model"
)

func baseRequest(mode Mode) Request {
	return Request{
		Mode:      mode,
		Viewport:  model.Size{Width: 600, Height: 800},
		Effective: model.Size{Width: 300, Height: 400},
		PanFactor: 1,
	}
}

func TestCalculateFitModes(t *testing.T) {
	tests := []struct {
		name      string
		mode      Mode
		effective model.Size
		want      float64
	}{
		{"pagewidth", PageWidth, model.Size{Width: 300, Height: 400}, 2.0},
		{"pageheight", PageHeight, model.Size{Width: 300, Height: 400}, 2.0},
		{"page picks min ratio", Page, model.Size{Width: 300, Height: 500}, 1.6},
		{"content picks min ratio", Content, model.Size{Width: 300, Height: 500}, 1.6},
		{"contentwidth", ContentWidth, model.Size{Width: 200, Height: 400}, 3.0},
		{"contentheight", ContentHeight, model.Size{Width: 300, Height: 200}, 4.0},
	}

	for _, tt := range tests {
		req := baseRequest(tt.mode)
		req.Effective = tt.effective

		got, err := Calculate(req)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: Calculate = %f, want %f", tt.name, got, tt.want)
		}
	}
}

func TestCalculateRotationSwap(t *testing.T) {
	// Viewport 600x800, page 300x400. Unrotated pagewidth is 600/300.
	// On its side the page presents its height to the viewport width,
	// so the ratio becomes 600/400.
	tests := []struct {
		rotation int
		want     float64
	}{
		{0, 2.0},
		{90, 1.5},
		{180, 2.0},
		{270, 1.5},
	}

	for _, tt := range tests {
		req := baseRequest(PageWidth)
		req.Rotation = tt.rotation

		got, err := Calculate(req)
		if err != nil {
			t.Fatalf("rotation %d: unexpected error: %v", tt.rotation, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("rotation %d: Calculate = %f, want %f", tt.rotation, got, tt.want)
		}
	}
}

func TestCalculatePanFactor(t *testing.T) {
	req := baseRequest(Pan)
	req.PanFactor = 3

	got, err := Calculate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-6.0) > 1e-9 {
		t.Errorf("pan: Calculate = %f, want 6.0", got)
	}

	req.Mode = Column
	got, err = Calculate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-6.0) > 1e-9 {
		t.Errorf("column: Calculate = %f, want 6.0", got)
	}
}

func TestCalculateFreeKeepsCurrent(t *testing.T) {
	req := baseRequest(Free)
	req.Current = 1.234

	got, err := Calculate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1.234 {
		t.Errorf("free: Calculate = %f, want 1.234", got)
	}
}

func TestCalculateUnknownMode(t *testing.T) {
	req := baseRequest(Mode(99))

	if _, err := Calculate(req); err == nil {
		t.Error("Expected error for unrecognized mode")
	}
}
