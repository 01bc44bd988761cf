package layout

import (
	"math"
	"testing"

	"github.com/tsawler/folio/model"
)

func testPages() []PageDesc {
	return []PageDesc{
		{
			Native:  model.Size{Width: 300, Height: 400},
			Used:    model.NewBBox(20, 20, 260, 360),
			HasUsed: true,
			Fragments: []Fragment{
				{BBox: model.NewBBox(75, 100, 150, 100), Text: "main column"},
			},
		},
		{
			Native: model.Size{Width: 300, Height: 400},
		},
	}
}

func TestGeometryNativePageSize(t *testing.T) {
	g := NewGeometry(testPages())

	if got := g.NativePageSize(1); got != (model.Size{Width: 300, Height: 400}) {
		t.Errorf("NativePageSize(1) = %+v", got)
	}
	if got := g.NativePageSize(99); got.IsValid() {
		t.Errorf("Expected zero size for out-of-range page, got %+v", got)
	}
	if g.PageCount() != 2 {
		t.Errorf("PageCount = %d, want 2", g.PageCount())
	}
}

func TestGeometryUsedBBox(t *testing.T) {
	g := NewGeometry(testPages())

	box, ok := g.UsedBBox(1, 1)
	if !ok {
		t.Fatal("Expected used box for page 1")
	}
	if box != model.NewBBox(20, 20, 260, 360) {
		t.Errorf("UsedBBox at scale 1 = %+v", box)
	}

	scaled, ok := g.UsedBBox(1, 2)
	if !ok || scaled != model.NewBBox(40, 40, 520, 720) {
		t.Errorf("UsedBBox at scale 2 = %+v (ok=%v)", scaled, ok)
	}

	if _, ok := g.UsedBBox(2, 1); ok {
		t.Error("Expected no used box for page 2")
	}
}

func TestGeometryContentBlockAt(t *testing.T) {
	g := NewGeometry(testPages())

	// The fragment spans x 75..225, y 100..200; the page center
	// (150, 200) in fractions is (0.5, 0.5).
	block, ok := g.ContentBlockAt(1, model.Point{X: 0.5, Y: 0.375})
	if !ok {
		t.Fatal("Expected a content block under the page center")
	}

	// Normalized: x 75/300 = 0.25, width 150/300 = 0.5.
	if math.Abs(block.X-0.25) > 1e-9 || math.Abs(block.Width-0.5) > 1e-9 {
		t.Errorf("Expected normalized block x=0.25 w=0.5, got x=%f w=%f", block.X, block.Width)
	}

	if _, ok := g.ContentBlockAt(1, model.Point{X: 0.05, Y: 0.05}); ok {
		t.Error("Expected no block in the page corner")
	}
	if _, ok := g.ContentBlockAt(2, model.Point{X: 0.5, Y: 0.5}); ok {
		t.Error("Expected no block on the empty page")
	}
	if _, ok := g.ContentBlockAt(99, model.Point{X: 0.5, Y: 0.5}); ok {
		t.Error("Expected no block for out-of-range page")
	}
}
