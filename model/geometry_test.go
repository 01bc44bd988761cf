package model

import (
	"math"
	"testing"
)

func TestNormalizeRotation(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 0},
		{90, 90},
		{180, 180},
		{270, 270},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-270, 90},
		{95, 90},
		{359, 270},
	}

	for _, tt := range tests {
		if got := NormalizeRotation(tt.in); got != tt.want {
			t.Errorf("NormalizeRotation(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSizeOriented(t *testing.T) {
	s := Size{Width: 300, Height: 400}

	tests := []struct {
		rotation int
		want     Size
	}{
		{0, Size{Width: 300, Height: 400}},
		{90, Size{Width: 400, Height: 300}},
		{180, Size{Width: 300, Height: 400}},
		{270, Size{Width: 400, Height: 300}},
	}

	for _, tt := range tests {
		if got := s.Oriented(tt.rotation); got != tt.want {
			t.Errorf("Oriented(%d) = %+v, want %+v", tt.rotation, got, tt.want)
		}
	}
}

func TestBBoxFitsWithin(t *testing.T) {
	page := Size{Width: 300, Height: 400}

	tests := []struct {
		name string
		box  BBox
		want bool
	}{
		{"smaller both", NewBBox(10, 10, 200, 300), true},
		{"exact", NewBBox(0, 0, 300, 400), true},
		{"wider", NewBBox(0, 0, 301, 100), false},
		{"taller", NewBBox(0, 0, 100, 401), false},
		{"larger both", NewBBox(0, 0, 500, 500), false},
	}

	for _, tt := range tests {
		if got := tt.box.FitsWithin(page); got != tt.want {
			t.Errorf("%s: FitsWithin = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestBBoxNormalizeRoundTrip(t *testing.T) {
	page := Size{Width: 300, Height: 400}
	box := NewBBox(30, 100, 150, 200)

	frac := box.Normalize(page)
	if frac.X != 0.1 || frac.Y != 0.25 || frac.Width != 0.5 || frac.Height != 0.5 {
		t.Errorf("Normalize = %+v", frac)
	}

	back := frac.Denormalize(page)
	if back != box {
		t.Errorf("Denormalize round trip = %+v, want %+v", back, box)
	}
}

func TestBBoxContains(t *testing.T) {
	box := NewBBox(10, 20, 100, 50)

	if !box.Contains(Point{X: 50, Y: 40}) {
		t.Error("Expected point inside box")
	}
	if box.Contains(Point{X: 5, Y: 40}) {
		t.Error("Expected point left of box to be outside")
	}
	if box.Contains(Point{X: 50, Y: 80}) {
		t.Error("Expected point below box to be outside")
	}
}

func TestBBoxUnion(t *testing.T) {
	a := NewBBox(0, 0, 100, 100)
	b := NewBBox(50, 50, 100, 100)

	u := a.Union(b)
	want := NewBBox(0, 0, 150, 150)
	if u != want {
		t.Errorf("Union = %+v, want %+v", u, want)
	}
}

func TestPageGeometryEffective(t *testing.T) {
	native := Size{Width: 300, Height: 400}

	tests := []struct {
		name     string
		geom     PageGeometry
		wantSize Size
		wantUsed bool
	}{
		{
			"used box adopted",
			PageGeometry{Native: native, UsedBox: NewBBox(20, 20, 260, 360), HasUsed: true},
			Size{Width: 260, Height: 360},
			true,
		},
		{
			"no used box",
			PageGeometry{Native: native},
			native,
			false,
		},
		{
			"oversized used box falls back",
			PageGeometry{Native: native, UsedBox: NewBBox(0, 0, 350, 100), HasUsed: true},
			native,
			false,
		},
		{
			"degenerate used box falls back",
			PageGeometry{Native: native, UsedBox: NewBBox(0, 0, 0, 0), HasUsed: true},
			native,
			false,
		},
	}

	for _, tt := range tests {
		size, used := tt.geom.Effective()
		if size != tt.wantSize || used != tt.wantUsed {
			t.Errorf("%s: Effective = %+v, %v; want %+v, %v",
				tt.name, size, used, tt.wantSize, tt.wantUsed)
		}
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Scale(2, 2).Multiply(Translate(10, 5))

	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Expected invertible matrix")
	}

	p := Point{X: 7, Y: 3}
	round := inv.Transform(m.Transform(p))
	if math.Abs(round.X-p.X) > 1e-9 || math.Abs(round.Y-p.Y) > 1e-9 {
		t.Errorf("Round trip = %+v, want %+v", round, p)
	}

	if _, ok := (Matrix{0, 0, 0, 0, 0, 0}).Invert(); ok {
		t.Error("Expected singular matrix to report not invertible")
	}
}
