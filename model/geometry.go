package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Scale returns the point scaled by a uniform factor
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Size represents a width/height pair (page or viewport dimensions)
type Size struct {
	Width  float64
	Height float64
}

// IsValid returns true if both dimensions are positive
func (s Size) IsValid() bool {
	return s.Width > 0 && s.Height > 0
}

// Oriented returns the size as seen under the given device rotation.
// At 90 and 270 degrees the width and height swap; 0 and 180 leave
// the size unchanged. Rotation must already be normalized (see
// NormalizeRotation).
func (s Size) Oriented(rotation int) Size {
	if rotation == 90 || rotation == 270 {
		return Size{Width: s.Height, Height: s.Width}
	}
	return s
}

// NormalizeRotation reduces an arbitrary rotation in degrees to one of
// 0, 90, 180, 270. Values that are not multiples of 90 are rounded down
// to the nearest quarter turn.
func NormalizeRotation(degrees int) int {
	r := degrees % 360
	if r < 0 {
		r += 360
	}
	return r - r%90
}

// BBox represents a bounding box (rectangle)
type BBox struct {
	X      float64 // Left
	Y      float64 // Top (viewer coordinate system)
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: b.X + b.Width/2,
		Y: b.Y + b.Height/2,
	}
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Top() && p.Y <= b.Bottom()
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right() < other.Left() ||
		b.Left() > other.Right() ||
		b.Bottom() < other.Top() ||
		b.Top() > other.Bottom())
}

// Union returns the smallest box covering both boxes
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Top(), other.Top())
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.Bottom(), other.Bottom())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Expand expands the bounding box by a margin on all sides
func (b BBox) Expand(margin float64) BBox {
	return BBox{
		X:      b.X - margin,
		Y:      b.Y - margin,
		Width:  b.Width + 2*margin,
		Height: b.Height + 2*margin,
	}
}

// Size returns the box dimensions as a Size
func (b BBox) Size() Size {
	return Size{Width: b.Width, Height: b.Height}
}

// IsValid returns true if the bounding box has positive dimensions
func (b BBox) IsValid() bool {
	return b.Width > 0 && b.Height > 0
}

// FitsWithin reports whether the box is no larger than the given size
// in both dimensions. Content-fit policies only adopt a used-content
// box when it fits within the native page.
func (b BBox) FitsWithin(s Size) bool {
	return b.Width <= s.Width && b.Height <= s.Height
}

// Normalize maps the box into page-fraction coordinates with respect to
// a page of the given size: all coordinates end up in [0,1] when the box
// lies within the page.
func (b BBox) Normalize(page Size) BBox {
	return BBox{
		X:      b.X / page.Width,
		Y:      b.Y / page.Height,
		Width:  b.Width / page.Width,
		Height: b.Height / page.Height,
	}
}

// Denormalize maps a page-fraction box back to absolute page coordinates.
func (b BBox) Denormalize(page Size) BBox {
	return BBox{
		X:      b.X * page.Width,
		Y:      b.Y * page.Height,
		Width:  b.Width * page.Width,
		Height: b.Height * page.Height,
	}
}

// Matrix represents a 2D affine transformation matrix
type Matrix [6]float64

// Identity returns an identity matrix
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Transform applies the matrix transformation to a point
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Multiply multiplies two matrices
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// Translate creates a translation matrix
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale creates a scaling matrix
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Invert returns the inverse transformation and true, or the identity
// and false when the matrix is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 {
		return Identity(), false
	}
	inv := Matrix{
		m[3] / det,
		-m[1] / det,
		-m[2] / det,
		m[0] / det,
		(m[2]*m[5] - m[3]*m[4]) / det,
		(m[1]*m[4] - m[0]*m[5]) / det,
	}
	return inv, true
}
