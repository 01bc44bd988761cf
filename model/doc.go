// Package model provides the geometric primitives shared by the folio
// view engine and its document collaborators.
//
// # Geometry
//
//   - [Point] - 2D point
//   - [Size] - width/height pair with rotation-aware orientation
//   - [BBox] - bounding box with containment, union, and page-fraction
//     normalization
//   - [Matrix] - 2D affine transformation matrix with inversion
//
// # Coordinate conventions
//
// Viewer coordinates place the origin at the top-left corner with Y
// growing downward. Page-fraction coordinates normalize positions by the
// native page size, so (0.5, 0.5) is the page center regardless of page
// dimensions; content-block queries use page fractions to stay
// independent of the current magnification.
//
// # Rotation
//
// Device rotation is carried as whole degrees and normalized to one of
// 0, 90, 180, 270 by [NormalizeRotation]. [Size.Oriented] applies the
// width/height swap for quarter turns.
package model
