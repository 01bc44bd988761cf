// Package zoom implements the fit-policy arithmetic of the folio view
// engine: the closed [Mode] enumeration, the pure ratio [Calculate]
// dispatch, and the cache-budget [Limit] degradation loop.
//
// The package is deliberately free of state and collaborators. Mode
// resolution against settings, bounding-box selection, and notification
// all live in the root folio package; what remains here is arithmetic
// that can be tested exhaustively in isolation.
//
// # Fit policies
//
// Whole-fit modes ([Content], [Page]) pick the smaller of the
// width and height ratios so the page is entirely visible. Axis modes
// ([ContentWidth], [PageWidth], [ContentHeight], [PageHeight]) fit one
// axis exactly. [Pan] and [Column] multiply the width ratio by a pan
// factor so one column of a multi-column page fills the viewport.
// [Free] leaves the stored magnification untouched.
//
// # Cache budget
//
// [Limit] guards against magnifications whose decoded bitmap the render
// cache would refuse to admit, degrading in schedule-driven steps and
// signalling total infeasibility with the poison value 0.
package zoom
