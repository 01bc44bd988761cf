// Package layout provides content-block detection for fixed-layout
// pages and the fixed-layout implementation of the view engine's
// document geometry capability.
//
// A [BlockDetector] clusters positioned page fragments into content
// blocks: spatially coherent rectangles separated by whitespace wider
// than a configured gap. Blocks back the regional zoom center gesture,
// which magnifies the block under the user's finger.
//
// [Geometry] wraps static [PageDesc] descriptions (native size,
// used-content box, fragments) into the NativePageSize / UsedBBox /
// ContentBlockAt query surface the view engine consumes.
package layout
