// Package poincare carries the Poincaré disk model surface this module
// consumes: a point strictly inside the unit disk, the bilinear-form helper
// the hyperboloid conversion needs for its normalization term, and a wall
// segment with its display color. The disk-model geometry itself (raycasting
// against these walls) lives with the renderer, not here.
package poincare

import "hypermaze/internal/palette"

// Point is a point of the disk model. Disk membership (u²+v² < 1) is the
// caller's contract and is not checked here.
type Point struct {
	U float64 `json:"u"`
	V float64 `json:"v"`
}

// MakePoint returns the disk point with the given coordinates.
func MakePoint(u, v float64) Point {
	return Point{U: u, V: v}
}

// MinkowskiDot returns the disk-side bilinear form of the two points,
// a.u·b.u + a.v·b.v. On the disk both coordinates are space-like, so the
// form degenerates to the Euclidean dot product; the hyperboloid conversion
// uses it against a point itself as the squared norm term.
func MinkowskiDot(a, b Point) float64 {
	return a.U*b.U + a.V*b.V
}

// Wall is a directed disk-model segment with its display color. The color is
// opaque to this module and rides along unchanged through conversion.
type Wall struct {
	Beginning Point            `json:"beginning"`
	End       Point            `json:"end"`
	Color     palette.RGBColor `json:"color"`
}
