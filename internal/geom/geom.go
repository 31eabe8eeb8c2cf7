// Package geom implements the Minkowski hyperboloid model of the hyperbolic
// plane:
//   - Points on the upper sheet of x²+y²−z² = −1, z > 0
//   - The Minkowski bilinear form and the geodesic distances derived from it
//   - Isometries: rotation about the origin and translation (composed boosts)
//   - Walls: directed colored segments with a total order by proximity
//
// A point arriving from the Poincaré disk model is converted exactly once on
// the way in; all geometry afterwards is performed in hyperboloid
// coordinates.
package geom

import (
	"math"

	"hypermaze/internal/poincare"
)

// Point is the metric capability a renderer needs from a hyperbolic point.
type Point interface {
	DistanceToOrigin() float64
}

// Hyperpoint is a point on the upper sheet of the hyperboloid x²+y²−z² = −1.
// The invariant is expected, not enforced: MakeHyperpoint guarantees it,
// MakeHyperpointZ and raw decoding trust the caller. A point off the sheet
// does not fail loudly — it surfaces as NaN from the distance methods.
type Hyperpoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

var _ Point = Hyperpoint{}

// MakeHyperpoint returns the unique point on the sheet with the given x and
// y. The expression under the square root is never negative, so the
// hyperboloid invariant holds for any finite input.
func MakeHyperpoint(x, y float64) Hyperpoint {
	z := math.Sqrt(1 + x*x + y*y)
	return Hyperpoint{X: x, Y: y, Z: z}
}

// MakeHyperpointZ constructs the point from all three coordinates without
// checking the invariant. Callers must guarantee x²+y²−z² = −1; the only
// callers inside this module are the isometries and the model conversion,
// where the invariant follows from the computation itself.
func MakeHyperpointZ(x, y, z float64) Hyperpoint {
	return Hyperpoint{X: x, Y: y, Z: z}
}

// Origin returns the distinguished base point (0, 0, 1) of the sheet.
func Origin() Hyperpoint {
	return MakeHyperpointZ(0, 0, 1)
}

// MinkowskiDot returns the indefinite bilinear form of the two points, with
// the z coordinate interpreted as time-like (subtracted):
// a.x·b.x + a.y·b.y − a.z·b.z. Note the sign convention: this is the
// negative of the form the distance methods feed into acosh. Both forms are
// kept as-is; do not unify them.
func MinkowskiDot(a, b Hyperpoint) float64 {
	return a.X*b.X + a.Y*b.Y - a.Z*b.Z
}

// DistanceToOrigin returns the geodesic distance to the base point, acosh(z).
// Well-defined whenever z ≥ 1, which the invariant guarantees; a malformed
// point with z < 1 yields NaN rather than an error.
func (p Hyperpoint) DistanceToOrigin() float64 {
	return math.Acosh(p.Z)
}

// DistanceTo returns the geodesic distance to another point,
// acosh(z·z′ − y·y′ − x·x′). Symmetric in its arguments. NaN if the acosh
// argument falls below 1 through a malformed point or floating error.
func (p Hyperpoint) DistanceTo(to Hyperpoint) float64 {
	return math.Acosh(p.Z*to.Z - p.Y*to.Y - p.X*to.X)
}

// FromPoincare converts a Poincaré disk point to its hyperboloid
// counterpart: with n = u²+v², the image is
// (2u/(1−n), 2v/(1−n), (1+n)/(1−n)). Callers must guarantee n < 1 (the
// point lies strictly inside the unit disk); points on or outside the
// circle are out of contract and degenerate.
func FromPoincare(p poincare.Point) Hyperpoint {
	n := poincare.MinkowskiDot(p, p)
	return MakeHyperpointZ(
		p.U*2/(1-n),
		p.V*2/(1-n),
		(1+n)/(1-n),
	)
}
