package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"hypermaze/internal/geom"
	"hypermaze/internal/poincare"
)

func TestMakeHyperpointInvariant(t *testing.T) {
	for _, tc := range []struct{ x, y float64 }{
		{0, 0},
		{0.3, 0.7},
		{-0.2, 0.4},
		{3, 0},
		{-1.5, 2.5},
		{100, -100},
	} {
		p := geom.MakeHyperpoint(tc.x, tc.y)
		require.InDelta(t, -1, p.X*p.X+p.Y*p.Y-p.Z*p.Z, 1e-9,
			"point (%v, %v) must land on the hyperboloid sheet", tc.x, tc.y)
		require.GreaterOrEqual(t, p.Z, 1.0)
	}
}

func TestOrigin(t *testing.T) {
	o := geom.Origin()
	require.Equal(t, geom.Hyperpoint{X: 0, Y: 0, Z: 1}, o)
	require.Zero(t, o.DistanceToOrigin())
}

func TestDistanceToOriginMalformed(t *testing.T) {
	// z < 1 cannot lie on the sheet; the failure mode is NaN, not a panic.
	p := geom.MakeHyperpointZ(0, 0, 0.5)
	require.True(t, math.IsNaN(p.DistanceToOrigin()))
}

func TestSelfDistance(t *testing.T) {
	for _, tc := range []struct{ x, y float64 }{
		{0, 0},
		{0.3, 0.7},
		{-0.2, 0.4},
		{3, 0},
	} {
		p := geom.MakeHyperpoint(tc.x, tc.y)
		require.InDelta(t, 0, p.DistanceTo(p), 1e-6)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	a := geom.MakeHyperpoint(0.3, 0.7)
	b := geom.MakeHyperpoint(-0.2, 0.4)
	require.Equal(t, a.DistanceTo(b), b.DistanceTo(a))
}

func TestDistanceConcrete(t *testing.T) {
	a := geom.MakeHyperpoint(3, 0)
	b := geom.MakeHyperpoint(1.5, -2.5)
	require.InDelta(t, 2.3415568232129425, a.DistanceTo(b), 1e-9)
}

func TestMinkowskiDot(t *testing.T) {
	// On-sheet points dot with themselves to −1 under the form.
	for _, p := range []geom.Hyperpoint{
		geom.Origin(),
		geom.MakeHyperpoint(0.3, 0.7),
		geom.MakeHyperpoint(-2, 1),
	} {
		require.InDelta(t, -1, geom.MinkowskiDot(p, p), 1e-9)
	}

	// The form is the negative of the expression the distance feeds into
	// acosh. Both sign conventions are load-bearing; this pins them.
	a := geom.MakeHyperpoint(0.3, 0.7)
	b := geom.MakeHyperpoint(-0.2, 0.4)
	require.InDelta(t, -math.Cosh(a.DistanceTo(b)), geom.MinkowskiDot(a, b), 1e-9)
}

func TestFromPoincareOrigin(t *testing.T) {
	p := geom.FromPoincare(poincare.MakePoint(0, 0))
	require.Equal(t, geom.Origin(), p)
}

func TestFromPoincareConcrete(t *testing.T) {
	// (0.5, 0): n = 0.25, image (4/3, 0, 5/3), distance 2·artanh(0.5).
	p := geom.FromPoincare(poincare.MakePoint(0.5, 0))
	require.InDelta(t, 4.0/3.0, p.X, 1e-12)
	require.InDelta(t, 0, p.Y, 1e-12)
	require.InDelta(t, 5.0/3.0, p.Z, 1e-12)
	require.InDelta(t, 2*math.Atanh(0.5), p.DistanceToOrigin(), 1e-9)
	require.InDelta(t, 1.0986122886681098, p.DistanceToOrigin(), 1e-9)
}

func TestFromPoincareOnSheet(t *testing.T) {
	for _, tc := range []struct{ u, v float64 }{
		{0.1, 0.2},
		{-0.6, 0.3},
		{0, -0.9},
		{0.7, -0.7},
	} {
		p := geom.FromPoincare(poincare.MakePoint(tc.u, tc.v))
		require.InDelta(t, -1, p.X*p.X+p.Y*p.Y-p.Z*p.Z, 1e-9,
			"disk point (%v, %v) must convert onto the sheet", tc.u, tc.v)
	}
}
