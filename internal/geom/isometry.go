package geom

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Rotate returns the point rotated by angle radians about the z axis,
// counterclockwise positive in the x–y plane. Rotation about the time axis
// preserves the Minkowski form, so the result stays on the sheet.
func (p Hyperpoint) Rotate(angle float64) Hyperpoint {
	sin, cos := math.Sincos(angle)
	rot := mat.NewDense(3, 3, []float64{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	})
	return p.transformed(rot)
}

// Translate returns the point moved by the hyperbolic translation composed
// of a boost along x by dx and a boost along y by −dy. The boosts do not
// commute: the applied matrix is exactly Bx(dx)·By(−dy), the order the
// external model expects for viewpoint moves.
func (p Hyperpoint) Translate(dx, dy float64) Hyperpoint {
	coshx, sinhx := math.Cosh(dx), math.Sinh(dx)
	coshy, sinhy := math.Cosh(-dy), math.Sinh(-dy)

	bx := mat.NewDense(3, 3, []float64{
		coshx, 0, sinhx,
		0, 1, 0,
		sinhx, 0, coshx,
	})
	by := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, coshy, sinhy,
		0, sinhy, coshy,
	})

	var boost mat.Dense
	boost.Mul(bx, by)
	return p.transformed(&boost)
}

// transformed applies a Minkowski-form-preserving matrix to the point. The
// trusted constructor is safe here because callers only pass isometries.
func (p Hyperpoint) transformed(m mat.Matrix) Hyperpoint {
	v := mat.NewVecDense(3, []float64{p.X, p.Y, p.Z})
	var out mat.VecDense
	out.MulVec(m, v)
	return MakeHyperpointZ(out.AtVec(0), out.AtVec(1), out.AtVec(2))
}
