package voyager

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// eps is the tolerance used throughout the planner for equality checks and
// division guards, per the quantizer/environment/action-model contracts.
const eps = 1e-12

// deg2rad and rad2deg are kept for callers building EllipticalOrbit angles
// from human-authored world descriptions.
const (
	deg2rad = math.Pi / 180
	rad2deg = 1 / deg2rad
)

// Vec2 is the planner's 2x1 spatial vector, backed by gonum/mat so that the
// RK4 integrator and the rotation/homogeneous-coordinate helpers below all
// share one dense-linalg representation.
type Vec2 struct {
	mat.VecDense
}

// NewVec2 builds a Vec2 from its two Cartesian components.
func NewVec2(x, y float64) Vec2 {
	v := Vec2{}
	v.VecDense = *mat.NewVecDense(2, []float64{x, y})
	return v
}

// X returns the first component.
func (v Vec2) X() float64 { return v.AtVec(0) }

// Y returns the second component.
func (v Vec2) Y() float64 { return v.AtVec(1) }

// Add implements vector-space addition, required by RK4Integrate's generic
// contract (spec 4.A: "the integrated state type must be a vector space").
func (v Vec2) Add(o Vec2) Vec2 {
	return NewVec2(v.X()+o.X(), v.Y()+o.Y())
}

// Scale implements vector-space scalar multiplication.
func (v Vec2) Scale(s float64) Vec2 {
	return NewVec2(v.X()*s, v.Y()*s)
}

// Sub is Add composed with a negative Scale; kept separate for readability
// at call sites (gravity deltas, escape checks).
func (v Vec2) Sub(o Vec2) Vec2 {
	return v.Add(o.Scale(-1))
}

// Dot is the inner product of two Vec2.
func (v Vec2) Dot(o Vec2) float64 {
	return mat.Dot(&v.VecDense, &o.VecDense)
}

// Normp returns the p-norm of v. p=2 is by far the most common call in this
// package (escape radius, collision radius, gravity falloff).
func Normp(v Vec2, p float64) float64 {
	if p == 2 {
		return mat.Norm(&v.VecDense, 2)
	}
	return math.Pow(math.Pow(math.Abs(v.X()), p)+math.Pow(math.Abs(v.Y()), p), 1/p)
}

// Norm2 is shorthand for the Euclidean norm used almost everywhere.
func Norm2(v Vec2) float64 {
	return Normp(v, 2)
}

// Normalized returns the unit vector of v. Per spec 4.A it fails with
// ErrZeroVector when the norm is below eps rather than silently returning
// the zero vector, so that callers (direction selection in the action
// model) can distinguish "no heading" from "degenerate heading".
func Normalized(v Vec2) (Vec2, error) {
	n := Norm2(v)
	if floats.EqualWithinAbs(n, 0, eps) {
		return Vec2{}, ErrZeroVector
	}
	return v.Scale(1 / n), nil
}

// safeDiv returns n/d, falling back to fb when |d| is within eps of zero.
// Used by the action model's fuel-rate and thrust-acceleration terms and by
// Environment.Gamma.
func safeDiv(n, d, fb float64) float64 {
	if floats.EqualWithinAbs(d, 0, eps) {
		return fb
	}
	return n / d
}

// Affine2 is a 3x3 affine transform over homogeneous 2D coordinates.
type Affine2 struct {
	mat.Dense
}

// ToHomogeneous appends the trailing 1 to a 2-vector.
func ToHomogeneous(v Vec2) *mat.VecDense {
	return mat.NewVecDense(3, []float64{v.X(), v.Y(), 1})
}

// FromHomogeneous drops the trailing 1 from a 3-vector.
func FromHomogeneous(v *mat.VecDense) Vec2 {
	return NewVec2(v.AtVec(0), v.AtVec(1))
}

// Rotate2D is the canonical 2D rotation by theta radians, embedded as a 3x3
// affine transform with no translation component (spec 4.A).
func Rotate2D(theta float64) Affine2 {
	s, c := math.Sincos(theta)
	a := Affine2{}
	a.Dense = *mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
	return a
}

// Translate2D embeds a 2D translation as a 3x3 affine transform.
func Translate2D(dx, dy float64) Affine2 {
	a := Affine2{}
	a.Dense = *mat.NewDense(3, 3, []float64{
		1, 0, dx,
		0, 1, dy,
		0, 0, 1,
	})
	return a
}

// Apply transforms a 2-vector by this affine map via the homogeneous round
// trip (spec 4.A round-trip invariant).
func (a Affine2) Apply(v Vec2) Vec2 {
	h := ToHomogeneous(v)
	var out mat.VecDense
	out.MulVec(&a.Dense, h)
	return FromHomogeneous(&out)
}

// Compose returns a*b, i.e. applying b first then a.
func (a Affine2) Compose(b Affine2) Affine2 {
	out := Affine2{}
	out.Dense = *mat.NewDense(3, 3, nil)
	out.Mul(&a.Dense, &b.Dense)
	return out
}

// eye3 returns the 3x3 identity. No code in this package calls it;
// EllipticalOrbit builds its R(angle) term with Rotate2D directly.
func eye3() *mat.Dense {
	d := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		d.Set(i, i, 1)
	}
	return d
}

// sign mirrors the teacher's Sign helper: +1 for zero-or-positive, the
// mathematical sign otherwise. No code in this package calls it.
func sign(v float64) float64 {
	if floats.EqualWithinAbs(v, 0, eps) {
		return 1
	}
	return v / math.Abs(v)
}
