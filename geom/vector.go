package geom

import (
	"fmt"
	"math/big"

	"github.com/agdturner/ccg-v3d-sub010/math/rmat"
	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

// rotateGuard is the number of extra orders of magnitude carried when
// evaluating the trigonometry behind a rotation.
const rotateGuard = 8

// Vector is a free vector with exact rational components. Treat the
// components as read-only: all operations return new vectors, and the
// magnitude-squared cache assumes the components never change.
type Vector struct {
	DX, DY, DZ *big.Rat

	magSq      *big.Rat
	magSqValid bool
}

// NewVector creates a vector with copies of the given components.
func NewVector(dx, dy, dz *big.Rat) *Vector {
	return &Vector{
		DX: new(big.Rat).Set(dx),
		DY: new(big.Rat).Set(dy),
		DZ: new(big.Rat).Set(dz),
	}
}

// NewVectorInt creates a vector from integer components.
func NewVectorInt(dx, dy, dz int64) *Vector {
	return &Vector{
		DX: big.NewRat(dx, 1),
		DY: big.NewRat(dy, 1),
		DZ: big.NewRat(dz, 1),
	}
}

// ZeroVector returns the additive identity.
func ZeroVector() *Vector {
	return NewVectorInt(0, 0, 0)
}

// UnitX returns the unit vector along the x axis.
func UnitX() *Vector { return NewVectorInt(1, 0, 0) }

// UnitY returns the unit vector along the y axis.
func UnitY() *Vector { return NewVectorInt(0, 1, 0) }

// UnitZ returns the unit vector along the z axis.
func UnitZ() *Vector { return NewVectorInt(0, 0, 1) }

// Copy returns a deep copy of v.
func (v *Vector) Copy() *Vector {
	return NewVector(v.DX, v.DY, v.DZ)
}

// comp returns the component for axis i: 0 is x, 1 is y, 2 is z.
func (v *Vector) comp(i int) *big.Rat {
	switch i {
	case 0:
		return v.DX
	case 1:
		return v.DY
	default:
		return v.DZ
	}
}

// IsZero reports whether every component is exactly zero.
func (v *Vector) IsZero() bool {
	return v.DX.Sign() == 0 && v.DY.Sign() == 0 && v.DZ.Sign() == 0
}

// IsZeroAt reports whether every component rounds to zero at the given
// precision.
func (v *Vector) IsZeroAt(oom int, rm rnum.RoundingMode) bool {
	return rnum.IsZero(v.DX, oom, rm) &&
		rnum.IsZero(v.DY, oom, rm) &&
		rnum.IsZero(v.DZ, oom, rm)
}

// Add returns v + w.
func (v *Vector) Add(w *Vector) *Vector {
	return &Vector{
		DX: new(big.Rat).Add(v.DX, w.DX),
		DY: new(big.Rat).Add(v.DY, w.DY),
		DZ: new(big.Rat).Add(v.DZ, w.DZ),
	}
}

// Subtract returns v - w.
func (v *Vector) Subtract(w *Vector) *Vector {
	return &Vector{
		DX: new(big.Rat).Sub(v.DX, w.DX),
		DY: new(big.Rat).Sub(v.DY, w.DY),
		DZ: new(big.Rat).Sub(v.DZ, w.DZ),
	}
}

// Reverse returns -v.
func (v *Vector) Reverse() *Vector {
	return &Vector{
		DX: new(big.Rat).Neg(v.DX),
		DY: new(big.Rat).Neg(v.DY),
		DZ: new(big.Rat).Neg(v.DZ),
	}
}

// Multiply returns v scaled by s.
func (v *Vector) Multiply(s *big.Rat) *Vector {
	return &Vector{
		DX: new(big.Rat).Mul(v.DX, s),
		DY: new(big.Rat).Mul(v.DY, s),
		DZ: new(big.Rat).Mul(v.DZ, s),
	}
}

// Divide returns v scaled by 1/s. It panics when s is zero.
func (v *Vector) Divide(s *big.Rat) *Vector {
	if s.Sign() == 0 {
		panic("Cannot divide a vector by zero.")
	}
	return &Vector{
		DX: new(big.Rat).Quo(v.DX, s),
		DY: new(big.Rat).Quo(v.DY, s),
		DZ: new(big.Rat).Quo(v.DZ, s),
	}
}

// Dot returns the exact inner product of v and w.
func (v *Vector) Dot(w *Vector) *big.Rat {
	sum := new(big.Rat).Mul(v.DX, w.DX)
	t := new(big.Rat).Mul(v.DY, w.DY)
	sum.Add(sum, t)
	t.Mul(v.DZ, w.DZ)
	return sum.Add(sum, t)
}

// Cross returns the exact cross product of v and w.
func (v *Vector) Cross(w *Vector) *Vector {
	t := new(big.Rat)
	dx := new(big.Rat).Mul(v.DY, w.DZ)
	dx.Sub(dx, t.Mul(v.DZ, w.DY))
	dy := new(big.Rat).Mul(v.DZ, w.DX)
	dy.Sub(dy, t.Mul(v.DX, w.DZ))
	dz := new(big.Rat).Mul(v.DX, w.DY)
	dz.Sub(dz, t.Mul(v.DY, w.DX))
	return &Vector{DX: dx, DY: dy, DZ: dz}
}

// MagnitudeSquared returns the exact squared length of v.
func (v *Vector) MagnitudeSquared() *big.Rat {
	if !v.magSqValid {
		v.magSq = v.Dot(v)
		v.magSqValid = true
	}
	return new(big.Rat).Set(v.magSq)
}

// Magnitude returns the length of v rounded to the given precision.
func (v *Vector) Magnitude(oom int, rm rnum.RoundingMode) *big.Rat {
	return rnum.Sqrt(v.MagnitudeSquared(), oom, rm)
}

// Unit returns v scaled to unit length, with the length differing from 1
// by less than 10^oom. The vector is prescaled by its largest component
// so the magnitude approximation works near 1 regardless of how large or
// small v is. Unit panics on the zero vector.
func (v *Vector) Unit(oom int, rm rnum.RoundingMode) *Vector {
	if v.IsZero() {
		panic("Cannot normalize the zero vector.")
	}
	s := ratAbs(v.DX)
	s = rnum.Max(s, ratAbs(v.DY))
	s = rnum.Max(s, ratAbs(v.DZ))
	w := v.Divide(s)
	m := w.Magnitude(oom-2, rm)
	return w.Divide(m)
}

func ratAbs(x *big.Rat) *big.Rat {
	return new(big.Rat).Abs(x)
}

// IsScalarMultipleExact reports whether v and w are exactly parallel,
// i.e. their cross product is the zero vector.
func (v *Vector) IsScalarMultipleExact(w *Vector) bool {
	return v.Cross(w).IsZero()
}

// IsScalarMultiple reports whether v and w are parallel at the given
// precision: every component of their cross product rounds to zero.
func (v *Vector) IsScalarMultiple(w *Vector, oom int, rm rnum.RoundingMode) bool {
	return v.Cross(w).IsZeroAt(oom, rm)
}

// IsOrthogonal reports whether the inner product of v and w rounds to
// zero at the given precision.
func (v *Vector) IsOrthogonal(w *Vector, oom int, rm rnum.RoundingMode) bool {
	return rnum.IsZero(v.Dot(w), oom, rm)
}

// Equals reports whether v and w agree componentwise at the given
// precision.
func (v *Vector) Equals(w *Vector, oom int, rm rnum.RoundingMode) bool {
	return v.Subtract(w).IsZeroAt(oom, rm)
}

// DirectionCode returns the octant signature of v, a value in [1, 8]
// determined by the exact component signs. Zero components count as
// non-negative.
func (v *Vector) DirectionCode() int {
	code := 1
	if v.DX.Sign() < 0 {
		code += 4
	}
	if v.DY.Sign() < 0 {
		code += 2
	}
	if v.DZ.Sign() < 0 {
		code++
	}
	return code
}

// Rotate returns v rotated by theta radians about the axis direction
// through the origin, following the right hand rule. The rotation matrix
// is built from sin, cos and a unit axis carried at a finer precision
// than oom, and the result's components are rounded to oom. Rotate panics
// when axis is the zero vector.
func (v *Vector) Rotate(axis *Vector, pi *rnum.Pi, theta *big.Rat, oom int, rm rnum.RoundingMode) *Vector {
	m := rotationMatrix(axis, pi, theta, oom-rotateGuard, rm)
	out := m.MultVector([]*big.Rat{v.DX, v.DY, v.DZ})
	return &Vector{
		DX: rnum.Round(out[0], oom, rm),
		DY: rnum.Round(out[1], oom, rm),
		DZ: rnum.Round(out[2], oom, rm),
	}
}

func (v *Vector) String() string {
	return fmt.Sprintf("Vector(%s, %s, %s)",
		v.DX.RatString(), v.DY.RatString(), v.DZ.RatString())
}

// rotationMatrix builds the Rodrigues rotation matrix for the given axis
// and angle. oom is the internal working precision, finer than whatever
// the caller will round the rotated coordinates to.
func rotationMatrix(axis *Vector, pi *rnum.Pi, theta *big.Rat, oom int, rm rnum.RoundingMode) *rmat.Matrix {
	if axis.IsZero() {
		panic("Cannot rotate about the zero vector.")
	}
	k := axis.Unit(oom, rm)
	sin, cos := rnum.SinCos(theta, pi, oom, rm)
	t := new(big.Rat).Sub(big.NewRat(1, 1), cos)

	kx, ky, kz := k.DX, k.DY, k.DZ
	mul := func(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
	txy := mul(t, mul(kx, ky))
	txz := mul(t, mul(kx, kz))
	tyz := mul(t, mul(ky, kz))
	sx, sy, sz := mul(sin, kx), mul(sin, ky), mul(sin, kz)

	vals := []*big.Rat{
		new(big.Rat).Add(cos, mul(t, mul(kx, kx))),
		new(big.Rat).Sub(txy, sz),
		new(big.Rat).Add(txz, sy),

		new(big.Rat).Add(txy, sz),
		new(big.Rat).Add(cos, mul(t, mul(ky, ky))),
		new(big.Rat).Sub(tyz, sx),

		new(big.Rat).Sub(txz, sy),
		new(big.Rat).Add(tyz, sx),
		new(big.Rat).Add(cos, mul(t, mul(kz, kz))),
	}
	return rmat.NewMatrix(vals, 3, 3)
}
