package geom

import (
	"fmt"
	"math/big"

	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

// Ray is the half of a line on the forward side of its base point,
// including the base point itself.
type Ray struct {
	L *Line
}

// NewRay creates a ray from p along v, copying both. It panics when v is
// the zero vector.
func NewRay(p *Point, v *Vector) *Ray {
	return &Ray{L: NewLine(p, v)}
}

// NewRayThrough creates the ray starting at p towards q. It panics when
// the points coincide exactly.
func NewRayThrough(p, q *Point) *Ray {
	return &Ray{L: NewLineThrough(p, q)}
}

// Copy returns a deep copy of r.
func (r *Ray) Copy() *Ray {
	return &Ray{L: r.L.Copy()}
}

// IsOn reports whether pt lies on the ray at the given precision: on the
// carrier line with a parameter that does not round negative.
func (r *Ray) IsOn(pt *Point, oom int, rm rnum.RoundingMode) bool {
	if !r.L.IsOn(pt, oom, rm) {
		return false
	}
	t := r.L.paramOf(pt)
	return rnum.Round(t, oom, rm).Sign() >= 0
}

// Intersect returns the intersection of the ray with a line: the ray's
// carrier result clipped to non-negative parameters. A coincident line
// returns the *Ray itself (as a copy), a crossing within the ray gives a
// *Point, and anything behind the base point gives nil.
func (r *Ray) Intersect(l *Line, oom int, rm rnum.RoundingMode) Geometry {
	g := r.L.Intersect(l, oom, rm)
	switch v := g.(type) {
	case nil:
		return nil
	case *Line:
		return r.Copy()
	case *Point:
		if rnum.Round(r.L.paramOf(v), oom, rm).Sign() < 0 {
			return nil
		}
		return v
	}
	return nil
}

// IntersectRay returns the intersection of two rays: nil, a *Point, a
// *LineSegment (collinear rays pointing at each other), or a *Ray
// (collinear rays sharing direction).
func (r *Ray) IntersectRay(other *Ray, oom int, rm rnum.RoundingMode) Geometry {
	g := r.L.Intersect(other.L, oom, rm)
	switch v := g.(type) {
	case nil:
		return nil
	case *Point:
		if rnum.Round(r.L.paramOf(v), oom, rm).Sign() < 0 {
			return nil
		}
		if rnum.Round(other.L.paramOf(v), oom, rm).Sign() < 0 {
			return nil
		}
		return v
	case *Line:
		return r.overlapCollinear(other, oom, rm)
	}
	return nil
}

// overlapCollinear resolves the intersection of two collinear rays.
func (r *Ray) overlapCollinear(other *Ray, oom int, rm rnum.RoundingMode) Geometry {
	t0 := r.L.paramOf(other.P())
	sameSense := r.L.V.Dot(other.L.V).Sign() > 0
	if sameSense {
		// The later base point wins.
		if rnum.Round(t0, oom, rm).Sign() > 0 {
			return NewRay(other.P(), r.L.V)
		}
		return r.Copy()
	}
	// Facing each other: they share [r base, other base] when it is
	// ahead of r.
	switch rnum.Round(t0, oom, rm).Sign() {
	case -1:
		return nil
	case 0:
		return r.P().Copy()
	}
	return NewLineSegment(r.P(), other.P())
}

// P returns the ray's base point.
func (r *Ray) P() *Point {
	return r.L.P
}

// Translate moves the ray by v, mutating its base point, and returns r.
func (r *Ray) Translate(v *Vector) *Ray {
	r.L.Translate(v)
	return r
}

// Rotate returns a new ray rotated about the axis line.
func (r *Ray) Rotate(axis *Line, pi *rnum.Pi, theta *big.Rat, oom int, rm rnum.RoundingMode) *Ray {
	return &Ray{L: r.L.Rotate(axis, pi, theta, oom, rm)}
}

// Equals reports whether two rays share base point and direction sense at
// the given precision.
func (r *Ray) Equals(other *Ray, oom int, rm rnum.RoundingMode) bool {
	return r.P().Equals(other.P(), oom, rm) &&
		r.L.V.IsScalarMultiple(other.L.V, oom, rm) &&
		r.L.V.Dot(other.L.V).Sign() > 0
}

func (r *Ray) String() string {
	return fmt.Sprintf("Ray(%v, %v)", r.L.P, r.L.V)
}
