package geom

import (
	"fmt"
	"math/big"

	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

// LineSegment is the part of a line between two distinct endpoints,
// including both.
type LineSegment struct {
	P, Q *Point

	line      *Line
	lineValid bool
}

// NewLineSegment creates a segment between copies of two distinct points.
// It panics when the points coincide exactly.
func NewLineSegment(p, q *Point) *LineSegment {
	if p.EqualsExact(q) {
		panic("Cannot make a line segment between a point and itself.")
	}
	return &LineSegment{P: p.Copy(), Q: q.Copy()}
}

// Copy returns a deep copy of s.
func (s *LineSegment) Copy() *LineSegment {
	return &LineSegment{P: s.P.Copy(), Q: s.Q.Copy()}
}

// Line returns the carrier line through P and Q, directed from P to Q.
// The line is cached until the segment is mutated.
func (s *LineSegment) Line() *Line {
	if !s.lineValid {
		s.line = NewLineThrough(s.P, s.Q)
		s.lineValid = true
	}
	return s.line
}

// LengthSquared returns the exact squared length.
func (s *LineSegment) LengthSquared() *big.Rat {
	return s.P.DistanceSquared(s.Q)
}

// Length returns the length rounded to the given precision.
func (s *LineSegment) Length(oom int, rm rnum.RoundingMode) *big.Rat {
	return rnum.Sqrt(s.LengthSquared(), oom, rm)
}

// Midpoint returns the exact midpoint.
func (s *LineSegment) Midpoint() *Point {
	half := big.NewRat(1, 2)
	mid := s.P.Position().Add(s.Q.Position()).Multiply(half)
	return &Point{Offset: ZeroVector(), Rel: mid}
}

// IsOn reports whether pt lies on the segment at the given precision.
func (s *LineSegment) IsOn(pt *Point, oom int, rm rnum.RoundingMode) bool {
	if !s.Line().IsOn(pt, oom, rm) {
		return false
	}
	return paramInUnit(s.Line().paramOf(pt), oom, rm)
}

// Intersect returns the intersection of the segment with a line: nil, a
// *Point, or the *LineSegment itself (as a copy) when the line is
// coincident with the carrier.
func (s *LineSegment) Intersect(l *Line, oom int, rm rnum.RoundingMode) Geometry {
	g := s.Line().Intersect(l, oom, rm)
	switch v := g.(type) {
	case nil:
		return nil
	case *Line:
		return s.Copy()
	case *Point:
		if !paramInUnit(s.Line().paramOf(v), oom, rm) {
			return nil
		}
		return v
	}
	return nil
}

// IntersectRay returns the intersection of the segment with a ray: nil, a
// *Point, or a *LineSegment.
func (s *LineSegment) IntersectRay(r *Ray, oom int, rm rnum.RoundingMode) Geometry {
	g := s.Line().Intersect(r.L, oom, rm)
	switch v := g.(type) {
	case nil:
		return nil
	case *Point:
		if !paramInUnit(s.Line().paramOf(v), oom, rm) {
			return nil
		}
		if rnum.Round(r.L.paramOf(v), oom, rm).Sign() < 0 {
			return nil
		}
		return v
	case *Line:
		// Collinear: clip the segment to the ray's forward half.
		a := r.L.paramOf(s.P)
		b := r.L.paramOf(s.Q)
		lo, hi := ratMinMax(a, b)
		if lo.Sign() < 0 {
			lo = new(big.Rat)
		}
		return emitParamRange(r.L, lo, hi, oom, rm)
	}
	return nil
}

// IntersectSegment returns the intersection of two segments: nil, a
// *Point, or the overlapping *LineSegment when they are collinear.
func (s *LineSegment) IntersectSegment(other *LineSegment, oom int, rm rnum.RoundingMode) Geometry {
	g := s.Line().Intersect(other.Line(), oom, rm)
	switch v := g.(type) {
	case nil:
		return nil
	case *Point:
		if !paramInUnit(s.Line().paramOf(v), oom, rm) {
			return nil
		}
		if !paramInUnit(other.Line().paramOf(v), oom, rm) {
			return nil
		}
		return v
	case *Line:
		// Collinear: overlap the two parameter intervals on s's
		// carrier.
		a := s.Line().paramOf(other.P)
		b := s.Line().paramOf(other.Q)
		lo, hi := ratMinMax(a, b)
		if lo.Sign() < 0 {
			lo = new(big.Rat)
		}
		one := big.NewRat(1, 1)
		if hi.Cmp(one) > 0 {
			hi = one
		}
		return emitParamRange(s.Line(), lo, hi, oom, rm)
	}
	return nil
}

// Translate moves both endpoints by v and returns s.
func (s *LineSegment) Translate(v *Vector) *LineSegment {
	s.P.Translate(v)
	s.Q.Translate(v)
	s.lineValid = false
	return s
}

// Rotate returns a new segment rotated about the axis line.
func (s *LineSegment) Rotate(axis *Line, pi *rnum.Pi, theta *big.Rat, oom int, rm rnum.RoundingMode) *LineSegment {
	return &LineSegment{
		P: s.P.Rotate(axis, pi, theta, oom, rm),
		Q: s.Q.Rotate(axis, pi, theta, oom, rm),
	}
}

// Equals reports whether two segments have the same endpoints at the
// given precision, in either order.
func (s *LineSegment) Equals(other *LineSegment, oom int, rm rnum.RoundingMode) bool {
	if s.P.Equals(other.P, oom, rm) && s.Q.Equals(other.Q, oom, rm) {
		return true
	}
	return s.P.Equals(other.Q, oom, rm) && s.Q.Equals(other.P, oom, rm)
}

// AABB returns the bounding box of the segment.
func (s *LineSegment) AABB(oom int) *AABB {
	return NewAABB(oom, s.P, s.Q)
}

func (s *LineSegment) String() string {
	return fmt.Sprintf("LineSegment(%v, %v)", s.P, s.Q)
}

// paramInUnit reports whether t lies in [0, 1] at the given precision.
func paramInUnit(t *big.Rat, oom int, rm rnum.RoundingMode) bool {
	return rnum.Round(t, oom, rm).Sign() >= 0 &&
		rnum.Cmp(t, big.NewRat(1, 1), oom, rm) <= 0
}

// ratMinMax orders two rationals.
func ratMinMax(a, b *big.Rat) (lo, hi *big.Rat) {
	if a.Cmp(b) <= 0 {
		return a, b
	}
	return b, a
}

// emitParamRange turns a parameter interval on a line into nil, a *Point
// or a *LineSegment, deciding degeneracy at the given precision.
func emitParamRange(l *Line, lo, hi *big.Rat, oom int, rm rnum.RoundingMode) Geometry {
	switch rnum.Cmp(hi, lo, oom, rm) {
	case -1:
		return nil
	case 0:
		return l.PointAt(lo)
	}
	return NewLineSegment(l.PointAt(lo), l.PointAt(hi))
}
