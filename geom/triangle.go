package geom

import (
	"fmt"
	"math/big"

	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

// Triangle is a filled triangle: the plane through three non-collinear
// corner points plus the corners themselves. The plane's normal follows
// the canonical orientation, not the corner winding.
type Triangle struct {
	Pl      *Plane
	P, Q, R *Point

	edges       [3]*LineSegment
	edgesValid  bool
	areaSq      *big.Rat
	areaSqValid bool
	hs          []halfSpace
	hsValid     bool
}

// NewTriangle creates a triangle with copies of the given corners. It
// panics when the corners are collinear.
func NewTriangle(p, q, r *Point, oom int, rm rnum.RoundingMode) *Triangle {
	pp := p.Position()
	if q.Position().Subtract(pp).Cross(r.Position().Subtract(pp)).IsZero() {
		panic("Cannot make a triangle from collinear points.")
	}
	return &Triangle{
		Pl: NewPlaneThrough(p, q, r, oom, rm),
		P:  p.Copy(),
		Q:  q.Copy(),
		R:  r.Copy(),
	}
}

// Copy returns a deep copy of t.
func (t *Triangle) Copy() *Triangle {
	return &Triangle{Pl: t.Pl.Copy(), P: t.P.Copy(), Q: t.Q.Copy(), R: t.R.Copy()}
}

func (t *Triangle) ring() []*Point {
	return []*Point{t.P, t.Q, t.R}
}

// Edges returns the segments PQ, QR and RP. The segments are cached on
// the triangle; treat them as read-only.
func (t *Triangle) Edges() [3]*LineSegment {
	if !t.edgesValid {
		t.edges = [3]*LineSegment{
			NewLineSegment(t.P, t.Q),
			NewLineSegment(t.Q, t.R),
			NewLineSegment(t.R, t.P),
		}
		t.edgesValid = true
	}
	return t.edges
}

func (t *Triangle) halfSpaces() []halfSpace {
	if !t.hsValid {
		t.hs = ringHalfSpaces(t.ring(), t.Pl.N)
		t.hsValid = true
	}
	return t.hs
}

// onRing reports whether a position already known to be on the
// triangle's plane falls inside or on the boundary of the triangle at
// the given precision.
func (t *Triangle) onRing(x *Vector, oom int, rm rnum.RoundingMode) bool {
	return onHalfSpaces(t.halfSpaces(), x, oom, rm)
}

// inRing is like onRing but strict: boundary positions do not count.
func (t *Triangle) inRing(x *Vector, oom int, rm rnum.RoundingMode) bool {
	return inHalfSpaces(t.halfSpaces(), x, oom, rm)
}

func (t *Triangle) areaSquared() *big.Rat {
	if !t.areaSqValid {
		pp := t.P.Position()
		cr := t.Q.Position().Subtract(pp).Cross(t.R.Position().Subtract(pp))
		t.areaSq = new(big.Rat).Quo(cr.MagnitudeSquared(), big.NewRat(4, 1))
		t.areaSqValid = true
	}
	return new(big.Rat).Set(t.areaSq)
}

// Area returns the triangle's area rounded to the given precision.
func (t *Triangle) Area(oom int, rm rnum.RoundingMode) *big.Rat {
	return rnum.Sqrt(t.areaSquared(), oom, rm)
}

// Perimeter returns the summed edge lengths rounded to the given
// precision.
func (t *Triangle) Perimeter(oom int, rm rnum.RoundingMode) *big.Rat {
	sum := new(big.Rat)
	for _, e := range t.Edges() {
		sum.Add(sum, e.Length(oom-sumGuard, rm))
	}
	return rnum.Round(sum, oom, rm)
}

// Centroid returns the mean of the three corners.
func (t *Triangle) Centroid() *Point {
	c := ringCentroid(t.ring())
	return NewPointSharing(ZeroVector(), c)
}

// AABB returns the axis aligned bounding box of the corners.
func (t *Triangle) AABB(oom int) *AABB {
	return NewAABB(oom, t.P, t.Q, t.R)
}

// IntersectsPoint reports whether pt is on the triangle, boundary
// included, at the given precision.
func (t *Triangle) IntersectsPoint(pt *Point, oom int, rm rnum.RoundingMode) bool {
	return t.Pl.IsOn(pt, oom, rm) && t.onRing(pt.Position(), oom, rm)
}

// ContainsPoint reports whether pt is strictly inside the triangle at
// the given precision: points on the boundary do not count.
func (t *Triangle) ContainsPoint(pt *Point, oom int, rm rnum.RoundingMode) bool {
	return t.Pl.IsOn(pt, oom, rm) && t.inRing(pt.Position(), oom, rm)
}

// ContainsSegment reports whether the whole segment is strictly inside
// the triangle. By convexity it suffices that both endpoints are.
func (t *Triangle) ContainsSegment(s *LineSegment, oom int, rm rnum.RoundingMode) bool {
	return t.ContainsPoint(s.P, oom, rm) && t.ContainsPoint(s.Q, oom, rm)
}

// ContainsTriangle reports whether the whole of o is strictly inside t.
func (t *Triangle) ContainsTriangle(o *Triangle, oom int, rm rnum.RoundingMode) bool {
	return t.ContainsPoint(o.P, oom, rm) &&
		t.ContainsPoint(o.Q, oom, rm) &&
		t.ContainsPoint(o.R, oom, rm)
}

// Intersects reports whether the two triangles meet at all, touching
// included.
func (t *Triangle) Intersects(o *Triangle, oom int, rm rnum.RoundingMode) bool {
	return t.IntersectTriangle(o, oom, rm) != nil
}

// IntersectLine returns the intersection of the triangle with a line:
// nil, a *Point, or a *LineSegment when the line runs in the triangle's
// plane.
func (t *Triangle) IntersectLine(l *Line, oom int, rm rnum.RoundingMode) Geometry {
	return intersectPlanarLine(t.Pl, t.halfSpaces(), l, nil, nil, oom, rm)
}

// IntersectRay returns the intersection of the triangle with a ray:
// nil, a *Point, or a *LineSegment.
func (t *Triangle) IntersectRay(r *Ray, oom int, rm rnum.RoundingMode) Geometry {
	return intersectPlanarLine(t.Pl, t.halfSpaces(), r.L, new(big.Rat), nil, oom, rm)
}

// IntersectSegment returns the intersection of the triangle with a
// segment: nil, a *Point, or a *LineSegment.
func (t *Triangle) IntersectSegment(s *LineSegment, oom int, rm rnum.RoundingMode) Geometry {
	return intersectPlanarLine(t.Pl, t.halfSpaces(), s.Line(), new(big.Rat), big.NewRat(1, 1), oom, rm)
}

// IntersectPlane returns the intersection of the triangle with a plane:
// nil when they are parallel and apart, the *Triangle itself (as a copy)
// when the planes coincide, an edge's *LineSegment when the plane cuts
// along it, and otherwise the *Point or *LineSegment where the plane
// crosses the edges.
func (t *Triangle) IntersectPlane(pl *Plane, oom int, rm rnum.RoundingMode) Geometry {
	if t.Pl.IsParallel(pl, oom, rm) {
		if t.Pl.IsOn(pl.P, oom, rm) {
			return t.Copy()
		}
		return nil
	}
	var pts []*Point
	for _, e := range t.Edges() {
		switch v := pl.IntersectSegment(e, oom, rm).(type) {
		case nil:
		case *LineSegment:
			// The cut runs along this whole edge.
			return v
		case *Point:
			pts = append(pts, v)
		}
	}
	return classifyPolygon(pts, oom, rm)
}

// IntersectTriangle returns the intersection of two triangles: nil, a
// *Point, a *LineSegment, a *Triangle, or a *ConvexArea when the
// coplanar overlap has more than three corners.
func (t *Triangle) IntersectTriangle(o *Triangle, oom int, rm rnum.RoundingMode) Geometry {
	if t.Pl.Equals(o.Pl, oom, rm) {
		return classifyPolygon(clipPolygon(o.ring(), t.halfSpaces(), oom, rm), oom, rm)
	}
	switch v := o.IntersectPlane(t.Pl, oom, rm).(type) {
	case nil:
		return nil
	case *Point:
		if !t.onRing(v.Position(), oom, rm) {
			return nil
		}
		return v
	case *LineSegment:
		lo, hi, ok := clipLineParams(v.Line(), new(big.Rat), big.NewRat(1, 1), t.halfSpaces(), oom, rm)
		return emitLineClip(v.Line(), lo, hi, ok, oom, rm)
	}
	panic("Impossible")
}

// Translate moves the triangle by v, mutating it, and returns t.
func (t *Triangle) Translate(v *Vector) *Triangle {
	t.Pl.Translate(v)
	t.P.Translate(v)
	t.Q.Translate(v)
	t.R.Translate(v)
	t.edgesValid = false
	t.hsValid = false
	return t
}

// Rotate returns a new triangle with every corner rotated about the
// axis line and the plane rebuilt from the rotated corners.
func (t *Triangle) Rotate(axis *Line, pi *rnum.Pi, theta *big.Rat, oom int, rm rnum.RoundingMode) *Triangle {
	return NewTriangle(
		t.P.Rotate(axis, pi, theta, oom, rm),
		t.Q.Rotate(axis, pi, theta, oom, rm),
		t.R.Rotate(axis, pi, theta, oom, rm),
		oom, rm,
	)
}

// Equals reports whether the two triangles have the same corners at the
// given precision, in any order.
func (t *Triangle) Equals(o *Triangle, oom int, rm rnum.RoundingMode) bool {
	return matchPointSets(t.ring(), o.ring(), oom, rm)
}

func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle(%v, %v, %v)", t.P, t.Q, t.R)
}
