package geom

import (
	"fmt"
	"math/big"

	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

// Rectangle is a planar quadrilateral with corners P, Q, R, S held as
// the two triangles PQR and RSP, which share the diagonal PR.
type Rectangle struct {
	T1, T2 *Triangle

	edges      [4]*LineSegment
	edgesValid bool
	hs         []halfSpace
	hsValid    bool
}

// NewRectangle creates a rectangle with copies of the given corners,
// taken in ring order. It panics when the corners do not satisfy
// IsRectangle.
func NewRectangle(p, q, r, s *Point, oom int, rm rnum.RoundingMode) *Rectangle {
	if !IsRectangle(p, q, r, s, oom, rm) {
		panic("Cannot make a rectangle from these points.")
	}
	return &Rectangle{
		T1: NewTriangle(p, q, r, oom, rm),
		T2: NewTriangle(r, s, p, oom, rm),
	}
}

// IsRectangle reports whether the four points, taken in ring order, form
// a rectangle at the given precision: coplanar, right angles at every
// corner and equal diagonals.
func IsRectangle(p, q, r, s *Point, oom int, rm rnum.RoundingMode) bool {
	pp := p.Position()
	qp := q.Position()
	rp := r.Position()
	sp := s.Position()

	// Degenerate rings are rejected outright.
	if qp.Subtract(pp).Cross(rp.Subtract(pp)).IsZero() {
		return false
	}
	if sp.Subtract(rp).Cross(pp.Subtract(rp)).IsZero() {
		return false
	}

	e1 := qp.Subtract(pp)
	e2 := rp.Subtract(qp)
	e3 := sp.Subtract(rp)
	e4 := pp.Subtract(sp)
	if !rnum.IsZero(e1.Dot(e2), oom, rm) ||
		!rnum.IsZero(e2.Dot(e3), oom, rm) ||
		!rnum.IsZero(e3.Dot(e4), oom, rm) ||
		!rnum.IsZero(e4.Dot(e1), oom, rm) {
		return false
	}

	d1 := rp.Subtract(pp).MagnitudeSquared()
	d2 := sp.Subtract(qp).MagnitudeSquared()
	if !rnum.Eq(d1, d2, oom, rm) {
		return false
	}

	n := e1.Cross(sp.Subtract(pp))
	return rnum.IsZero(n.Dot(rp.Subtract(pp)), oom, rm)
}

// Copy returns a deep copy of r.
func (r *Rectangle) Copy() *Rectangle {
	return &Rectangle{T1: r.T1.Copy(), T2: r.T2.Copy()}
}

// P returns the first corner.
func (r *Rectangle) P() *Point { return r.T1.P }

// Q returns the second corner.
func (r *Rectangle) Q() *Point { return r.T1.Q }

// R returns the third corner.
func (r *Rectangle) R() *Point { return r.T1.R }

// S returns the fourth corner.
func (r *Rectangle) S() *Point { return r.T2.Q }

// Plane returns the plane the rectangle lies in.
func (r *Rectangle) Plane() *Plane { return r.T1.Pl }

func (r *Rectangle) ring() []*Point {
	return []*Point{r.P(), r.Q(), r.R(), r.S()}
}

// Edges returns the segments PQ, QR, RS and SP. The segments are cached
// on the rectangle; treat them as read-only.
func (r *Rectangle) Edges() [4]*LineSegment {
	if !r.edgesValid {
		r.edges = [4]*LineSegment{
			NewLineSegment(r.P(), r.Q()),
			NewLineSegment(r.Q(), r.R()),
			NewLineSegment(r.R(), r.S()),
			NewLineSegment(r.S(), r.P()),
		}
		r.edgesValid = true
	}
	return r.edges
}

func (r *Rectangle) halfSpaces() []halfSpace {
	if !r.hsValid {
		r.hs = ringHalfSpaces(r.ring(), r.Plane().N)
		r.hsValid = true
	}
	return r.hs
}

// Area returns the rectangle's area, the sum of its two triangles,
// rounded to the given precision.
func (r *Rectangle) Area(oom int, rm rnum.RoundingMode) *big.Rat {
	sum := r.T1.Area(oom-sumGuard, rm)
	sum.Add(sum, r.T2.Area(oom-sumGuard, rm))
	return rnum.Round(sum, oom, rm)
}

// Perimeter returns the summed edge lengths rounded to the given
// precision.
func (r *Rectangle) Perimeter(oom int, rm rnum.RoundingMode) *big.Rat {
	sum := new(big.Rat)
	for _, e := range r.Edges() {
		sum.Add(sum, e.Length(oom-sumGuard, rm))
	}
	return rnum.Round(sum, oom, rm)
}

// Centroid returns the mean of the four corners.
func (r *Rectangle) Centroid() *Point {
	return NewPointSharing(ZeroVector(), ringCentroid(r.ring()))
}

// AABB returns the axis aligned bounding box of the corners.
func (r *Rectangle) AABB(oom int) *AABB {
	return NewAABB(oom, r.P(), r.Q(), r.R(), r.S())
}

// IntersectsPoint reports whether pt is on the rectangle, boundary
// included, at the given precision.
func (r *Rectangle) IntersectsPoint(pt *Point, oom int, rm rnum.RoundingMode) bool {
	return r.Plane().IsOn(pt, oom, rm) && onHalfSpaces(r.halfSpaces(), pt.Position(), oom, rm)
}

// ContainsPoint reports whether pt is strictly inside the rectangle at
// the given precision.
func (r *Rectangle) ContainsPoint(pt *Point, oom int, rm rnum.RoundingMode) bool {
	return r.Plane().IsOn(pt, oom, rm) && inHalfSpaces(r.halfSpaces(), pt.Position(), oom, rm)
}

// IntersectLine returns the intersection of the rectangle with a line:
// nil, a *Point, or a *LineSegment when the line runs in the plane.
func (r *Rectangle) IntersectLine(l *Line, oom int, rm rnum.RoundingMode) Geometry {
	return intersectPlanarLine(r.Plane(), r.halfSpaces(), l, nil, nil, oom, rm)
}

// IntersectRay returns the intersection of the rectangle with a ray:
// nil, a *Point, or a *LineSegment.
func (r *Rectangle) IntersectRay(ray *Ray, oom int, rm rnum.RoundingMode) Geometry {
	return intersectPlanarLine(r.Plane(), r.halfSpaces(), ray.L, new(big.Rat), nil, oom, rm)
}

// IntersectSegment returns the intersection of the rectangle with a
// segment: nil, a *Point, or a *LineSegment.
func (r *Rectangle) IntersectSegment(s *LineSegment, oom int, rm rnum.RoundingMode) Geometry {
	return intersectPlanarLine(r.Plane(), r.halfSpaces(), s.Line(), new(big.Rat), big.NewRat(1, 1), oom, rm)
}

// IntersectPlane returns the intersection of the rectangle with a
// plane: nil when parallel and apart, the *Rectangle itself (as a copy)
// when the planes coincide, an edge's *LineSegment when the plane cuts
// along it, and otherwise the *Point or *LineSegment crossing the edges.
func (r *Rectangle) IntersectPlane(pl *Plane, oom int, rm rnum.RoundingMode) Geometry {
	if r.Plane().IsParallel(pl, oom, rm) {
		if r.Plane().IsOn(pl.P, oom, rm) {
			return r.Copy()
		}
		return nil
	}
	var pts []*Point
	for _, e := range r.Edges() {
		switch v := pl.IntersectSegment(e, oom, rm).(type) {
		case nil:
		case *LineSegment:
			return v
		case *Point:
			pts = append(pts, v)
		}
	}
	return classifyPolygon(pts, oom, rm)
}

// IntersectTriangle returns the intersection of the rectangle with a
// triangle: nil, a *Point, a *LineSegment, a *Triangle, or a
// *ConvexArea.
func (r *Rectangle) IntersectTriangle(t *Triangle, oom int, rm rnum.RoundingMode) Geometry {
	if r.Plane().Equals(t.Pl, oom, rm) {
		return classifyPolygon(clipPolygon(t.ring(), r.halfSpaces(), oom, rm), oom, rm)
	}
	switch v := t.IntersectPlane(r.Plane(), oom, rm).(type) {
	case nil:
		return nil
	case *Point:
		if !onHalfSpaces(r.halfSpaces(), v.Position(), oom, rm) {
			return nil
		}
		return v
	case *LineSegment:
		lo, hi, ok := clipLineParams(v.Line(), new(big.Rat), big.NewRat(1, 1), r.halfSpaces(), oom, rm)
		return emitLineClip(v.Line(), lo, hi, ok, oom, rm)
	}
	panic("Impossible")
}

// Translate moves the rectangle by v, mutating it, and returns r.
func (r *Rectangle) Translate(v *Vector) *Rectangle {
	r.T1.Translate(v)
	r.T2.Translate(v)
	r.edgesValid = false
	r.hsValid = false
	return r
}

// Rotate returns a new rectangle with every corner rotated about the
// axis line. The shared corners of the two triangles rotate to the same
// places, so the result stays consistent without revalidation.
func (r *Rectangle) Rotate(axis *Line, pi *rnum.Pi, theta *big.Rat, oom int, rm rnum.RoundingMode) *Rectangle {
	return &Rectangle{
		T1: r.T1.Rotate(axis, pi, theta, oom, rm),
		T2: r.T2.Rotate(axis, pi, theta, oom, rm),
	}
}

// Equals reports whether the two rectangles have the same corners at
// the given precision, in any order.
func (r *Rectangle) Equals(o *Rectangle, oom int, rm rnum.RoundingMode) bool {
	return matchPointSets(r.ring(), o.ring(), oom, rm)
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%v, %v, %v, %v)", r.P(), r.Q(), r.R(), r.S())
}
