package geom

import (
	"fmt"
	"math/big"

	"github.com/agdturner/ccg-v3d-sub010/math/rmat"
	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

// Plane is an unbounded plane defined by a point on it and a non-zero
// normal vector.
type Plane struct {
	P *Point
	N *Vector
}

// NewPlane creates a plane through p with normal n, copying both. It
// panics when n is the zero vector.
func NewPlane(p *Point, n *Vector) *Plane {
	if n.IsZero() {
		panic("Cannot make a plane with a zero normal.")
	}
	return &Plane{P: p.Copy(), N: n.Copy()}
}

// NewPlaneThrough creates the plane through three non-collinear points.
// The normal is (q-p) x (r-p) put into canonical orientation: the
// component that decides the sign is z, then y, then x, judged at the
// given precision, and it is made non-negative. NewPlaneThrough panics
// when the points are collinear.
func NewPlaneThrough(p, q, r *Point, oom int, rm rnum.RoundingMode) *Plane {
	pp := p.Position()
	n := q.Position().Subtract(pp).Cross(r.Position().Subtract(pp))
	if n.IsZero() {
		panic("Cannot make a plane from collinear points.")
	}
	return &Plane{P: p.Copy(), N: canonicalNormal(n, oom, rm)}
}

// canonicalNormal flips n if needed so its leading component (z, then y,
// then x, judged at the given precision, falling back to exact signs) is
// positive.
func canonicalNormal(n *Vector, oom int, rm rnum.RoundingMode) *Vector {
	s := rnum.Round(n.DZ, oom, rm).Sign()
	if s == 0 {
		s = rnum.Round(n.DY, oom, rm).Sign()
	}
	if s == 0 {
		s = rnum.Round(n.DX, oom, rm).Sign()
	}
	if s == 0 {
		s = n.DZ.Sign()
	}
	if s == 0 {
		s = n.DY.Sign()
	}
	if s == 0 {
		s = n.DX.Sign()
	}
	if s < 0 {
		return n.Reverse()
	}
	return n
}

// Copy returns a deep copy of pl.
func (pl *Plane) Copy() *Plane {
	return &Plane{P: pl.P.Copy(), N: pl.N.Copy()}
}

// Equation returns the coefficients of ax + by + cz + d = 0, each rounded
// to the given precision.
func (pl *Plane) Equation(oom int, rm rnum.RoundingMode) (a, b, c, d *big.Rat) {
	a = rnum.Round(pl.N.DX, oom, rm)
	b = rnum.Round(pl.N.DY, oom, rm)
	c = rnum.Round(pl.N.DZ, oom, rm)
	d = rnum.Round(new(big.Rat).Neg(pl.N.Dot(pl.P.Position())), oom, rm)
	return a, b, c, d
}

// IsOn reports whether pt lies on the plane at the given precision:
// n.(pt-p) rounds to zero.
func (pl *Plane) IsOn(pt *Point, oom int, rm rnum.RoundingMode) bool {
	return pl.Side(pt, oom, rm) == 0
}

// Side reports which half-space pt falls in at the given precision: +1 on
// the normal's side, -1 opposite, 0 on the plane.
func (pl *Plane) Side(pt *Point, oom int, rm rnum.RoundingMode) int {
	w := pt.Position().Subtract(pl.P.Position())
	return rnum.Round(pl.N.Dot(w), oom, rm).Sign()
}

// IsParallel reports whether the two planes' normals are scalar multiples
// at the given precision.
func (pl *Plane) IsParallel(other *Plane, oom int, rm rnum.RoundingMode) bool {
	return pl.N.IsScalarMultiple(other.N, oom, rm)
}

// IsParallelToLine reports whether the line's direction is orthogonal to
// the plane's normal at the given precision, so the line runs along the
// plane or alongside it.
func (pl *Plane) IsParallelToLine(l *Line, oom int, rm rnum.RoundingMode) bool {
	return rnum.IsZero(pl.N.Dot(l.V), oom, rm)
}

// Equals reports whether the two planes are coincident as point sets at
// the given precision, ignoring normal orientation and scale.
func (pl *Plane) Equals(other *Plane, oom int, rm rnum.RoundingMode) bool {
	return pl.IsParallel(other, oom, rm) && pl.IsOn(other.P, oom, rm)
}

// IntersectLine returns the intersection of the plane with a line: nil
// when the line is parallel and off the plane, the *Line itself (as a
// copy) when it lies in the plane, and otherwise a *Point.
func (pl *Plane) IntersectLine(l *Line, oom int, rm rnum.RoundingMode) Geometry {
	den := pl.N.Dot(l.V)
	if rnum.IsZero(den, oom, rm) {
		if pl.IsOn(l.P, oom, rm) {
			return l.Copy()
		}
		return nil
	}
	t := pl.N.Dot(pl.P.Position().Subtract(l.P.Position()))
	t.Quo(t, den)
	return l.PointAt(t)
}

// IntersectRay returns the intersection of the plane with a ray: nil, a
// *Point, or the *Ray itself (as a copy) when it lies in the plane.
func (pl *Plane) IntersectRay(r *Ray, oom int, rm rnum.RoundingMode) Geometry {
	g := pl.IntersectLine(r.L, oom, rm)
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

// IntersectSegment returns the intersection of the plane with a segment:
// nil, a *Point, or the *LineSegment itself (as a copy) when it lies in
// the plane.
func (pl *Plane) IntersectSegment(s *LineSegment, oom int, rm rnum.RoundingMode) Geometry {
	g := pl.IntersectLine(s.Line(), oom, rm)
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

// Intersect returns the intersection of two planes: nil when they are
// parallel and distinct, a *Plane (a copy of the receiver) when they are
// coincident, and otherwise the *Line they meet in, directed along
// n1 x n2.
func (pl *Plane) Intersect(other *Plane, oom int, rm rnum.RoundingMode) Geometry {
	if pl.IsParallel(other, oom, rm) {
		if pl.IsOn(other.P, oom, rm) {
			return pl.Copy()
		}
		return nil
	}

	dir := pl.N.Cross(other.N)
	// Fix the coordinate with the largest direction component to zero
	// and solve the remaining 2x2 system for a point on both planes.
	k := 0
	best := ratAbs(dir.DX)
	if ratAbs(dir.DY).Cmp(best) > 0 {
		k, best = 1, ratAbs(dir.DY)
	}
	if ratAbs(dir.DZ).Cmp(best) > 0 {
		k = 2
	}
	var idx [2]int
	switch k {
	case 0:
		idx = [2]int{1, 2}
	case 1:
		idx = [2]int{0, 2}
	default:
		idx = [2]int{0, 1}
	}

	m := rmat.NewMatrix([]*big.Rat{
		pl.N.comp(idx[0]), pl.N.comp(idx[1]),
		other.N.comp(idx[0]), other.N.comp(idx[1]),
	}, 2, 2)
	bs := []*big.Rat{
		pl.N.Dot(pl.P.Position()),
		other.N.Dot(other.P.Position()),
	}
	xs, ok := m.SolveVector(bs)
	if !ok {
		return nil
	}

	coords := [3]*big.Rat{new(big.Rat), new(big.Rat), new(big.Rat)}
	coords[idx[0]] = xs[0]
	coords[idx[1]] = xs[1]
	return NewLine(NewPoint(coords[0], coords[1], coords[2]), dir)
}

// Intersect3 returns the common intersection of three planes: nil, a
// *Point, a *Line, or a *Plane when all three coincide. The pairwise
// result of the first two is intersected with the third.
func (pl *Plane) Intersect3(p2, p3 *Plane, oom int, rm rnum.RoundingMode) Geometry {
	g := pl.Intersect(p2, oom, rm)
	switch v := g.(type) {
	case nil:
		return nil
	case *Plane:
		return v.Intersect(p3, oom, rm)
	case *Line:
		return p3.IntersectLine(v, oom, rm)
	}
	return nil
}

// DistanceSquaredToPoint returns the squared perpendicular distance from
// pt to the plane, rounded to the given precision.
func (pl *Plane) DistanceSquaredToPoint(pt *Point, oom int, rm rnum.RoundingMode) *big.Rat {
	return rnum.Round(pl.distSqToPoint(pt), oom, rm)
}

// DistanceToPoint returns the perpendicular distance from pt to the
// plane, rounded to the given precision.
func (pl *Plane) DistanceToPoint(pt *Point, oom int, rm rnum.RoundingMode) *big.Rat {
	return rnum.Sqrt(pl.distSqToPoint(pt), oom, rm)
}

func (pl *Plane) distSqToPoint(pt *Point) *big.Rat {
	w := pt.Position().Subtract(pl.P.Position())
	n := pl.N.Dot(w)
	n.Mul(n, n)
	return n.Quo(n, pl.N.MagnitudeSquared())
}

// DistanceSquaredToLine returns the squared distance between the plane
// and a line, rounded to the given precision. It is zero unless the line
// is parallel to the plane.
func (pl *Plane) DistanceSquaredToLine(l *Line, oom int, rm rnum.RoundingMode) *big.Rat {
	if !pl.IsParallelToLine(l, oom, rm) {
		return new(big.Rat)
	}
	return pl.DistanceSquaredToPoint(l.P, oom, rm)
}

// DistanceSquaredToPlane returns the squared distance between two planes,
// rounded to the given precision. It is zero unless they are parallel.
func (pl *Plane) DistanceSquaredToPlane(other *Plane, oom int, rm rnum.RoundingMode) *big.Rat {
	if !pl.IsParallel(other, oom, rm) {
		return new(big.Rat)
	}
	return pl.DistanceSquaredToPoint(other.P, oom, rm)
}

// Translate moves the plane by v, mutating its base point, and returns
// pl. The normal is unchanged.
func (pl *Plane) Translate(v *Vector) *Plane {
	pl.P.Translate(v)
	return pl
}

// Rotate returns a new plane: the base point rotated about the axis line
// and the normal rotated about the axis direction.
func (pl *Plane) Rotate(axis *Line, pi *rnum.Pi, theta *big.Rat, oom int, rm rnum.RoundingMode) *Plane {
	return &Plane{
		P: pl.P.Rotate(axis, pi, theta, oom, rm),
		N: pl.N.Rotate(axis.V, pi, theta, oom, rm),
	}
}

func (pl *Plane) String() string {
	return fmt.Sprintf("Plane(%v, %v)", pl.P, pl.N)
}
