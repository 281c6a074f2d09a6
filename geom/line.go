package geom

import (
	"fmt"
	"math/big"

	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

// Line is an unbounded line defined by a base point and a non-zero
// direction vector.
type Line struct {
	P *Point
	V *Vector
}

// NewLine creates a line through p with direction v, copying both. It
// panics when v is the zero vector.
func NewLine(p *Point, v *Vector) *Line {
	if v.IsZero() {
		panic("Cannot make a line with a zero direction.")
	}
	return &Line{P: p.Copy(), V: v.Copy()}
}

// NewLineSharing creates a line that aliases p and v rather than copying
// them.
func NewLineSharing(p *Point, v *Vector) *Line {
	if v.IsZero() {
		panic("Cannot make a line with a zero direction.")
	}
	return &Line{P: p, V: v}
}

// NewLineThrough creates the line through two distinct points, directed
// from p to q. It panics when the points coincide exactly.
func NewLineThrough(p, q *Point) *Line {
	v := q.Position().Subtract(p.Position())
	if v.IsZero() {
		panic("Cannot make a line between a point and itself.")
	}
	return &Line{P: p.Copy(), V: v}
}

// Copy returns a deep copy of l.
func (l *Line) Copy() *Line {
	return &Line{P: l.P.Copy(), V: l.V.Copy()}
}

// PointAt returns the point at parameter t, p + t v.
func (l *Line) PointAt(t *big.Rat) *Point {
	return &Point{Offset: ZeroVector(), Rel: l.P.Position().Add(l.V.Multiply(t))}
}

// paramOf returns the parameter of the projection of pt onto l. For
// points on the line this recovers their parameter exactly.
func (l *Line) paramOf(pt *Point) *big.Rat {
	w := pt.Position().Subtract(l.P.Position())
	t := w.Dot(l.V)
	return t.Quo(t, l.V.MagnitudeSquared())
}

// IsOn reports whether pt lies on l at the given precision: the cross
// product of the offset to pt with the direction rounds to zero
// componentwise.
func (l *Line) IsOn(pt *Point, oom int, rm rnum.RoundingMode) bool {
	w := pt.Position().Subtract(l.P.Position())
	return w.Cross(l.V).IsZeroAt(oom, rm)
}

// IsParallel reports whether the two lines' directions are scalar
// multiples at the given precision.
func (l *Line) IsParallel(other *Line, oom int, rm rnum.RoundingMode) bool {
	return l.V.IsScalarMultiple(other.V, oom, rm)
}

// Intersect returns the intersection of two lines: a *Line when they are
// coincident, a *Point when they cross, and nil when they are parallel
// but distinct or skew.
func (l *Line) Intersect(other *Line, oom int, rm rnum.RoundingMode) Geometry {
	if l.IsParallel(other, oom, rm) {
		if l.IsOn(other.P, oom, rm) {
			return l.Copy()
		}
		return nil
	}

	d := other.P.Position().Subtract(l.P.Position())
	cr := l.V.Cross(other.V)
	if !rnum.IsZero(d.Dot(cr), oom, rm) {
		return nil
	}
	t := d.Cross(other.V).Dot(cr)
	t.Quo(t, cr.MagnitudeSquared())
	return l.PointAt(t)
}

// DistanceSquaredToPoint returns the squared perpendicular distance from
// pt to l, rounded to the given precision.
func (l *Line) DistanceSquaredToPoint(pt *Point, oom int, rm rnum.RoundingMode) *big.Rat {
	return rnum.Round(l.distSqToPoint(pt), oom, rm)
}

// DistanceToPoint returns the perpendicular distance from pt to l,
// rounded to the given precision.
func (l *Line) DistanceToPoint(pt *Point, oom int, rm rnum.RoundingMode) *big.Rat {
	return rnum.Sqrt(l.distSqToPoint(pt), oom, rm)
}

func (l *Line) distSqToPoint(pt *Point) *big.Rat {
	w := pt.Position().Subtract(l.P.Position())
	n := w.Cross(l.V).MagnitudeSquared()
	return n.Quo(n, l.V.MagnitudeSquared())
}

// DistanceSquared returns the squared distance between two lines, rounded
// to the given precision. Parallel lines reduce to a point distance,
// crossing lines give zero, and skew lines use the common perpendicular.
func (l *Line) DistanceSquared(other *Line, oom int, rm rnum.RoundingMode) *big.Rat {
	if l.IsParallel(other, oom, rm) {
		return l.DistanceSquaredToPoint(other.P, oom, rm)
	}
	d := other.P.Position().Subtract(l.P.Position())
	cr := l.V.Cross(other.V)
	n := d.Dot(cr)
	n.Mul(n, n)
	n.Quo(n, cr.MagnitudeSquared())
	return rnum.Round(n, oom, rm)
}

// Distance returns the distance between two lines, rounded to the given
// precision.
func (l *Line) Distance(other *Line, oom int, rm rnum.RoundingMode) *big.Rat {
	if l.IsParallel(other, oom, rm) {
		return rnum.Sqrt(l.distSqToPoint(other.P), oom, rm)
	}
	d := other.P.Position().Subtract(l.P.Position())
	cr := l.V.Cross(other.V)
	n := d.Dot(cr)
	n.Mul(n, n)
	n.Quo(n, cr.MagnitudeSquared())
	return rnum.Sqrt(n, oom, rm)
}

// Translate moves the line by v, mutating its base point, and returns l.
func (l *Line) Translate(v *Vector) *Line {
	l.P.Translate(v)
	return l
}

// Rotate returns a new line: the base point rotated about the axis line
// and the direction rotated about the axis direction.
func (l *Line) Rotate(axis *Line, pi *rnum.Pi, theta *big.Rat, oom int, rm rnum.RoundingMode) *Line {
	return &Line{
		P: l.P.Rotate(axis, pi, theta, oom, rm),
		V: l.V.Rotate(axis.V, pi, theta, oom, rm),
	}
}

// Equals reports whether the two lines are coincident as point sets at
// the given precision, regardless of parameterisation.
func (l *Line) Equals(other *Line, oom int, rm rnum.RoundingMode) bool {
	return l.IsParallel(other, oom, rm) &&
		l.IsOn(other.P, oom, rm) && other.IsOn(l.P, oom, rm)
}

func (l *Line) String() string {
	return fmt.Sprintf("Line(%v, %v)", l.P, l.V)
}
