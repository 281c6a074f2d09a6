package geom

import (
	"fmt"
	"math/big"

	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

// Point is a position split into an offset vector and a relative vector.
// The effective position is their sum. Keeping the two parts separate
// makes translation cheap: it only ever touches the offset.
type Point struct {
	Offset *Vector
	Rel    *Vector
}

// NewPoint creates a point at (x, y, z) with a zero offset. The
// coordinates are copied.
func NewPoint(x, y, z *big.Rat) *Point {
	return &Point{Offset: ZeroVector(), Rel: NewVector(x, y, z)}
}

// NewPointInt creates a point at integer coordinates.
func NewPointInt(x, y, z int64) *Point {
	return &Point{Offset: ZeroVector(), Rel: NewVectorInt(x, y, z)}
}

// NewPointFromVectors creates a point with copies of the given offset and
// relative parts.
func NewPointFromVectors(offset, rel *Vector) *Point {
	return &Point{Offset: offset.Copy(), Rel: rel.Copy()}
}

// NewPointSharing creates a point that aliases the given vectors rather
// than copying them. Mutating the shared vectors afterwards is the
// caller's responsibility.
func NewPointSharing(offset, rel *Vector) *Point {
	return &Point{Offset: offset, Rel: rel}
}

// Position returns the effective position, offset + rel, as a new vector.
func (p *Point) Position() *Vector {
	return p.Offset.Add(p.Rel)
}

// Copy returns a deep copy of p.
func (p *Point) Copy() *Point {
	return &Point{Offset: p.Offset.Copy(), Rel: p.Rel.Copy()}
}

// Translate moves p by v, mutating only the offset, and returns p for
// chaining.
func (p *Point) Translate(v *Vector) *Point {
	p.Offset = p.Offset.Add(v)
	return p
}

// SetOffset rebases p onto the given offset without changing its
// effective position.
func (p *Point) SetOffset(offset *Vector) *Point {
	p.Rel = p.Position().Subtract(offset)
	p.Offset = offset.Copy()
	return p
}

// Rotate returns a new point: the position of p rotated by theta radians
// about the given axis line.
func (p *Point) Rotate(axis *Line, pi *rnum.Pi, theta *big.Rat, oom int, rm rnum.RoundingMode) *Point {
	a := axis.P.Position()
	w := p.Position().Subtract(a)
	rot := w.Rotate(axis.V, pi, theta, oom, rm)
	return &Point{Offset: ZeroVector(), Rel: a.Add(rot)}
}

// Equals reports whether p and q occupy the same position at the given
// precision: the componentwise difference of their effective positions
// rounds to zero.
func (p *Point) Equals(q *Point, oom int, rm rnum.RoundingMode) bool {
	return p.Position().Subtract(q.Position()).IsZeroAt(oom, rm)
}

// EqualsExact reports whether the effective positions agree exactly.
func (p *Point) EqualsExact(q *Point) bool {
	return p.Position().Subtract(q.Position()).IsZero()
}

// DistanceSquared returns the exact squared distance between p and q.
func (p *Point) DistanceSquared(q *Point) *big.Rat {
	return p.Position().Subtract(q.Position()).MagnitudeSquared()
}

// Distance returns the distance between p and q rounded to the given
// precision.
func (p *Point) Distance(q *Point, oom int, rm rnum.RoundingMode) *big.Rat {
	return rnum.Sqrt(p.DistanceSquared(q), oom, rm)
}

// AABB returns the degenerate box covering just p.
func (p *Point) AABB(oom int) *AABB {
	return NewAABB(oom, p)
}

func (p *Point) String() string {
	pos := p.Position()
	return fmt.Sprintf("Point(%s, %s, %s)",
		pos.DX.RatString(), pos.DY.RatString(), pos.DZ.RatString())
}
