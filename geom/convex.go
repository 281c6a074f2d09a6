package geom

import (
	"math/big"
	"strings"

	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

// ConvexArea is a convex planar polygon held as its ring of corner
// points plus a fan of triangles from the first corner. It is mostly
// produced by the intersection routines when two regions overlap in
// more than a triangle.
type ConvexArea struct {
	Pts  []*Point
	Tris []*Triangle

	hs      []halfSpace
	hsValid bool
}

// NewConvexArea creates a convex area with copies of the given points,
// taken in ring order. It panics when the ring has fewer than three
// points, is collinear or non-coplanar, or turns both ways.
func NewConvexArea(pts []*Point, oom int, rm rnum.RoundingMode) *ConvexArea {
	if len(pts) < 3 {
		panic("Cannot make a convex area from fewer than three points.")
	}
	p0 := pts[0].Position()
	var n *Vector
	for i := 1; i+1 < len(pts); i++ {
		cr := pts[i].Position().Subtract(p0).Cross(pts[i+1].Position().Subtract(p0))
		if !cr.IsZero() {
			n = cr
			break
		}
	}
	if n == nil {
		panic("Cannot make a convex area from collinear points.")
	}
	for _, p := range pts {
		if !rnum.IsZero(n.Dot(p.Position().Subtract(p0)), oom, rm) {
			panic("Cannot make a convex area from non-coplanar points.")
		}
	}
	for i := range pts {
		a := pts[i].Position()
		b := pts[(i+1)%len(pts)].Position()
		c := pts[(i+2)%len(pts)].Position()
		turn := b.Subtract(a).Cross(c.Subtract(b)).Dot(n)
		if rnum.Round(turn, oom, rm).Sign() < 0 {
			panic("Cannot make a convex area from a non-convex ring.")
		}
	}

	ca := &ConvexArea{Pts: make([]*Point, len(pts))}
	for i, p := range pts {
		ca.Pts[i] = p.Copy()
	}
	for i := 1; i+1 < len(pts); i++ {
		a := pts[i].Position().Subtract(p0)
		b := pts[i+1].Position().Subtract(p0)
		if a.Cross(b).IsZero() {
			// A straight fan triple spans no area.
			continue
		}
		ca.Tris = append(ca.Tris, NewTriangle(pts[0], pts[i], pts[i+1], oom, rm))
	}
	return ca
}

// Copy returns a deep copy of c.
func (c *ConvexArea) Copy() *ConvexArea {
	out := &ConvexArea{
		Pts:  make([]*Point, len(c.Pts)),
		Tris: make([]*Triangle, len(c.Tris)),
	}
	for i, p := range c.Pts {
		out.Pts[i] = p.Copy()
	}
	for i, t := range c.Tris {
		out.Tris[i] = t.Copy()
	}
	return out
}

// Points returns copies of the ring's corner points.
func (c *ConvexArea) Points() []*Point {
	out := make([]*Point, len(c.Pts))
	for i, p := range c.Pts {
		out[i] = p.Copy()
	}
	return out
}

// Plane returns the plane the area lies in.
func (c *ConvexArea) Plane() *Plane {
	return c.Tris[0].Pl
}

func (c *ConvexArea) halfSpaces() []halfSpace {
	if !c.hsValid {
		c.hs = ringHalfSpaces(c.Pts, c.Plane().N)
		c.hsValid = true
	}
	return c.hs
}

// Area returns the summed triangle areas rounded to the given
// precision.
func (c *ConvexArea) Area(oom int, rm rnum.RoundingMode) *big.Rat {
	sum := new(big.Rat)
	for _, t := range c.Tris {
		sum.Add(sum, t.Area(oom-sumGuard, rm))
	}
	return rnum.Round(sum, oom, rm)
}

// Perimeter returns the ring's summed edge lengths rounded to the given
// precision.
func (c *ConvexArea) Perimeter(oom int, rm rnum.RoundingMode) *big.Rat {
	sum := new(big.Rat)
	for i, p := range c.Pts {
		q := c.Pts[(i+1)%len(c.Pts)]
		sum.Add(sum, p.Distance(q, oom-sumGuard, rm))
	}
	return rnum.Round(sum, oom, rm)
}

// Centroid returns the mean of the ring's corners.
func (c *ConvexArea) Centroid() *Point {
	return NewPointSharing(ZeroVector(), ringCentroid(c.Pts))
}

// AABB returns the axis aligned bounding box of the corners.
func (c *ConvexArea) AABB(oom int) *AABB {
	return NewAABB(oom, c.Pts...)
}

// IntersectsPoint reports whether pt is on the area, boundary included,
// at the given precision.
func (c *ConvexArea) IntersectsPoint(pt *Point, oom int, rm rnum.RoundingMode) bool {
	return c.Plane().IsOn(pt, oom, rm) && onHalfSpaces(c.halfSpaces(), pt.Position(), oom, rm)
}

// ContainsPoint reports whether pt is strictly inside the area at the
// given precision.
func (c *ConvexArea) ContainsPoint(pt *Point, oom int, rm rnum.RoundingMode) bool {
	return c.Plane().IsOn(pt, oom, rm) && inHalfSpaces(c.halfSpaces(), pt.Position(), oom, rm)
}

// Translate moves the area by v, mutating it, and returns c.
func (c *ConvexArea) Translate(v *Vector) *ConvexArea {
	for _, p := range c.Pts {
		p.Translate(v)
	}
	for _, t := range c.Tris {
		t.Translate(v)
	}
	c.hsValid = false
	return c
}

// Rotate returns a new convex area with every corner rotated about the
// axis line.
func (c *ConvexArea) Rotate(axis *Line, pi *rnum.Pi, theta *big.Rat, oom int, rm rnum.RoundingMode) *ConvexArea {
	pts := make([]*Point, len(c.Pts))
	for i, p := range c.Pts {
		pts[i] = p.Rotate(axis, pi, theta, oom, rm)
	}
	return NewConvexArea(pts, oom, rm)
}

// Equals reports whether the two areas have the same corners at the
// given precision, ignoring starting corner and winding.
func (c *ConvexArea) Equals(o *ConvexArea, oom int, rm rnum.RoundingMode) bool {
	return matchPointSets(c.Pts, o.Pts, oom, rm)
}

func (c *ConvexArea) String() string {
	var b strings.Builder
	b.WriteString("ConvexArea(")
	for i, p := range c.Pts {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(")")
	return b.String()
}
