package geom

import (
	"fmt"
	"math/big"

	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

// AABB is an axis aligned bounding box. The bounds are exact; OOM
// records the order of magnitude the box was requested at and is the
// resolution its own queries default to. Min and Max hold the x, y and
// z bounds in that order.
type AABB struct {
	OOM      int
	Min, Max [3]*big.Rat

	corners      [8]*Point
	cornersValid bool
}

// NewAABB creates the bounding box of one or more points. It panics
// when given none.
func NewAABB(oom int, pts ...*Point) *AABB {
	if len(pts) == 0 {
		panic("Cannot make an AABB from no points.")
	}
	a := &AABB{OOM: oom}
	p0 := pts[0].Position()
	for i := 0; i < 3; i++ {
		a.Min[i] = new(big.Rat).Set(p0.comp(i))
		a.Max[i] = new(big.Rat).Set(p0.comp(i))
	}
	for _, p := range pts[1:] {
		x := p.Position()
		for i := 0; i < 3; i++ {
			if x.comp(i).Cmp(a.Min[i]) < 0 {
				a.Min[i].Set(x.comp(i))
			}
			if x.comp(i).Cmp(a.Max[i]) > 0 {
				a.Max[i].Set(x.comp(i))
			}
		}
	}
	return a
}

// Copy returns a deep copy of a.
func (a *AABB) Copy() *AABB {
	out := &AABB{OOM: a.OOM}
	for i := 0; i < 3; i++ {
		out.Min[i] = new(big.Rat).Set(a.Min[i])
		out.Max[i] = new(big.Rat).Set(a.Max[i])
	}
	return out
}

// Union returns the smallest box covering both a and other, at the
// given order of magnitude.
func (a *AABB) Union(other *AABB, oom int) *AABB {
	out := &AABB{OOM: oom}
	for i := 0; i < 3; i++ {
		out.Min[i] = new(big.Rat).Set(rnum.Min(a.Min[i], other.Min[i]))
		out.Max[i] = new(big.Rat).Set(rnum.Max(a.Max[i], other.Max[i]))
	}
	return out
}

// Intersects reports whether the boxes overlap or touch when their
// bounds are pushed outward to the given order of magnitude.
func (a *AABB) Intersects(other *AABB, oom int) bool {
	for i := 0; i < 3; i++ {
		amin := rnum.Round(a.Min[i], oom, rnum.Floor)
		amax := rnum.Round(a.Max[i], oom, rnum.Ceiling)
		bmin := rnum.Round(other.Min[i], oom, rnum.Floor)
		bmax := rnum.Round(other.Max[i], oom, rnum.Ceiling)
		if amax.Cmp(bmin) < 0 || bmax.Cmp(amin) < 0 {
			return false
		}
	}
	return true
}

// IntersectsPoint reports whether pt is in the box at the given
// precision, faces included.
func (a *AABB) IntersectsPoint(pt *Point, oom int, rm rnum.RoundingMode) bool {
	x := pt.Position()
	for i := 0; i < 3; i++ {
		if rnum.Cmp(x.comp(i), a.Min[i], oom, rm) < 0 {
			return false
		}
		if rnum.Cmp(x.comp(i), a.Max[i], oom, rm) > 0 {
			return false
		}
	}
	return true
}

// Contains reports whether other fits inside a when both boxes' bounds
// are pushed outward to the given order of magnitude.
func (a *AABB) Contains(other *AABB, oom int) bool {
	for i := 0; i < 3; i++ {
		amin := rnum.Round(a.Min[i], oom, rnum.Floor)
		amax := rnum.Round(a.Max[i], oom, rnum.Ceiling)
		bmin := rnum.Round(other.Min[i], oom, rnum.Floor)
		bmax := rnum.Round(other.Max[i], oom, rnum.Ceiling)
		if bmin.Cmp(amin) < 0 || bmax.Cmp(amax) > 0 {
			return false
		}
	}
	return true
}

// Intersect returns the exact overlap of the boxes at the given order
// of magnitude, nil when they are disjoint. Boxes that merely touch
// give a flat box.
func (a *AABB) Intersect(other *AABB, oom int) *AABB {
	out := &AABB{OOM: oom}
	for i := 0; i < 3; i++ {
		lo := rnum.Max(a.Min[i], other.Min[i])
		hi := rnum.Min(a.Max[i], other.Max[i])
		if lo.Cmp(hi) > 0 {
			return nil
		}
		out.Min[i] = new(big.Rat).Set(lo)
		out.Max[i] = new(big.Rat).Set(hi)
	}
	return out
}

// Equals reports whether the two boxes have exactly the same bounds.
func (a *AABB) Equals(other *AABB) bool {
	for i := 0; i < 3; i++ {
		if a.Min[i].Cmp(other.Min[i]) != 0 || a.Max[i].Cmp(other.Max[i]) != 0 {
			return false
		}
	}
	return true
}

// Translate moves the box by v, mutating it, and returns a.
func (a *AABB) Translate(v *Vector) *AABB {
	for i := 0; i < 3; i++ {
		a.Min[i].Add(a.Min[i], v.comp(i))
		a.Max[i].Add(a.Max[i], v.comp(i))
	}
	a.cornersValid = false
	return a
}

// Corners returns the box's eight corners. Corner i takes x from Max
// when bit 2 of i is set, y from Max when bit 1 is set and z from Max
// when bit 0 is set. The points are cached on the box; treat them as
// read-only.
func (a *AABB) Corners() [8]*Point {
	if !a.cornersValid {
		for i := 0; i < 8; i++ {
			x := a.Min[0]
			if i&4 != 0 {
				x = a.Max[0]
			}
			y := a.Min[1]
			if i&2 != 0 {
				y = a.Max[1]
			}
			z := a.Min[2]
			if i&1 != 0 {
				z = a.Max[2]
			}
			a.corners[i] = NewPoint(x, y, z)
		}
		a.cornersValid = true
	}
	return a.corners
}

// Centroid returns the centre of the box.
func (a *AABB) Centroid() *Point {
	half := big.NewRat(1, 2)
	v := &Vector{
		DX: new(big.Rat).Add(a.Min[0], a.Max[0]),
		DY: new(big.Rat).Add(a.Min[1], a.Max[1]),
		DZ: new(big.Rat).Add(a.Min[2], a.Max[2]),
	}
	v.DX.Mul(v.DX, half)
	v.DY.Mul(v.DY, half)
	v.DZ.Mul(v.DZ, half)
	return NewPointSharing(ZeroVector(), v)
}

// Viewport returns the rectangle a camera at focus looking along dir
// sees the box through: every corner is projected from the focal point
// onto the plane through the box's centre normal to dir, and the
// rectangle spans the projections' extremes along the two axes
// orthogonal to dir. Viewport panics when dir is zero, when any corner
// is not in front of the focal point, or when the box is flat along
// the view.
func (a *AABB) Viewport(focus *Point, dir *Vector, oom int, rm rnum.RoundingMode) *Rectangle {
	if dir.IsZero() {
		panic("Cannot make a viewport with a zero view direction.")
	}

	// The horizontal reference is the axis least aligned with dir.
	h := UnitX()
	best := ratAbs(dir.DX)
	if ay := ratAbs(dir.DY); ay.Cmp(best) < 0 {
		h, best = UnitY(), ay
	}
	if az := ratAbs(dir.DZ); az.Cmp(best) < 0 {
		h = UnitZ()
	}
	right := dir.Cross(h)
	up := right.Cross(dir)

	f := focus.Position()
	c := a.Centroid().Position()
	tnum := dir.Dot(c.Subtract(f))
	rightSq := right.MagnitudeSquared()
	upSq := up.MagnitudeSquared()

	var aMin, aMax, bMin, bMax *big.Rat
	for _, k := range a.Corners() {
		dk := k.Position().Subtract(f)
		den := dir.Dot(dk)
		if den.Sign() <= 0 {
			panic("Cannot make a viewport unless the box is in front of the focal point.")
		}
		t := new(big.Rat).Quo(tnum, den)
		x := f.Add(dk.Multiply(t))
		alpha := new(big.Rat).Quo(right.Dot(x.Subtract(c)), rightSq)
		beta := new(big.Rat).Quo(up.Dot(x.Subtract(c)), upSq)
		if aMin == nil || alpha.Cmp(aMin) < 0 {
			aMin = alpha
		}
		if aMax == nil || alpha.Cmp(aMax) > 0 {
			aMax = alpha
		}
		if bMin == nil || beta.Cmp(bMin) < 0 {
			bMin = beta
		}
		if bMax == nil || beta.Cmp(bMax) > 0 {
			bMax = beta
		}
	}
	if aMin.Cmp(aMax) == 0 || bMin.Cmp(bMax) == 0 {
		panic("Cannot make a viewport of a flat box.")
	}

	corner := func(al, be *big.Rat) *Point {
		x := c.Add(right.Multiply(al)).Add(up.Multiply(be))
		return NewPointSharing(ZeroVector(), x)
	}
	return NewRectangle(
		corner(aMin, bMin),
		corner(aMin, bMax),
		corner(aMax, bMax),
		corner(aMax, bMin),
		oom, rm,
	)
}

func (a *AABB) String() string {
	return fmt.Sprintf("AABB(x: %s..%s, y: %s..%s, z: %s..%s)",
		a.Min[0].RatString(), a.Max[0].RatString(),
		a.Min[1].RatString(), a.Max[1].RatString(),
		a.Min[2].RatString(), a.Max[2].RatString())
}
