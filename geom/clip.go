package geom

import (
	"math/big"

	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

// halfSpace is the linear constraint n.(x - p) >= 0 over position
// vectors x. Rings and solids are represented as conjunctions of these.
type halfSpace struct {
	n *Vector
	p *Vector
}

// eval returns n.(x - p) exactly.
func (h halfSpace) eval(x *Vector) *big.Rat {
	return h.n.Dot(x.Subtract(h.p))
}

// ringCentroid returns the mean position of a ring of points.
func ringCentroid(ring []*Point) *Vector {
	sum := ZeroVector()
	for _, p := range ring {
		sum = sum.Add(p.Position())
	}
	return sum.Divide(big.NewRat(int64(len(ring)), 1))
}

// ringHalfSpaces returns one half-space per edge of a convex ring lying
// in the plane with normal n, oriented so the ring's interior satisfies
// every constraint. The orientation comes from the ring's centroid,
// which is strictly inside any valid convex ring.
func ringHalfSpaces(ring []*Point, n *Vector) []halfSpace {
	c := ringCentroid(ring)
	hs := make([]halfSpace, len(ring))
	for i := range ring {
		a := ring[i].Position()
		b := ring[(i+1)%len(ring)].Position()
		g := n.Cross(b.Subtract(a))
		switch g.Dot(c.Subtract(a)).Sign() {
		case 0:
			panic("Cannot orient a degenerate ring.")
		case -1:
			g = g.Reverse()
		}
		hs[i] = halfSpace{n: g, p: a}
	}
	return hs
}

// onHalfSpaces reports whether x satisfies every constraint at the
// given precision, boundary included.
func onHalfSpaces(hs []halfSpace, x *Vector, oom int, rm rnum.RoundingMode) bool {
	for _, h := range hs {
		if rnum.Round(h.eval(x), oom, rm).Sign() < 0 {
			return false
		}
	}
	return true
}

// inHalfSpaces is the strict form of onHalfSpaces: positions on a
// boundary do not count.
func inHalfSpaces(hs []halfSpace, x *Vector, oom int, rm rnum.RoundingMode) bool {
	for _, h := range hs {
		if rnum.Round(h.eval(x), oom, rm).Sign() <= 0 {
			return false
		}
	}
	return true
}

// intersectPlanarLine intersects the line through l.PointAt(t) for
// t in [lo, hi] (nil bounds meaning unbounded) with the convex region
// bounded by hs on plane pl. The result is nil, a *Point, or a
// *LineSegment.
func intersectPlanarLine(pl *Plane, hs []halfSpace, l *Line, lo, hi *big.Rat, oom int, rm rnum.RoundingMode) Geometry {
	den := pl.N.Dot(l.V)
	if rnum.IsZero(den, oom, rm) {
		if !pl.IsOn(l.P, oom, rm) {
			return nil
		}
		clo, chi, ok := clipLineParams(l, lo, hi, hs, oom, rm)
		return emitLineClip(l, clo, chi, ok, oom, rm)
	}
	t := pl.N.Dot(pl.P.Position().Subtract(l.P.Position()))
	t.Quo(t, den)
	if lo != nil && rnum.Cmp(t, lo, oom, rm) < 0 {
		return nil
	}
	if hi != nil && rnum.Cmp(t, hi, oom, rm) > 0 {
		return nil
	}
	pt := l.PointAt(t)
	if !onHalfSpaces(hs, pt.Position(), oom, rm) {
		return nil
	}
	return pt
}

// matchPointSets reports whether two rings have the same points at the
// given precision, ignoring order.
func matchPointSets(as, bs []*Point, oom int, rm rnum.RoundingMode) bool {
	if len(as) != len(bs) {
		return false
	}
	used := make([]bool, len(bs))
	for _, a := range as {
		found := false
		for i, b := range bs {
			if !used[i] && a.Equals(b, oom, rm) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// clipLineParams narrows the parameter interval [lo, hi] of l so that
// l.PointAt(t) satisfies every half-space. Nil bounds are unbounded.
// The last result is false when the interval empties at the given
// precision.
func clipLineParams(l *Line, lo, hi *big.Rat, hs []halfSpace, oom int, rm rnum.RoundingMode) (*big.Rat, *big.Rat, bool) {
	lp := l.P.Position()
	for _, h := range hs {
		fa := h.eval(lp)
		fv := h.n.Dot(l.V)
		if rnum.IsZero(fv, oom, rm) {
			// The line runs along the boundary's direction: it is
			// either wholly in or wholly out of this half-space.
			if rnum.Round(fa, oom, rm).Sign() < 0 {
				return nil, nil, false
			}
			continue
		}
		t := new(big.Rat).Quo(new(big.Rat).Neg(fa), fv)
		if fv.Sign() > 0 {
			if lo == nil || t.Cmp(lo) > 0 {
				lo = t
			}
		} else {
			if hi == nil || t.Cmp(hi) < 0 {
				hi = t
			}
		}
	}
	if lo != nil && hi != nil && rnum.Cmp(hi, lo, oom, rm) < 0 {
		return nil, nil, false
	}
	return lo, hi, true
}

// emitLineClip converts a clipped parameter interval back into geometry
// on l. The rings and solids clipped against here are bounded, so a
// surviving interval always has both ends.
func emitLineClip(l *Line, lo, hi *big.Rat, ok bool, oom int, rm rnum.RoundingMode) Geometry {
	if !ok {
		return nil
	}
	if lo == nil || hi == nil {
		panic("Impossible")
	}
	return emitParamRange(l, lo, hi, oom, rm)
}

// clipPolygon cuts a convex ring of coplanar points down by every
// half-space in turn, Sutherland-Hodgman style. Vertices are kept or
// dropped by the rounded sign of the constraint; crossing points are
// computed exactly. The result may be empty.
func clipPolygon(poly []*Point, hs []halfSpace, oom int, rm rnum.RoundingMode) []*Point {
	for _, h := range hs {
		if len(poly) == 0 {
			return nil
		}
		var out []*Point
		for i := range poly {
			cur := poly[i]
			next := poly[(i+1)%len(poly)]
			fc := h.eval(cur.Position())
			fn := h.eval(next.Position())
			sc := rnum.Round(fc, oom, rm).Sign()
			sn := rnum.Round(fn, oom, rm).Sign()
			if sc >= 0 {
				out = append(out, cur)
			}
			if sc*sn < 0 {
				t := new(big.Rat).Quo(fc, new(big.Rat).Sub(fc, fn))
				d := next.Position().Subtract(cur.Position())
				x := cur.Position().Add(d.Multiply(t))
				out = append(out, NewPointSharing(ZeroVector(), x))
			}
		}
		poly = out
	}
	return poly
}

// classifyPolygon reduces a clipped ring to the smallest geometry that
// represents it: nil, a point, a segment, a triangle, or a convex area.
func classifyPolygon(pts []*Point, oom int, rm rnum.RoundingMode) Geometry {
	// Collapse points that coincide at the given precision. Proper
	// convex rings have no coincident vertices, so this only bites on
	// degenerate clips.
	var kept []*Point
	for _, p := range pts {
		dup := false
		for _, q := range kept {
			if p.Equals(q, oom, rm) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, p)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0].Copy()
	case 2:
		return NewLineSegment(kept[0], kept[1])
	}

	// A sliver whose vertices all sit on one line reduces to the
	// segment between the extreme two.
	d := kept[1].Position().Subtract(kept[0].Position())
	collinear := true
	for _, p := range kept[2:] {
		if !d.Cross(p.Position().Subtract(kept[0].Position())).IsZeroAt(oom, rm) {
			collinear = false
			break
		}
	}
	if collinear {
		den := d.MagnitudeSquared()
		lo, hi := 0, 0
		var loT, hiT *big.Rat
		for i, p := range kept {
			t := new(big.Rat).Quo(d.Dot(p.Position().Subtract(kept[0].Position())), den)
			if loT == nil || t.Cmp(loT) < 0 {
				lo, loT = i, t
			}
			if hiT == nil || t.Cmp(hiT) > 0 {
				hi, hiT = i, t
			}
		}
		return NewLineSegment(kept[lo], kept[hi])
	}

	// Vertices sitting exactly on the line of their ring neighbours
	// add nothing to the polygon.
	for changed := true; changed && len(kept) > 3; {
		changed = false
		for i := range kept {
			a := kept[(i+len(kept)-1)%len(kept)].Position()
			b := kept[i].Position()
			c := kept[(i+1)%len(kept)].Position()
			if b.Subtract(a).Cross(c.Subtract(b)).IsZero() {
				kept = append(kept[:i], kept[i+1:]...)
				changed = true
				break
			}
		}
	}
	if len(kept) == 3 {
		return NewTriangle(kept[0], kept[1], kept[2], oom, rm)
	}
	return NewConvexArea(kept, oom, rm)
}

// chainSegments orders face-section segments into a ring of points by
// matching endpoints at the given precision. Duplicate segments, which
// arise when a cut runs along an edge shared by two faces, are dropped
// first.
func chainSegments(segs []*LineSegment, oom int, rm rnum.RoundingMode) []*Point {
	var uniq []*LineSegment
	for _, s := range segs {
		dup := false
		for _, u := range uniq {
			if s.Equals(u, oom, rm) {
				dup = true
				break
			}
		}
		if !dup {
			uniq = append(uniq, s)
		}
	}
	if len(uniq) == 0 {
		return nil
	}

	ring := []*Point{uniq[0].P, uniq[0].Q}
	used := make([]bool, len(uniq))
	used[0] = true
	cur := uniq[0].Q
	for {
		matched := false
		for i, s := range uniq {
			if used[i] {
				continue
			}
			switch {
			case s.P.Equals(cur, oom, rm):
				ring = append(ring, s.Q)
				cur = s.Q
			case s.Q.Equals(cur, oom, rm):
				ring = append(ring, s.P)
				cur = s.P
			default:
				continue
			}
			used[i] = true
			matched = true
			break
		}
		if !matched {
			break
		}
	}
	if len(ring) > 1 && ring[len(ring)-1].Equals(ring[0], oom, rm) {
		ring = ring[:len(ring)-1]
	}
	return ring
}
