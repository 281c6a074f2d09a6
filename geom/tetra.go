package geom

import (
	"fmt"
	"math/big"

	"github.com/agdturner/ccg-v3d-sub010/math/rmat"
	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

// Tetrahedron is a solid tetrahedron over four non-coplanar corner
// points with faces PQR, QSR, SPR and PSQ.
type Tetrahedron struct {
	P, Q, R, S *Point

	faces [4]*Triangle
	vol   *big.Rat

	hs      [4]halfSpace
	hsValid bool
}

// NewTetrahedron creates a tetrahedron with copies of the given corners.
// It panics when the corners are coplanar, which covers every other
// degeneracy too.
func NewTetrahedron(p, q, r, s *Point, oom int, rm rnum.RoundingMode) *Tetrahedron {
	pp := p.Position()
	dq := q.Position().Subtract(pp)
	dr := r.Position().Subtract(pp)
	ds := s.Position().Subtract(pp)
	det := rmat.NewMatrix([]*big.Rat{
		dq.DX, dq.DY, dq.DZ,
		dr.DX, dr.DY, dr.DZ,
		ds.DX, ds.DY, ds.DZ,
	}, 3, 3).Determinant()
	if det.Sign() == 0 {
		panic("Cannot make a tetrahedron from coplanar points.")
	}
	t := &Tetrahedron{
		P:   p.Copy(),
		Q:   q.Copy(),
		R:   r.Copy(),
		S:   s.Copy(),
		vol: new(big.Rat).Abs(det),
	}
	t.vol.Quo(t.vol, big.NewRat(6, 1))
	t.faces = [4]*Triangle{
		NewTriangle(p, q, r, oom, rm),
		NewTriangle(q, s, r, oom, rm),
		NewTriangle(s, p, r, oom, rm),
		NewTriangle(p, s, q, oom, rm),
	}
	return t
}

// Copy returns a deep copy of t.
func (t *Tetrahedron) Copy() *Tetrahedron {
	out := &Tetrahedron{
		P:   t.P.Copy(),
		Q:   t.Q.Copy(),
		R:   t.R.Copy(),
		S:   t.S.Copy(),
		vol: new(big.Rat).Set(t.vol),
	}
	for i, f := range t.faces {
		out.faces[i] = f.Copy()
	}
	return out
}

// Faces returns the triangles PQR, QSR, SPR and PSQ. The triangles are
// cached on the tetrahedron; treat them as read-only.
func (t *Tetrahedron) Faces() [4]*Triangle {
	return t.faces
}

// halfSpaces returns the four face constraints oriented so the interior
// satisfies all of them. Each face takes its orientation from the
// opposite corner.
func (t *Tetrahedron) halfSpaces() []halfSpace {
	if !t.hsValid {
		corners := [4][3]*Point{
			{t.P, t.Q, t.R},
			{t.Q, t.S, t.R},
			{t.S, t.P, t.R},
			{t.P, t.S, t.Q},
		}
		opps := [4]*Point{t.S, t.P, t.Q, t.R}
		for i := range corners {
			a := corners[i][0].Position()
			b := corners[i][1].Position()
			c := corners[i][2].Position()
			n := b.Subtract(a).Cross(c.Subtract(a))
			if n.Dot(opps[i].Position().Subtract(a)).Sign() < 0 {
				n = n.Reverse()
			}
			t.hs[i] = halfSpace{n: n, p: a}
		}
		t.hsValid = true
	}
	return t.hs[:]
}

// Volume returns the volume rounded to the given precision. The
// underlying value is exact.
func (t *Tetrahedron) Volume(oom int, rm rnum.RoundingMode) *big.Rat {
	return rnum.Round(t.vol, oom, rm)
}

// Area returns the summed face areas rounded to the given precision.
func (t *Tetrahedron) Area(oom int, rm rnum.RoundingMode) *big.Rat {
	sum := new(big.Rat)
	for _, f := range t.faces {
		sum.Add(sum, f.Area(oom-sumGuard, rm))
	}
	return rnum.Round(sum, oom, rm)
}

// Centroid returns the mean of the four corners.
func (t *Tetrahedron) Centroid() *Point {
	return NewPointSharing(ZeroVector(), ringCentroid([]*Point{t.P, t.Q, t.R, t.S}))
}

// AABB returns the axis aligned bounding box of the corners.
func (t *Tetrahedron) AABB(oom int) *AABB {
	return NewAABB(oom, t.P, t.Q, t.R, t.S)
}

// Contains reports whether pt is inside the tetrahedron at the given
// precision. Points on a face count.
func (t *Tetrahedron) Contains(pt *Point, oom int, rm rnum.RoundingMode) bool {
	return onHalfSpaces(t.halfSpaces(), pt.Position(), oom, rm)
}

// IntersectLine returns the intersection of the tetrahedron with a
// line: nil, a *Point when the line grazes a corner or an edge, or a
// *LineSegment.
func (t *Tetrahedron) IntersectLine(l *Line, oom int, rm rnum.RoundingMode) Geometry {
	lo, hi, ok := clipLineParams(l, nil, nil, t.halfSpaces(), oom, rm)
	return emitLineClip(l, lo, hi, ok, oom, rm)
}

// IntersectRay returns the intersection of the tetrahedron with a ray:
// nil, a *Point, or a *LineSegment.
func (t *Tetrahedron) IntersectRay(r *Ray, oom int, rm rnum.RoundingMode) Geometry {
	lo, hi, ok := clipLineParams(r.L, new(big.Rat), nil, t.halfSpaces(), oom, rm)
	return emitLineClip(r.L, lo, hi, ok, oom, rm)
}

// IntersectSegment returns the intersection of the tetrahedron with a
// segment: nil, a *Point, or a *LineSegment.
func (t *Tetrahedron) IntersectSegment(s *LineSegment, oom int, rm rnum.RoundingMode) Geometry {
	lo, hi, ok := clipLineParams(s.Line(), new(big.Rat), big.NewRat(1, 1), t.halfSpaces(), oom, rm)
	return emitLineClip(s.Line(), lo, hi, ok, oom, rm)
}

// IntersectPlane returns the cross-section of the tetrahedron cut by a
// plane: nil, a *Point at a grazed corner, a *LineSegment along a
// grazed edge, a whole face *Triangle when the plane carries a face,
// and otherwise the *Triangle or *ConvexArea section through the
// interior.
func (t *Tetrahedron) IntersectPlane(pl *Plane, oom int, rm rnum.RoundingMode) Geometry {
	for _, f := range t.faces {
		if f.Pl.Equals(pl, oom, rm) {
			return f.Copy()
		}
	}
	var pts []*Point
	var segs []*LineSegment
	for _, f := range t.faces {
		switch v := f.IntersectPlane(pl, oom, rm).(type) {
		case nil:
		case *Point:
			pts = append(pts, v)
		case *LineSegment:
			segs = append(segs, v)
		}
	}
	if len(segs) == 0 {
		return classifyPolygon(pts, oom, rm)
	}
	return classifyPolygon(chainSegments(segs, oom, rm), oom, rm)
}

// IntersectTriangle returns the intersection of the tetrahedron with a
// triangle: the plane cross-section clipped down to the triangle, so
// nil, a *Point, a *LineSegment, a *Triangle, or a *ConvexArea.
func (t *Tetrahedron) IntersectTriangle(tr *Triangle, oom int, rm rnum.RoundingMode) Geometry {
	switch v := t.IntersectPlane(tr.Pl, oom, rm).(type) {
	case nil:
		return nil
	case *Point:
		if !tr.onRing(v.Position(), oom, rm) {
			return nil
		}
		return v
	case *LineSegment:
		lo, hi, ok := clipLineParams(v.Line(), new(big.Rat), big.NewRat(1, 1), tr.halfSpaces(), oom, rm)
		return emitLineClip(v.Line(), lo, hi, ok, oom, rm)
	case *Triangle:
		return classifyPolygon(clipPolygon(v.ring(), tr.halfSpaces(), oom, rm), oom, rm)
	case *ConvexArea:
		return classifyPolygon(clipPolygon(v.Pts, tr.halfSpaces(), oom, rm), oom, rm)
	}
	panic("Impossible")
}

// Translate moves the tetrahedron by v, mutating it, and returns t.
func (t *Tetrahedron) Translate(v *Vector) *Tetrahedron {
	t.P.Translate(v)
	t.Q.Translate(v)
	t.R.Translate(v)
	t.S.Translate(v)
	for _, f := range t.faces {
		f.Translate(v)
	}
	t.hsValid = false
	return t
}

// Rotate returns a new tetrahedron with every corner rotated about the
// axis line.
func (t *Tetrahedron) Rotate(axis *Line, pi *rnum.Pi, theta *big.Rat, oom int, rm rnum.RoundingMode) *Tetrahedron {
	return NewTetrahedron(
		t.P.Rotate(axis, pi, theta, oom, rm),
		t.Q.Rotate(axis, pi, theta, oom, rm),
		t.R.Rotate(axis, pi, theta, oom, rm),
		t.S.Rotate(axis, pi, theta, oom, rm),
		oom, rm,
	)
}

// Equals reports whether the two tetrahedra have the same corners at
// the given precision, in any order.
func (t *Tetrahedron) Equals(o *Tetrahedron, oom int, rm rnum.RoundingMode) bool {
	return matchPointSets([]*Point{t.P, t.Q, t.R, t.S}, []*Point{o.P, o.Q, o.R, o.S}, oom, rm)
}

func (t *Tetrahedron) String() string {
	return fmt.Sprintf("Tetrahedron(%v, %v, %v, %v)", t.P, t.Q, t.R, t.S)
}
