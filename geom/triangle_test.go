package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

func tri(ax, ay, az, bx, by, bz, cx, cy, cz int64) *Triangle {
	return NewTriangle(NewPointInt(ax, ay, az), NewPointInt(bx, by, bz),
		NewPointInt(cx, cy, cz), -8, rnum.HalfUp)
}

func TestNewTrianglePanics(t *testing.T) {
	assert.Panics(t, func() { tri(0, 0, 0, 1, 0, 0, 2, 0, 0) })
	assert.Panics(t, func() { tri(1, 1, 1, 1, 1, 1, 0, 0, 1) })
}

func TestTriangleMeasures(t *testing.T) {
	tr := tri(0, 0, 0, 1, 1, 0, 2, 0, 0)

	if got := tr.Area(-10, rnum.HalfUp); got.Cmp(rat("1")) != 0 {
		t.Errorf("Area = %v, not 1", got)
	}
	if got := tr.Centroid(); !got.EqualsExact(pt("1", "1/3", "0")) {
		t.Errorf("Centroid = %v, not (1, 1/3, 0)", got)
	}
	// Two unit diagonals and the base: 2 sqrt(2) + 2.
	if got := tr.Perimeter(-10, rnum.HalfUp); got.Cmp(rat("4.8284271247")) != 0 {
		t.Errorf("Perimeter = %v, not 4.8284271247", got)
	}

	box := tr.AABB(-8)
	if !box.Equals(NewAABB(-8, NewPointInt(0, 0, 0), NewPointInt(2, 1, 0))) {
		t.Errorf("AABB = %v", box)
	}
}

func TestTriangleContains(t *testing.T) {
	tr := tri(0, 0, 0, 1, 1, 0, 2, 0, 0)

	table := []struct {
		pt       *Point
		touches  bool
		contains bool
	}{
		{tr.Centroid(), true, true},
		// A vertex and an edge point touch without being inside.
		{NewPointInt(0, 0, 0), true, false},
		{NewPointInt(1, 0, 0), true, false},
		// In the plane but outside the edges.
		{NewPointInt(3, 0, 0), false, false},
		// Off the plane.
		{pt("1", "1/3", "5"), false, false},
		// Off the base edge by less than the rounding.
		{pt("1", "1/1000000000", "0"), true, false},
	}

	for i, test := range table {
		if got := tr.IntersectsPoint(test.pt, -8, rnum.HalfUp); got != test.touches {
			t.Errorf("%d) IntersectsPoint(%v) = %v, not %v", i, test.pt, got, test.touches)
		}
		if got := tr.ContainsPoint(test.pt, -8, rnum.HalfUp); got != test.contains {
			t.Errorf("%d) ContainsPoint(%v) = %v, not %v", i, test.pt, got, test.contains)
		}
	}

	inner := NewTriangle(pt("1/2", "1/4", "0"), pt("1", "3/4", "0"), pt("3/2", "1/4", "0"), -8, rnum.HalfUp)
	if !tr.ContainsTriangle(inner, -8, rnum.HalfUp) {
		t.Errorf("inner triangle should be contained")
	}
	if tr.ContainsTriangle(tri(0, 0, 0, 1, 1, 0, 2, 0, 0), -8, rnum.HalfUp) {
		t.Errorf("containment is strict, so a triangle does not contain itself")
	}

	if !tr.ContainsSegment(NewLineSegment(pt("1/2", "1/4", "0"), pt("3/2", "1/4", "0")), -8, rnum.HalfUp) {
		t.Errorf("interior segment should be contained")
	}
	if tr.ContainsSegment(seg(0, 0, 0, 2, 0, 0), -8, rnum.HalfUp) {
		t.Errorf("an edge is on the boundary, not strictly inside")
	}
}

func TestTriangleIntersectPlane(t *testing.T) {
	tr := tri(0, 0, 0, 1, 1, 0, 2, 0, 0)

	// The plane x = 0 touches the first vertex only. Shifting the same
	// plane to x = 1 cuts a segment through the middle.
	got := tr.IntersectPlane(planeX0(), -8, rnum.HalfUp)
	if !sameGeom(got, NewPointInt(0, 0, 0), -8, rnum.HalfUp) {
		t.Errorf("cut by x = 0 is %v, not the point (0, 0, 0)", got)
	}
	shifted := planeX0().Translate(UnitX())
	got = tr.IntersectPlane(shifted, -8, rnum.HalfUp)
	if !sameGeom(got, seg(1, 0, 0, 1, 1, 0), -8, rnum.HalfUp) {
		t.Errorf("cut by x = 1 is %v, not the segment (1,0,0)-(1,1,0)", got)
	}

	table := []struct {
		pl   *Plane
		want Geometry
	}{
		// The triangle's own plane returns the whole triangle.
		{planeZ0(), tri(0, 0, 0, 1, 1, 0, 2, 0, 0)},
		// A parallel plane misses.
		{NewPlane(NewPointInt(0, 0, 1), UnitZ()), nil},
		// A plane holding one edge returns that edge.
		{planeY0(), seg(0, 0, 0, 2, 0, 0)},
		// A plane clear of the triangle.
		{NewPlane(NewPointInt(5, 0, 0), UnitX()), nil},
	}

	for i, test := range table {
		got := tr.IntersectPlane(test.pl, -8, rnum.HalfUp)
		if !sameGeom(got, test.want, -8, rnum.HalfUp) {
			t.Errorf("%d) IntersectPlane(%v) = %v, not %v", i, test.pl, got, test.want)
		}
	}
}

func TestTriangleIntersectLineRaySegment(t *testing.T) {
	tr := tri(0, 0, 0, 1, 1, 0, 2, 0, 0)

	lineTable := []struct {
		l    *Line
		want Geometry
	}{
		// An in-plane vertical line cuts a chord.
		{NewLine(NewPointInt(1, -5, 0), UnitY()), seg(1, 0, 0, 1, 1, 0)},
		// An in-plane line outside the triangle.
		{NewLine(NewPointInt(5, -5, 0), UnitY()), nil},
		// A perpendicular line through the centroid.
		{NewLine(pt("1", "1/3", "-2"), UnitZ()), pt("1", "1/3", "0")},
		// A perpendicular line missing the triangle.
		{NewLine(NewPointInt(5, 5, -2), UnitZ()), nil},
		// An in-plane line grazing the apex.
		{NewLine(NewPointInt(0, 1, 0), UnitX()), NewPointInt(1, 1, 0)},
	}
	for i, test := range lineTable {
		got := tr.IntersectLine(test.l, -8, rnum.HalfUp)
		if !sameGeom(got, test.want, -8, rnum.HalfUp) {
			t.Errorf("%d) IntersectLine(%v) = %v, not %v", i, test.l, got, test.want)
		}
	}

	rayTable := []struct {
		r    *Ray
		want Geometry
	}{
		{NewRay(pt("1", "1/3", "-2"), UnitZ()), pt("1", "1/3", "0")},
		{NewRay(pt("1", "1/3", "2"), UnitZ()), nil},
		{NewRay(NewPointInt(1, 0, 0), UnitY()), seg(1, 0, 0, 1, 1, 0)},
	}
	for i, test := range rayTable {
		got := tr.IntersectRay(test.r, -8, rnum.HalfUp)
		if !sameGeom(got, test.want, -8, rnum.HalfUp) {
			t.Errorf("%d) IntersectRay(%v) = %v, not %v", i, test.r, got, test.want)
		}
	}

	segTable := []struct {
		s    *LineSegment
		want Geometry
	}{
		{seg(1, 0, -1, 1, 0, 1), NewPointInt(1, 0, 0)},
		{seg(1, 0, 1, 1, 0, 3), nil},
		{NewLineSegment(pt("1", "1/4", "0"), pt("1", "3/4", "0")),
			NewLineSegment(pt("1", "1/4", "0"), pt("1", "3/4", "0"))},
		{seg(1, -5, 0, 1, 5, 0), seg(1, 0, 0, 1, 1, 0)},
	}
	for i, test := range segTable {
		got := tr.IntersectSegment(test.s, -8, rnum.HalfUp)
		if !sameGeom(got, test.want, -8, rnum.HalfUp) {
			t.Errorf("%d) IntersectSegment(%v) = %v, not %v", i, test.s, got, test.want)
		}
	}
}

func TestTriangleIntersectTriangle(t *testing.T) {
	table := []struct {
		a, b *Triangle
		want Geometry
	}{
		// Coplanar with a triangular overlap.
		{
			tri(0, 0, 0, 2, 0, 0, 0, 2, 0),
			tri(0, 0, 0, 2, 0, 0, 2, 2, 0),
			tri(0, 0, 0, 2, 0, 0, 1, 1, 0),
		},
		// Coplanar with a four sided overlap.
		{
			tri(0, 0, 0, 4, 0, 0, 0, 4, 0),
			tri(1, -9, 0, 1, 9, 0, -17, 0, 0),
			NewConvexArea([]*Point{
				NewPointInt(0, 0, 0), NewPointInt(1, 0, 0),
				NewPointInt(1, 3, 0), NewPointInt(0, 4, 0),
			}, -8, rnum.HalfUp),
		},
		// Coplanar and disjoint.
		{
			tri(0, 0, 0, 2, 0, 0, 0, 2, 0),
			tri(5, 5, 0, 7, 5, 0, 5, 7, 0),
			nil,
		},
		// Crossing planes: the cut is a segment.
		{
			tri(0, 0, 0, 4, 0, 0, 0, 4, 0),
			NewTriangle(NewPointInt(1, 0, -1), NewPointInt(1, 2, -1), NewPointInt(1, 1, 1), -8, rnum.HalfUp),
			NewLineSegment(pt("1", "1/2", "0"), pt("1", "3/2", "0")),
		},
		// Touching the other's plane at a single vertex.
		{
			tri(0, 0, 0, 4, 0, 0, 0, 4, 0),
			tri(1, 1, 0, 2, 1, 1, 1, 2, 1),
			NewPointInt(1, 1, 0),
		},
		// Parallel and apart.
		{
			tri(0, 0, 0, 2, 0, 0, 0, 2, 0),
			tri(0, 0, 1, 2, 0, 1, 0, 2, 1),
			nil,
		},
	}

	for i, test := range table {
		got := test.a.IntersectTriangle(test.b, -8, rnum.HalfUp)
		if !sameGeom(got, test.want, -8, rnum.HalfUp) {
			t.Errorf("%d) IntersectTriangle = %v, not %v", i, got, test.want)
		}
		if wantHit := test.want != nil; test.a.Intersects(test.b, -8, rnum.HalfUp) != wantHit {
			t.Errorf("%d) Intersects should be %v", i, wantHit)
		}
	}
}

func TestTriangleTranslateRotateEquals(t *testing.T) {
	tr := tri(0, 0, 0, 1, 1, 0, 2, 0, 0)
	if !tr.Equals(tri(2, 0, 0, 0, 0, 0, 1, 1, 0), -8, rnum.HalfUp) {
		t.Errorf("corner order should not matter to Equals")
	}

	got := tr.Translate(UnitZ())
	assert.Same(t, tr, got)
	if !tr.Equals(tri(0, 0, 1, 1, 1, 1, 2, 0, 1), -8, rnum.HalfUp) {
		t.Errorf("translated triangle = %v", tr)
	}
	if got := tr.Area(-10, rnum.HalfUp); got.Cmp(rat("1")) != 0 {
		t.Errorf("translation changed the area to %v", got)
	}

	pi := rnum.NewPi()
	r := tri(0, 0, 0, 1, 1, 0, 2, 0, 0).Rotate(zAxis(), pi, pi.Rat(-20), -12, rnum.HalfUp)
	if !r.Equals(tri(0, 0, 0, -1, -1, 0, -2, 0, 0), -8, rnum.HalfUp) {
		t.Errorf("half turn = %v", r)
	}
}

func BenchmarkTriangleIntersectTriangle(b *testing.B) {
	t1 := tri(0, 0, 0, 4, 0, 0, 0, 4, 0)
	t2 := tri(1, -9, 0, 1, 9, 0, -17, 0, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t1.hsValid = false
		t1.IntersectTriangle(t2, -8, rnum.HalfEven)
	}
}
