package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

func unitSquare() *Rectangle {
	return NewRectangle(NewPointInt(0, 0, 0), NewPointInt(1, 0, 0),
		NewPointInt(1, 1, 0), NewPointInt(0, 1, 0), -8, rnum.HalfUp)
}

func TestIsRectangle(t *testing.T) {
	table := []struct {
		p, q, r, s *Point
		res        bool
	}{
		// The unit square.
		{NewPointInt(0, 0, 0), NewPointInt(1, 0, 0), NewPointInt(1, 1, 0), NewPointInt(0, 1, 0), true},
		// A rectangle in a slanted plane.
		{NewPointInt(0, 0, 0), NewPointInt(1, 0, 0), NewPointInt(1, 1, 1), NewPointInt(0, 1, 1), true},
		// A parallelogram with oblique corners.
		{NewPointInt(0, 0, 0), NewPointInt(2, 0, 0), NewPointInt(3, 1, 0), NewPointInt(1, 1, 0), false},
		// Square corners listed out of ring order.
		{NewPointInt(0, 0, 0), NewPointInt(1, 1, 0), NewPointInt(1, 0, 0), NewPointInt(0, 1, 0), false},
		// A repeated corner.
		{NewPointInt(0, 0, 0), NewPointInt(0, 0, 0), NewPointInt(1, 1, 0), NewPointInt(0, 1, 0), false},
		// Off the common plane.
		{NewPointInt(0, 0, 0), NewPointInt(1, 0, 0), NewPointInt(1, 1, 1), NewPointInt(0, 1, 0), false},
	}

	for i, test := range table {
		if got := IsRectangle(test.p, test.q, test.r, test.s, -8, rnum.HalfUp); got != test.res {
			t.Errorf("%d) IsRectangle = %v, not %v", i, got, test.res)
		}
	}

	assert.Panics(t, func() {
		NewRectangle(NewPointInt(0, 0, 0), NewPointInt(2, 0, 0),
			NewPointInt(3, 1, 0), NewPointInt(1, 1, 0), -8, rnum.HalfUp)
	})
}

func TestRectangleMeasures(t *testing.T) {
	r := unitSquare()

	if got := r.Area(-10, rnum.HalfUp); got.Cmp(rat("1")) != 0 {
		t.Errorf("Area = %v, not 1", got)
	}
	if got := r.Perimeter(-10, rnum.HalfUp); got.Cmp(rat("4")) != 0 {
		t.Errorf("Perimeter = %v, not 4", got)
	}
	if got := r.Centroid(); !got.EqualsExact(pt("1/2", "1/2", "0")) {
		t.Errorf("Centroid = %v, not (1/2, 1/2, 0)", got)
	}
	if !r.AABB(-8).Equals(NewAABB(-8, NewPointInt(0, 0, 0), NewPointInt(1, 1, 0))) {
		t.Errorf("AABB = %v", r.AABB(-8))
	}

	// A 2 by 3 rectangle for scale.
	wide := NewRectangle(NewPointInt(0, 0, 0), NewPointInt(3, 0, 0),
		NewPointInt(3, 2, 0), NewPointInt(0, 2, 0), -8, rnum.HalfUp)
	if got := wide.Area(-10, rnum.HalfUp); got.Cmp(rat("6")) != 0 {
		t.Errorf("Area = %v, not 6", got)
	}
	if got := wide.Perimeter(-10, rnum.HalfUp); got.Cmp(rat("10")) != 0 {
		t.Errorf("Perimeter = %v, not 10", got)
	}
}

func TestRectangleContains(t *testing.T) {
	r := unitSquare()

	table := []struct {
		pt       *Point
		touches  bool
		contains bool
	}{
		{pt("1/2", "1/2", "0"), true, true},
		{NewPointInt(0, 0, 0), true, false},
		{pt("1/2", "0", "0"), true, false},
		{pt("1/2", "1", "0"), true, false},
		{NewPointInt(2, 0, 0), false, false},
		{pt("1/2", "1/2", "1"), false, false},
	}

	for i, test := range table {
		if got := r.IntersectsPoint(test.pt, -8, rnum.HalfUp); got != test.touches {
			t.Errorf("%d) IntersectsPoint(%v) = %v, not %v", i, test.pt, got, test.touches)
		}
		if got := r.ContainsPoint(test.pt, -8, rnum.HalfUp); got != test.contains {
			t.Errorf("%d) ContainsPoint(%v) = %v, not %v", i, test.pt, got, test.contains)
		}
	}
}

func TestRectangleIntersectLineRaySegment(t *testing.T) {
	r := unitSquare()

	lineTable := []struct {
		l    *Line
		want Geometry
	}{
		// An in-plane chord across both halves of the rectangle.
		{NewLine(pt("-1", "1/2", "0"), UnitX()),
			NewLineSegment(pt("0", "1/2", "0"), pt("1", "1/2", "0"))},
		// The diagonal shared by the two internal triangles.
		{NewLine(NewPointInt(0, 0, 0), NewVectorInt(1, 1, 0)), seg(0, 0, 0, 1, 1, 0)},
		// A perpendicular through the middle.
		{NewLine(pt("1/2", "1/2", "-4"), UnitZ()), pt("1/2", "1/2", "0")},
		// An in-plane miss.
		{NewLine(NewPointInt(0, 2, 0), UnitX()), nil},
		// A parallel line above.
		{NewLine(NewPointInt(0, 0, 1), UnitX()), nil},
	}
	for i, test := range lineTable {
		got := r.IntersectLine(test.l, -8, rnum.HalfUp)
		if !sameGeom(got, test.want, -8, rnum.HalfUp) {
			t.Errorf("%d) IntersectLine(%v) = %v, not %v", i, test.l, got, test.want)
		}
	}

	got := r.IntersectRay(NewRay(pt("1/2", "1/2", "0"), UnitX()), -8, rnum.HalfUp)
	want := NewLineSegment(pt("1/2", "1/2", "0"), pt("1", "1/2", "0"))
	if !sameGeom(got, want, -8, rnum.HalfUp) {
		t.Errorf("IntersectRay from the centre = %v, not %v", got, want)
	}

	got = r.IntersectSegment(seg(0, 0, -1, 0, 0, 1), -8, rnum.HalfUp)
	if !sameGeom(got, NewPointInt(0, 0, 0), -8, rnum.HalfUp) {
		t.Errorf("IntersectSegment through a corner = %v", got)
	}
}

func TestRectangleIntersectPlane(t *testing.T) {
	r := unitSquare()

	shifted := planeX0().Translate(vec("1/2", "0", "0"))

	table := []struct {
		pl   *Plane
		want Geometry
	}{
		// Its own plane.
		{planeZ0(), unitSquare()},
		// A parallel plane.
		{NewPlane(NewPointInt(0, 0, 1), UnitZ()), nil},
		// A crossing plane through the middle.
		{shifted, NewLineSegment(pt("1/2", "0", "0"), pt("1/2", "1", "0"))},
		// A plane holding one edge.
		{NewPlane(NewPointInt(1, 0, 0), UnitX()), seg(1, 0, 0, 1, 1, 0)},
		// A plane touching one corner.
		{NewPlane(NewPointInt(0, 0, 0), NewVectorInt(1, 1, 0)), NewPointInt(0, 0, 0)},
		// A clear miss.
		{NewPlane(NewPointInt(3, 0, 0), UnitX()), nil},
	}

	for i, test := range table {
		got := r.IntersectPlane(test.pl, -8, rnum.HalfUp)
		if !sameGeom(got, test.want, -8, rnum.HalfUp) {
			t.Errorf("%d) IntersectPlane(%v) = %v, not %v", i, test.pl, got, test.want)
		}
	}
}

func TestRectangleIntersectTriangle(t *testing.T) {
	r := unitSquare()

	// A coplanar triangle covering the whole square: the overlap is the
	// square itself, reported as a four sided convex area.
	big := tri(0, 0, 0, 2, 0, 0, 0, 2, 0)
	got := r.IntersectTriangle(big, -8, rnum.HalfUp)
	wantSquare := NewConvexArea([]*Point{
		NewPointInt(0, 0, 0), NewPointInt(1, 0, 0),
		NewPointInt(1, 1, 0), NewPointInt(0, 1, 0),
	}, -8, rnum.HalfUp)
	if !sameGeom(got, wantSquare, -8, rnum.HalfUp) {
		t.Errorf("coplanar overlap = %v, not the unit square", got)
	}

	// A triangle crossing the square's plane along the bottom edge.
	cross := NewTriangle(NewPointInt(-1, 0, -1), NewPointInt(3, 0, -1), NewPointInt(1, 0, 3), -8, rnum.HalfUp)
	got = r.IntersectTriangle(cross, -8, rnum.HalfUp)
	if !sameGeom(got, seg(0, 0, 0, 1, 0, 0), -8, rnum.HalfUp) {
		t.Errorf("crossing cut = %v, not the bottom edge", got)
	}

	// Coplanar but clear of the square.
	apart := tri(5, 5, 0, 7, 5, 0, 5, 7, 0)
	if got := r.IntersectTriangle(apart, -8, rnum.HalfUp); got != nil {
		t.Errorf("disjoint overlap = %v, not nil", got)
	}
}

func TestRectangleTranslateRotateEquals(t *testing.T) {
	r := unitSquare()
	same := NewRectangle(NewPointInt(1, 1, 0), NewPointInt(0, 1, 0),
		NewPointInt(0, 0, 0), NewPointInt(1, 0, 0), -8, rnum.HalfUp)
	if !r.Equals(same, -8, rnum.HalfUp) {
		t.Errorf("the corner ring may start anywhere and run either way")
	}

	got := r.Translate(UnitZ())
	assert.Same(t, r, got)
	lifted := NewRectangle(NewPointInt(0, 0, 1), NewPointInt(1, 0, 1),
		NewPointInt(1, 1, 1), NewPointInt(0, 1, 1), -8, rnum.HalfUp)
	if !r.Equals(lifted, -8, rnum.HalfUp) {
		t.Errorf("translated square = %v", r)
	}

	pi := rnum.NewPi()
	turned := unitSquare().Rotate(zAxis(), pi, pi.HalfPi(-20), -12, rnum.HalfUp)
	want := NewRectangle(NewPointInt(0, 0, 0), NewPointInt(0, 1, 0),
		NewPointInt(-1, 1, 0), NewPointInt(-1, 0, 0), -8, rnum.HalfUp)
	if !turned.Equals(want, -8, rnum.HalfUp) {
		t.Errorf("quarter turn = %v", turned)
	}
}
