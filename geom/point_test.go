package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

func TestPointEquality(t *testing.T) {
	// The offset and relative parts are a representation choice. Points
	// compare by effective position.
	a := NewPointFromVectors(NewVectorInt(1, 0, 0), NewVectorInt(0, 1, 0))
	b := NewPointInt(1, 1, 0)
	if !a.EqualsExact(b) {
		t.Errorf("%v and %v should be the same position", a, b)
	}

	p := NewPointInt(0, 0, 0)
	q := pt("1/1000000000", "0", "0")
	if !p.Equals(q, -6, rnum.HalfUp) {
		t.Errorf("%v and %v should agree at -6", p, q)
	}
	if p.Equals(q, -12, rnum.HalfUp) {
		t.Errorf("%v and %v should differ at -12", p, q)
	}
}

func TestTranslatePoint(t *testing.T) {
	p := NewPointInt(1, 2, 3)
	got := p.Translate(NewVectorInt(1, 1, 1))
	assert.Same(t, p, got)
	if !p.Position().Subtract(NewVectorInt(2, 3, 4)).IsZero() {
		t.Errorf("translated point is at %v, not (2, 3, 4)", p)
	}
}

func TestSetOffset(t *testing.T) {
	p := NewPointFromVectors(NewVectorInt(1, 0, 0), NewVectorInt(0, 1, 0))
	before := p.Copy()
	p.SetOffset(NewVectorInt(5, 5, 5))
	if !p.EqualsExact(before) {
		t.Errorf("rebasing moved the point from %v to %v", before, p)
	}
	if !p.Offset.Subtract(NewVectorInt(5, 5, 5)).IsZero() {
		t.Errorf("offset is %v, not (5, 5, 5)", p.Offset)
	}
}

func TestPointDistance(t *testing.T) {
	table := []struct {
		p, q   *Point
		distSq string
		dist   string
		oom    int
	}{
		{NewPointInt(0, 0, 0), NewPointInt(3, 4, 0), "25", "5", -10},
		{NewPointInt(1, 1, 1), NewPointInt(2, 2, 2), "3", "1.732050807569", -12},
		{NewPointInt(7, -2, 5), NewPointInt(7, -2, 5), "0", "0", -10},
	}

	for i, test := range table {
		if got := test.p.DistanceSquared(test.q); got.Cmp(rat(test.distSq)) != 0 {
			t.Errorf("%d) DistanceSquared = %v, not %v", i, got, test.distSq)
		}
		if got := test.p.Distance(test.q, test.oom, rnum.HalfUp); got.Cmp(rat(test.dist)) != 0 {
			t.Errorf("%d) Distance = %v, not %v", i, got, test.dist)
		}
	}
}

func TestRotatePoint(t *testing.T) {
	pi := rnum.NewPi()
	zAxis := NewLine(NewPointInt(0, 0, 0), UnitZ())

	got := NewPointInt(1, 0, 0).Rotate(zAxis, pi, pi.Rat(-20), -10, rnum.HalfUp)
	if !got.Equals(NewPointInt(-1, 0, 0), -8, rnum.HalfUp) {
		t.Errorf("half turn about z = %v, not close to (-1, 0, 0)", got)
	}

	// An axis off the origin shifts the orbit with it.
	offAxis := NewLine(NewPointInt(1, 0, 0), UnitZ())
	got = NewPointInt(0, 0, 0).Rotate(offAxis, pi, pi.Rat(-20), -10, rnum.HalfUp)
	if !got.Equals(NewPointInt(2, 0, 0), -8, rnum.HalfUp) {
		t.Errorf("half turn about the offset axis = %v, not close to (2, 0, 0)", got)
	}

	// Rotating leaves the receiver alone.
	p := NewPointInt(1, 0, 0)
	p.Rotate(zAxis, pi, pi.Rat(-20), -10, rnum.HalfUp)
	if !p.EqualsExact(NewPointInt(1, 0, 0)) {
		t.Errorf("Rotate moved its receiver to %v", p)
	}
}
