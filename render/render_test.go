package render

import (
	"math"
	"math/big"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"

	"github.com/agdturner/ccg-v3d-sub010/geom"
	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

func rat(s string) *big.Rat {
	x, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("bad rational literal " + s)
	}
	return x
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		x    string
		oom  int
		rm   rnum.RoundingMode
		want float64
	}{
		{"1/2", -8, rnum.HalfUp, 0.5},
		{"1/3", -2, rnum.HalfUp, 0.33},
		{"1/3", -2, rnum.Ceiling, 0.34},
		{"-1/3", -2, rnum.Floor, -0.34},
		{"251", 1, rnum.HalfUp, 250},
		{"0", -8, rnum.HalfUp, 0},
	}
	for i, test := range tests {
		got := ToFloat(rat(test.x), test.oom, test.rm)
		if got != test.want {
			t.Errorf("%d) ToFloat(%s, %d) = %g, not %g.",
				i, test.x, test.oom, got, test.want)
		}
	}
}

func TestFromFloat(t *testing.T) {
	// 0.5 has an exact binary expansion and sits on every lattice.
	if got := FromFloat(0.5, -8, rnum.HalfUp); got.Cmp(rat("1/2")) != 0 {
		t.Errorf("FromFloat(0.5) = %v, not 1/2.", got)
	}

	// 0.1 does not, but snapping at -1 recovers the decimal it denotes.
	if got := FromFloat(0.1, -1, rnum.HalfUp); got.Cmp(rat("1/10")) != 0 {
		t.Errorf("FromFloat(0.1, -1) = %v, not 1/10.", got)
	}

	// At -30 the binary residue of 0.1 survives the snap.
	if got := FromFloat(0.1, -30, rnum.HalfUp); got.Cmp(rat("1/10")) == 0 {
		t.Errorf("FromFloat(0.1, -30) rounded away the binary residue.")
	}

	assert.Panics(t, func() { FromFloat(math.NaN(), -8, rnum.HalfUp) })
}

func TestVecPt(t *testing.T) {
	v := geom.NewVector(rat("1/4"), rat("-3/8"), rat("2"))
	want := r3.Vector{X: 0.25, Y: -0.375, Z: 2}
	if got := Vec(v, -8, rnum.HalfUp); got != want {
		t.Errorf("Vec = %v, not %v.", got, want)
	}

	p := geom.NewPointInt(1, 2, 3)
	want = r3.Vector{X: 1, Y: 2, Z: 3}
	if got := Pt(p, -8, rnum.HalfUp); got != want {
		t.Errorf("Pt = %v, not %v.", got, want)
	}
}

func TestPreciseVec(t *testing.T) {
	v := geom.NewVector(rat("1/4"), rat("-3/8"), rat("1/3"))
	pv := PreciseVec(v)

	if pv.X.Cmp(big.NewFloat(0.25)) != 0 {
		t.Errorf("PreciseVec X = %v, not 0.25.", pv.X)
	}
	if pv.Y.Cmp(big.NewFloat(-0.375)) != 0 {
		t.Errorf("PreciseVec Y = %v, not -0.375.", pv.Y)
	}
	if pv.Z.Cmp(big.NewFloat(0.333)) <= 0 || pv.Z.Cmp(big.NewFloat(0.334)) >= 0 {
		t.Errorf("PreciseVec Z = %v, not near 1/3.", pv.Z)
	}
}

func TestPointFromVec(t *testing.T) {
	got := PointFromVec(r3.Vector{X: 0.5, Y: 0.25, Z: -1}, -8, rnum.HalfUp)
	want := geom.NewPoint(rat("1/2"), rat("1/4"), rat("-1"))
	if !got.EqualsExact(want) {
		t.Errorf("PointFromVec = %v, not %v.", got, want)
	}

	// Lattice coordinates with exact binary expansions round trip.
	p := geom.NewPoint(rat("1/4"), rat("-3/8"), rat("5"))
	back := PointFromVec(Pt(p, -8, rnum.HalfUp), -8, rnum.HalfUp)
	if !back.EqualsExact(p) {
		t.Errorf("round trip moved %v to %v.", p, back)
	}
}

func TestMglPt(t *testing.T) {
	got := MglPt(geom.NewPointInt(1, 2, 3), -8, rnum.HalfUp)
	if got.X() != 1 || got.Y() != 2 || got.Z() != 3 {
		t.Errorf("MglPt = %v, not (1, 2, 3).", got)
	}
}
