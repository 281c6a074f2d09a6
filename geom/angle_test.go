package geom

import (
	"math/big"
	"testing"

	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

func TestNormaliseAngle(t *testing.T) {
	pi := rnum.NewPi()
	twoPi := pi.TwoPi(-30)

	turns := func(x string, k int64) *big.Rat {
		out := new(big.Rat).Mul(twoPi, big.NewRat(k, 1))
		return out.Add(out, rat(x))
	}

	table := []struct {
		theta *big.Rat
		want  *big.Rat
	}{
		{rat("1"), rat("1")},
		{rat("0"), rat("0")},
		{turns("1", 3), rat("1")},
		{turns("355/113", -5), rat("355/113")},
		{rat("-1"), new(big.Rat).Sub(twoPi, rat("1"))},
	}

	for i, test := range table {
		got := NormaliseAngle(test.theta, pi, -30)
		if got.Cmp(test.want) != 0 {
			t.Errorf("%d) NormaliseAngle(%v) = %v, not %v", i, test.theta, got, test.want)
		}
		if got.Sign() < 0 || got.Cmp(twoPi) >= 0 {
			t.Errorf("%d) NormaliseAngle(%v) = %v, outside [0, 2 pi)", i, test.theta, got)
		}
		again := NormaliseAngle(got, pi, -30)
		if again.Cmp(got) != 0 {
			t.Errorf("%d) normalising twice gives %v, not %v", i, again, got)
		}
	}
}

func TestDegreesRadians(t *testing.T) {
	pi := rnum.NewPi()

	if got := ToDegrees(pi.Rat(-20), pi, -10, rnum.HalfUp); got.Cmp(rat("180")) != 0 {
		t.Errorf("ToDegrees(pi) = %v, not 180", got)
	}
	if got := ToDegrees(pi.HalfPi(-20), pi, -10, rnum.HalfUp); got.Cmp(rat("90")) != 0 {
		t.Errorf("ToDegrees(pi/2) = %v, not 90", got)
	}

	got := ToRadians(rat("90"), pi, -10, rnum.HalfUp)
	if !rnum.Eq(got, pi.HalfPi(-20), -9, rnum.HalfUp) {
		t.Errorf("ToRadians(90) = %v, not close to pi/2", got)
	}

	// There and back again.
	deg := ToDegrees(rat("1"), pi, -14, rnum.HalfUp)
	back := ToRadians(deg, pi, -10, rnum.HalfUp)
	if !rnum.Eq(back, rat("1"), -9, rnum.HalfUp) {
		t.Errorf("round trip of 1 radian = %v", back)
	}
}
