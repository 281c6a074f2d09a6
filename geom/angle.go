package geom

import (
	"math/big"

	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

// NormaliseAngle wraps theta, in radians, into [0, 2 pi). The modulus is
// the rational 2 pi approximation at the given precision and the
// subtraction is exact, which makes the operation idempotent: feeding the
// result back in at the same precision returns it unchanged. Negative
// angles gain however many turns it takes to become non-negative.
func NormaliseAngle(theta *big.Rat, pi *rnum.Pi, oom int) *big.Rat {
	twoPi := pi.TwoPi(oom)
	q := new(big.Rat).Quo(theta, twoPi)
	k := new(big.Int).Div(q.Num(), q.Denom())
	out := new(big.Rat).Mul(twoPi, new(big.Rat).SetInt(k))
	return out.Sub(theta, out)
}

// ToDegrees converts radians to degrees, rounded to the given precision.
func ToDegrees(rad *big.Rat, pi *rnum.Pi, oom int, rm rnum.RoundingMode) *big.Rat {
	deg := new(big.Rat).Mul(rad, big.NewRat(180, 1))
	deg.Quo(deg, pi.Rat(oom-4))
	return rnum.Round(deg, oom, rm)
}

// ToRadians converts degrees to radians, rounded to the given precision.
func ToRadians(deg *big.Rat, pi *rnum.Pi, oom int, rm rnum.RoundingMode) *big.Rat {
	rad := new(big.Rat).Mul(deg, pi.Rat(oom-4))
	rad.Quo(rad, big.NewRat(180, 1))
	return rnum.Round(rad, oom, rm)
}
