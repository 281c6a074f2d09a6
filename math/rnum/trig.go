package rnum

import (
	"math/big"
)

// trigGuard is the number of extra decimal digits carried internally when
// evaluating trigonometric series.
const trigGuard = 8

// Sin returns sin(theta) rounded to the given precision. theta is in
// radians and pi supplies the approximations used for range reduction.
func Sin(theta *big.Rat, pi *Pi, oom int, rm RoundingMode) *big.Rat {
	x := reduce(theta, pi, oom-trigGuard)
	return Round(sinSeries(x, oom-trigGuard), oom, rm)
}

// Cos returns cos(theta) rounded to the given precision. theta is in
// radians and pi supplies the approximations used for range reduction.
func Cos(theta *big.Rat, pi *Pi, oom int, rm RoundingMode) *big.Rat {
	x := reduce(theta, pi, oom-trigGuard)
	return Round(cosSeries(x, oom-trigGuard), oom, rm)
}

// SinCos returns sin(theta) and cos(theta) rounded to the given
// precision, sharing a single range reduction.
func SinCos(theta *big.Rat, pi *Pi, oom int, rm RoundingMode) (sin, cos *big.Rat) {
	x := reduce(theta, pi, oom-trigGuard)
	sin = Round(sinSeries(x, oom-trigGuard), oom, rm)
	cos = Round(cosSeries(x, oom-trigGuard), oom, rm)
	return sin, cos
}

// reduce maps theta into roughly [-pi, pi] by subtracting the nearest
// integer multiple of 2 pi. The pi approximation used for the subtraction
// is chosen fine enough that the result stays within 10^p of the true
// reduced angle, and the result is rounded so its denominator stays small
// for the series that follows.
func reduce(theta *big.Rat, pi *Pi, p int) *big.Rat {
	two := big.NewRat(2, 1)
	coarse := new(big.Rat).Mul(pi.Rat(-20), two)
	m := nearestInt(new(big.Rat).Quo(theta, coarse))
	if m.Sign() == 0 {
		return Round(theta, p-4, HalfEven)
	}
	digits := m.BitLen()*302/1000 + 1
	fine := new(big.Rat).Mul(pi.Rat(p-digits-2), two)
	red := new(big.Rat).Sub(theta, fine.Mul(fine, new(big.Rat).SetInt(m)))
	return Round(red, p-4, HalfEven)
}

// nearestInt returns the integer closest to q, rounding half up. q is
// consumed.
func nearestInt(q *big.Rat) *big.Int {
	q.Add(q, big.NewRat(1, 2))
	return new(big.Int).Div(q.Num(), q.Denom())
}

// sinSeries evaluates the Taylor series of sin at x to within 10^p. |x|
// must be small enough that the series terms decrease, which range
// reduction guarantees.
func sinSeries(x *big.Rat, p int) *big.Rat {
	eps := unscale(big.NewInt(1), p-2)
	x2 := new(big.Rat).Mul(x, x)
	term := new(big.Rat).Set(x)
	sum := new(big.Rat).Set(x)
	abs := new(big.Rat)
	for n := int64(3); abs.Abs(term).Cmp(eps) >= 0; n += 2 {
		term.Mul(term, x2)
		term.Quo(term, big.NewRat(n*(n-1), 1))
		term.Neg(term)
		sum.Add(sum, term)
	}
	return sum
}

// cosSeries evaluates the Taylor series of cos at x to within 10^p.
func cosSeries(x *big.Rat, p int) *big.Rat {
	eps := unscale(big.NewInt(1), p-2)
	x2 := new(big.Rat).Mul(x, x)
	term := big.NewRat(1, 1)
	sum := big.NewRat(1, 1)
	abs := new(big.Rat)
	for n := int64(2); abs.Abs(term).Cmp(eps) >= 0; n += 2 {
		term.Mul(term, x2)
		term.Quo(term, big.NewRat(n*(n-1), 1))
		term.Neg(term)
		sum.Add(sum, term)
	}
	return sum
}
