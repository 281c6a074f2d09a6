package rnum

import (
	"math/big"
)

// sqrtGuard is the number of extra decimal digits carried internally when
// approximating irrational square roots.
const sqrtGuard = 6

// SqrtExact returns the square root of x and true when x is the square of
// a rational, and nil and false otherwise. Negative values have no
// rational root, so they report false.
func SqrtExact(x *big.Rat) (*big.Rat, bool) {
	if x.Sign() < 0 {
		return nil, false
	}
	if x.Sign() == 0 {
		return new(big.Rat), true
	}
	n := new(big.Int).Sqrt(x.Num())
	if new(big.Int).Mul(n, n).Cmp(x.Num()) != 0 {
		return nil, false
	}
	d := new(big.Int).Sqrt(x.Denom())
	if new(big.Int).Mul(d, d).Cmp(x.Denom()) != 0 {
		return nil, false
	}
	return new(big.Rat).SetFrac(n, d), true
}

// Sqrt returns the square root of x rounded to the given precision. When
// x is the square of a rational the result is that root rounded, and
// otherwise it differs from the true root by less than 10^oom. Sqrt
// panics when x is negative.
func Sqrt(x *big.Rat, oom int, rm RoundingMode) *big.Rat {
	if x.Sign() < 0 {
		panic("cannot take the square root of a negative value")
	}
	if s, ok := SqrtExact(x); ok {
		return Round(s, oom, rm)
	}
	k := -oom + sqrtGuard
	if k < sqrtGuard {
		k = sqrtGuard
	}
	// floor(sqrt(floor(x * 10^2k))) / 10^k is within 2*10^-k of the
	// true root.
	p := pow10(k)
	m := new(big.Int).Mul(x.Num(), new(big.Int).Mul(p, p))
	m.Quo(m, x.Denom())
	s := new(big.Rat).SetFrac(m.Sqrt(m), p)
	return Round(s, oom, rm)
}
