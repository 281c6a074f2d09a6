/*rnum implements arithmetic helpers for exact rational values with
explicit precision control. Quantities are big.Rat rationals, and every
approximate operation takes an order of magnitude and a rounding mode so
that results are reproducible across runs and machines.

Orders of magnitude follow the usual convention: oom = -3 rounds to the
nearest 1/1000, oom = 0 to the nearest integer and oom = 2 to the nearest
100. A value is zero at a given precision exactly when rounding it to that
precision gives zero.
*/
package rnum

import (
	"fmt"
	"math/big"
)

// RoundingMode selects the direction values are rounded in when they do
// not fall exactly on the target lattice.
type RoundingMode int

const (
	// Up rounds away from zero.
	Up RoundingMode = iota
	// Down rounds toward zero.
	Down
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Floor rounds toward negative infinity.
	Floor
	// HalfUp rounds to the nearest lattice value, ties away from zero.
	HalfUp
	// HalfDown rounds to the nearest lattice value, ties toward zero.
	HalfDown
	// HalfEven rounds to the nearest lattice value, ties to the even
	// multiple.
	HalfEven
)

var modeNames = []string{
	"up", "down", "ceiling", "floor", "halfUp", "halfDown", "halfEven",
}

func (rm RoundingMode) String() string {
	if rm < Up || rm > HalfEven {
		return fmt.Sprintf("RoundingMode(%d)", int(rm))
	}
	return modeNames[rm]
}

// ParseRoundingMode converts a mode name, as it would appear in a config
// file, into a RoundingMode.
func ParseRoundingMode(s string) (RoundingMode, error) {
	for i, name := range modeNames {
		if s == name {
			return RoundingMode(i), nil
		}
	}
	return 0, fmt.Errorf("unrecognized rounding mode '%s'", s)
}

// maxOOM bounds the magnitude of usable orders of magnitude so a bad
// caller cannot demand an astronomically large lattice.
const maxOOM = 1 << 20

// Round returns x rounded to the lattice of integer multiples of 10^oom
// using the given rounding mode. x is not modified.
func Round(x *big.Rat, oom int, rm RoundingMode) *big.Rat {
	if oom > maxOOM || oom < -maxOOM {
		panic(fmt.Sprintf("oom %d is out of range", oom))
	}
	n, d := scale(x, oom)
	q, r := new(big.Int), new(big.Int)
	q.DivMod(n, d, r)

	up := false
	switch rm {
	case Floor:
	case Ceiling:
		up = r.Sign() != 0
	case Down:
		up = r.Sign() != 0 && x.Sign() < 0
	case Up:
		up = r.Sign() != 0 && x.Sign() > 0
	case HalfUp, HalfDown, HalfEven:
		r2 := new(big.Int).Lsh(r, 1)
		switch r2.Cmp(d) {
		case +1:
			up = true
		case 0:
			switch rm {
			case HalfUp:
				up = x.Sign() > 0
			case HalfDown:
				up = x.Sign() < 0
			case HalfEven:
				up = q.Bit(0) == 1
			}
		}
	default:
		panic(fmt.Sprintf("unrecognized rounding mode %d", int(rm)))
	}
	if up {
		q.Add(q, big.NewInt(1))
	}
	return unscale(q, oom)
}

// IsZero reports whether x rounds to zero at the given precision.
func IsZero(x *big.Rat, oom int, rm RoundingMode) bool {
	return Round(x, oom, rm).Sign() == 0
}

// Eq reports whether x and y agree once their difference is rounded to
// the given precision.
func Eq(x, y *big.Rat, oom int, rm RoundingMode) bool {
	return IsZero(new(big.Rat).Sub(x, y), oom, rm)
}

// Cmp compares x and y at the given precision. It returns -1 if x is
// smaller, +1 if x is larger and 0 if the two agree after rounding their
// difference.
func Cmp(x, y *big.Rat, oom int, rm RoundingMode) int {
	return Round(new(big.Rat).Sub(x, y), oom, rm).Sign()
}

// Min returns the smaller of a and b. The returned pointer is one of the
// arguments, not a copy.
func Min(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger of a and b. The returned pointer is one of the
// arguments, not a copy.
func Max(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// scale rewrites x / 10^oom as the integer fraction n/d with d > 0.
func scale(x *big.Rat, oom int) (n, d *big.Int) {
	n = new(big.Int).Set(x.Num())
	d = new(big.Int).Set(x.Denom())
	if oom >= 0 {
		d.Mul(d, pow10(oom))
	} else {
		n.Mul(n, pow10(-oom))
	}
	return n, d
}

// unscale returns q * 10^oom as a rational.
func unscale(q *big.Int, oom int) *big.Rat {
	r := new(big.Rat)
	if oom >= 0 {
		r.SetInt(new(big.Int).Mul(q, pow10(oom)))
	} else {
		r.SetFrac(q, pow10(-oom))
	}
	return r
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
