package rnum

import (
	"math/big"
	"sync"
)

// piGuard is the number of extra decimal digits carried internally when
// evaluating the Machin series.
const piGuard = 10

// Pi produces rational approximations of pi at requested precisions.
// Approximations are memoised by order of magnitude, so repeated queries
// at the same precision are cheap. A Pi value is safe for concurrent use.
type Pi struct {
	mu    sync.Mutex
	cache map[int]*big.Rat
}

// NewPi returns an empty provider.
func NewPi() *Pi {
	return &Pi{cache: map[int]*big.Rat{}}
}

// Rat returns a rational p with |p - pi| < 10^oom. A given oom always
// yields the same rational, and the returned value is a copy the caller
// may modify.
func (p *Pi) Rat(oom int) *big.Rat {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.cache[oom]
	if !ok {
		v = machin(oom)
		p.cache[oom] = v
	}
	return new(big.Rat).Set(v)
}

// TwoPi returns a rational approximation of 2 pi with error below 10^oom.
func (p *Pi) TwoPi(oom int) *big.Rat {
	v := p.Rat(oom - 1)
	return v.Mul(v, big.NewRat(2, 1))
}

// HalfPi returns a rational approximation of pi/2 with error below
// 10^oom.
func (p *Pi) HalfPi(oom int) *big.Rat {
	v := p.Rat(oom)
	return v.Mul(v, big.NewRat(1, 2))
}

// machin evaluates pi = 16 atan(1/5) - 4 atan(1/239) in integer
// arithmetic scaled to 10^k, with guard digits beyond the requested
// precision.
func machin(oom int) *big.Rat {
	k := -oom + piGuard
	if k < piGuard {
		k = piGuard
	}
	s := pow10(k)
	sum := new(big.Int).Sub(
		new(big.Int).Mul(big.NewInt(16), atanInv(5, s)),
		new(big.Int).Mul(big.NewInt(4), atanInv(239, s)),
	)
	return new(big.Rat).SetFrac(sum, s)
}

// atanInv evaluates atan(1/x) * s by the alternating series
// sum_n (-1)^n / ((2n+1) x^(2n+1)), truncating each term to an integer.
func atanInv(x int64, s *big.Int) *big.Int {
	x2 := big.NewInt(x * x)
	p := new(big.Int).Quo(s, big.NewInt(x))
	sum := new(big.Int).Set(p)
	t := new(big.Int)
	for n := int64(3); p.Sign() != 0; n += 2 {
		p.Quo(p, x2)
		t.Quo(p, big.NewInt(n))
		if (n/2)%2 == 1 {
			sum.Sub(sum, t)
		} else {
			sum.Add(sum, t)
		}
	}
	return sum
}
