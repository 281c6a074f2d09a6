/*rmat contains routines for executing matrix operations exactly over
rationals. Elimination picks the first nonzero pivot instead of the
largest one, since exact arithmetic has no roundoff to control, and
operations that divide report failure instead of dividing by zero when a
system is singular.

Pretty much everything only works on square matrices because that is all
the geometry above it needs.
*/
package rmat

import (
	"math/big"
)

// Matrix represents a matrix of rational values.
type Matrix struct {
	Vals          []*big.Rat
	Width, Height int
}

// NewMatrix creates a matrix with the specified values and dimensions.
// The values are referenced, not copied.
func NewMatrix(vals []*big.Rat, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width*height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// NewZeroMatrix creates a matrix of the specified dimensions with every
// entry set to a fresh zero.
func NewZeroMatrix(width, height int) *Matrix {
	vals := make([]*big.Rat, width*height)
	for i := range vals {
		vals[i] = new(big.Rat)
	}
	return NewMatrix(vals, width, height)
}

// At returns the entry in row r and column c. The returned pointer is the
// matrix's own value.
func (m *Matrix) At(r, c int) *big.Rat {
	if r < 0 || r >= m.Height || c < 0 || c >= m.Width {
		panic("index out of range.")
	}
	return m.Vals[r*m.Width+c]
}

// Mult multiplies two matrices together.
func (m1 *Matrix) Mult(m2 *Matrix) *Matrix {
	out := NewZeroMatrix(m2.Width, m1.Height)
	return m1.MultAt(m2, out)
}

// MultAt multiplies two matrices together and writes the result to the
// specified matrix, which must not alias either operand.
func (m1 *Matrix) MultAt(m2, out *Matrix) *Matrix {
	if m1.Width != m2.Height {
		panic("Multiplication of incompatible matrix sizes.")
	} else if out.Width != m2.Width || out.Height != m1.Height {
		panic("out has different dimensions than the product.")
	}

	t := new(big.Rat)
	for i := 0; i < m1.Height; i++ {
		for j := 0; j < m2.Width; j++ {
			acc := out.Vals[i*out.Width+j]
			acc.SetInt64(0)
			for k := 0; k < m1.Width; k++ {
				t.Mul(m1.Vals[i*m1.Width+k], m2.Vals[k*m2.Width+j])
				acc.Add(acc, t)
			}
		}
	}

	return out
}

// MultVector multiplies m by the column vector xs.
func (m *Matrix) MultVector(xs []*big.Rat) []*big.Rat {
	if m.Width != len(xs) {
		panic("len(xs) != m.Width")
	}

	ys := make([]*big.Rat, m.Height)
	t := new(big.Rat)
	for i := 0; i < m.Height; i++ {
		ys[i] = new(big.Rat)
		for k := 0; k < m.Width; k++ {
			t.Mul(m.Vals[i*m.Width+k], xs[k])
			ys[i].Add(ys[i], t)
		}
	}
	return ys
}

// Determinant computes the determinant of a matrix exactly.
func (m *Matrix) Determinant() *big.Rat {
	if m.Width != m.Height {
		panic("m is non-square.")
	}

	n := m.Width
	lu := m.copyVals()
	det := big.NewRat(1, 1)

	for k := 0; k < n; k++ {
		p := findPivotRow(n, lu, k)
		if p < 0 {
			return new(big.Rat)
		}
		if p != k {
			swapRows(k, p, n, lu)
			det.Neg(det)
		}

		pv := lu[k*n+k]
		det.Mul(det, pv)
		eliminateBelow(n, lu, k, pv)
	}

	return det
}

// SolveVector solves the equation m * xs = bs for xs. It reports false
// when m is singular.
func (m *Matrix) SolveVector(bs []*big.Rat) ([]*big.Rat, bool) {
	if m.Width != m.Height {
		panic("m is non-square.")
	} else if len(bs) != m.Width {
		panic("len(bs) != m.Width")
	}

	n := m.Width
	lu := m.copyVals()
	ys := make([]*big.Rat, n)
	for i := range bs {
		ys[i] = new(big.Rat).Set(bs[i])
	}

	t := new(big.Rat)
	for k := 0; k < n; k++ {
		p := findPivotRow(n, lu, k)
		if p < 0 {
			return nil, false
		}
		if p != k {
			swapRows(k, p, n, lu)
			ys[k], ys[p] = ys[p], ys[k]
		}

		pv := lu[k*n+k]
		for i := k + 1; i < n; i++ {
			f := new(big.Rat).Quo(lu[i*n+k], pv)
			if f.Sign() == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				t.Mul(f, lu[k*n+j])
				lu[i*n+j].Sub(lu[i*n+j], t)
			}
			lu[i*n+k].SetInt64(0)
			t.Mul(f, ys[k])
			ys[i].Sub(ys[i], t)
		}
	}

	xs := make([]*big.Rat, n)
	for i := n - 1; i >= 0; i-- {
		sum := ys[i]
		for j := i + 1; j < n; j++ {
			t.Mul(lu[i*n+j], xs[j])
			sum.Sub(sum, t)
		}
		xs[i] = sum.Quo(sum, lu[i*n+i])
	}

	return xs, true
}

func (m *Matrix) copyVals() []*big.Rat {
	vals := make([]*big.Rat, len(m.Vals))
	for i, v := range m.Vals {
		vals[i] = new(big.Rat).Set(v)
	}
	return vals
}

// findPivotRow returns the index of the first row at or below col whose
// entry in that column is nonzero, or -1 when the column is empty there.
func findPivotRow(n int, lu []*big.Rat, col int) int {
	for i := col; i < n; i++ {
		if lu[i*n+col].Sign() != 0 {
			return i
		}
	}
	return -1
}

func swapRows(i1, i2, n int, lu []*big.Rat) {
	i1Offset, i2Offset := n*i1, n*i2
	for j := 0; j < n; j++ {
		idx1, idx2 := i1Offset+j, i2Offset+j
		lu[idx1], lu[idx2] = lu[idx2], lu[idx1]
	}
}

func eliminateBelow(n int, lu []*big.Rat, k int, pv *big.Rat) {
	t := new(big.Rat)
	for i := k + 1; i < n; i++ {
		f := new(big.Rat).Quo(lu[i*n+k], pv)
		if f.Sign() == 0 {
			continue
		}
		for j := k + 1; j < n; j++ {
			t.Mul(f, lu[k*n+j])
			lu[i*n+j].Sub(lu[i*n+j], t)
		}
		lu[i*n+k].SetInt64(0)
	}
}
