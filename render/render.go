// Package render bridges the exact kernel and float based pipelines.
// Geometry leaves the kernel by rounding to a requested order of
// magnitude and converting to float64 types (golang/geo r3 vectors,
// mathgl vectors, sdfx triangles), and comes back in by snapping float
// coordinates onto the rounding lattice. The kernel itself never sees
// a float.
package render

import (
	"math/big"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"github.com/agdturner/ccg-v3d-sub010/geom"
	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

// ToFloat rounds x to the 10^oom lattice and returns the nearest
// float64. The rounding step dominates the error: the float conversion
// afterwards is correct to half an ulp.
func ToFloat(x *big.Rat, oom int, rm rnum.RoundingMode) float64 {
	f, _ := rnum.Round(x, oom, rm).Float64()
	return f
}

// FromFloat converts a float64 to the exact rational it denotes and
// snaps it onto the 10^oom lattice. Snapping keeps imported
// coordinates comparable with kernel values at the same oom: the raw
// binary expansion of, say, 0.1 never is.
func FromFloat(x float64, oom int, rm rnum.RoundingMode) *big.Rat {
	r := new(big.Rat).SetFloat64(x)
	if r == nil {
		panic("Cannot convert an infinity or NaN to a rational.")
	}
	return rnum.Round(r, oom, rm)
}

// Vec converts a kernel vector to an r3 vector at the given precision.
func Vec(v *geom.Vector, oom int, rm rnum.RoundingMode) r3.Vector {
	return r3.Vector{
		X: ToFloat(v.DX, oom, rm),
		Y: ToFloat(v.DY, oom, rm),
		Z: ToFloat(v.DZ, oom, rm),
	}
}

// Pt converts a kernel point's position to an r3 vector at the given
// precision.
func Pt(p *geom.Point, oom int, rm rnum.RoundingMode) r3.Vector {
	return Vec(p.Position(), oom, rm)
}

// PreciseVec converts a kernel vector to an r3 PreciseVector without
// rounding. Components with a finite binary expansion convert exactly;
// the rest round at the big.Float working precision, far beyond any
// lattice the kernel is queried at.
func PreciseVec(v *geom.Vector) r3.PreciseVector {
	return r3.PreciseVector{
		X: new(big.Float).SetRat(v.DX),
		Y: new(big.Float).SetRat(v.DY),
		Z: new(big.Float).SetRat(v.DZ),
	}
}

// MglPt converts a kernel point's position to a mathgl vector at the
// given precision.
func MglPt(p *geom.Point, oom int, rm rnum.RoundingMode) mgl64.Vec3 {
	x := p.Position()
	return mgl64.Vec3{
		ToFloat(x.DX, oom, rm),
		ToFloat(x.DY, oom, rm),
		ToFloat(x.DZ, oom, rm),
	}
}

// PointFromVec converts an r3 vector to a kernel point on the 10^oom
// lattice.
func PointFromVec(v r3.Vector, oom int, rm rnum.RoundingMode) *geom.Point {
	return geom.NewPoint(
		FromFloat(v.X, oom, rm),
		FromFloat(v.Y, oom, rm),
		FromFloat(v.Z, oom, rm),
	)
}
