package render

import (
	"fmt"

	sdfrender "github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/golang/geo/r3"

	"github.com/agdturner/ccg-v3d-sub010/geom"
	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

// BoxSolid converts a bounding box to an sdfx solid. The box must not
// be flat once rounded to the given order of magnitude: signed
// distance fields have no inside to speak of at zero width.
func BoxSolid(a *geom.AABB, oom int, rm rnum.RoundingMode) (sdf.SDF3, error) {
	var min, max, size [3]float64
	for i := 0; i < 3; i++ {
		min[i] = ToFloat(a.Min[i], oom, rm)
		max[i] = ToFloat(a.Max[i], oom, rm)
		size[i] = max[i] - min[i]
		if size[i] <= 0 {
			return nil, fmt.Errorf(
				"Box is flat on axis %d at order of magnitude %d.", i, oom,
			)
		}
	}

	s, err := sdf.Box3D(v3.Vec{X: size[0], Y: size[1], Z: size[2]}, 0)
	if err != nil {
		return nil, err
	}

	// Box3D centers the solid on the origin.
	center := v3.Vec{
		X: (min[0] + max[0]) / 2,
		Y: (min[1] + max[1]) / 2,
		Z: (min[2] + max[2]) / 2,
	}
	return sdf.Transform3D(s, sdf.Translate3d(center)), nil
}

// Mesh tessellates a solid into triangles with uniform marching cubes.
func Mesh(s sdf.SDF3, cells int) []sdfrender.Triangle3 {
	return sdfrender.ToTriangles(s, sdfrender.NewMarchingCubesUniform(cells))
}

// WriteSTL tessellates a solid and writes it to an STL file.
func WriteSTL(s sdf.SDF3, path string, cells int) {
	sdfrender.ToSTL(s, path, sdfrender.NewMarchingCubesUniform(cells))
}

// ImportTriangles converts an sdfx triangle mesh to kernel triangles
// on the 10^oom lattice. Slivers whose corners become collinear when
// snapped onto the lattice are dropped.
func ImportTriangles(
	mesh []sdfrender.Triangle3, oom int, rm rnum.RoundingMode,
) []*geom.Triangle {
	out := make([]*geom.Triangle, 0, len(mesh))
	for _, tri := range mesh {
		p := PointFromVec(vecFromV3(tri[0]), oom, rm)
		q := PointFromVec(vecFromV3(tri[1]), oom, rm)
		r := PointFromVec(vecFromV3(tri[2]), oom, rm)

		pp := p.Position()
		dq := q.Position().Subtract(pp)
		dr := r.Position().Subtract(pp)
		if dq.Cross(dr).IsZero() {
			continue
		}
		out = append(out, geom.NewTriangle(p, q, r, oom, rm))
	}
	return out
}

// ExportTriangles converts kernel triangles to an sdfx triangle mesh
// at the given precision.
func ExportTriangles(
	ts []*geom.Triangle, oom int, rm rnum.RoundingMode,
) []sdfrender.Triangle3 {
	mesh := make([]sdfrender.Triangle3, len(ts))
	for i, t := range ts {
		mesh[i] = sdfrender.Triangle3{
			v3FromPt(t.P, oom, rm),
			v3FromPt(t.Q, oom, rm),
			v3FromPt(t.R, oom, rm),
		}
	}
	return mesh
}

func v3FromPt(p *geom.Point, oom int, rm rnum.RoundingMode) v3.Vec {
	x := p.Position()
	return v3.Vec{
		X: ToFloat(x.DX, oom, rm),
		Y: ToFloat(x.DY, oom, rm),
		Z: ToFloat(x.DZ, oom, rm),
	}
}

func vecFromV3(v v3.Vec) r3.Vector {
	return r3.Vector{X: v.X, Y: v.Y, Z: v.Z}
}
