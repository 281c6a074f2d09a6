package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/agdturner/ccg-v3d-sub010/geom"
	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

// Camera projects kernel points into window coordinates. The window
// origin is the bottom left corner, x grows right, y grows up and the
// depth component grows with distance from the eye.
type Camera struct {
	Eye, Center, Up mgl64.Vec3
	Fovy, Near, Far float64
	Width, Height   int
}

// NewCamera places a camera at focus looking along dir, with a window
// of the given pixel size. It panics when dir is the zero vector.
func NewCamera(
	focus *geom.Point, dir *geom.Vector,
	width, height int, oom int, rm rnum.RoundingMode,
) *Camera {
	if dir.IsZero() {
		panic("Cannot aim a camera along the zero vector.")
	}

	eye := MglPt(focus, oom, rm)
	d := Vec(dir, oom, rm)
	forward := mgl64.Vec3{d.X, d.Y, d.Z}.Normalize()

	up := mgl64.Vec3{0, 0, 1}
	if math.Abs(forward.Z()) > 0.999 {
		up = mgl64.Vec3{0, 1, 0}
	}

	return &Camera{
		Eye:    eye,
		Center: eye.Add(forward),
		Up:     up,
		Fovy:   mgl64.DegToRad(60),
		Near:   1.0 / 16,
		Far:    1 << 14,
		Width:  width,
		Height: height,
	}
}

func (c *Camera) matrices() (modelview, projection mgl64.Mat4) {
	modelview = mgl64.LookAtV(c.Eye, c.Center, c.Up)
	aspect := float64(c.Width) / float64(c.Height)
	projection = mgl64.Perspective(c.Fovy, aspect, c.Near, c.Far)
	return modelview, projection
}

// Project maps a kernel point to window coordinates.
func (c *Camera) Project(p *geom.Point, oom int, rm rnum.RoundingMode) mgl64.Vec3 {
	modelview, projection := c.matrices()
	return mgl64.Project(
		MglPt(p, oom, rm), modelview, projection,
		0, 0, c.Width, c.Height,
	)
}

// ProjectRectangle maps the four corners of a rectangle, in ring
// order, to window coordinates.
func (c *Camera) ProjectRectangle(
	r *geom.Rectangle, oom int, rm rnum.RoundingMode,
) [4]mgl64.Vec3 {
	modelview, projection := c.matrices()
	corners := [4]*geom.Point{r.P(), r.Q(), r.R(), r.S()}

	var wins [4]mgl64.Vec3
	for i, pt := range corners {
		wins[i] = mgl64.Project(
			MglPt(pt, oom, rm), modelview, projection,
			0, 0, c.Width, c.Height,
		)
	}
	return wins
}
