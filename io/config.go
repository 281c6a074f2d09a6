// Package io reads scene configuration files. A scene file declares
// named geometries, a working precision, an optional camera and a list
// of queries to evaluate against the geometries.
package io

import (
	"fmt"
	"math/big"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/agdturner/ccg-v3d-sub010/geom"
	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

const ExampleSceneFile = `[Scene]

#######################
# Optional Parameters #
#######################

# A label for log output.
Name = demo

# All comparisons in the scene round to the lattice 10^OOM using
# RoundingMode. Coordinates may be written as integers, decimals or
# fractions: 1, 0.25 and 1/3 are all fine anywhere a number is needed.
OOM = -8
RoundingMode = HalfUp

# Where the STL mode writes its mesh.
Output = scene.stl

[Camera]
# Required for Viewport queries and for the Viewport mode: the point
# the camera sits at and the direction it looks along.
Focus = -5 1/2 1/2
Direction = 1 0 0

# Window size in pixels.
Width = 640
Height = 480

# Geometries are declared in named sections and referred to by name in
# queries. Boxes are axis aligned: a corner plus a width per axis.
[Point "p"]
X = 1/2
Y = 1/2
Z = 1/2

[Box "unit"]
X = 0
Y = 0
Z = 0
XWidth = 1
YWidth = 1
ZWidth = 1

[Triangle "t"]
P = 0 0 0
Q = 1 1 0
R = 2 0 0

[Tetrahedron "th"]
P = 0 0 0
Q = 1 0 0
R = 0 1 0
S = 0 0 1

# Op is one of Intersects, Intersection, Distance, Union, Contains or
# Viewport. Viewport takes a box in Of and uses the camera; the rest
# pair Of with With.
[Query "q1"]
Op = Intersection
Of = t
With = th

[Query "q2"]
Op = Contains
Of = unit
With = p

[Query "q3"]
Op = Viewport
Of = unit`

// ParseRat converts a config number to a rational. Integers, decimals
// and fractions are accepted.
func ParseRat(s string) (*big.Rat, error) {
	x, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return nil, fmt.Errorf("'%s' is not a number.", s)
	}
	return x, nil
}

// ParseTriple converts a whitespace separated coordinate triple to a
// vector.
func ParseTriple(s string) (*geom.Vector, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return nil, fmt.Errorf(
			"'%s' must have three components, but has %d.", s, len(fields),
		)
	}

	xs := make([]*big.Rat, 3)
	for i, field := range fields {
		x, err := ParseRat(field)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}

	return geom.NewVector(xs[0], xs[1], xs[2]), nil
}

type SceneConfig struct {
	// Optional
	Name         string
	OOM          int
	RoundingMode string
	Output       string

	rm rnum.RoundingMode
}

func (con *SceneConfig) CheckInit() error {
	rm, err := rnum.ParseRoundingMode(con.RoundingMode)
	if err != nil {
		return fmt.Errorf(
			"Scene has an unrecognized RoundingMode '%s'.", con.RoundingMode,
		)
	}
	con.rm = rm
	return nil
}

// RM returns the parsed rounding mode.
func (con *SceneConfig) RM() rnum.RoundingMode { return con.rm }

type CameraConfig struct {
	// Required
	Focus, Direction string

	// Optional
	Width, Height int

	focus     *geom.Point
	direction *geom.Vector
}

func (con *CameraConfig) IsSet() bool {
	return con.Focus != "" || con.Direction != ""
}

func (con *CameraConfig) CheckInit() error {
	if con.Focus == "" {
		return fmt.Errorf("Need to specify a Focus for the Camera.")
	} else if con.Direction == "" {
		return fmt.Errorf("Need to specify a Direction for the Camera.")
	}

	focus, err := ParseTriple(con.Focus)
	if err != nil {
		return fmt.Errorf("Camera has a bad Focus: %s", err.Error())
	}
	dir, err := ParseTriple(con.Direction)
	if err != nil {
		return fmt.Errorf("Camera has a bad Direction: %s", err.Error())
	}
	if dir.IsZero() {
		return fmt.Errorf("Camera Direction must not be the zero vector.")
	}

	if con.Width <= 0 || con.Height <= 0 {
		return fmt.Errorf(
			"Camera window must be positive, but is %d x %d.",
			con.Width, con.Height,
		)
	}

	con.focus = geom.NewPointFromVectors(geom.ZeroVector(), focus)
	con.direction = dir
	return nil
}

// FocusPoint returns the parsed camera position.
func (con *CameraConfig) FocusPoint() *geom.Point { return con.focus }

// DirectionVector returns the parsed view direction.
func (con *CameraConfig) DirectionVector() *geom.Vector { return con.direction }

type PointConfig struct {
	// Required
	X, Y, Z string

	Name string

	x, y, z *big.Rat
}

func (con *PointConfig) CheckInit(name string) error {
	coords := []struct {
		label, val string
		out        **big.Rat
	}{
		{"X", con.X, &con.x},
		{"Y", con.Y, &con.y},
		{"Z", con.Z, &con.z},
	}
	for _, c := range coords {
		if c.val == "" {
			return fmt.Errorf(
				"Need to specify %s for Point '%s'.", c.label, name,
			)
		}
		x, err := ParseRat(c.val)
		if err != nil {
			return fmt.Errorf(
				"%s of Point '%s' is bad: %s", c.label, name, err.Error(),
			)
		}
		*c.out = x
	}

	con.Name = name
	return nil
}

// Point builds the configured point.
func (con *PointConfig) Point() *geom.Point {
	return geom.NewPoint(con.x, con.y, con.z)
}

type BoxConfig struct {
	// Required
	X, Y, Z                string
	XWidth, YWidth, ZWidth string

	Name string

	min, width *geom.Vector
}

func (con *BoxConfig) CheckInit(name string) error {
	fields := []struct {
		label, val string
	}{
		{"X", con.X}, {"Y", con.Y}, {"Z", con.Z},
		{"XWidth", con.XWidth}, {"YWidth", con.YWidth}, {"ZWidth", con.ZWidth},
	}
	vals := make([]*big.Rat, len(fields))
	for i, f := range fields {
		if f.val == "" {
			return fmt.Errorf(
				"Need to specify %s for Box '%s'.", f.label, name,
			)
		}
		x, err := ParseRat(f.val)
		if err != nil {
			return fmt.Errorf(
				"%s of Box '%s' is bad: %s", f.label, name, err.Error(),
			)
		}
		vals[i] = x
	}

	for i := 3; i < 6; i++ {
		if vals[i].Sign() < 0 {
			return fmt.Errorf(
				"%s of Box '%s' must not be negative, but is %s.",
				fields[i].label, name, vals[i].RatString(),
			)
		}
	}

	con.min = geom.NewVector(vals[0], vals[1], vals[2])
	con.width = geom.NewVector(vals[3], vals[4], vals[5])
	con.Name = name
	return nil
}

// Box builds the configured bounding box at the given order of
// magnitude.
func (con *BoxConfig) Box(oom int) *geom.AABB {
	min := geom.NewPointFromVectors(geom.ZeroVector(), con.min)
	max := geom.NewPointFromVectors(geom.ZeroVector(), con.min.Add(con.width))
	return geom.NewAABB(oom, min, max)
}

type TriangleConfig struct {
	// Required
	P, Q, R string

	Name string

	p, q, r *geom.Vector
}

func (con *TriangleConfig) CheckInit(name string) error {
	corners := []struct {
		label, val string
		out        **geom.Vector
	}{
		{"P", con.P, &con.p},
		{"Q", con.Q, &con.q},
		{"R", con.R, &con.r},
	}
	for _, c := range corners {
		if c.val == "" {
			return fmt.Errorf(
				"Need to specify %s for Triangle '%s'.", c.label, name,
			)
		}
		v, err := ParseTriple(c.val)
		if err != nil {
			return fmt.Errorf(
				"%s of Triangle '%s' is bad: %s", c.label, name, err.Error(),
			)
		}
		*c.out = v
	}

	dq := con.q.Subtract(con.p)
	dr := con.r.Subtract(con.p)
	if dq.Cross(dr).IsZero() {
		return fmt.Errorf("The corners of Triangle '%s' are collinear.", name)
	}

	con.Name = name
	return nil
}

// Triangle builds the configured triangle.
func (con *TriangleConfig) Triangle(oom int, rm rnum.RoundingMode) *geom.Triangle {
	zero := geom.ZeroVector()
	return geom.NewTriangle(
		geom.NewPointFromVectors(zero, con.p),
		geom.NewPointFromVectors(zero, con.q),
		geom.NewPointFromVectors(zero, con.r),
		oom, rm,
	)
}

type TetrahedronConfig struct {
	// Required
	P, Q, R, S string

	Name string

	p, q, r, s *geom.Vector
}

func (con *TetrahedronConfig) CheckInit(name string) error {
	corners := []struct {
		label, val string
		out        **geom.Vector
	}{
		{"P", con.P, &con.p},
		{"Q", con.Q, &con.q},
		{"R", con.R, &con.r},
		{"S", con.S, &con.s},
	}
	for _, c := range corners {
		if c.val == "" {
			return fmt.Errorf(
				"Need to specify %s for Tetrahedron '%s'.", c.label, name,
			)
		}
		v, err := ParseTriple(c.val)
		if err != nil {
			return fmt.Errorf(
				"%s of Tetrahedron '%s' is bad: %s", c.label, name, err.Error(),
			)
		}
		*c.out = v
	}

	dq := con.q.Subtract(con.p)
	dr := con.r.Subtract(con.p)
	ds := con.s.Subtract(con.p)
	if dq.Cross(dr).Dot(ds).Sign() == 0 {
		return fmt.Errorf("The corners of Tetrahedron '%s' are coplanar.", name)
	}

	con.Name = name
	return nil
}

// Tetrahedron builds the configured tetrahedron.
func (con *TetrahedronConfig) Tetrahedron(
	oom int, rm rnum.RoundingMode,
) *geom.Tetrahedron {
	zero := geom.ZeroVector()
	return geom.NewTetrahedron(
		geom.NewPointFromVectors(zero, con.p),
		geom.NewPointFromVectors(zero, con.q),
		geom.NewPointFromVectors(zero, con.r),
		geom.NewPointFromVectors(zero, con.s),
		oom, rm,
	)
}

// Ops accepted in Query sections.
var QueryOps = []string{
	"intersects", "intersection", "distance", "union", "contains", "viewport",
}

type QueryConfig struct {
	// Required
	Op string
	Of string

	// Required for every op except viewport.
	With string

	Name string
}

func (con *QueryConfig) CheckInit(name string) error {
	op := strings.ToLower(strings.TrimSpace(con.Op))
	found := false
	for _, known := range QueryOps {
		if op == known {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf(
			"Op of Query '%s' must be one of [%s], but is '%s'.",
			name, strings.Join(QueryOps, " | "), con.Op,
		)
	}
	con.Op = op

	if con.Of == "" {
		return fmt.Errorf("Need to specify Of for Query '%s'.", name)
	}
	if op == "viewport" {
		if con.With != "" {
			return fmt.Errorf(
				"Query '%s' is a viewport and takes no With.", name,
			)
		}
	} else if con.With == "" {
		return fmt.Errorf("Need to specify With for Query '%s'.", name)
	}

	con.Name = name
	return nil
}

// SceneFile is the top level scene config layout.
type SceneFile struct {
	Scene  SceneConfig
	Camera CameraConfig

	Point       map[string]*PointConfig
	Box         map[string]*BoxConfig
	Triangle    map[string]*TriangleConfig
	Tetrahedron map[string]*TetrahedronConfig
	Query       map[string]*QueryConfig
}

// DefaultSceneFile returns a scene config with the defaults applied.
func DefaultSceneFile() *SceneFile {
	sf := &SceneFile{}
	sf.Scene.OOM = -8
	sf.Scene.RoundingMode = "HalfUp"
	sf.Scene.Output = "scene.stl"
	sf.Camera.Width = 640
	sf.Camera.Height = 480
	return sf
}

func (sf *SceneFile) checkInit() error {
	if err := sf.Scene.CheckInit(); err != nil {
		return err
	}
	if sf.Camera.IsSet() {
		if err := sf.Camera.CheckInit(); err != nil {
			return err
		}
	}

	for name, con := range sf.Point {
		if err := con.CheckInit(name); err != nil {
			return err
		}
	}
	for name, con := range sf.Box {
		if err := con.CheckInit(name); err != nil {
			return err
		}
	}
	for name, con := range sf.Triangle {
		if err := con.CheckInit(name); err != nil {
			return err
		}
	}
	for name, con := range sf.Tetrahedron {
		if err := con.CheckInit(name); err != nil {
			return err
		}
	}
	for name, con := range sf.Query {
		if err := con.CheckInit(name); err != nil {
			return err
		}
	}

	return nil
}

// ReadSceneFile reads and validates a scene config file.
func ReadSceneFile(fname string) (*SceneFile, error) {
	sf := DefaultSceneFile()
	if err := gcfg.ReadFileInto(sf, fname); err != nil {
		return nil, err
	}
	if err := sf.checkInit(); err != nil {
		return nil, err
	}
	return sf, nil
}

// ReadSceneString reads and validates a scene config from a string.
func ReadSceneString(src string) (*SceneFile, error) {
	sf := DefaultSceneFile()
	if err := gcfg.ReadStringInto(sf, src); err != nil {
		return nil, err
	}
	if err := sf.checkInit(); err != nil {
		return nil, err
	}
	return sf, nil
}
