/*v3d assembles scenes of named exact geometries and answers queries
about them. A Scene is built from a parsed config file: it owns the
working precision, the declared points, boxes, triangles and
tetrahedra, an optional camera and the list of queries to evaluate.
The geometry itself lives in geom; this package wires names to values
and dispatches operations.
*/
package v3d

import (
	"fmt"
	"sort"

	"github.com/agdturner/ccg-v3d-sub010/geom"
	"github.com/agdturner/ccg-v3d-sub010/io"
	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

// geometry is a named scene entity. Exactly one field is set.
type geometry struct {
	point *geom.Point
	box   *geom.AABB
	tri   *geom.Triangle
	tet   *geom.Tetrahedron
}

func (g *geometry) kind() string {
	switch {
	case g.point != nil:
		return "Point"
	case g.box != nil:
		return "Box"
	case g.tri != nil:
		return "Triangle"
	case g.tet != nil:
		return "Tetrahedron"
	}
	panic("Impossible")
}

// Scene holds the geometries and queries of one config file at a fixed
// working precision.
type Scene struct {
	Name   string
	OOM    int
	RM     rnum.RoundingMode
	Output string

	geoms   map[string]*geometry
	queries []*io.QueryConfig

	focus         *geom.Point
	direction     *geom.Vector
	width, height int

	log bool
}

// NewScene builds the scene a config file declares. Every geometry is
// constructed at the scene's precision, names must be unique across
// the geometry kinds, and every query must refer to declared names.
func NewScene(sf *io.SceneFile) (*Scene, error) {
	sc := &Scene{
		Name:   sf.Scene.Name,
		OOM:    sf.Scene.OOM,
		RM:     sf.Scene.RM(),
		Output: sf.Scene.Output,
		geoms:  make(map[string]*geometry),
	}

	for name, con := range sf.Point {
		if err := sc.add(name, &geometry{point: con.Point()}); err != nil {
			return nil, err
		}
	}
	for name, con := range sf.Box {
		if err := sc.add(name, &geometry{box: con.Box(sc.OOM)}); err != nil {
			return nil, err
		}
	}
	for name, con := range sf.Triangle {
		g := &geometry{tri: con.Triangle(sc.OOM, sc.RM)}
		if err := sc.add(name, g); err != nil {
			return nil, err
		}
	}
	for name, con := range sf.Tetrahedron {
		g := &geometry{tet: con.Tetrahedron(sc.OOM, sc.RM)}
		if err := sc.add(name, g); err != nil {
			return nil, err
		}
	}

	if sf.Camera.IsSet() {
		sc.focus = sf.Camera.FocusPoint()
		sc.direction = sf.Camera.DirectionVector()
		sc.width = sf.Camera.Width
		sc.height = sf.Camera.Height
	}

	names := make([]string, 0, len(sf.Query))
	for name := range sf.Query {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		q := sf.Query[name]
		of, ok := sc.geoms[q.Of]
		if !ok {
			return nil, fmt.Errorf(
				"Query '%s' refers to an unknown geometry '%s'.", name, q.Of,
			)
		}
		if q.Op == "viewport" {
			if of.box == nil {
				return nil, fmt.Errorf(
					"Query '%s' views a %s, but viewports need a Box.",
					name, of.kind(),
				)
			}
			if !sc.HasCamera() {
				return nil, fmt.Errorf(
					"Query '%s' is a viewport, but the scene has no camera.",
					name,
				)
			}
		} else if _, ok := sc.geoms[q.With]; !ok {
			return nil, fmt.Errorf(
				"Query '%s' refers to an unknown geometry '%s'.", name, q.With,
			)
		}
		sc.queries = append(sc.queries, q)
	}

	return sc, nil
}

func (sc *Scene) add(name string, g *geometry) error {
	if old, ok := sc.geoms[name]; ok {
		return fmt.Errorf(
			"Scene declares both a %s and a %s named '%s'.",
			old.kind(), g.kind(), name,
		)
	}
	sc.geoms[name] = g
	return nil
}

// Log turns progress logging on or off.
func (sc *Scene) Log(flag bool) { sc.log = flag }

// HasCamera reports whether the config declared a camera.
func (sc *Scene) HasCamera() bool { return sc.focus != nil }

// Camera returns the focal point and view direction, both nil when the
// scene has no camera.
func (sc *Scene) Camera() (*geom.Point, *geom.Vector) {
	return sc.focus, sc.direction
}

// Window returns the camera window size in pixels.
func (sc *Scene) Window() (width, height int) {
	return sc.width, sc.height
}

// BoxNames returns the names of the declared boxes in sorted order.
func (sc *Scene) BoxNames() []string {
	names := []string{}
	for name, g := range sc.geoms {
		if g.box != nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Box returns the named box, nil when the scene does not declare one.
func (sc *Scene) Box(name string) *geom.AABB {
	g, ok := sc.geoms[name]
	if !ok || g.box == nil {
		return nil
	}
	return g.box
}

// Viewport returns the rectangle the scene camera sees the named box
// through. The box must be strictly in front of the focal point.
func (sc *Scene) Viewport(name string) (*geom.Rectangle, error) {
	if !sc.HasCamera() {
		return nil, fmt.Errorf("Scene has no camera.")
	}
	box := sc.Box(name)
	if box == nil {
		return nil, fmt.Errorf("Scene has no Box named '%s'.", name)
	}

	f := sc.focus.Position()
	for _, k := range box.Corners() {
		if sc.direction.Dot(k.Position().Subtract(f)).Sign() <= 0 {
			return nil, fmt.Errorf(
				"Box '%s' is not in front of the camera.", name,
			)
		}
	}

	return box.Viewport(sc.focus, sc.direction, sc.OOM, sc.RM), nil
}
