package v3d

import (
	"fmt"
	"log"
	"strconv"

	"github.com/agdturner/ccg-v3d-sub010/geom"
	"github.com/agdturner/ccg-v3d-sub010/io"
)

// Result is the outcome of a single query, with the value already
// rendered as text.
type Result struct {
	Name, Op, Of, With string
	Value              string
}

// Run evaluates every query in the scene, in query name order.
func (sc *Scene) Run() ([]Result, error) {
	results := make([]Result, 0, len(sc.queries))
	for _, q := range sc.queries {
		if sc.log {
			log.Printf("Evaluating query %s", q.Name)
		}
		val, err := sc.evaluate(q)
		if err != nil {
			return nil, err
		}
		results = append(results, Result{q.Name, q.Op, q.Of, q.With, val})
	}
	return results, nil
}

func (sc *Scene) evaluate(q *io.QueryConfig) (string, error) {
	if q.Op == "viewport" {
		vp, err := sc.Viewport(q.Of)
		if err != nil {
			return "", err
		}
		return vp.String(), nil
	}

	a, b := sc.geoms[q.Of], sc.geoms[q.With]
	switch q.Op {
	case "intersects":
		if v, ok := sc.intersects(a, b); ok {
			return strconv.FormatBool(v), nil
		}
	case "intersection":
		if g, ok := sc.intersection(a, b); ok {
			return formatGeometry(g), nil
		}
	case "distance":
		if a.point != nil && b.point != nil {
			return a.point.Distance(b.point, sc.OOM, sc.RM).RatString(), nil
		}
	case "union":
		if a.box != nil && b.box != nil {
			return a.box.Union(b.box, sc.OOM).String(), nil
		}
	case "contains":
		if v, ok := sc.contains(a, b); ok {
			return strconv.FormatBool(v), nil
		}
	default:
		panic("Impossible")
	}
	return "", fmt.Errorf(
		"Query '%s': cannot evaluate %s on a %s and a %s.",
		q.Name, q.Op, a.kind(), b.kind(),
	)
}

func (sc *Scene) intersects(a, b *geometry) (value, ok bool) {
	oom, rm := sc.OOM, sc.RM
	switch {
	case a.point != nil && b.point != nil:
		return a.point.Equals(b.point, oom, rm), true
	case a.box != nil && b.box != nil:
		return a.box.Intersects(b.box, oom), true
	case a.box != nil && b.point != nil:
		return a.box.IntersectsPoint(b.point, oom, rm), true
	case a.point != nil && b.box != nil:
		return b.box.IntersectsPoint(a.point, oom, rm), true
	case a.tri != nil && b.tri != nil:
		return a.tri.Intersects(b.tri, oom, rm), true
	case a.tri != nil && b.point != nil:
		return a.tri.IntersectsPoint(b.point, oom, rm), true
	case a.point != nil && b.tri != nil:
		return b.tri.IntersectsPoint(a.point, oom, rm), true
	case a.tet != nil && b.point != nil:
		return a.tet.Contains(b.point, oom, rm), true
	case a.point != nil && b.tet != nil:
		return b.tet.Contains(a.point, oom, rm), true
	case a.tet != nil && b.tri != nil:
		return a.tet.IntersectTriangle(b.tri, oom, rm) != nil, true
	case a.tri != nil && b.tet != nil:
		return b.tet.IntersectTriangle(a.tri, oom, rm) != nil, true
	}
	return false, false
}

func (sc *Scene) intersection(a, b *geometry) (geom.Geometry, bool) {
	oom, rm := sc.OOM, sc.RM
	switch {
	case a.box != nil && b.box != nil:
		if out := a.box.Intersect(b.box, oom); out != nil {
			return out, true
		}
		return nil, true
	case a.tri != nil && b.tri != nil:
		return a.tri.IntersectTriangle(b.tri, oom, rm), true
	case a.tet != nil && b.tri != nil:
		return a.tet.IntersectTriangle(b.tri, oom, rm), true
	case a.tri != nil && b.tet != nil:
		return b.tet.IntersectTriangle(a.tri, oom, rm), true
	case a.point != nil && b.point != nil:
		return pointIf(a.point, a.point.Equals(b.point, oom, rm)), true
	case a.box != nil && b.point != nil:
		return pointIf(b.point, a.box.IntersectsPoint(b.point, oom, rm)), true
	case a.point != nil && b.box != nil:
		return pointIf(a.point, b.box.IntersectsPoint(a.point, oom, rm)), true
	case a.tri != nil && b.point != nil:
		return pointIf(b.point, a.tri.IntersectsPoint(b.point, oom, rm)), true
	case a.point != nil && b.tri != nil:
		return pointIf(a.point, b.tri.IntersectsPoint(a.point, oom, rm)), true
	case a.tet != nil && b.point != nil:
		return pointIf(b.point, a.tet.Contains(b.point, oom, rm)), true
	case a.point != nil && b.tet != nil:
		return pointIf(a.point, b.tet.Contains(a.point, oom, rm)), true
	}
	return nil, false
}

func (sc *Scene) contains(a, b *geometry) (value, ok bool) {
	oom, rm := sc.OOM, sc.RM
	switch {
	case a.box != nil && b.box != nil:
		return a.box.Contains(b.box, oom), true
	case a.box != nil && b.point != nil:
		return a.box.IntersectsPoint(b.point, oom, rm), true
	case a.tri != nil && b.point != nil:
		return a.tri.ContainsPoint(b.point, oom, rm), true
	case a.tri != nil && b.tri != nil:
		return a.tri.ContainsTriangle(b.tri, oom, rm), true
	case a.tet != nil && b.point != nil:
		return a.tet.Contains(b.point, oom, rm), true
	}
	return false, false
}

func pointIf(p *geom.Point, in bool) geom.Geometry {
	if in {
		return p
	}
	return nil
}

// formatGeometry renders an intersection result, "none" when empty.
func formatGeometry(g geom.Geometry) string {
	if g == nil {
		return "none"
	}
	return fmt.Sprintf("%v", g)
}
