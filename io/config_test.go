package io

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agdturner/ccg-v3d-sub010/geom"
	"github.com/agdturner/ccg-v3d-sub010/math/rnum"
)

func rat(s string) *big.Rat {
	x, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("bad rational literal " + s)
	}
	return x
}

const testScene = `[Scene]
Name = kernel-test
OOM = -10
RoundingMode = HalfEven

[Camera]
Focus = -5 1/2 1/2
Direction = 1 0 0
Width = 800
Height = 600

[Point "center"]
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

[Triangle "wedge"]
P = 0 0 0
Q = 1 1 0
R = 2 0 0

[Tetrahedron "corner"]
P = 0 0 0
Q = 1 0 0
R = 0 1 0
S = 0 0 1

[Query "hit"]
Op = Intersection
Of = wedge
With = unit
`

func TestReadSceneString(t *testing.T) {
	sf, err := ReadSceneString(testScene)
	require.NoError(t, err)

	if sf.Scene.Name != "kernel-test" {
		t.Errorf("Name = %q.", sf.Scene.Name)
	}
	if sf.Scene.OOM != -10 {
		t.Errorf("OOM = %d, not -10.", sf.Scene.OOM)
	}
	if sf.Scene.RM() != rnum.HalfEven {
		t.Errorf("RM = %v, not HalfEven.", sf.Scene.RM())
	}
	if sf.Scene.Output != "scene.stl" {
		t.Errorf("Output default = %q.", sf.Scene.Output)
	}

	pc, ok := sf.Point["center"]
	require.True(t, ok)
	wantPt := geom.NewPoint(rat("1/2"), rat("1/2"), rat("1/2"))
	if !pc.Point().EqualsExact(wantPt) {
		t.Errorf("Point 'center' = %v, not %v.", pc.Point(), wantPt)
	}

	box := sf.Box["unit"].Box(-10)
	wantBox := geom.NewAABB(
		-10, geom.NewPointInt(0, 0, 0), geom.NewPointInt(1, 1, 1),
	)
	if !box.Equals(wantBox) {
		t.Errorf("Box 'unit' = %v, not %v.", box, wantBox)
	}

	tri := sf.Triangle["wedge"].Triangle(-10, sf.Scene.RM())
	if area := tri.Area(-10, rnum.HalfEven); area.Cmp(rat("1")) != 0 {
		t.Errorf("Triangle 'wedge' has area %v, not 1.", area)
	}

	tet := sf.Tetrahedron["corner"].Tetrahedron(-10, sf.Scene.RM())
	wantVol := rnum.Round(rat("1/6"), -10, rnum.HalfEven)
	if vol := tet.Volume(-10, rnum.HalfEven); vol.Cmp(wantVol) != 0 {
		t.Errorf("Tetrahedron 'corner' has volume %v, not %v.", vol, wantVol)
	}

	if sf.Camera.Width != 800 || sf.Camera.Height != 600 {
		t.Errorf("Camera window = %d x %d.", sf.Camera.Width, sf.Camera.Height)
	}
	wantFocus := geom.NewPoint(rat("-5"), rat("1/2"), rat("1/2"))
	if !sf.Camera.FocusPoint().EqualsExact(wantFocus) {
		t.Errorf("Focus = %v, not %v.", sf.Camera.FocusPoint(), wantFocus)
	}
	if !sf.Camera.DirectionVector().Subtract(geom.UnitX()).IsZero() {
		t.Errorf("Direction = %v, not +x.", sf.Camera.DirectionVector())
	}

	q, ok := sf.Query["hit"]
	require.True(t, ok)
	if q.Op != "intersection" {
		t.Errorf("Op = %q, not normalised to 'intersection'.", q.Op)
	}
	if q.Of != "wedge" || q.With != "unit" {
		t.Errorf("Query operands = %q, %q.", q.Of, q.With)
	}
}

func TestExampleSceneFile(t *testing.T) {
	sf, err := ReadSceneString(ExampleSceneFile)
	require.NoError(t, err)

	if sf.Scene.OOM != -8 {
		t.Errorf("example OOM = %d.", sf.Scene.OOM)
	}
	if len(sf.Query) != 3 {
		t.Errorf("example has %d queries, not 3.", len(sf.Query))
	}
	if _, ok := sf.Box["unit"]; !ok {
		t.Errorf("example is missing Box 'unit'.")
	}
	if !sf.Camera.IsSet() {
		t.Errorf("example has no camera.")
	}
}

func TestSceneFileErrors(t *testing.T) {
	tests := []struct {
		name, src string
	}{
		{"bad rounding mode",
			"[Scene]\nRoundingMode = nearest"},
		{"camera missing direction",
			"[Camera]\nFocus = 0 0 0"},
		{"camera zero direction",
			"[Camera]\nFocus = 0 0 0\nDirection = 0 0 0"},
		{"point missing coordinate",
			"[Point \"p\"]\nX = 1\nY = 2"},
		{"point bad number",
			"[Point \"p\"]\nX = one\nY = 2\nZ = 3"},
		{"box missing width",
			"[Box \"b\"]\nX = 0\nY = 0\nZ = 0\nXWidth = 1\nYWidth = 1"},
		{"box negative width",
			"[Box \"b\"]\nX = 0\nY = 0\nZ = 0\nXWidth = 1\nYWidth = 1\nZWidth = -1"},
		{"triangle collinear",
			"[Triangle \"t\"]\nP = 0 0 0\nQ = 1 0 0\nR = 2 0 0"},
		{"triangle arity",
			"[Triangle \"t\"]\nP = 0 0\nQ = 1 0 0\nR = 2 1 0"},
		{"tetrahedron coplanar",
			"[Tetrahedron \"th\"]\nP = 0 0 0\nQ = 1 0 0\nR = 0 1 0\nS = 1 1 0"},
		{"query unknown op",
			"[Query \"q\"]\nOp = Overlap\nOf = a\nWith = b"},
		{"query missing of",
			"[Query \"q\"]\nOp = Distance\nWith = b"},
		{"query missing with",
			"[Query \"q\"]\nOp = Distance\nOf = a"},
		{"viewport with a with",
			"[Query \"q\"]\nOp = Viewport\nOf = a\nWith = b"},
	}
	for i, test := range tests {
		if _, err := ReadSceneString(test.src); err == nil {
			t.Errorf("%d) %s: expected an error.", i, test.name)
		}
	}
}

func TestParseRat(t *testing.T) {
	tests := []struct {
		in, want string
		ok       bool
	}{
		{"1/2", "1/2", true},
		{" 0.25 ", "1/4", true},
		{"-3", "-3", true},
		{"one", "", false},
		{"", "", false},
	}
	for i, test := range tests {
		got, err := ParseRat(test.in)
		if test.ok != (err == nil) {
			t.Errorf("%d) ParseRat(%q) error = %v.", i, test.in, err)
			continue
		}
		if test.ok && got.Cmp(rat(test.want)) != 0 {
			t.Errorf("%d) ParseRat(%q) = %v, not %s.", i, test.in, got, test.want)
		}
	}
}

func TestParseTriple(t *testing.T) {
	v, err := ParseTriple("1/2  -3 0.25")
	require.NoError(t, err)
	want := geom.NewVector(rat("1/2"), rat("-3"), rat("1/4"))
	if !v.Subtract(want).IsZero() {
		t.Errorf("ParseTriple = %v, not %v.", v, want)
	}

	for i, bad := range []string{"1 2", "1 2 3 4", "1 x 3", ""} {
		if _, err := ParseTriple(bad); err == nil {
			t.Errorf("%d) ParseTriple(%q): expected an error.", i, bad)
		}
	}
}
