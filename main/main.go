package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"strings"

	"github.com/deadsy/sdfx/sdf"

	v3d "github.com/agdturner/ccg-v3d-sub010"
	"github.com/agdturner/ccg-v3d-sub010/io"
	"github.com/agdturner/ccg-v3d-sub010/render"
)

const (
	stlCells = 64
)

func main() {
	var (
		report, viewport, stl string
		exampleConfig         string
	)
	vars := map[string]*string{
		"Report":        &report,
		"Viewport":      &viewport,
		"STL":           &stl,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&report, "Report", "",
		"Configuration file for [Report] mode.",
	)
	flag.StringVar(
		&viewport, "Viewport", "",
		"Configuration file for [Viewport] mode.",
	)
	flag.StringVar(
		&stl, "STL", "",
		"Configuration file for [STL] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. The only accepted argument is 'Scene'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Report":
		reportMain(loadScene(report))
	case "Viewport":
		viewportMain(loadScene(viewport))
	case "STL":
		stlMain(loadScene(stl))
	case "ExampleConfig":
		switch exampleConfig {
		case "Scene":
			fmt.Println(io.ExampleSceneFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only recognized " +
					"argument is 'Scene'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but v3dcalc only accepts "+
				"one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func loadScene(fname string) *v3d.Scene {
	sf, err := io.ReadSceneFile(fname)
	if err != nil {
		log.Fatal(err.Error())
	}

	sc, err := v3d.NewScene(sf)
	if err != nil {
		log.Fatal(err.Error())
	}
	sc.Log(true)

	if sc.Name != "" {
		log.Printf("Loaded scene %s", sc.Name)
	}
	return sc
}

func reportMain(sc *v3d.Scene) {
	results, err := sc.Run()
	if err != nil {
		log.Fatal(err.Error())
	}

	for _, res := range results {
		if res.With == "" {
			fmt.Printf("%s: %s(%s) = %s\n", res.Name, res.Op, res.Of, res.Value)
		} else {
			fmt.Printf("%s: %s(%s, %s) = %s\n",
				res.Name, res.Op, res.Of, res.With, res.Value)
		}
	}
}

func viewportMain(sc *v3d.Scene) {
	if !sc.HasCamera() {
		log.Fatal("Viewport mode needs a [Camera] section.")
	}

	focus, dir := sc.Camera()
	width, height := sc.Window()
	cam := render.NewCamera(focus, dir, width, height, sc.OOM, sc.RM)

	names := sc.BoxNames()
	if len(names) == 0 {
		log.Fatal("Viewport mode needs at least one [Box] section.")
	}

	for _, name := range names {
		vp, err := sc.Viewport(name)
		if err != nil {
			log.Fatal(err.Error())
		}

		fmt.Printf("%s: %v\n", name, vp)
		wins := cam.ProjectRectangle(vp, sc.OOM, sc.RM)
		for i, w := range wins {
			fmt.Printf("    corner %d at (%.1f, %.1f), depth %.6f\n",
				i, w.X(), w.Y(), w.Z())
		}
	}
}

func stlMain(sc *v3d.Scene) {
	names := sc.BoxNames()
	if len(names) == 0 {
		log.Fatal("STL mode needs at least one [Box] section.")
	}

	solids := make([]sdf.SDF3, len(names))
	for i, name := range names {
		s, err := render.BoxSolid(sc.Box(name), sc.OOM, sc.RM)
		if err != nil {
			log.Fatal(err.Error())
		}
		solids[i] = s
	}
	s := sdf.Union3D(solids...)

	log.Printf("Meshing %d boxes at %d cells", len(names), stlCells)
	mesh := render.Mesh(s, stlCells)
	ts := render.ImportTriangles(mesh, sc.OOM, sc.RM)

	area := new(big.Rat)
	for _, t := range ts {
		area.Add(area, t.Area(sc.OOM, sc.RM))
	}
	log.Printf("Mesh has %d triangles with total area %s",
		len(ts), area.FloatString(2))

	render.WriteSTL(s, sc.Output, stlCells)
	log.Printf("Wrote %s", sc.Output)
}
