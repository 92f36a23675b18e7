// Command export writes the scene catalogue, together with the matrices and
// projected vertices computed for each scene, to JSON.  The output is meant
// for cross-checking with external tools.
// Run from the render3d module root directory.
package main

import (
	"encoding/json"
	"flag"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/render3d/testcases"
	"seehuhn.de/go/render3d/transform"
)

func main() {
	outPath := flag.String("out", "testdata/testcases.json", "output file")
	flag.Parse()

	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, s := range testcases.All[category] {
			out.Scenes = append(out.Scenes, toJSON(category, s))
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(*outPath)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScene struct {
	Name       string        `json:"name"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Eye        []float64     `json:"eye"`
	FOV        float64       `json:"fov"`
	Aspect     float64       `json:"aspect"`
	Near       float64       `json:"near"`
	Far        float64       `json:"far"`
	Angle      float64       `json:"angle"`
	Axis       []float64     `json:"axis"`
	Model      [][]float64   `json:"model"`
	View       [][]float64   `json:"view"`
	Projection [][]float64   `json:"projection"`
	Triangles  [][]jsonVert  `json:"triangles"`
	Wireframe  []jsonSegment `json:"wireframe"`
}

type jsonVert struct {
	Pos     []float64 `json:"pos"`
	Pix     []float64 `json:"pix,omitempty"`
	Depth   float64   `json:"depth,omitempty"`
	Visible bool      `json:"visible"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, s testcases.Scene) jsonScene {
	model := s.Model()
	js := jsonScene{
		Name:       category + "_" + s.Name,
		Width:      s.Width,
		Height:     s.Height,
		Eye:        s.Eye[:],
		FOV:        s.FOV,
		Aspect:     s.Aspect,
		Near:       s.Near,
		Far:        s.Far,
		Angle:      s.Angle,
		Axis:       s.Axis[:],
		Model:      rows(model),
		View:       rows(transform.View(s.Eye)),
		Projection: rows(transform.Projection(s.FOV, s.Aspect, s.Near, s.Far)),
		Wireframe:  pathToJSON(s.Wireframe().Iter()),
	}

	mvp := s.MVP()
	vp := s.Viewport()
	for _, tri := range s.Triangles {
		var jt []jsonVert
		for _, v := range tri {
			jv := jsonVert{Pos: []float64{v[0], v[1], v[2]}}
			if pix, depth, ok := vp.Project(mvp, v); ok {
				jv.Pix = []float64{pix.X, pix.Y}
				jv.Depth = depth
				jv.Visible = vp.InDepthRange(depth)
			}
			jt = append(jt, jv)
		}
		js.Triangles = append(js.Triangles, jt)
	}
	return js
}

// rows returns the matrix as a list of rows.
func rows(m mgl64.Mat4) [][]float64 {
	res := make([][]float64, 4)
	for i := range 4 {
		res[i] = []float64{m.At(i, 0), m.At(i, 1), m.At(i, 2), m.At(i, 3)}
	}
	return res
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
