// seehuhn.de/go/render3d - a software 3D rendering pipeline
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/render3d/transform"
)

// Scene defines a single geometry test: a camera, a model rotation and a
// list of triangles in object space.
type Scene struct {
	Name string // lowercase a-z, 0-9 and _ only

	Eye    mgl64.Vec3 // camera position
	FOV    float64    // vertical field of view in degrees
	Aspect float64    // width / height
	Near   float64    // distance of the near clipping plane
	Far    float64    // distance of the far clipping plane

	Angle float64    // model rotation in degrees
	Axis  mgl64.Vec3 // rotation axis (zero value means the z-axis)

	Triangles [][3]mgl64.Vec3
	Width     int // image width in pixels
	Height    int // image height in pixels
}

// Model returns the model matrix of the scene.
func (s *Scene) Model() mgl64.Mat4 {
	axis := s.Axis
	if axis == (mgl64.Vec3{}) {
		axis = transform.ZAxis
	}
	return transform.Model(s.Angle, axis)
}

// MVP returns projection · view · model for the scene.
func (s *Scene) MVP() mgl64.Mat4 {
	proj := transform.Projection(s.FOV, s.Aspect, s.Near, s.Far)
	return proj.Mul4(transform.View(s.Eye)).Mul4(s.Model())
}

// Viewport returns the viewport of the scene.
func (s *Scene) Viewport() transform.Viewport {
	return transform.Viewport{
		Width:  s.Width,
		Height: s.Height,
		Near:   s.Near,
		Far:    s.Far,
	}
}

// Wireframe returns the outlines of all triangles in pixel coordinates,
// with the origin at the top-left corner of the image.  Triangles with a
// vertex on or behind the camera plane are omitted.
func (s *Scene) Wireframe() *path.Data {
	mvp := s.MVP()
	vp := s.Viewport()

	p := &path.Data{}
	var corners [3]vec.Vec2
triangles:
	for _, tri := range s.Triangles {
		for i, v := range tri {
			pix, _, ok := vp.Project(mvp, v)
			if !ok {
				continue triangles
			}
			corners[i] = pix
		}
		p = p.MoveTo(corners[0]).LineTo(corners[1]).LineTo(corners[2]).Close()
	}
	return p
}

// v3 is a helper to create an mgl64.Vec3 from x, y, z coordinates.
func v3(x, y, z float64) mgl64.Vec3 {
	return mgl64.Vec3{x, y, z}
}
