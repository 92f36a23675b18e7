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

package transform

import (
	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Viewport maps normalized device coordinates to a pixel grid of the given
// size.  Pixel coordinates have their origin at the top-left corner of the
// image, with y increasing downwards.
type Viewport struct {
	// Width and Height give the size of the pixel grid.
	// Both must be positive.
	Width, Height int

	// Near and Far are the clipping plane distances used for the
	// projection.  [Viewport.Depth] maps depth values into this range.
	Near, Far float64
}

// Matrix returns the 2D part of the viewport transformation, taking
// [-1,1]² to [0,Width]×[0,Height] and flipping the y-axis.
func (vp Viewport) Matrix() matrix.Matrix {
	w := float64(vp.Width)
	h := float64(vp.Height)
	return matrix.Matrix{w / 2, 0, 0, -h / 2, w / 2, h / 2}
}

// Bounds returns the pixel area covered by the viewport.
func (vp Viewport) Bounds() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(vp.Width),
		URy: float64(vp.Height),
	}
}

// Depth converts a normalized device z coordinate into a z-buffer value.
// The near plane (z = 1) maps to Near and the far plane (z = -1) maps to
// Far.  The mapping is monotonic but, because of the perspective divide,
// not linear in the distance from the camera.
func (vp Viewport) Depth(z float64) float64 {
	return (vp.Far+vp.Near)/2 - z*(vp.Far-vp.Near)/2
}

// Project transforms the object-space point p by mvp and maps the result to
// pixel coordinates.  The returned depth is the exact distance from the
// camera plane, taken from the clip-space w component.  If p lies on or
// behind the camera plane, ok is false and the other results are
// meaningless.
func (vp Viewport) Project(mvp mgl64.Mat4, p mgl64.Vec3) (pix vec.Vec2, depth float64, ok bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	w := clip[3]
	if !(w < 0) {
		return vec.Vec2{}, 0, false
	}
	ndc := clip.Vec3().Mul(1 / w)

	M := vp.Matrix()
	pix = vec.Vec2{
		X: M[0]*ndc[0] + M[2]*ndc[1] + M[4],
		Y: M[1]*ndc[0] + M[3]*ndc[1] + M[5],
	}
	return pix, -w, true
}

// InDepthRange reports whether a depth value returned by [Viewport.Project]
// lies between the near and far clipping planes.  NaN is never in range.
func (vp Viewport) InDepthRange(depth float64) bool {
	return depth >= vp.Near && depth <= vp.Far
}

// Contains reports whether the pixel position lies inside the viewport.
func (vp Viewport) Contains(pix vec.Vec2) bool {
	b := vp.Bounds()
	return pix.X >= b.LLx && pix.X <= b.URx && pix.Y >= b.LLy && pix.Y <= b.URy
}
