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

import "github.com/go-gl/mathgl/mgl64"

// triangle is the single triangle used by most scenes.  Seen from the
// default camera it points upwards.
var triangle = [3]mgl64.Vec3{v3(2, 0, -2), v3(0, 2, -2), v3(-2, 0, -2)}

// cube returns the twelve triangles of the axis-aligned cube with the
// given half edge length, centred at the origin.
func cube(r float64) [][3]mgl64.Vec3 {
	c := [8]mgl64.Vec3{
		v3(-r, -r, -r), v3(r, -r, -r), v3(r, r, -r), v3(-r, r, -r),
		v3(-r, -r, r), v3(r, -r, r), v3(r, r, r), v3(-r, r, r),
	}
	faces := [6][4]int{
		{0, 3, 2, 1}, // back
		{4, 5, 6, 7}, // front
		{0, 1, 5, 4}, // bottom
		{3, 7, 6, 2}, // top
		{0, 4, 7, 3}, // left
		{1, 2, 6, 5}, // right
	}
	var res [][3]mgl64.Vec3
	for _, f := range faces {
		res = append(res,
			[3]mgl64.Vec3{c[f[0]], c[f[1]], c[f[2]]},
			[3]mgl64.Vec3{c[f[0]], c[f[2]], c[f[3]]})
	}
	return res
}

// defaultScene returns a scene with the default camera: eye at (0, 0, 5),
// 45° field of view, square 700×700 image and clipping planes at 0.1
// and 50.
func defaultScene(name string, angle float64, axis mgl64.Vec3, tris ...[3]mgl64.Vec3) Scene {
	return Scene{
		Name:      name,
		Eye:       v3(0, 0, 5),
		FOV:       45,
		Aspect:    1,
		Near:      0.1,
		Far:       50,
		Angle:     angle,
		Axis:      axis,
		Triangles: tris,
		Width:     700,
		Height:    700,
	}
}

var rotateScenes = []Scene{
	defaultScene("triangle", 0, mgl64.Vec3{}, triangle),
	defaultScene("triangle_z_45", 45, mgl64.Vec3{}, triangle),
	defaultScene("triangle_z_90", 90, mgl64.Vec3{}, triangle),
	defaultScene("triangle_z_180", 180, mgl64.Vec3{}, triangle),
	defaultScene("triangle_z_neg_30", -30, mgl64.Vec3{}, triangle),
	defaultScene("triangle_z_720", 720, mgl64.Vec3{}, triangle),
}

var axisScenes = []Scene{
	defaultScene("triangle_x_60", 60, v3(1, 0, 0), triangle),
	defaultScene("triangle_y_60", 60, v3(0, 1, 0), triangle),
	defaultScene("cube_diagonal_30", 30, v3(1, 1, 1), cube(1)...),
	defaultScene("cube_diagonal_120", 120, v3(1, 1, 1), cube(1)...),
	defaultScene("cube_unnormalised_axis", 25, v3(0, 3, 4), cube(1)...),
	defaultScene("cube_tilted", 40, v3(1, -2, 0.5), cube(1.2)...),
}

var frustumScenes = []Scene{
	{
		Name:      "wide_angle",
		Eye:       v3(0, 0, 5),
		FOV:       90,
		Aspect:    1,
		Near:      0.1,
		Far:       50,
		Angle:     20,
		Axis:      v3(1, 1, 0),
		Triangles: cube(1),
		Width:     512,
		Height:    512,
	},
	{
		Name:      "narrow_angle",
		Eye:       v3(0, 0, 5),
		FOV:       20,
		Aspect:    1,
		Near:      0.1,
		Far:       50,
		Angle:     20,
		Axis:      v3(1, 1, 0),
		Triangles: cube(1),
		Width:     512,
		Height:    512,
	},
	{
		Name:      "widescreen",
		Eye:       v3(0, 0, 5),
		FOV:       45,
		Aspect:    16.0 / 9.0,
		Near:      0.1,
		Far:       50,
		Triangles: [][3]mgl64.Vec3{triangle},
		Width:     640,
		Height:    360,
	},
	{
		Name:      "portrait",
		Eye:       v3(0, 0, 5),
		FOV:       60,
		Aspect:    0.5,
		Near:      1,
		Far:       10,
		Triangles: [][3]mgl64.Vec3{triangle},
		Width:     256,
		Height:    512,
	},
	{
		Name:      "offset_eye",
		Eye:       v3(1.5, -1, 6),
		FOV:       45,
		Aspect:    1,
		Near:      0.1,
		Far:       50,
		Angle:     35,
		Axis:      v3(0, 1, 0),
		Triangles: cube(1),
		Width:     400,
		Height:    400,
	},
}

var depthScenes = []Scene{
	defaultScene("two_triangles", 0, mgl64.Vec3{},
		triangle,
		[3]mgl64.Vec3{v3(3.5, -1, -5), v3(2.5, 1.5, -5), v3(-1, 0.5, -5)}),
	defaultScene("stacked_triangles", 0, mgl64.Vec3{},
		[3]mgl64.Vec3{v3(1, 0, 0), v3(0, 1, 0), v3(-1, 0, 0)},
		[3]mgl64.Vec3{v3(1, 0, -5), v3(0, 1, -5), v3(-1, 0, -5)},
		[3]mgl64.Vec3{v3(1, 0, -20), v3(0, 1, -20), v3(-1, 0, -20)}),
	defaultScene("partly_behind_camera", 0, mgl64.Vec3{},
		triangle,
		[3]mgl64.Vec3{v3(1, 0, 4), v3(0, 1, 8), v3(-1, 0, 4)}),
}
