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

// Package transform builds the model, view and projection matrices which
// take object-space geometry to clip space, and the viewport mapping from
// normalized device coordinates to pixels.
//
// All builders are pure functions.  They never fail, but degenerate
// parameters produce singular matrices; use [CheckAxis] and [CheckFrustum]
// to validate untrusted input first.
//
// Matrices compose by right-multiplication: applying A and then B to a
// point v is B.Mul4(A).Mul4x1(v).
package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ZAxis is the rotation axis for in-plane rotations.
var ZAxis = mgl64.Vec3{0, 0, 1}

// View returns the matrix which moves the camera at eye to the origin.
// The camera is assumed to look down the negative z-axis, so the
// matrix is a pure translation.
func View(eye mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(-eye[0], -eye[1], -eye[2])
}

// Model returns the rotation by angleDeg degrees about axis, which passes
// through the origin.  The rotation is counter-clockwise when looking
// down the axis towards the origin.
//
// The axis need not be normalized, but it must have non-zero length.
func Model(angleDeg float64, axis mgl64.Vec3) mgl64.Mat4 {
	n := axis.Normalize()
	theta := mgl64.DegToRad(angleDeg)
	c, s := math.Cos(theta), math.Sin(theta)

	// K is the cross product matrix: K*v = n × v
	k := mgl64.Mat3FromRows(
		mgl64.Vec3{0, -n[2], n[1]},
		mgl64.Vec3{n[2], 0, -n[0]},
		mgl64.Vec3{-n[1], n[0], 0},
	)

	// Rodrigues: R = cos θ I + (1 - cos θ) n nᵀ + sin θ K
	r := mgl64.Ident3().Mul(c).
		Add(n.OuterProd3(n).Mul(1 - c)).
		Add(k.Mul(s))
	return r.Mat4()
}

// RotateZ returns the rotation by angleDeg degrees in the xy-plane.
func RotateZ(angleDeg float64) mgl64.Mat4 {
	return Model(angleDeg, ZAxis)
}

// Projection returns the perspective projection for a camera with vertical
// field of view fovDeg (in degrees) and the given aspect ratio (width over
// height).  The arguments near and far are the positive distances of the
// clipping planes along the viewing direction.
//
// The frustum is mapped to the cube [-1, 1]³ after the homogeneous divide,
// with the near plane at z = 1 and the far plane at z = -1.  The w
// component of the result equals the view-space z coordinate, which is
// negative for points in front of the camera.
func Projection(fovDeg, aspect, near, far float64) mgl64.Mat4 {
	// z coordinates of the clipping planes
	n, f := -near, -far

	// squash the frustum into the box [l,r]×[b,t]×[f,n]
	squash := mgl64.Mat4FromRows(
		mgl64.Vec4{n, 0, 0, 0},
		mgl64.Vec4{0, n, 0, 0},
		mgl64.Vec4{0, 0, n + f, -n * f},
		mgl64.Vec4{0, 0, 1, 0},
	)

	// half-extent of the near plane
	h := -n * math.Tan(mgl64.DegToRad(fovDeg)/2)
	w := h * aspect

	center := mgl64.Translate3D(0, 0, -(n+f)/2)
	scale := mgl64.Scale3D(1/w, 1/h, 2/(n-f))

	return scale.Mul4(center).Mul4(squash)
}
