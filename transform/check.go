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
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DegenerateInputError is returned when transform parameters would lead to
// a singular or meaningless matrix.
type DegenerateInputError struct {
	Param  string  // name of the offending parameter
	Value  float64 // its value (the length, for vectors)
	Reason string
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("transform: degenerate %s=%g: %s", e.Param, e.Value, e.Reason)
}

// CheckAxis verifies that axis can be used as a rotation axis for [Model].
func CheckAxis(axis mgl64.Vec3) error {
	l := axis.Len()
	switch {
	case math.IsNaN(l) || math.IsInf(l, 0):
		return &DegenerateInputError{Param: "axis", Value: l, Reason: "not finite"}
	case l == 0:
		return &DegenerateInputError{Param: "axis", Value: l, Reason: "zero length"}
	}
	return nil
}

// CheckFrustum verifies that the arguments describe a proper viewing
// frustum for [Projection].
func CheckFrustum(fovDeg, aspect, near, far float64) error {
	for _, p := range []struct {
		name string
		val  float64
	}{{"fov", fovDeg}, {"aspect", aspect}, {"near", near}, {"far", far}} {
		if math.IsNaN(p.val) || math.IsInf(p.val, 0) {
			return &DegenerateInputError{Param: p.name, Value: p.val, Reason: "not finite"}
		}
	}

	switch {
	case fovDeg <= 0 || fovDeg >= 180:
		return &DegenerateInputError{Param: "fov", Value: fovDeg, Reason: "must be in (0, 180)"}
	case aspect <= 0:
		return &DegenerateInputError{Param: "aspect", Value: aspect, Reason: "must be positive"}
	case near <= 0:
		return &DegenerateInputError{Param: "near", Value: near, Reason: "must be positive"}
	case far <= 0:
		return &DegenerateInputError{Param: "far", Value: far, Reason: "must be positive"}
	case near == far:
		return &DegenerateInputError{Param: "far", Value: far, Reason: "equal to near"}
	}
	return nil
}
