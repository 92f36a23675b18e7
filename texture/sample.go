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

package texture

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/geom/vec"
)

// WrapMode determines how texture coordinates outside [0,1] are mapped
// onto the pixel grid.
type WrapMode int

const (
	// ClampToEdge repeats the outermost row or column of pixels.
	ClampToEdge WrapMode = iota

	// Repeat tiles the image, so that only the fractional part of
	// a coordinate matters.
	Repeat
)

func (m WrapMode) String() string {
	switch m {
	case ClampToEdge:
		return "clamp"
	case Repeat:
		return "repeat"
	default:
		return fmt.Sprintf("WrapMode(%d)", int(m))
	}
}

// Filter selects the reconstruction filter used by [Texture.Sample].
type Filter int

const (
	Nearest Filter = iota
	Bilinear
)

func (f Filter) String() string {
	switch f {
	case Nearest:
		return "nearest"
	case Bilinear:
		return "bilinear"
	default:
		return fmt.Sprintf("Filter(%d)", int(f))
	}
}

// SampleRangeError reports texture coordinates outside the unit square.
type SampleRangeError struct {
	U, V float64
}

func (e *SampleRangeError) Error() string {
	return fmt.Sprintf("texture: coordinates (%g, %g) outside [0,1]²", e.U, e.V)
}

// CheckUV returns a *SampleRangeError if (u, v) lies outside [0,1]² or
// has a NaN component.  The sampling methods never fail; CheckUV is for
// callers which prefer to reject such coordinates.
func CheckUV(u, v float64) error {
	if !(u >= 0 && u <= 1 && v >= 0 && v <= 1) {
		return &SampleRangeError{U: u, V: v}
	}
	return nil
}

// Sample returns the colour at texture coordinates uv, using the given
// filter.
func (t *Texture) Sample(uv vec.Vec2, f Filter) mgl64.Vec3 {
	if f == Bilinear {
		return t.Bilinear(uv.X, uv.Y)
	}
	return t.Nearest(uv.X, uv.Y)
}

// Nearest returns the colour of the pixel containing the point (u, v).
func (t *Texture) Nearest(u, v float64) mgl64.Vec3 {
	col := t.pick(u*float64(t.width), t.width)
	row := t.pick((1-v)*float64(t.height), t.height)
	return t.at(col, row)
}

// Bilinear interpolates between the four pixel centres surrounding the
// point (u, v).  Interpolation is done horizontally first, then vertically.
// Pixel centres lie at u·W = i+½ and (1−v)·H = j+½, so the corners are
// ⌊u·W−½⌋ and the pixel after it, not ⌊u·W⌋ and ⌈u·W⌉.
// At a pixel centre the result equals the pixel colour.
func (t *Texture) Bilinear(u, v float64) mgl64.Vec3 {
	// Pixel centres sit at half-integer positions.
	col0, col1, ratioU := t.split(u*float64(t.width)-0.5, t.width)
	row0, row1, ratioV := t.split((1-v)*float64(t.height)-0.5, t.height)

	up := lerp(t.at(col0, row0), t.at(col1, row0), ratioU)
	down := lerp(t.at(col0, row1), t.at(col1, row1), ratioU)
	return lerp(up, down, ratioV)
}

func lerp(a, b mgl64.Vec3, s float64) mgl64.Vec3 {
	return a.Mul(1 - s).Add(b.Mul(s))
}

// pick maps a continuous pixel coordinate to the index of the pixel
// containing it.
func (t *Texture) pick(x float64, n int) int {
	size := float64(n)
	if t.wrap == Repeat {
		x = math.Mod(x, size)
		if x < 0 {
			x += size
		}
	}

	switch {
	case math.IsNaN(x) || x < 0:
		return 0
	case x >= size:
		if t.wrap == Repeat {
			// x was a tiny negative number, rounded up by the addition
			return 0
		}
		return n - 1
	}
	return int(x)
}

// split finds the two pixel indices on either side of the continuous
// position x, measured in pixel centres, together with the weight of the
// second one.  The weight is zero when x falls onto a pixel centre.
func (t *Texture) split(x float64, n int) (i0, i1 int, frac float64) {
	size := float64(n)
	if t.wrap == Repeat {
		x = math.Mod(x, size)
		if x < 0 {
			x += size
		}
	} else {
		x = max(0, min(x, size-1))
	}
	if math.IsNaN(x) {
		return 0, 0, 0
	}

	x0 := math.Floor(x)
	frac = x - x0
	i0 = int(x0)
	if i0 >= n {
		i0 -= n
	}
	i1 = i0 + 1
	if i1 >= n {
		if t.wrap == Repeat {
			i1 = 0
		} else {
			i1 = n - 1
		}
	}
	return i0, i1, frac
}

// at returns the colour of a pixel known to be inside the image.
func (t *Texture) at(col, row int) mgl64.Vec3 {
	i := 3 * (row*t.width + col)
	p := t.pix[i : i+3 : i+3]
	return mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
}
