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

// Package texture resolves fragment colours by sampling a 2D image at
// normalized texture coordinates.
//
// Texture coordinates (u, v) cover the image with [0,1]².  The point
// v = 0 lies at the bottom edge of the image and v = 1 at the top edge, so
// v runs opposite to the pixel row order.  Coordinates outside the unit
// square are resolved according to the texture's [WrapMode].
//
// Colours are returned as mgl64.Vec3 values holding the red, green and
// blue channels in the range [0, 255].
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	// decoders available to Load and Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture is an immutable RGB image which can be sampled at fractional
// coordinates.  A Texture is safe for concurrent use.
//
// Coordinates outside [0,1] are clamped to the edge, unless a different
// mode is selected with [Texture.WithWrap].
type Texture struct {
	wrap   WrapMode
	width  int
	height int
	pix    []uint8 // packed RGB, 3*width bytes per row, row 0 at the top
}

// ErrEmptyImage is returned when an image has no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// LoadError reports a texture image which could not be read or decoded.
type LoadError struct {
	Path string // file name, or empty if the image came from a stream
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return "texture: cannot load image: " + e.Err.Error()
	}
	return fmt.Sprintf("texture: cannot load %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads and decodes the image file with the given name.
// All failures are reported as *LoadError.
func Load(path string) (tex *Texture, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			tex, err = nil, &LoadError{Path: path, Err: cerr}
		}
	}()

	tex, err = Decode(f)
	if lErr, ok := err.(*LoadError); ok {
		lErr.Path = path
	}
	return tex, err
}

// Decode reads an image in any registered format from r.
// Besides PNG, JPEG and GIF, the BMP, TIFF and WebP formats are supported.
// All failures are reported as *LoadError.
func Decode(r io.Reader) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	tex, err := New(img)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return tex, nil
}

// New copies img into a new texture.  Alpha information is discarded.
func New(img image.Image) (*Texture, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyImage
	}

	t := &Texture{
		width:  w,
		height: h,
		pix:    make([]uint8, 3*w*h),
	}

	switch src := img.(type) {
	case *image.NRGBA:
		for y := range h {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			out := t.pix[3*w*y:]
			for x := range w {
				copy(out[3*x:3*x+3], row[4*x:4*x+3])
			}
		}
	default:
		for y := range h {
			out := t.pix[3*w*y:]
			for x := range w {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				out[3*x] = c.R
				out[3*x+1] = c.G
				out[3*x+2] = c.B
			}
		}
	}
	return t, nil
}

// Width returns the width of the texture in pixels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the height of the texture in pixels.
func (t *Texture) Height() int {
	return t.height
}

// Wrap returns the mode used for coordinates outside [0,1].
func (t *Texture) Wrap() WrapMode {
	return t.wrap
}

// WithWrap returns a texture which shares the pixel data of t but uses the
// given wrap mode.  The receiver is not modified.
func (t *Texture) WithWrap(mode WrapMode) *Texture {
	res := *t
	res.wrap = mode
	return &res
}

// At returns the colour of the pixel in the given column and row.
// Row 0 is the top row of the image.  At panics if the position is
// outside the image.
func (t *Texture) At(col, row int) mgl64.Vec3 {
	if col < 0 || col >= t.width || row < 0 || row >= t.height {
		panic(fmt.Sprintf("texture: pixel (%d,%d) out of range %dx%d",
			col, row, t.width, t.height))
	}
	return t.at(col, row)
}
