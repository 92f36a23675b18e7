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

// Package framebuffer holds the colour and depth output of a renderer and
// converts it into displayable images.
//
// Colours are stored as mgl64.Vec3 values with channels in [0, 255], the
// same range the texture package returns.  Conversion to 8-bit images
// always copies into a new buffer with an explicit stride; the colour
// storage is never reinterpreted in place.
package framebuffer

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/draw"
)

// ChannelOrder selects the byte layout produced by [Buffer.Bytes].
type ChannelOrder int

const (
	RGB  ChannelOrder = iota // 3 bytes per pixel: red, green, blue
	BGR                      // 3 bytes per pixel: blue, green, red
	RGBA                     // 4 bytes per pixel, alpha is always 255
)

// BytesPerPixel returns the number of bytes one pixel occupies.
func (o ChannelOrder) BytesPerPixel() int {
	if o == RGBA {
		return 4
	}
	return 3
}

func (o ChannelOrder) String() string {
	switch o {
	case RGB:
		return "RGB"
	case BGR:
		return "BGR"
	case RGBA:
		return "RGBA"
	default:
		return fmt.Sprintf("ChannelOrder(%d)", int(o))
	}
}

// Buffer is a colour buffer with an attached depth buffer.
// Pixel (x, y) is stored at index y*Width + x, with row 0 at the top.
type Buffer struct {
	Width, Height int

	// Pix holds Width*Height colours.
	Pix []mgl64.Vec3

	// Depth holds Width*Height depth values.  Smaller values are closer
	// to the camera.
	Depth []float64
}

// New allocates a buffer of the given size, cleared to black and with all
// depth values at +Inf.
func New(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("framebuffer: invalid size %dx%d", width, height))
	}
	b := &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]mgl64.Vec3, width*height),
		Depth:  make([]float64, width*height),
	}
	b.Clear(mgl64.Vec3{})
	return b
}

// Clear sets every pixel to c and resets the depth buffer.
func (b *Buffer) Clear(c mgl64.Vec3) {
	for i := range b.Pix {
		b.Pix[i] = c
	}
	inf := math.Inf(1)
	for i := range b.Depth {
		b.Depth[i] = inf
	}
}

// Index returns the position of pixel (x, y) in Pix and Depth.
func (b *Buffer) Index(x, y int) int {
	return y*b.Width + x
}

// Set stores the colour of pixel (x, y), ignoring the depth buffer.
func (b *Buffer) Set(x, y int, c mgl64.Vec3) {
	b.Pix[b.Index(x, y)] = c
}

// At returns the colour of pixel (x, y).
func (b *Buffer) At(x, y int) mgl64.Vec3 {
	return b.Pix[b.Index(x, y)]
}

// DepthTest stores c at pixel (x, y) if depth is closer than the value
// currently stored there.  The return value reports whether the pixel was
// written.
func (b *Buffer) DepthTest(x, y int, depth float64, c mgl64.Vec3) bool {
	i := b.Index(x, y)
	if !(depth < b.Depth[i]) {
		return false
	}
	b.Depth[i] = depth
	b.Pix[i] = c
	return true
}

// Bytes converts the colour buffer into 8-bit samples in the given channel
// order.  Each output row starts stride bytes after the previous one;
// stride must be at least Width*order.BytesPerPixel().  Channel values are
// rounded and clamped to [0, 255].
func (b *Buffer) Bytes(order ChannelOrder, stride int) []byte {
	bpp := order.BytesPerPixel()
	if stride < b.Width*bpp {
		panic(fmt.Sprintf("framebuffer: stride %d too small for %d %s pixels",
			stride, b.Width, order))
	}

	out := make([]byte, stride*b.Height)
	for y := range b.Height {
		src := b.Pix[y*b.Width : (y+1)*b.Width]
		row := out[y*stride : y*stride+b.Width*bpp]
		for x, c := range src {
			p := row[x*bpp : (x+1)*bpp]
			switch order {
			case BGR:
				p[0], p[1], p[2] = quantize(c[2]), quantize(c[1]), quantize(c[0])
			case RGBA:
				p[0], p[1], p[2], p[3] = quantize(c[0]), quantize(c[1]), quantize(c[2]), 255
			default:
				p[0], p[1], p[2] = quantize(c[0]), quantize(c[1]), quantize(c[2])
			}
		}
	}
	return out
}

// Image returns a copy of the colour buffer as an opaque image.
func (b *Buffer) Image() *image.NRGBA {
	stride := 4 * b.Width
	return &image.NRGBA{
		Pix:    b.Bytes(RGBA, stride),
		Stride: stride,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// EncodePNG writes the colour buffer to w in PNG format.
func (b *Buffer) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.Image())
}

// ScaleTo draws the colour buffer into the rectangle r of dst, using
// bilinear interpolation.  This is intended for showing a small frame
// enlarged on screen.
func (b *Buffer) ScaleTo(dst draw.Image, r image.Rectangle) {
	src := b.Image()
	draw.BiLinear.Scale(dst, r, src, src.Rect, draw.Src, nil)
}

// quantize rounds a channel value to 8 bits.  NaN maps to 0.
func quantize(x float64) uint8 {
	switch {
	case !(x > 0):
		return 0
	case x >= 255:
		return 255
	}
	return uint8(x + 0.5)
}
