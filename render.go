// Package render3d implements the geometry and texturing stages of a
// minimal software rasterizer.
//
// A [Camera] provides the view and projection matrices, the transform
// package builds model matrices, and the texture package resolves the
// colour of fragments.  Scan conversion is left to the caller: this
// package only projects vertices ([Camera.Project]) and shades individual
// fragments ([Splat]).
package render3d

//go:generate go run ./testcases/export

import (
	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/render3d/framebuffer"
	"seehuhn.de/go/render3d/texture"
	"seehuhn.de/go/render3d/transform"
)

// Default camera parameters.
const (
	defaultFOV    = 45
	defaultAspect = 1
	defaultNear   = 0.1
	defaultFar    = 50
)

// Camera describes a viewer looking down the negative z-axis.
type Camera struct {
	// Eye is the position of the camera in world space.
	Eye mgl64.Vec3

	// FOV is the vertical field of view in degrees.
	// Must be in the range (0, 180).
	FOV float64

	// Aspect is the ratio of the image width to the image height.
	// Must be positive.
	Aspect float64

	// Near and Far are the distances of the clipping planes from the
	// camera.  Both must be positive, and they must differ.
	Near, Far float64
}

// NewCamera returns a camera at (0, 0, 5) with a 45° field of view, a
// square image and clipping planes at distance 0.1 and 50.
func NewCamera() *Camera {
	return &Camera{
		Eye:    mgl64.Vec3{0, 0, 5},
		FOV:    defaultFOV,
		Aspect: defaultAspect,
		Near:   defaultNear,
		Far:    defaultFar,
	}
}

// Check reports a *transform.DegenerateInputError if the camera
// parameters do not describe a proper viewing frustum.
func (c *Camera) Check() error {
	return transform.CheckFrustum(c.FOV, c.Aspect, c.Near, c.Far)
}

// View returns the view matrix of the camera.
func (c *Camera) View() mgl64.Mat4 {
	return transform.View(c.Eye)
}

// Projection returns the projection matrix of the camera.
func (c *Camera) Projection() mgl64.Mat4 {
	return transform.Projection(c.FOV, c.Aspect, c.Near, c.Far)
}

// MVP returns the combined matrix projection · view · model.
func (c *Camera) MVP(model mgl64.Mat4) mgl64.Mat4 {
	return c.Projection().Mul4(c.View()).Mul4(model)
}

// Viewport returns the viewport for an image of the given size, using the
// camera's clipping planes.
func (c *Camera) Viewport(width, height int) transform.Viewport {
	return transform.Viewport{
		Width:  width,
		Height: height,
		Near:   c.Near,
		Far:    c.Far,
	}
}

// Vertex is a point of a mesh in object space, together with its texture
// coordinates.
type Vertex struct {
	Pos mgl64.Vec3
	UV  vec.Vec2
}

// Fragment is a vertex after projection to the screen.
type Fragment struct {
	Pix   vec.Vec2 // pixel coordinates, origin at the top-left
	Depth float64  // distance from the camera plane
	UV    vec.Vec2

	// Visible is false if the vertex lies behind the camera, or outside
	// the near and far clipping planes.
	Visible bool
}

// Project runs the vertex stage: every vertex is transformed by the
// model, view and projection matrices and mapped to the viewport.
func (c *Camera) Project(model mgl64.Mat4, vp transform.Viewport, verts []Vertex) []Fragment {
	mvp := c.MVP(model)
	res := make([]Fragment, len(verts))
	for i, v := range verts {
		pix, depth, ok := vp.Project(mvp, v.Pos)
		res[i] = Fragment{
			Pix:     pix,
			Depth:   depth,
			UV:      v.UV,
			Visible: ok && vp.InDepthRange(depth),
		}
	}
	return res
}

// Splat runs the fragment stage for individual fragments: the colour of
// each visible fragment inside the buffer is sampled from tex and written
// to buf, subject to the depth test.  The return value is the number of
// pixels written.
func Splat(buf *framebuffer.Buffer, frags []Fragment, tex *texture.Texture, filter texture.Filter) int {
	count := 0
	for _, f := range frags {
		if !f.Visible {
			continue
		}
		// compare as floats: converting an out-of-range float to int is
		// implementation-defined
		if !(f.Pix.X >= 0 && f.Pix.X < float64(buf.Width) &&
			f.Pix.Y >= 0 && f.Pix.Y < float64(buf.Height)) {
			continue
		}
		x := int(f.Pix.X)
		y := int(f.Pix.Y)
		if buf.DepthTest(x, y, f.Depth, tex.Sample(f.UV, filter)) {
			count++
		}
	}
	return count
}
