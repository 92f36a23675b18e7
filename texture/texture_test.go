package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// gradient returns a w×h test image where every pixel has a different
// colour.
func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(10 * x),
				G: uint8(10 * y),
				B: uint8(x*y + 1),
				A: 255,
			})
		}
	}
	return img
}

func checkPixels(t *testing.T, tex *Texture, img image.Image) {
	t.Helper()

	b := img.Bounds()
	if tex.Width() != b.Dx() || tex.Height() != b.Dy() {
		t.Fatalf("size %dx%d, want %dx%d", tex.Width(), tex.Height(), b.Dx(), b.Dy())
	}
	for y := range b.Dy() {
		for x := range b.Dx() {
			want := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			got := tex.At(x, y)
			if got[0] != float64(want.R) || got[1] != float64(want.G) || got[2] != float64(want.B) {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestNew(t *testing.T) {
	img := gradient(7, 5)
	tex, err := New(img)
	if err != nil {
		t.Fatal(err)
	}
	checkPixels(t, tex, img)
}

func TestNewSubImage(t *testing.T) {
	img := gradient(10, 10)
	sub := img.SubImage(image.Rect(3, 2, 8, 9))
	tex, err := New(sub)
	if err != nil {
		t.Fatal(err)
	}
	checkPixels(t, tex, sub)
}

func TestNewGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = uint8(40 * i)
	}
	tex, err := New(img)
	if err != nil {
		t.Fatal(err)
	}
	checkPixels(t, tex, img)
}

func TestNewIgnoresAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 0})
	tex, err := New(img)
	if err != nil {
		t.Fatal(err)
	}
	if got := tex.At(0, 0); got[0] != 200 || got[1] != 100 || got[2] != 50 {
		t.Errorf("got %v", got)
	}
}

func TestNewEmpty(t *testing.T) {
	_, err := New(image.NewRGBA(image.Rectangle{}))
	if !errors.Is(err, ErrEmptyImage) {
		t.Errorf("got %v, want ErrEmptyImage", err)
	}
}

func TestNewOwnsPixels(t *testing.T) {
	img := gradient(2, 2)
	tex, err := New(img)
	if err != nil {
		t.Fatal(err)
	}
	before := tex.At(1, 1)
	img.SetNRGBA(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	if after := tex.At(1, 1); after != before {
		t.Errorf("texture changed with its source: %v -> %v", before, after)
	}
}

func TestAtPanics(t *testing.T) {
	tex, err := New(gradient(2, 3))
	if err != nil {
		t.Fatal(err)
	}
	for _, pos := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d,%d) did not panic", pos[0], pos[1])
				}
			}()
			tex.At(pos[0], pos[1])
		}()
	}
}

func TestDecodeFormats(t *testing.T) {
	img := gradient(6, 4)
	encoders := []struct {
		name   string
		encode func(io.Writer, image.Image) error
	}{
		{"png", png.Encode},
		{"bmp", bmp.Encode},
		{"tiff", func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) }},
	}
	for _, enc := range encoders {
		t.Run(enc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := enc.encode(buf, img); err != nil {
				t.Fatal(err)
			}
			tex, err := Decode(buf)
			if err != nil {
				t.Fatal(err)
			}
			checkPixels(t, tex, img)
		})
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("this is not an image"))
	var lErr *LoadError
	if !errors.As(err, &lErr) {
		t.Fatalf("got %v, want *LoadError", err)
	}
	if lErr.Path != "" {
		t.Errorf("unexpected path %q", lErr.Path)
	}
	if !errors.Is(err, image.ErrFormat) {
		t.Errorf("error does not wrap image.ErrFormat: %v", err)
	}
}

func TestLoad(t *testing.T) {
	img := gradient(3, 8)
	name := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	tex, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	checkPixels(t, tex, img)
}

func TestLoadMissing(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing.png")
	_, err := Load(name)

	var lErr *LoadError
	if !errors.As(err, &lErr) {
		t.Fatalf("got %v, want *LoadError", err)
	}
	if lErr.Path != name {
		t.Errorf("path %q, want %q", lErr.Path, name)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error does not wrap fs.ErrNotExist: %v", err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	name := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(name, []byte("\x89PNG\r\n\x1a\ntruncated"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(name)
	var lErr *LoadError
	if !errors.As(err, &lErr) {
		t.Fatalf("got %v, want *LoadError", err)
	}
	if lErr.Path != name {
		t.Errorf("path %q, want %q", lErr.Path, name)
	}
	if !strings.Contains(err.Error(), name) {
		t.Errorf("message does not mention the file: %q", err.Error())
	}
}
