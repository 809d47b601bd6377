package lively

import (
	"errors"
	"fmt"
	"image"

	"github.com/chewxy/math32"
)

// DefaultClearColor is the background the scene clears to before the
// triangle is drawn: opaque green, matching the GPU renderer's default.
var DefaultClearColor = Color{R: 0, G: 1, B: 0, A: 1}

// ErrInvalidSize indicates a rasterization target with a non-positive
// width or height.
var ErrInvalidSize = errors.New("lively: width and height must be positive")

// RasterOptions configure the CPU rasterizer. A nil *RasterOptions selects
// the defaults.
type RasterOptions struct {
	// ClearColor fills every pixel the triangle does not cover.
	ClearColor Color
}

// Rasterize evaluates the scene on the CPU and returns the resulting image:
// every pixel cleared to the clear color, then pixels whose centers fall
// inside the mouse-translated triangle set to the fragment color. It mirrors
// what the GPU pipeline produces (modulo MSAA edge smoothing), which makes
// the full visual contract testable without a device, and doubles as the
// renderer for GPU-less frame export.
func Rasterize(width, height int, mouse MouseUniform, opts *RasterOptions) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	clear := DefaultClearColor
	if opts != nil {
		clear = opts.ClearColor
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRGBA(img, clear)

	// Project the triangle into pixel space.
	var px [VertexCount]Vec2
	for i, v := range TriangleVertices(mouse) {
		x, y := NDCToPixel(MouseUniform{X: v.X, Y: v.Y}, width, height)
		px[i] = Vec2{X: x, Y: y}
	}

	// Bounding box clipped to the image, in whole pixels.
	minX := int(math32.Floor(math32.Min(px[0].X, math32.Min(px[1].X, px[2].X))))
	maxX := int(math32.Ceil(math32.Max(px[0].X, math32.Max(px[1].X, px[2].X))))
	minY := int(math32.Floor(math32.Min(px[0].Y, math32.Min(px[1].Y, px[2].Y))))
	maxY := int(math32.Ceil(math32.Max(px[0].Y, math32.Max(px[1].Y, px[2].Y))))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > width {
		maxX = width
	}
	if maxY > height {
		maxY = height
	}

	frag := FragmentColor()
	r, g, b, a := colorToBytes(frag)

	for y := minY; y < maxY; y++ {
		cy := float32(y) + 0.5
		for x := minX; x < maxX; x++ {
			cx := float32(x) + 0.5
			if pointInTriangle(cx, cy, px) {
				off := img.PixOffset(x, y)
				img.Pix[off+0] = r
				img.Pix[off+1] = g
				img.Pix[off+2] = b
				img.Pix[off+3] = a
			}
		}
	}

	return img, nil
}

// fillRGBA floods the image with a single color by writing the first row
// and copying it down.
func fillRGBA(img *image.RGBA, c Color) {
	r, g, b, a := colorToBytes(c)
	w := img.Rect.Dx()
	for x := 0; x < w; x++ {
		off := x * 4
		img.Pix[off+0] = r
		img.Pix[off+1] = g
		img.Pix[off+2] = b
		img.Pix[off+3] = a
	}
	rowLen := w * 4
	for y := 1; y < img.Rect.Dy(); y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+rowLen], img.Pix[:rowLen])
	}
}

// colorToBytes converts a normalized color to 8-bit channels, clamping to
// [0, 1] first so out-of-range fragment values cannot wrap.
func colorToBytes(c Color) (r, g, b, a uint8) {
	conv := func(v float32) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(math32.Round(v * 255))
	}
	return conv(c.R), conv(c.G), conv(c.B), conv(c.A)
}

// edgeFn is the signed area of the triangle (a, b, p): positive when p is
// to the left of the directed edge a→b.
func edgeFn(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// pointInTriangle reports whether (x, y) lies inside the triangle. Both
// windings are accepted because the NDC→pixel flip reverses orientation.
func pointInTriangle(x, y float32, v [VertexCount]Vec2) bool {
	e0 := edgeFn(v[0].X, v[0].Y, v[1].X, v[1].Y, x, y)
	e1 := edgeFn(v[1].X, v[1].Y, v[2].X, v[2].Y, x, y)
	e2 := edgeFn(v[2].X, v[2].Y, v[0].X, v[0].Y, x, y)
	if e0 >= 0 && e1 >= 0 && e2 >= 0 {
		return true
	}
	return e0 <= 0 && e1 <= 0 && e2 <= 0
}
