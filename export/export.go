// Package export writes rendered frames to disk as PNG files, optionally
// resampled to a different resolution, with a progress bar for sequences.
package export

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/image/draw"
)

// WritePNG writes img to path, creating parent directories as needed.
func WritePNG(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// FrameFunc renders the i-th frame of a sequence.
type FrameFunc func(i int) (image.Image, error)

// SequenceOptions controls Sequence behavior.
type SequenceOptions struct {
	// Progress shows a progress bar on stderr while frames render.
	Progress bool
}

// Sequence renders n frames via frame and writes each as a PNG file named
// by applying the frame index to pattern (e.g. "out/frame-%04d.png").
// Rendering stops at the first error or when ctx is canceled.
func Sequence(ctx context.Context, n int, pattern string, frame FrameFunc, opts SequenceOptions) error {
	if n <= 0 {
		return fmt.Errorf("export: frame count must be positive, got %d", n)
	}
	if !strings.Contains(pattern, "%") {
		return fmt.Errorf("export: pattern %q has no frame index verb", pattern)
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.Default(int64(n), "rendering")
		defer func() {
			_ = bar.Close()
		}()
	}

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		img, err := frame(i)
		if err != nil {
			return fmt.Errorf("render frame %d: %w", i, err)
		}
		if err := WritePNG(img, fmt.Sprintf(pattern, i)); err != nil {
			return fmt.Errorf("write frame %d: %w", i, err)
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return nil
}

// Scale resamples img by factor using Catmull-Rom interpolation. Factors
// above 1 enlarge, below 1 shrink; the result is never smaller than 1x1.
func Scale(img image.Image, factor float64) (*image.RGBA, error) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("export: scale factor must be positive and finite, got %g", factor)
	}

	b := img.Bounds()
	w := int(math.Round(float64(b.Dx()) * factor))
	h := int(math.Round(float64(b.Dy()) * factor))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}
