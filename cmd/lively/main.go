//go:build !nogpu

// Command lively renders a wallpaper that follows the pointer: a small red
// triangle on a green field, drawn by the GPU.
//
// Modes:
//
//	run       open a window and follow the pointer (default)
//	frame     render a single frame to a PNG
//	sequence  render an animation of N frames to numbered PNGs
//	check     validate the embedded shader and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/chewxy/math32"

	"github.com/gogpu/lively"
	"github.com/gogpu/lively/config"
	"github.com/gogpu/lively/export"
	"github.com/gogpu/lively/host"
	"github.com/gogpu/lively/internal/gpu"
	"github.com/gogpu/lively/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lively: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		mode        = flag.String("mode", "run", "run, frame, sequence or check")
		configPath  = flag.String("config", "", "YAML config file (a missing file means defaults)")
		width       = flag.Int("width", 0, "override the configured width")
		height      = flag.Int("height", 0, "override the configured height")
		out         = flag.String("out", "", "output path (frame) or %d pattern (sequence)")
		frames      = flag.Int("frames", 120, "frame count for sequence mode")
		scale       = flag.Float64("scale", 1, "resample exported frames by this factor")
		mousePos    = flag.String("mouse", "0,0", "pointer position in NDC as \"x,y\" for frame mode")
		cpu         = flag.Bool("cpu", false, "render offscreen modes with the CPU rasterizer")
		verbose     = flag.Bool("v", false, "enable debug logging")
		showVersion = flag.Bool("version", false, "print the version and exit")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Render a pointer-following wallpaper.\n\n")
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                  # windowed wallpaper\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -mode frame -mouse 0.5,0.5       # one PNG, pointer up-right\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -mode sequence -frames 60 -cpu   # 60 PNGs, no GPU needed\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -mode check                      # validate the shader\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("lively %s\n", lively.Version)
		return nil
	}
	if *verbose {
		lively.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}

	switch *mode {
	case "run":
		return host.Run(cfg)
	case "frame":
		m, err := parseMouse(*mousePos)
		if err != nil {
			return err
		}
		return renderFrame(cfg, *out, m, *cpu, *scale)
	case "sequence":
		return renderSequence(cfg, *out, *frames, *cpu, *scale)
	case "check":
		return checkShader()
	default:
		flag.Usage()
		return fmt.Errorf("unknown mode %q", *mode)
	}
}

// newFrameRenderer picks the offscreen rendering path. The returned release
// function frees GPU resources and is a no-op for the CPU path.
func newFrameRenderer(cfg config.Config, cpuOnly bool) (func(lively.MouseUniform) (*image.RGBA, error), func(), error) {
	if cpuOnly {
		opts := &lively.RasterOptions{ClearColor: cfg.ClearColor()}
		frameFn := func(m lively.MouseUniform) (*image.RGBA, error) {
			return lively.Rasterize(cfg.Width, cfg.Height, m, opts)
		}
		return frameFn, func() {}, nil
	}

	ctx, err := gpu.NewContext()
	if err != nil {
		return nil, nil, fmt.Errorf("acquire GPU device (use -cpu for software rendering): %w", err)
	}
	r, err := render.New(ctx.Device(), ctx.Queue(), render.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		SampleCount: cfg.SampleCount,
		ClearColor:  cfg.ClearColor(),
	})
	if err != nil {
		ctx.Close()
		return nil, nil, err
	}
	release := func() {
		r.Close()
		ctx.Close()
	}
	return r.Frame, release, nil
}

func renderFrame(cfg config.Config, out string, mouse lively.MouseUniform, cpuOnly bool, scale float64) error {
	if out == "" {
		out = "frame.png"
	}
	frameFn, release, err := newFrameRenderer(cfg, cpuOnly)
	if err != nil {
		return err
	}
	defer release()

	img, err := frameFn(mouse)
	if err != nil {
		return err
	}
	scaledImg, err := scaled(img, scale)
	if err != nil {
		return err
	}
	if err := export.WritePNG(scaledImg, out); err != nil {
		return err
	}
	b := scaledImg.Bounds()
	log.Printf("Frame saved to %s (%dx%d)", out, b.Dx(), b.Dy())
	return nil
}

// renderSequence sweeps the pointer around a circle in NDC and writes one
// PNG per frame. Interrupt stops between frames.
func renderSequence(cfg config.Config, pattern string, n int, cpuOnly bool, scale float64) error {
	if pattern == "" {
		pattern = "frame-%04d.png"
	}
	frameFn, release, err := newFrameRenderer(cfg, cpuOnly)
	if err != nil {
		return err
	}
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		cancel()
	}()

	err = export.Sequence(ctx, n, pattern, func(i int) (image.Image, error) {
		angle := 2 * math32.Pi * float32(i) / float32(n)
		img, err := frameFn(lively.MouseUniform{
			X: 0.5 * math32.Cos(angle),
			Y: 0.5 * math32.Sin(angle),
		})
		if err != nil {
			return nil, err
		}
		return scaled(img, scale)
	}, export.SequenceOptions{Progress: true})
	if err != nil {
		return err
	}
	log.Printf("Sequence saved to %s (%d frames)", pattern, n)
	return nil
}

func checkShader() error {
	spirv, err := lively.CompileShader()
	if err != nil {
		return fmt.Errorf("shader validation: %w", err)
	}
	log.Printf("Shader OK: %d bytes of WGSL, %d bytes of SPIR-V, entry points %s/%s",
		len(lively.ShaderSource()), len(spirv), lively.VertexEntryPoint, lively.FragmentEntryPoint)
	return nil
}

// parseMouse parses an NDC "x,y" pair. Values outside [-1, 1] are allowed
// and move the triangle off-screen.
func parseMouse(s string) (lively.MouseUniform, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return lively.MouseUniform{}, fmt.Errorf("invalid -mouse %q: expected \"x,y\"", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return lively.MouseUniform{}, fmt.Errorf("invalid -mouse %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return lively.MouseUniform{}, fmt.Errorf("invalid -mouse %q: %w", s, err)
	}
	return lively.MouseUniform{X: float32(x), Y: float32(y)}, nil
}

func scaled(img *image.RGBA, factor float64) (*image.RGBA, error) {
	if factor == 1 {
		return img, nil
	}
	return export.Scale(img, factor)
}
