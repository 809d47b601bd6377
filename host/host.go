//go:build !nogpu

package host

import (
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/lively"
	"github.com/gogpu/lively/config"
	"github.com/gogpu/lively/render"
)

// Run opens a window and renders the wallpaper until the window is closed.
// The renderer is created lazily on the first draw, once the application
// exposes its GPU context provider. Space pauses and resumes rendering.
func Run(cfg config.Config) error {
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height).
		WithContinuousRender(false)) // Event-driven: idle while paused.

	tracker := newTracker(cfg)
	stopInput := startInput(cfg, tracker)

	var (
		r       *render.Renderer
		anim    *gogpu.AnimationToken
		started bool
		paused  bool
	)

	app.OnDraw(func(dc *gogpu.Context) {
		if !started {
			started = true
			lively.Logger().Info("wallpaper started", "backend", dc.Backend())
			anim = app.StartAnimation()
		}

		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}

		if r == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			var err error
			r, err = render.NewFromProvider(provider, render.Options{
				Width:       w,
				Height:      h,
				SampleCount: cfg.SampleCount,
				ClearColor:  cfg.ClearColor(),
			})
			if err != nil {
				lively.Logger().Error("create renderer", "error", err)
				return
			}
		}

		if tw, th := tracker.Bounds(); int(tw) != w || int(th) != h {
			tracker.Resize(w, h)
		}

		px, py := tracker.Position()
		mouse := lively.PixelToNDC(px, py, w, h)

		sw, sh := dc.SurfaceSize()
		if err := r.RenderToView(dc.SurfaceView(), sw, sh, mouse); err != nil {
			lively.Logger().Error("render to surface", "error", err)
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key != gpucontext.KeySpace {
			return
		}
		paused = !paused
		if paused {
			if anim != nil {
				anim.Stop()
				anim = nil
			}
			lively.Logger().Info("paused")
		} else {
			anim = app.StartAnimation()
			lively.Logger().Info("resumed")
		}
	})

	app.OnClose(func() {
		if anim != nil {
			anim.Stop()
			anim = nil
		}
		stopInput()
		if r != nil {
			r.Close()
		}
	})

	return app.Run()
}
