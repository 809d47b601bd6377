package host

import (
	"context"

	"github.com/gogpu/lively"
	"github.com/gogpu/lively/config"
	"github.com/gogpu/lively/pointer"
)

// newTracker builds the pointer tracker for the configured surface, seeded
// with the configured start position and sensitivity.
func newTracker(cfg config.Config) *pointer.Tracker {
	tr := pointer.NewTracker(cfg.Width, cfg.Height)
	tr.SetSensitivity(cfg.Input.Sensitivity)
	if p := cfg.Input.Start; p != nil {
		tr.Set(p.X, p.Y)
	}
	return tr
}

// startInput opens the configured pointer device and feeds the tracker from
// a goroutine. A device that cannot be found or opened is not fatal: the
// wallpaper keeps rendering and the triangle simply stays put. The returned
// stop function cancels the source and waits for the goroutine to exit.
func startInput(cfg config.Config, tr *pointer.Tracker) (stop func()) {
	src, err := pointer.Open(cfg.Input.Device)
	if err != nil {
		lively.Logger().Warn("pointer input disabled", "device", cfg.Input.Device, "error", err)
		return func() {}
	}
	return startSource(src, tr)
}

// startSource runs the source until the returned stop function is called.
// Stop cancels the source, waits for it to exit, and may be called once.
func startSource(src pointer.Source, tr *pointer.Tracker) (stop func()) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := src.Run(ctx, tr); err != nil {
			lively.Logger().Warn("pointer source stopped", "source", src.String(), "error", err)
		}
	}()
	return func() {
		cancel()
		<-done
	}
}
