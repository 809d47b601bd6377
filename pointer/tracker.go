// Package pointer tracks the pointer position that drives the wallpaper
// scene. A Tracker owns the position in pixel space; input sources feed it
// relative motion from a goroutine while the render loop reads it once per
// frame.
package pointer

import "sync"

// Tracker accumulates pointer motion in pixel space, clamped to the surface
// bounds. It is safe for concurrent use: sources write deltas while the
// render loop reads the position.
type Tracker struct {
	mu          sync.Mutex
	x, y        float64
	width       float64
	height      float64
	sensitivity float64
}

// NewTracker creates a tracker for a surface of the given size. The
// position starts at the surface center and the sensitivity at 1.
func NewTracker(width, height int) *Tracker {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	w, h := float64(width), float64(height)
	return &Tracker{
		x:           w / 2,
		y:           h / 2,
		width:       w,
		height:      h,
		sensitivity: 1,
	}
}

// Move applies a relative motion of (dx, dy) device units, scaled by the
// sensitivity and clamped to the surface bounds.
func (t *Tracker) Move(dx, dy float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.x = clamp(t.x+dx*t.sensitivity, 0, t.width)
	t.y = clamp(t.y+dy*t.sensitivity, 0, t.height)
}

// Set places the pointer at an absolute pixel position, clamped to the
// surface bounds. Sensitivity does not apply to absolute placement.
func (t *Tracker) Set(x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.x = clamp(x, 0, t.width)
	t.y = clamp(y, 0, t.height)
}

// Position returns the current pointer position in pixel space.
func (t *Tracker) Position() (x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.x, t.y
}

// Resize updates the surface bounds and rescales the current position
// proportionally, so the pointer keeps its relative place on the surface.
func (t *Tracker) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	w, h := float64(width), float64(height)
	t.x = t.x / t.width * w
	t.y = t.y / t.height * h
	t.width = w
	t.height = h
}

// Bounds returns the surface size the tracker clamps to.
func (t *Tracker) Bounds() (width, height float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

// SetSensitivity sets the scale applied to relative motion. Values at or
// below zero are ignored.
func (t *Tracker) SetSensitivity(s float64) {
	if s <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sensitivity = s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
