package pointer

import (
	"sync"
	"testing"
)

func TestNewTrackerStartsAtCenter(t *testing.T) {
	tr := NewTracker(800, 600)
	x, y := tr.Position()
	if x != 400 || y != 300 {
		t.Errorf("initial position = (%v, %v), want (400, 300)", x, y)
	}
}

func TestTrackerMoveAccumulates(t *testing.T) {
	tr := NewTracker(800, 600)
	tr.Move(10, -20)
	tr.Move(-4, 6)

	x, y := tr.Position()
	if x != 406 || y != 286 {
		t.Errorf("position = (%v, %v), want (406, 286)", x, y)
	}
}

func TestTrackerClampsToBounds(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		wantX  float64
		wantY  float64
	}{
		{"far left and up", -10000, -10000, 0, 0},
		{"far right and down", 10000, 10000, 800, 600},
		{"only x overflows", 10000, 5, 800, 305},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(800, 600)
			tr.Move(tt.dx, tt.dy)
			x, y := tr.Position()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("position = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestTrackerSensitivityScalesMotion(t *testing.T) {
	tr := NewTracker(800, 600)
	tr.SetSensitivity(0.5)
	tr.Move(10, 10)

	x, y := tr.Position()
	if x != 405 || y != 305 {
		t.Errorf("position = (%v, %v), want (405, 305)", x, y)
	}

	// Non-positive values are ignored.
	tr.SetSensitivity(0)
	tr.SetSensitivity(-2)
	tr.Move(10, 10)
	x, y = tr.Position()
	if x != 410 || y != 310 {
		t.Errorf("position after ignored sensitivity = (%v, %v), want (410, 310)", x, y)
	}
}

func TestTrackerSetAbsolute(t *testing.T) {
	tr := NewTracker(800, 600)
	tr.SetSensitivity(0.25)

	tr.Set(100, 50)
	x, y := tr.Position()
	if x != 100 || y != 50 {
		t.Errorf("position = (%v, %v), want (100, 50)", x, y)
	}

	tr.Set(-5, 1000)
	x, y = tr.Position()
	if x != 0 || y != 600 {
		t.Errorf("clamped position = (%v, %v), want (0, 600)", x, y)
	}
}

func TestTrackerResizeRescalesPosition(t *testing.T) {
	tr := NewTracker(800, 600)
	tr.Set(200, 300) // quarter across, half down

	tr.Resize(1600, 300)
	x, y := tr.Position()
	if x != 400 || y != 150 {
		t.Errorf("position after resize = (%v, %v), want (400, 150)", x, y)
	}

	if w, h := tr.Bounds(); w != 1600 || h != 300 {
		t.Errorf("bounds = (%v, %v), want (1600, 300)", w, h)
	}
}

func TestTrackerConcurrentAccess(t *testing.T) {
	tr := NewTracker(1000, 1000)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range 100 {
				tr.Move(1, -1)
			}
		}()
		go func() {
			defer wg.Done()
			for range 100 {
				x, y := tr.Position()
				if x < 0 || x > 1000 || y < 0 || y > 1000 {
					t.Errorf("position (%v, %v) escaped bounds", x, y)
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkTrackerMove(b *testing.B) {
	tr := NewTracker(1920, 1080)
	b.ReportAllocs()
	for b.Loop() {
		tr.Move(1, 1)
	}
}
