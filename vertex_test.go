package lively

import (
	"testing"
)

func testAbs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestVertexPositionBaseCorners(t *testing.T) {
	// With the mouse at the origin the three corners are exact: the formula
	// multiplies the half-size by -1, 0 and +1 and adds zero.
	tests := []struct {
		index uint32
		want  Vec4
	}{
		{0, Vec4{X: -0.05, Y: -0.05, Z: 0, W: 1}},
		{1, Vec4{X: 0, Y: 0.05, Z: 0, W: 1}},
		{2, Vec4{X: 0.05, Y: -0.05, Z: 0, W: 1}},
	}

	for _, tt := range tests {
		got := VertexPosition(tt.index, MouseUniform{})
		if got != tt.want {
			t.Errorf("VertexPosition(%d, origin) = %+v, want %+v", tt.index, got, tt.want)
		}
	}
}

func TestVertexPositionFollowsMouse(t *testing.T) {
	tests := []struct {
		name  string
		mouse MouseUniform
	}{
		{"origin", MouseUniform{0, 0}},
		{"center-right", MouseUniform{0.5, 0}},
		{"upper-left", MouseUniform{-0.75, 0.75}},
		{"bottom edge", MouseUniform{0, -1}},
		{"outside ndc", MouseUniform{1.5, -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := uint32(0); i < VertexCount; i++ {
				base := VertexPosition(i, MouseUniform{})
				got := VertexPosition(i, tt.mouse)
				want := Vec4{X: base.X + tt.mouse.X, Y: base.Y + tt.mouse.Y, Z: 0, W: 1}
				if got != want {
					t.Errorf("VertexPosition(%d, %+v) = %+v, want %+v", i, tt.mouse, got, want)
				}
			}
		})
	}
}

func TestVertexPositionIdempotent(t *testing.T) {
	// The vertex stage is a pure function of (index, mouse): repeated
	// evaluation must give bit-identical results.
	mice := []MouseUniform{{0, 0}, {0.3, -0.7}, {-1, 1}, {2.5, 0.125}}
	for _, m := range mice {
		for i := uint32(0); i < VertexCount; i++ {
			first := VertexPosition(i, m)
			for rep := 0; rep < 3; rep++ {
				if got := VertexPosition(i, m); got != first {
					t.Fatalf("VertexPosition(%d, %+v) changed between calls: %+v then %+v", i, m, first, got)
				}
			}
		}
	}
}

func TestVertexTranslationProperty(t *testing.T) {
	// Moving the mouse by (dx, dy) moves every vertex by exactly (dx, dy)
	// in real arithmetic; in float32 the two evaluation orders may differ by
	// one rounding step each, so x/y compare within a small epsilon while
	// z and w stay exactly 0 and 1.
	const eps = 1e-6

	tests := []struct {
		name   string
		mouse  MouseUniform
		dx, dy float32
	}{
		{"small step", MouseUniform{0, 0}, 0.01, 0.01},
		{"quarter screen", MouseUniform{0.5, -0.5}, 0.25, 0.125},
		{"negative delta", MouseUniform{-0.3, 0.8}, -0.6, -0.9},
		{"cross origin", MouseUniform{-1, -1}, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shifted := tt.mouse.Add(tt.dx, tt.dy)
			for i := uint32(0); i < VertexCount; i++ {
				before := VertexPosition(i, tt.mouse)
				after := VertexPosition(i, shifted)

				if d := testAbs32(after.X - (before.X + tt.dx)); d > eps {
					t.Errorf("vertex %d: x moved by %v, want %v (diff %v)", i, after.X-before.X, tt.dx, d)
				}
				if d := testAbs32(after.Y - (before.Y + tt.dy)); d > eps {
					t.Errorf("vertex %d: y moved by %v, want %v (diff %v)", i, after.Y-before.Y, tt.dy, d)
				}
				if after.Z != 0 || after.W != 1 {
					t.Errorf("vertex %d: z/w = %v/%v, want 0/1", i, after.Z, after.W)
				}
			}
		})
	}
}

func TestVertexPositionTotalOverIndex(t *testing.T) {
	// Indices beyond the triangle are never drawn but the formula stays
	// total: (i-1)*h for x, ((i&1)*2-1)*h for y.
	got := VertexPosition(3, MouseUniform{})
	want := Vec4{X: 2 * TriangleHalfSize, Y: TriangleHalfSize, Z: 0, W: 1}
	if got != want {
		t.Errorf("VertexPosition(3, origin) = %+v, want %+v", got, want)
	}
}

func TestTriangleVertices(t *testing.T) {
	mouse := MouseUniform{X: 0.25, Y: -0.5}
	vs := TriangleVertices(mouse)

	for i := range vs {
		want := VertexPosition(uint32(i), mouse)
		if vs[i] != want {
			t.Errorf("TriangleVertices()[%d] = %+v, want %+v", i, vs[i], want)
		}
	}

	// Shape invariants: the apex is horizontally centered above the base,
	// the base is level, and extents are twice the half-size.
	if vs[0].Y != vs[2].Y {
		t.Errorf("base corners not level: %v vs %v", vs[0].Y, vs[2].Y)
	}
	if mid := (vs[0].X + vs[2].X) / 2; testAbs32(vs[1].X-mid) > 1e-6 {
		t.Errorf("apex x = %v, want centered at %v", vs[1].X, mid)
	}
	if vs[1].Y <= vs[0].Y {
		t.Errorf("apex y = %v not above base y = %v", vs[1].Y, vs[0].Y)
	}
}

func TestFragmentColorConstant(t *testing.T) {
	want := Color{R: 1, G: 0, B: 0, A: 1}
	// Constant and pure: every call yields exactly opaque red.
	for i := 0; i < 4; i++ {
		if got := FragmentColor(); got != want {
			t.Fatalf("FragmentColor() = %+v, want %+v", got, want)
		}
	}
}

func BenchmarkVertexPosition(b *testing.B) {
	m := MouseUniform{X: 0.3, Y: -0.3}
	b.ReportAllocs()
	for b.Loop() {
		_ = VertexPosition(1, m)
	}
}

func BenchmarkTriangleVertices(b *testing.B) {
	m := MouseUniform{X: 0.3, Y: -0.3}
	b.ReportAllocs()
	for b.Loop() {
		_ = TriangleVertices(m)
	}
}
