package lively

// TriangleHalfSize is the half-extent of the triangle in NDC units. The
// three corners sit at (-TriangleHalfSize, -TriangleHalfSize),
// (0, +TriangleHalfSize) and (+TriangleHalfSize, -TriangleHalfSize) before
// the mouse translation is applied.
const TriangleHalfSize = 0.05

// VertexCount is the number of vertices drawn per frame. The pipeline has
// no vertex buffer; positions are derived from the vertex index alone.
const VertexCount = 3

// Vec2 is a two-component float32 vector in normalized device coordinates.
type Vec2 struct {
	X, Y float32
}

// Vec4 is a four-component float32 vector holding a clip-space position.
type Vec4 struct {
	X, Y, Z, W float32
}

// Color is a normalized RGBA color with float32 components in [0, 1],
// matching the fragment stage's vec4<f32> output.
type Color struct {
	R, G, B, A float32
}

// VertexPosition mirrors the vs_main entry point of shaders/cursor.wgsl on
// the CPU: for vertex index i it returns
//
//	x = (i - 1) * TriangleHalfSize
//	y = ((i & 1) * 2 - 1) * TriangleHalfSize
//	position = (x + mouse.X, y + mouse.Y, 0, 1)
//
// The pipeline only ever produces indices 0, 1 and 2; the formula is total
// over all indices so it can be exercised directly, but values outside that
// range are not meaningful scene geometry.
//
// VertexPosition is a pure function: identical inputs always yield
// identical outputs.
func VertexPosition(index uint32, mouse MouseUniform) Vec4 {
	x := float32(int32(index)-1) * TriangleHalfSize
	y := float32(int32(index&1)*2-1) * TriangleHalfSize
	return Vec4{X: x + mouse.X, Y: y + mouse.Y, Z: 0, W: 1}
}

// TriangleVertices returns the three clip-space corners of the triangle for
// the given mouse position, in vertex-index order.
func TriangleVertices(mouse MouseUniform) [VertexCount]Vec4 {
	var v [VertexCount]Vec4
	for i := range v {
		v[i] = VertexPosition(uint32(i), mouse)
	}
	return v
}

// FragmentColor mirrors the fs_main entry point: every covered fragment is
// opaque red, independent of position and of the mouse uniform.
func FragmentColor() Color {
	return Color{R: 1, G: 0, B: 0, A: 1}
}
