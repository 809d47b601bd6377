package lively

// PixelToNDC maps a pixel-space point (origin top-left, y growing downward)
// onto normalized device coordinates (origin center, y growing upward) for
// a surface of the given size. The pointer tracker reports pixel space; the
// mouse uniform wants NDC, so the host converts with this each frame.
func PixelToNDC(px, py float64, width, height int) MouseUniform {
	return MouseUniform{
		X: float32(px/float64(width)*2 - 1),
		Y: float32(1 - py/float64(height)*2),
	}
}

// NDCToPixel is the inverse of PixelToNDC: it maps an NDC position to
// pixel space on a surface of the given size.
func NDCToPixel(m MouseUniform, width, height int) (x, y float32) {
	x = (m.X + 1) / 2 * float32(width)
	y = (1 - m.Y) / 2 * float32(height)
	return x, y
}
