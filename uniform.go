package lively

import (
	"encoding/binary"
	"math"
)

// UniformSize is the byte size of the mouse uniform buffer:
// vec2<f32> pos plus 8 bytes of padding, satisfying the 16-byte uniform
// alignment that WebGPU-style backends require.
const UniformSize = 16

// MouseUniform is the per-frame pointer position in normalized device
// coordinates, written by the host into the uniform buffer at group 0,
// binding 0. This matches the MouseUniform struct in shaders/cursor.wgsl:
//
//	struct MouseUniform { pos: vec2<f32> }
//
// Components are expected to be finite. The shader applies no range
// clamping; positions outside [-1, 1] simply move the triangle off-screen.
type MouseUniform struct {
	X float32
	Y float32
}

// Bytes encodes the uniform into a freshly allocated UniformSize-byte
// slice: little-endian IEEE 754, X at offset 0, Y at offset 4, the
// trailing 8 bytes zero.
func (u MouseUniform) Bytes() []byte {
	buf := make([]byte, UniformSize)
	u.PutBytes(buf)
	return buf
}

// PutBytes encodes the uniform into dst, which must be at least
// UniformSize bytes long. The padding bytes are rewritten to zero so a
// reused staging slice never leaks stale data into the GPU buffer.
func (u MouseUniform) PutBytes(dst []byte) {
	_ = dst[UniformSize-1]
	binary.LittleEndian.PutUint32(dst[0:4], math.Float32bits(u.X))
	binary.LittleEndian.PutUint32(dst[4:8], math.Float32bits(u.Y))
	for i := 8; i < UniformSize; i++ {
		dst[i] = 0
	}
}

// MouseUniformFromBytes decodes a uniform previously encoded with Bytes or
// PutBytes. Only the first 8 bytes are read.
func MouseUniformFromBytes(b []byte) MouseUniform {
	return MouseUniform{
		X: math.Float32frombits(binary.LittleEndian.Uint32(b[0:4])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(b[4:8])),
	}
}

// Add returns the uniform translated by (dx, dy). Handy for animating the
// pointer position without round-tripping through pixel space.
func (u MouseUniform) Add(dx, dy float32) MouseUniform {
	return MouseUniform{X: u.X + dx, Y: u.Y + dy}
}
