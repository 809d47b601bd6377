package lively

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

// Shader entry point names, as declared in shaders/cursor.wgsl. The render
// pipeline routes the vertex stage to VertexEntryPoint and the fragment
// stage to FragmentEntryPoint.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

//go:embed shaders/cursor.wgsl
var cursorShaderSource string

// ErrEmptyShader indicates the embedded WGSL source is missing, which can
// only happen with a corrupted build.
var ErrEmptyShader = errors.New("lively: embedded shader source is empty")

// ShaderSource returns the WGSL source of the cursor-follow shader.
// The returned string is the exact embedded file content; callers hand it
// to the GPU backend or to CompileShader for offline validation.
func ShaderSource() string {
	return cursorShaderSource
}

// CompileShader lowers the embedded WGSL to SPIR-V via naga and returns the
// raw little-endian byte stream. It is used by the CLI check mode and by
// tests; the GPU renderer feeds the WGSL source to the backend directly.
func CompileShader() ([]byte, error) {
	if cursorShaderSource == "" {
		return nil, ErrEmptyShader
	}
	spirv, err := naga.Compile(cursorShaderSource)
	if err != nil {
		return nil, fmt.Errorf("compile cursor shader: %w", err)
	}
	return spirv, nil
}
