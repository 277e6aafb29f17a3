// Package shader holds the GLSL sources: the shared fullscreen-quad vertex
// shader, the fixed blit fragment shader, and the reloadable fractal
// fragment shader.
package shader

import (
	_ "embed"
	"fmt"
	"os"
)

const VertexSource = `#version 410 core
layout (location = 0) in vec2 in_vert;
out vec2 frag_uv;
void main() {
    frag_uv = in_vert * 0.5 + 0.5;
    gl_Position = vec4(in_vert, 0.0, 1.0);
}
`

const BlitFragmentSource = `#version 410 core
in vec2 frag_uv;
out vec4 fragColor;
uniform sampler2D u_texture;
void main() { fragColor = texture(u_texture, frag_uv); }
`

//go:embed fractal.glsl
var defaultFractalSource string

// FractalSource returns the fractal fragment source. When path is set the
// file is read fresh on every call so edits are picked up by reload;
// otherwise the embedded source is used.
func FractalSource(path string) (string, error) {
	if path == "" {
		return defaultFractalSource, nil
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read fractal shader source: %w", err)
	}
	return string(source), nil
}
