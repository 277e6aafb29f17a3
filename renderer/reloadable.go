package renderer

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/MariusDoe/fractal-ray-marching/shader"
)

// Pipeline is the reloadable fractal render pipeline. Reload is
// all-or-nothing: a failed compile leaves the active program untouched and
// the previous generation keeps rendering.
type Pipeline struct {
	program    uint32
	shaderPath string
}

// NewPipeline compiles the initial fractal program. Unlike reload, the
// initial compile must succeed.
func NewPipeline(shaderPath string) (*Pipeline, error) {
	p := &Pipeline{shaderPath: shaderPath}
	program, err := p.compile()
	if err != nil {
		return nil, fmt.Errorf("failed to create fractal pipeline: %w", err)
	}
	p.program = program
	return p, nil
}

// Reload recompiles the fractal program from its current source. On
// success the active generation is swapped in a single assignment; on
// failure the error carries the compiler diagnostics and nothing changes.
func (p *Pipeline) Reload() error {
	program, err := p.compile()
	if err != nil {
		return fmt.Errorf("failed to reload: %w", err)
	}
	gl.DeleteProgram(p.program)
	p.program = program
	return nil
}

func (p *Pipeline) compile() (uint32, error) {
	source, err := shader.FractalSource(p.shaderPath)
	if err != nil {
		return 0, err
	}
	program, err := newProgram(shader.VertexSource, source)
	if err != nil {
		return 0, err
	}
	blockIndex := gl.GetUniformBlockIndex(program, gl.Str("Parameters\x00"))
	if blockIndex != gl.INVALID_INDEX {
		gl.UniformBlockBinding(program, blockIndex, parametersBinding)
	}
	return program, nil
}

// Program returns the active pipeline generation.
func (p *Pipeline) Program() uint32 {
	return p.program
}

func (p *Pipeline) Destroy() {
	gl.DeleteProgram(p.program)
}
