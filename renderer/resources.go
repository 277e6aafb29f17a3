package renderer

import (
	"fmt"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/MariusDoe/fractal-ray-marching/glfwcontext"
	"github.com/MariusDoe/fractal-ray-marching/params"
	"github.com/MariusDoe/fractal-ray-marching/shader"
)

// Ensure gl.Init() is called only once even when several contexts are
// created over the process lifetime.
var glInitOnce sync.Once

// parametersBinding is the uniform buffer binding point shared by every
// fractal pipeline generation.
const parametersBinding = 0

// Resources owns the GL objects that persist for the whole session: the
// fullscreen-quad geometry, the uniform buffer and the fixed blit program.
type Resources struct {
	context       *glfwcontext.Context
	quadVAO       uint32
	quadVBO       uint32
	parametersUBO uint32
	blitProgram   uint32
}

// A quad as a 4-vertex triangle strip, no index buffer.
var quadVertices = []float32{
	-1.0, 1.0,
	-1.0, -1.0,
	1.0, 1.0,
	1.0, -1.0,
}

func NewResources(context *glfwcontext.Context) (*Resources, error) {
	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}

	r := &Resources{context: context}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	gl.GenBuffers(1, &r.parametersUBO)
	gl.BindBuffer(gl.UNIFORM_BUFFER, r.parametersUBO)
	gl.BufferData(gl.UNIFORM_BUFFER, params.Size, nil, gl.DYNAMIC_DRAW)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, parametersBinding, r.parametersUBO)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	var err error
	r.blitProgram, err = newProgram(shader.VertexSource, shader.BlitFragmentSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create blit program: %w", err)
	}
	gl.UseProgram(r.blitProgram)
	textureLoc := gl.GetUniformLocation(r.blitProgram, gl.Str("u_texture\x00"))
	gl.Uniform1i(textureLoc, 0)
	gl.UseProgram(0)

	return r, nil
}

// Resize reconfigures the presentation surface after a window size change
// and recomputes the aspect-correction scale.
func (r *Resources) Resize(p *params.Parameters) {
	width, height := r.context.GetFramebufferSize()
	p.UpdateAspect(width, height)
}

// UploadParameters re-uploads the full uniform block. No partial updates.
func (r *Resources) UploadParameters(p *params.Parameters) {
	gl.BindBuffer(gl.UNIFORM_BUFFER, r.parametersUBO)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, params.Size, p.Ptr())
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

func (r *Resources) drawQuad() {
	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

func (r *Resources) Destroy() {
	gl.DeleteProgram(r.blitProgram)
	gl.DeleteBuffers(1, &r.parametersUBO)
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteVertexArrays(1, &r.quadVAO)
}
