package renderer

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/MariusDoe/fractal-ray-marching/glfwcontext"
	"github.com/MariusDoe/fractal-ray-marching/params"
)

// Compositor issues the two-pass frame: the fractal pass into the
// offscreen render texture, then the blit pass upsampling it onto the
// window. It borrows the resources and the active pipeline generation; it
// owns only the render texture.
type Compositor struct {
	context   *glfwcontext.Context
	resources *Resources
	pipeline  *Pipeline
	config    RenderTextureConfig
	target    *RenderTexture
}

func NewCompositor(context *glfwcontext.Context, resources *Resources, pipeline *Pipeline, factor int) (*Compositor, error) {
	config := NewRenderTextureConfig(factor)
	width, height := config.Size()
	target, err := NewRenderTexture(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create render texture: %w", err)
	}
	return &Compositor{
		context:   context,
		resources: resources,
		pipeline:  pipeline,
		config:    config,
		target:    target,
	}, nil
}

// Frame uploads the uniform block, renders the fractal pass and the blit
// pass, and presents.
func (c *Compositor) Frame(p *params.Parameters) error {
	c.resources.UploadParameters(p)
	c.fractalPass()
	if err := c.blitPass(); err != nil {
		return err
	}
	c.context.EndFrame()
	return nil
}

// fractalPass draws the fullscreen quad into the offscreen target with the
// active fractal pipeline, clearing to opaque black.
func (c *Compositor) fractalPass() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, c.target.fbo)
	gl.Viewport(0, 0, int32(c.target.width), int32(c.target.height))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(c.pipeline.Program())
	c.resources.drawQuad()
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// blitPass samples the render texture onto the window framebuffer.
func (c *Compositor) blitPass() error {
	width, height := c.context.GetFramebufferSize()
	if width == 0 || height == 0 {
		return fmt.Errorf("failed to acquire a presentable frame: framebuffer is %dx%d", width, height)
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(c.resources.blitProgram)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, c.target.textureID)
	c.resources.drawQuad()
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// UpdateRenderTextureSize adjusts the resolution factor and recreates the
// offscreen target. The blit program and quad geometry are unaffected.
func (c *Compositor) UpdateRenderTextureSize(delta int) error {
	c.config.Update(delta)
	width, height := c.config.Size()
	target, err := NewRenderTexture(width, height)
	if err != nil {
		return fmt.Errorf("failed to recreate render texture: %w", err)
	}
	c.target.Destroy()
	c.target = target
	return nil
}

func (c *Compositor) RenderTextureSize() (int, int) {
	return c.config.Size()
}

func (c *Compositor) Destroy() {
	c.target.Destroy()
}
