package renderer

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// The offscreen resolution is factor multiples of a fixed 16:9 base.
const (
	renderTextureBaseWidth  = 160
	renderTextureBaseHeight = 90

	// DefaultRenderTextureFactor yields 1920x1080.
	DefaultRenderTextureFactor = 12
)

// RenderTextureConfig controls the offscreen resolution independently of
// the window size.
type RenderTextureConfig struct {
	factor int
}

func NewRenderTextureConfig(factor int) RenderTextureConfig {
	if factor < 1 {
		factor = 1
	}
	return RenderTextureConfig{factor: factor}
}

func (c *RenderTextureConfig) Size() (int, int) {
	return renderTextureBaseWidth * c.factor, renderTextureBaseHeight * c.factor
}

// Update adjusts the factor, floored at 1.
func (c *RenderTextureConfig) Update(delta int) {
	c.factor += delta
	if c.factor < 1 {
		c.factor = 1
	}
}

func (c *RenderTextureConfig) Factor() int {
	return c.factor
}

// RenderTexture is the offscreen target the fractal pass renders into. It
// is recreated whenever the resolution factor changes; the blit pipeline
// only depends on the binding shape, so it survives recreation untouched.
type RenderTexture struct {
	fbo       uint32
	textureID uint32
	width     int
	height    int
}

func NewRenderTexture(width, height int) (*RenderTexture, error) {
	t := &RenderTexture{width: width, height: height}

	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.GenTextures(1, &t.textureID)
	gl.BindTexture(gl.TEXTURE_2D, t.textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	// Linear magnification for upsampling onto the window, nearest
	// minification, clamped at the edges.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.textureID, 0)

	if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		t.Destroy()
		return nil, fmt.Errorf("render texture fbo is not complete")
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return t, nil
}

func (t *RenderTexture) Destroy() {
	gl.DeleteTextures(1, &t.textureID)
	gl.DeleteFramebuffers(1, &t.fbo)
}
