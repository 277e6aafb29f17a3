// Package app wires the camera, timing, input and renderer into the
// per-frame session and routes window events to them.
package app

import (
	"fmt"
	"log"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/MariusDoe/fractal-ray-marching/camera"
	"github.com/MariusDoe/fractal-ray-marching/glfwcontext"
	"github.com/MariusDoe/fractal-ray-marching/input"
	"github.com/MariusDoe/fractal-ray-marching/options"
	"github.com/MariusDoe/fractal-ray-marching/params"
	"github.com/MariusDoe/fractal-ray-marching/renderer"
	"github.com/MariusDoe/fractal-ray-marching/timing"
)

// scrollLineFactor scales the per-line scroll offsets GLFW reports.
const scrollLineFactor = 0.5

// Session owns all mutable per-frame state. There is exactly one thread
// of control, so none of it is synchronized.
type Session struct {
	context    *glfwcontext.Context
	resources  *renderer.Resources
	pipeline   *renderer.Pipeline
	compositor *renderer.Compositor

	heldKeys   input.HeldKeys
	camera     *camera.Camera
	timing     *timing.Timing
	parameters *params.Parameters

	lastCursorX    float64
	lastCursorY    float64
	haveLastCursor bool
}

func NewSession(context *glfwcontext.Context, opts *options.ViewerOptions) (*Session, error) {
	resources, err := renderer.NewResources(context)
	if err != nil {
		return nil, fmt.Errorf("failed to create render resources: %w", err)
	}
	pipeline, err := renderer.NewPipeline(*opts.ShaderPath)
	if err != nil {
		return nil, err
	}
	compositor, err := renderer.NewCompositor(context, resources, pipeline, *opts.ScaleFactor)
	if err != nil {
		return nil, err
	}

	s := &Session{
		context:    context,
		resources:  resources,
		pipeline:   pipeline,
		compositor: compositor,
		camera:     camera.New(),
		timing:     timing.New(),
		parameters: params.New(),
	}
	resources.Resize(s.parameters)
	return s, nil
}

// Draw runs one frame: timing, camera integration, uniform fill, then the
// two-pass render.
func (s *Session) Draw() error {
	delta := s.timing.Tick()
	s.camera.Update(&s.heldKeys, delta)
	s.parameters.SetTime(s.timing.Time())
	s.parameters.UpdateCamera(s.camera.Matrix())
	return s.compositor.Frame(s.parameters)
}

func (s *Session) tryReload() {
	if err := s.pipeline.Reload(); err != nil {
		log.Printf("%v", err)
	}
}

func (s *Session) updateRenderTextureSize(delta int) {
	if err := s.compositor.UpdateRenderTextureSize(delta); err != nil {
		log.Fatalf("%v", err)
	}
	width, height := s.compositor.RenderTextureSize()
	log.Printf("render texture is now %dx%d", width, height)
}

// heldKeyBindings maps held keys to navigation actions, evaluated in
// order, first match wins.
var heldKeyBindings = []struct {
	key    glfw.Key
	action input.Action
}{
	{glfw.KeyW, input.MoveForward},
	{glfw.KeyS, input.MoveBackward},
	{glfw.KeyA, input.MoveLeft},
	{glfw.KeyD, input.MoveRight},
	{glfw.KeyQ, input.MoveDown},
	{glfw.KeyE, input.MoveUp},
	{glfw.KeyDown, input.PitchDown},
	{glfw.KeyUp, input.PitchUp},
	{glfw.KeyRight, input.YawRight},
	{glfw.KeyLeft, input.YawLeft},
	{glfw.KeyLeftShift, input.Shift},
	{glfw.KeyRightShift, input.Shift},
	{glfw.KeyLeftControl, input.Control},
	{glfw.KeyRightControl, input.Control},
}

func (s *Session) handleKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		s.context.UngrabCursor()
		return
	}
	if action == glfw.Repeat {
		return
	}
	for _, binding := range heldKeyBindings {
		if binding.key == key {
			s.heldKeys.Set(binding.action, action == glfw.Press)
			return
		}
	}
}

// oneShotBindings maps typed characters to discrete actions, evaluated in
// order, first match wins. Character input keeps the bindings on logical
// keys, so shifted characters like 'L', '+' and '>' arrive as themselves.
var oneShotBindings = []struct {
	char   rune
	action func(*Session)
}{
	{'r', (*Session).tryReload},
	{'+', func(s *Session) { s.parameters.UpdateNumIterations(1) }},
	{'-', func(s *Session) { s.parameters.UpdateNumIterations(-1) }},
	{'n', func(s *Session) { s.parameters.UpdateSceneIndex(1) }},
	{'b', func(s *Session) { s.parameters.UpdateSceneIndex(-1) }},
	{'o', func(s *Session) { s.camera.ResetOrbitSpeed() }},
	{'p', func(s *Session) { s.camera.ToggleLockPitch() }},
	{'l', func(s *Session) { s.camera.CycleLockYawMode(false) }},
	{'L', func(s *Session) { s.camera.CycleLockYawMode(true) }},
	{'t', func(s *Session) { s.timing.StopTime() }},
	{'>', func(s *Session) { s.updateRenderTextureSize(1) }},
	{'<', func(s *Session) { s.updateRenderTextureSize(-1) }},
}

func (s *Session) handleChar(char rune) {
	for _, binding := range oneShotBindings {
		if binding.char == char {
			binding.action(s)
			return
		}
	}
}

func (s *Session) handleMouseButton(button glfw.MouseButton, action glfw.Action) {
	if button == glfw.MouseButtonLeft && action == glfw.Press {
		s.context.GrabCursor()
		s.haveLastCursor = false
	}
}

func (s *Session) handleCursorPos(x, y float64) {
	if s.context.IsCursorGrabbed() && s.haveLastCursor {
		yaw := x - s.lastCursorX
		pitch := y - s.lastCursorY
		s.camera.RotateFromCursorMovement(float32(yaw), float32(pitch))
	}
	s.lastCursorX = x
	s.lastCursorY = y
	s.haveLastCursor = true
}

// handleScroll selects exactly one meaning per scroll event: Shift
// redirects the vertical axis onto the horizontal one, Control retargets
// the wheel at the time-dilation factor, otherwise vertical adjusts
// camera speed and horizontal adjusts orbit speed.
func (s *Session) handleScroll(xoff, yoff float64) {
	x := float32(xoff * scrollLineFactor)
	y := float32(yoff * scrollLineFactor)
	if s.heldKeys.IsShiftPressed() {
		x += y
		y = 0
	}
	if s.heldKeys.IsControlPressed() {
		s.timing.UpdateTimeFactor(y)
	} else {
		s.camera.UpdateOrbitSpeed(x)
		s.camera.UpdateSpeed(y)
	}
}

func (s *Session) handleFramebufferSize(int, int) {
	s.resources.Resize(s.parameters)
}

func (s *Session) handleFocus(focused bool) {
	if !focused {
		s.context.UngrabCursor()
	}
}

func (s *Session) Destroy() {
	s.compositor.Destroy()
	s.pipeline.Destroy()
	s.resources.Destroy()
}
