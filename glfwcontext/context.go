// Package glfwcontext is the thin platform binding: window creation, event
// callback registration, cursor grabbing and frame presentation.
package glfwcontext

import (
	"fmt"
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
)

type Context struct {
	window        *glfw.Window
	cursorGrabbed bool
}

// New creates a GLFW window with a 4.1 core context and makes it current.
func New(width, height int, title string, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	win.MakeContextCurrent()

	return &Context{window: win}, nil
}

// Handlers are the window events the session consumes. Any handler may be
// nil.
type Handlers struct {
	Key             func(key glfw.Key, action glfw.Action, mods glfw.ModifierKey)
	Char            func(char rune)
	CursorPos       func(x, y float64)
	MouseButton     func(button glfw.MouseButton, action glfw.Action)
	Scroll          func(xoff, yoff float64)
	FramebufferSize func(width, height int)
	Focus           func(focused bool)
}

// InstallHandlers registers the callbacks on the underlying window.
func (c *Context) InstallHandlers(h Handlers) {
	c.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if h.Key != nil {
			h.Key(key, action, mods)
		}
	})
	c.window.SetCharCallback(func(_ *glfw.Window, char rune) {
		if h.Char != nil {
			h.Char(char)
		}
	})
	c.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if h.CursorPos != nil {
			h.CursorPos(x, y)
		}
	})
	c.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if h.MouseButton != nil {
			h.MouseButton(button, action)
		}
	})
	c.window.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		if h.Scroll != nil {
			h.Scroll(xoff, yoff)
		}
	})
	c.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if h.FramebufferSize != nil {
			h.FramebufferSize(width, height)
		}
	})
	c.window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if h.Focus != nil {
			h.Focus(focused)
		}
	})
}

// GrabCursor hides the cursor and switches to relative motion. GLFW keeps
// re-centering the virtual cursor so it never reaches the screen edges.
func (c *Context) GrabCursor() {
	if c.cursorGrabbed {
		return
	}
	c.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		c.window.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
	c.cursorGrabbed = true
}

func (c *Context) UngrabCursor() {
	if !c.cursorGrabbed {
		return
	}
	c.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	c.cursorGrabbed = false
}

func (c *Context) IsCursorGrabbed() bool {
	return c.cursorGrabbed
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

// EndFrame presents the finished frame and pumps the event queue. Swap is
// paced by the display's presentation policy.
func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) PollEvents() {
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Shutdown() {
	c.window.Destroy()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
