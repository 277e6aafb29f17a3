package app

import (
	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"github.com/MariusDoe/fractal-ray-marching/glfwcontext"
	"github.com/MariusDoe/fractal-ray-marching/options"
)

const windowTitle = "Fractals"

// App holds the session once it exists. Callbacks can fire while the
// session is still being constructed, so every handler checks for nil and
// drops the event.
type App struct {
	session *Session
}

func (a *App) handlers() glfwcontext.Handlers {
	return glfwcontext.Handlers{
		Key: func(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
			if a.session != nil {
				a.session.handleKey(key, action, mods)
			}
		},
		Char: func(char rune) {
			if a.session != nil {
				a.session.handleChar(char)
			}
		},
		CursorPos: func(x, y float64) {
			if a.session != nil {
				a.session.handleCursorPos(x, y)
			}
		},
		MouseButton: func(button glfw.MouseButton, action glfw.Action) {
			if a.session != nil {
				a.session.handleMouseButton(button, action)
			}
		},
		Scroll: func(xoff, yoff float64) {
			if a.session != nil {
				a.session.handleScroll(xoff, yoff)
			}
		},
		FramebufferSize: func(width, height int) {
			if a.session != nil {
				a.session.handleFramebufferSize(width, height)
			}
		},
		Focus: func(focused bool) {
			if a.session != nil {
				a.session.handleFocus(focused)
			}
		},
	}
}

// Run creates the window and session and drives frames until the window
// is closed. Frame errors are fatal and unwind through the deferred
// teardown.
func Run(opts *options.ViewerOptions) error {
	context, err := glfwcontext.New(*opts.Width, *opts.Height, windowTitle, true)
	if err != nil {
		return err
	}
	defer context.Shutdown()

	a := &App{}
	context.InstallHandlers(a.handlers())

	session, err := NewSession(context, opts)
	if err != nil {
		return err
	}
	defer session.Destroy()
	a.session = session

	for !context.ShouldClose() {
		if err := session.Draw(); err != nil {
			return err
		}
	}
	return nil
}
