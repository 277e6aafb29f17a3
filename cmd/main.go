package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/MariusDoe/fractal-ray-marching/app"
	"github.com/MariusDoe/fractal-ray-marching/camera"
	"github.com/MariusDoe/fractal-ray-marching/glfwcontext"
	"github.com/MariusDoe/fractal-ray-marching/options"
	"github.com/MariusDoe/fractal-ray-marching/params"
	"github.com/MariusDoe/fractal-ray-marching/renderer"
)

func init() {
	// GLFW and GL calls must stay on the thread that created the context.
	runtime.LockOSThread()
}

func parseFlags() *options.ViewerOptions {
	opts := &options.ViewerOptions{}
	opts.Width = flag.Int("width", 1280, "Window width")
	opts.Height = flag.Int("height", 720, "Window height")
	opts.ShaderPath = flag.String("shader", "", "Path to a fractal fragment shader (empty uses the built-in one)")
	opts.ScaleFactor = flag.Int("scale", renderer.DefaultRenderTextureFactor, "Initial render texture resolution factor")
	opts.Record = flag.Bool("record", false, "Render offline to a video file instead of opening a viewer")
	opts.Duration = flag.Float64("duration", 10.0, "Recording duration in seconds")
	opts.FPS = flag.Int("fps", 60, "Recording frame rate")
	opts.OutputFile = flag.String("o", "output.mp4", "Recording output file")
	opts.FFMPEGPath = flag.String("ffmpeg", "", "Path to ffmpeg binary (empty searches PATH)")
	flag.Parse()
	return opts
}

func record(opts *options.ViewerOptions) error {
	context, err := glfwcontext.New(*opts.Width, *opts.Height, "Fractals (recording)", false)
	if err != nil {
		return err
	}
	defer context.Shutdown()

	resources, err := renderer.NewResources(context)
	if err != nil {
		return err
	}
	defer resources.Destroy()

	pipeline, err := renderer.NewPipeline(*opts.ShaderPath)
	if err != nil {
		return err
	}
	defer pipeline.Destroy()

	compositor, err := renderer.NewCompositor(context, resources, pipeline, *opts.ScaleFactor)
	if err != nil {
		return err
	}
	defer compositor.Destroy()

	p := params.New()
	p.UpdateCamera(camera.New().Matrix())
	return compositor.Record(opts, p)
}

func main() {
	opts := parseFlags()

	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("%v", err)
	}
	defer glfwcontext.TerminateGraphics()

	if *opts.Record {
		if err := record(opts); err != nil {
			log.Fatalf("recording failed: %v", err)
		}
		return
	}

	if err := app.Run(opts); err != nil {
		log.Fatalf("%v", err)
	}
}
