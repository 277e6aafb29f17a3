package renderer

import (
	"fmt"
	"io"
	"log"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/MariusDoe/fractal-ray-marching/options"
	"github.com/MariusDoe/fractal-ray-marching/params"
)

// Record renders duration seconds of fixed-timestep frames at the
// offscreen resolution and pipes them as raw RGBA into ffmpeg.
func (c *Compositor) Record(opts *options.ViewerOptions, p *params.Parameters) error {
	width, height := c.config.Size()
	p.UpdateAspect(width, height)

	pipeReader, pipeWriter := io.Pipe()
	command := ffmpeg.Input("pipe:", ffmpeg.KwArgs{
		"format":     "rawvideo",
		"pix_fmt":    "rgba",
		"video_size": fmt.Sprintf("%dx%d", width, height),
		"framerate":  *opts.FPS,
	}).Output(*opts.OutputFile, ffmpeg.KwArgs{
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
		// GL reads pixels bottom-up
		"vf": "vflip",
	}).OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()
	if *opts.FFMPEGPath != "" {
		command = command.SetFfmpegPath(*opts.FFMPEGPath)
	}

	encoderDone := make(chan error, 1)
	go func() {
		encoderDone <- command.Run()
	}()

	frameCount := int(*opts.Duration * float64(*opts.FPS))
	delta := 1.0 / float32(*opts.FPS)
	pixels := make([]byte, width*height*4)

	log.Printf("Recording %d frames at %dx%d", frameCount, width, height)
	for frame := 0; frame < frameCount; frame++ {
		p.SetTime(float32(frame) * delta)
		c.resources.UploadParameters(p)
		c.fractalPass()

		gl.BindFramebuffer(gl.FRAMEBUFFER, c.target.fbo)
		gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

		if _, err := pipeWriter.Write(pixels); err != nil {
			pipeWriter.Close()
			<-encoderDone
			return fmt.Errorf("failed to write frame %d to ffmpeg: %w", frame, err)
		}
		c.context.PollEvents()
	}

	pipeWriter.Close()
	return <-encoderDone
}
