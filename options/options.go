package options

// ViewerOptions holds the command line configuration for the viewer.
type ViewerOptions struct {
	Width       *int
	Height      *int
	ShaderPath  *string // fractal fragment source on disk; empty uses the embedded source
	ScaleFactor *int    // initial render-texture resolution factor

	// Recording
	Record     *bool
	Duration   *float64
	FPS        *int
	OutputFile *string
	FFMPEGPath *string
}
