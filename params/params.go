// Package params holds the uniform block consumed by the fractal shader.
package params

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// NumScenes is the number of distance functions the fractal shader
// provides; the scene index wraps modulo this count.
const NumScenes = 19

// Parameters mirrors the std140 uniform block in the fractal shader. The
// field order, types and trailing padding are a wire contract: the byte
// image of this struct is uploaded verbatim to the uniform buffer every
// frame. Total size is 96 bytes, a multiple of 16.
type Parameters struct {
	CameraMatrix  [16]float32 // row-major, transposed from the camera's transform
	AspectScale   [2]float32
	Time          float32
	NumIterations uint32
	SceneIndex    uint32
	padding       [12]byte
}

// Size is the byte size of the uniform block.
const Size = int(unsafe.Sizeof(Parameters{}))

func New() *Parameters {
	return &Parameters{}
}

// UpdateAspect recomputes the aspect-correction scale so that the shorter
// window axis maps to a [-1, 1] range and the longer axis widens
// proportionally.
func (p *Parameters) UpdateAspect(width, height int) {
	min := float32(width)
	if height < width {
		min = float32(height)
	}
	p.AspectScale = [2]float32{float32(width) / min, float32(height) / min}
}

// UpdateCamera stores the camera transform transposed, which lays the
// row-major matrix the shader expects into the column-major mgl32 array.
func (p *Parameters) UpdateCamera(matrix mgl32.Mat4) {
	transposed := matrix.Transpose()
	copy(p.CameraMatrix[:], transposed[:])
}

func (p *Parameters) SetTime(time float32) {
	p.Time = time
}

// UpdateNumIterations adjusts the iteration count, saturating at zero.
func (p *Parameters) UpdateNumIterations(delta int) {
	next := int64(p.NumIterations) + int64(delta)
	if next < 0 {
		next = 0
	}
	p.NumIterations = uint32(next)
}

// UpdateSceneIndex steps the scene selector, wrapping modulo NumScenes in
// both directions.
func (p *Parameters) UpdateSceneIndex(delta int) {
	next := (int(p.SceneIndex) + delta) % NumScenes
	if next < 0 {
		next += NumScenes
	}
	p.SceneIndex = uint32(next)
}

// Ptr returns the address of the block for buffer uploads.
func (p *Parameters) Ptr() unsafe.Pointer {
	return unsafe.Pointer(p)
}
