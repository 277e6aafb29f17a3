package params

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBlockSize(t *testing.T) {
	if Size != 96 {
		t.Errorf("uniform block must be 96 bytes, got %d", Size)
	}
	if Size%16 != 0 {
		t.Errorf("uniform block size %d is not a multiple of 16", Size)
	}
}

func TestAspectScale(t *testing.T) {
	p := New()

	p.UpdateAspect(800, 800)
	if p.AspectScale != [2]float32{1, 1} {
		t.Errorf("square window: got %v, want (1, 1)", p.AspectScale)
	}

	p.UpdateAspect(1920, 1080)
	want := [2]float32{1920.0 / 1080.0, 1}
	if p.AspectScale != want {
		t.Errorf("1920x1080: got %v, want %v", p.AspectScale, want)
	}

	p.UpdateAspect(1080, 1920)
	want = [2]float32{1, 1920.0 / 1080.0}
	if p.AspectScale != want {
		t.Errorf("portrait window: got %v, want %v", p.AspectScale, want)
	}
}

func TestSceneIndexWraps(t *testing.T) {
	p := New()

	p.UpdateSceneIndex(-1)
	if p.SceneIndex != NumScenes-1 {
		t.Errorf("decrement from zero: got %d, want %d", p.SceneIndex, NumScenes-1)
	}

	p.UpdateSceneIndex(1)
	if p.SceneIndex != 0 {
		t.Errorf("increment should wrap back to zero, got %d", p.SceneIndex)
	}

	for i := 0; i < NumScenes*3; i++ {
		p.UpdateSceneIndex(1)
		if p.SceneIndex >= NumScenes {
			t.Fatalf("scene index %d out of range", p.SceneIndex)
		}
	}
}

func TestNumIterationsSaturates(t *testing.T) {
	p := New()
	p.UpdateNumIterations(-5)
	if p.NumIterations != 0 {
		t.Errorf("iteration count went below zero: %d", p.NumIterations)
	}
	p.UpdateNumIterations(3)
	p.UpdateNumIterations(-1)
	if p.NumIterations != 2 {
		t.Errorf("expected 2 iterations, got %d", p.NumIterations)
	}
}

func TestUpdateCameraTransposes(t *testing.T) {
	p := New()
	matrix := mgl32.Translate3D(1, 2, 3)
	p.UpdateCamera(matrix)

	// mgl32 stores column-major, so the transposed store puts the
	// translation into the last row's slots of the flat array.
	if p.CameraMatrix[3] != 1 || p.CameraMatrix[7] != 2 || p.CameraMatrix[11] != 3 {
		t.Errorf("translation not found in row-major positions: %v", p.CameraMatrix)
	}
}
