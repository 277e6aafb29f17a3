package renderer

import (
	"path/filepath"
	"testing"
)

// A reload whose shader source cannot be resolved must fail before any
// program is touched, leaving the active generation unchanged. Compile
// failures behave the same way but need a live GL context to exercise.
func TestReloadFailureKeepsActiveProgram(t *testing.T) {
	p := &Pipeline{
		program:    42,
		shaderPath: filepath.Join(t.TempDir(), "missing.glsl"),
	}
	if err := p.Reload(); err == nil {
		t.Fatal("expected reload to fail for an unreadable shader source")
	}
	if p.Program() != 42 {
		t.Errorf("failed reload replaced the active program: got %d, want 42", p.Program())
	}
}
