package shader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedFractalSource(t *testing.T) {
	source, err := FractalSource("")
	if err != nil {
		t.Fatalf("embedded source: %v", err)
	}
	if !strings.Contains(source, "uniform Parameters") {
		t.Errorf("embedded source is missing the Parameters uniform block")
	}
}

func TestFractalSourceFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fractal.glsl")
	if err := os.WriteFile(path, []byte("first"), 0o644); err != nil {
		t.Fatal(err)
	}

	source, err := FractalSource(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if source != "first" {
		t.Errorf("got %q, want %q", source, "first")
	}

	// Reload must observe edits made after the first read.
	if err := os.WriteFile(path, []byte("second"), 0o644); err != nil {
		t.Fatal(err)
	}
	source, err = FractalSource(path)
	if err != nil {
		t.Fatalf("re-read: %v", err)
	}
	if source != "second" {
		t.Errorf("got %q, want %q", source, "second")
	}
}

func TestFractalSourceMissingFile(t *testing.T) {
	if _, err := FractalSource(filepath.Join(t.TempDir(), "missing.glsl")); err == nil {
		t.Error("expected an error for a missing shader file")
	}
}
