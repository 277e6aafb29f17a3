package renderer

import "testing"

func TestRenderTextureConfigSize(t *testing.T) {
	config := NewRenderTextureConfig(12)
	width, height := config.Size()
	if width != 1920 || height != 1080 {
		t.Errorf("factor 12: got %dx%d, want 1920x1080", width, height)
	}

	config = NewRenderTextureConfig(1)
	width, height = config.Size()
	if width != 160 || height != 90 {
		t.Errorf("factor 1: got %dx%d, want 160x90", width, height)
	}
}

func TestRenderTextureConfigFloor(t *testing.T) {
	config := NewRenderTextureConfig(3)
	for i := 0; i < 10; i++ {
		config.Update(-1)
		if config.Factor() < 1 {
			t.Fatalf("factor dropped below 1: %d", config.Factor())
		}
	}
	if config.Factor() != 1 {
		t.Errorf("expected factor pinned at 1, got %d", config.Factor())
	}

	config.Update(1)
	if config.Factor() != 2 {
		t.Errorf("expected factor 2 after increase, got %d", config.Factor())
	}
}

func TestRenderTextureConfigClampsConstruction(t *testing.T) {
	config := NewRenderTextureConfig(0)
	if config.Factor() != 1 {
		t.Errorf("zero factor should construct as 1, got %d", config.Factor())
	}
}
