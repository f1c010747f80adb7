package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("nosuchenv")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.GetAngleDegrees(); got != defaultAngleDegrees {
		t.Fatalf("GetAngleDegrees() = %v, want %v", got, defaultAngleDegrees)
	}
	if x, y := cfg.GetVectorX(), cfg.GetVectorY(); x != defaultVectorX || y != defaultVectorY {
		t.Fatalf("vector = (%v, %v), want (%v, %v)", x, y, defaultVectorX, defaultVectorY)
	}
	if got := cfg.GetOutputFilename(); got != defaultOutputFile {
		t.Fatalf("GetOutputFilename() = %q, want %q", got, defaultOutputFile)
	}
	if got := cfg.GetImageSize(); got != defaultImageSize {
		t.Fatalf("GetImageSize() = %v, want %v", got, defaultImageSize)
	}
	if cfg.GetWindowWidth() == 0 || cfg.GetWindowHeight() == 0 || cfg.GetWindowTitle() == "" {
		t.Fatalf("window settings missing defaults: %dx%d %q", cfg.GetWindowWidth(), cfg.GetWindowHeight(), cfg.GetWindowTitle())
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("ROTATION_ANGLE_DEGREES", "90")
	t.Setenv("ROTATION_VECTOR_X", "0")
	t.Setenv("ROTATION_VECTOR_Y", "1")
	t.Setenv("OUTPUT_FILENAME", "custom.png")
	t.Setenv("OUTPUT_IMAGE_SIZE", "512")

	cfg, err := Load("nosuchenv")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.GetAngleDegrees(); got != 90 {
		t.Fatalf("GetAngleDegrees() = %v, want 90", got)
	}
	if x, y := cfg.GetVectorX(), cfg.GetVectorY(); x != 0 || y != 1 {
		t.Fatalf("vector = (%v, %v), want (0, 1)", x, y)
	}
	if got := cfg.GetOutputFilename(); got != "custom.png" {
		t.Fatalf("GetOutputFilename() = %q, want custom.png", got)
	}
	if got := cfg.GetImageSize(); got != 512 {
		t.Fatalf("GetImageSize() = %v, want 512", got)
	}
}
