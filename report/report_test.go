package report

import (
	"strings"
	"testing"

	"github.com/meghashyamc/rotation2d/geometry"
)

func TestRenderContainsRotatedValues(t *testing.T) {
	angle := 45.0
	m := geometry.RotationMatrix(angle)
	original := geometry.Vector{X: 1, Y: 0}
	rotated := m.Apply(original)

	out := Render(angle, m, original, rotated)

	if !strings.Contains(out, "Rotation matrix for 45°:") {
		t.Fatalf("report missing angle header:\n%s", out)
	}
	if !strings.Contains(out, "0.7071") {
		t.Fatalf("report missing rotated component 0.7071:\n%s", out)
	}
	if !strings.Contains(out, "-0.7071") {
		t.Fatalf("report missing negative matrix entry:\n%s", out)
	}
	if !strings.Contains(out, "Original vector:     [1.0000, 0.0000]") {
		t.Fatalf("report missing original vector line:\n%s", out)
	}
	if !strings.Contains(out, "Rotated vector:      [0.7071, 0.7071]") {
		t.Fatalf("report missing rotated vector line:\n%s", out)
	}
}

func TestFormatMatrixFixedWidth(t *testing.T) {
	out := FormatMatrix(geometry.Identity())
	want := "[[ 1.0000  0.0000]\n [ 0.0000  1.0000]]\n"
	if out != want {
		t.Fatalf("FormatMatrix = %q, want %q", out, want)
	}
}

func TestSavedBanner(t *testing.T) {
	out := SavedBanner("rotation.png")
	if !strings.Contains(out, "rotation.png") {
		t.Fatalf("saved banner missing path:\n%s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("saved banner has %d lines, want 3:\n%s", len(lines), out)
	}
}
