package report

import (
	"fmt"
	"strings"

	"github.com/meghashyamc/rotation2d/geometry"
)

const bannerWidth = 50

// Render formats the angle, the rotation matrix and both vectors as the
// plain-text report written to stdout
func Render(angleDegrees float64, m geometry.Matrix, original, rotated geometry.Vector) string {
	var b strings.Builder

	banner := strings.Repeat("=", bannerWidth)

	b.WriteString(banner + "\n")
	b.WriteString(fmt.Sprintf("Rotation matrix for %g°:\n", angleDegrees))
	b.WriteString(banner + "\n")
	b.WriteString(FormatMatrix(m))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Original vector:     %s\n", FormatVector(original)))
	b.WriteString(fmt.Sprintf("Rotated vector:      %s\n", FormatVector(rotated)))

	return b.String()
}

// FormatMatrix renders a 2x2 matrix with fixed-width entries, one row per line
func FormatMatrix(m geometry.Matrix) string {
	return fmt.Sprintf("[[%7.4f %7.4f]\n [%7.4f %7.4f]]\n", m[0][0], m[0][1], m[1][0], m[1][1])
}

// FormatVector renders a vector as [x, y] with four decimal places
func FormatVector(v geometry.Vector) string {
	return fmt.Sprintf("[%.4f, %.4f]", v.X, v.Y)
}

// SavedBanner formats the closing message confirming where the figure was
// written
func SavedBanner(path string) string {
	banner := strings.Repeat("=", bannerWidth)
	return fmt.Sprintf("%s\nVisualization saved as '%s'\n%s\n", banner, path, banner)
}
