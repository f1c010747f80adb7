package plot

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// SavePNG writes the rendered figure to path, overwriting any existing file
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close image file: %w", err)
	}

	return nil
}
