// Package output encodes rendered images and publishes them to storage.
package output

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// EncodePNG writes img to w as a PNG
func EncodePNG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes img to path, creating parent directories as needed.
// The file extension selects the format, so path should end in .png.
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// RenderFilename returns the default output path for a render of sceneName:
// output/<scene>/render_<timestamp>.png
func RenderFilename(dir, sceneName, timestamp string) string {
	return filepath.Join(dir, sceneName, fmt.Sprintf("render_%s.png", timestamp))
}
