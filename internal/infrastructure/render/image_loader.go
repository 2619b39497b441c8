package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoadImage decodes an image file from fsys into an ebiten image
func LoadImage(fsys fs.FS, path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("empty image path")
	}
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}
