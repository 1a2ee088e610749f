package spritesheet

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// IsImageFile reports whether path has an extension Open can decode.
func IsImageFile(path string) bool {
	return imageExts[strings.ToLower(filepath.Ext(path))]
}

// Decode reads an image in any registered format.
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

// Open reads and decodes the spritesheet at path.
func Open(path string) (image.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("spritesheet: read %s: %w", path, err)
	}
	img, _, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("spritesheet: decode %s: %w", path, err)
	}
	return img, nil
}
