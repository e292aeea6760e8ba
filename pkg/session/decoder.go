package session

import (
	"fmt"
	"image"

	// Formats beyond imaging's defaults (png, jpeg, gif, bmp, tiff).
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
)

// Decoder turns a file into pixels.
type Decoder interface {
	Decode(path string) (*image.NRGBA, error)
}

// FileDecoder decodes image files with the registered Go decoders. JPEGs are
// rotated according to their EXIF orientation tag.
type FileDecoder struct{}

// Decode implements Decoder.
func (FileDecoder) Decode(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return ToNRGBA(img), nil
}

// ToNRGBA returns img as an NRGBA image with its origin at (0, 0), copying
// only when needed.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(img)
}
