package analysis

import (
	"image"

	"github.com/disintegration/imaging"
)

// Grayscale converts img to a single channel luminance image using the
// Rec. 601 weights (0.299R + 0.587G + 0.114B), rounded to the nearest level.
// The returned image always has its origin at (0, 0).
func Grayscale(img image.Image) *image.Gray {
	// imaging writes the luma into R, G and B alike; we keep one of them.
	lum := imaging.Grayscale(img)
	w, h := lum.Bounds().Dx(), lum.Bounds().Dy()

	gray := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := lum.Pix[y*lum.Stride : y*lum.Stride+w*4]
		dst := gray.Pix[y*gray.Stride : y*gray.Stride+w]
		for x := range dst {
			dst[x] = src[x*4]
		}
	}
	return gray
}
