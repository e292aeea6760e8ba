// Package thumbnail makes the square preview shown in the main window.
package thumbnail

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/muesli/smartcrop"
)

// resizer implements the smartcrop.Resizer interface with imaging.
type resizer struct {
	filter imaging.ResampleFilter
}

func (r resizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), r.filter)
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Make returns a size x size thumbnail of img. Images at least that large
// are cropped around their most interesting region first; smaller ones are
// scaled and centre cropped.
func Make(img image.Image, size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid thumbnail size %d", size)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("empty image")
	}

	r := resizer{filter: imaging.Lanczos}
	si, ok := img.(subImager)
	if !ok || b.Dx() < size || b.Dy() < size {
		return imaging.Fill(img, size, size, imaging.Center, r.filter), nil
	}

	crop, err := smartcrop.NewAnalyzer(r).FindBestCrop(img, size, size)
	if err != nil {
		return nil, fmt.Errorf("finding best crop: %w", err)
	}
	return imaging.Resize(si.SubImage(crop), size, size, r.filter), nil
}
