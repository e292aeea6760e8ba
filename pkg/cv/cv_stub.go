//go:build !gocv

package cv

import (
	"image"

	"github.com/dixieflatline76/Lumen/pkg/analysis"
)

// Available reports whether the OpenCV backend is compiled in.
func Available() bool {
	return false
}

// Decoder is a placeholder that always fails without the gocv tag.
type Decoder struct{}

// Decode returns ErrUnavailable.
func (Decoder) Decode(path string) (*image.NRGBA, error) {
	return nil, ErrUnavailable
}

// Moments returns ErrUnavailable.
func Moments(img *image.NRGBA) (analysis.RawMoments, error) {
	return analysis.RawMoments{}, ErrUnavailable
}
