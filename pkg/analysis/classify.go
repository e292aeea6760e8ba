package analysis

import (
	"errors"
	"image"
)

// ErrNotImplemented is returned by Classify until a classifier exists.
var ErrNotImplemented = errors.New("classification not implemented")

// Classify is a placeholder for image classification. It always fails with
// ErrNotImplemented.
func Classify(img image.Image) (string, error) {
	return "", ErrNotImplemented
}
