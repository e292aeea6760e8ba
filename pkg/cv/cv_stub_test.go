//go:build !gocv

package cv

import (
	"image"
	"testing"

	"github.com/dixieflatline76/Lumen/pkg/session"
	"github.com/stretchr/testify/assert"
)

func TestStub(t *testing.T) {
	assert.False(t, Available())

	var dec session.Decoder = Decoder{}
	_, err := dec.Decode("whatever.png")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = Moments(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	assert.ErrorIs(t, err, ErrUnavailable)
}
