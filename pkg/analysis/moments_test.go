package analysis

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoments_SinglePixel(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 5, 5))
	img.SetGray(2, 3, color.Gray{Y: 1})

	m := Moments(img)
	assert.Equal(t, RawMoments{
		M00: 1, M10: 2, M01: 3,
		M20: 4, M11: 6, M02: 9,
		M30: 8, M21: 12, M12: 18, M03: 27,
	}, m)

	cx, cy := m.Centroid()
	assert.Equal(t, 2.0, cx)
	assert.Equal(t, 3.0, cy)
	assert.Equal(t, CentralMoments{}, m.Central())
}

func TestHuMoments_Black(t *testing.T) {
	hu := HuMoments(Moments(image.NewGray(image.Rect(0, 0, 8, 8))))
	assert.Equal(t, [7]float64{}, hu)
}

func TestHuMoments_Circle(t *testing.T) {
	hu := HuMoments(Moments(filledCircle(101, 30)))

	assert.Greater(t, hu[0], 0.0)
	for i := 1; i < 7; i++ {
		assert.InDelta(t, 0.0, hu[i], 1e-12, "hu[%d]", i)
	}
}

func TestHuMoments_TranslationInvariant(t *testing.T) {
	shape := func(ox, oy int) *image.Gray {
		img := image.NewGray(image.Rect(0, 0, 48, 48))
		// An L shape so the higher order invariants are non-zero.
		for y := 0; y < 12; y++ {
			for x := 0; x < 4; x++ {
				img.SetGray(ox+x, oy+y, color.Gray{Y: 200})
			}
		}
		for x := 4; x < 10; x++ {
			for y := 8; y < 12; y++ {
				img.SetGray(ox+x, oy+y, color.Gray{Y: 200})
			}
		}
		return img
	}

	a := HuMoments(Moments(shape(2, 3)))
	b := HuMoments(Moments(shape(30, 25)))
	for i := range a {
		assert.InEpsilon(t, a[i], b[i], 1e-6, "hu[%d]", i)
	}
}

func TestHuMoments_RotationInvariant(t *testing.T) {
	// A 90 degree turn maps pixels exactly onto the grid.
	img := image.NewGray(image.Rect(0, 0, 20, 20))
	for y := 2; y < 6; y++ {
		for x := 3; x < 15; x++ {
			img.SetGray(x, y, color.Gray{Y: 180})
		}
	}
	img.SetGray(14, 6, color.Gray{Y: 180})

	rot := image.NewGray(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			rot.SetGray(19-y, x, img.GrayAt(x, y))
		}
	}

	a := HuMoments(Moments(img))
	b := HuMoments(Moments(rot))
	for i := 0; i < 6; i++ {
		assert.InDelta(t, a[i], b[i], 1e-9*max(1, a[i]), "hu[%d]", i)
	}
}

func TestClassify(t *testing.T) {
	label, err := Classify(uniformRGBA(2, 2, color.White))
	assert.Empty(t, label)
	assert.ErrorIs(t, err, ErrNotImplemented)
}
