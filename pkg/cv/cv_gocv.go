//go:build gocv

package cv

import (
	"fmt"
	"image"

	"github.com/dixieflatline76/Lumen/pkg/analysis"
	"github.com/dixieflatline76/Lumen/pkg/session"
	"gocv.io/x/gocv"
)

// Available reports whether the OpenCV backend is compiled in.
func Available() bool {
	return true
}

// Decoder reads image files with cv::imread.
type Decoder struct{}

// Decode implements session.Decoder.
func (Decoder) Decode(path string) (*image.NRGBA, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	defer mat.Close()
	if mat.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrDecode, path)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("converting mat: %w", err)
	}
	return session.ToNRGBA(img), nil
}

// Moments converts img to gray with OpenCV and returns its raw moments.
func Moments(img *image.NRGBA) (analysis.RawMoments, error) {
	src, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return analysis.RawMoments{}, fmt.Errorf("converting image: %w", err)
	}
	defer src.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)

	m := gocv.Moments(gray, false)
	return analysis.RawMoments{
		M00: m["m00"], M10: m["m10"], M01: m["m01"],
		M20: m["m20"], M11: m["m11"], M02: m["m02"],
		M30: m["m30"], M21: m["m21"], M12: m["m12"], M03: m["m03"],
	}, nil
}
