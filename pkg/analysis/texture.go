package analysis

import (
	"errors"
	"fmt"
	"image"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrInvalidOptions is returned when co-occurrence options cannot be applied to an image.
var ErrInvalidOptions = errors.New("invalid texture options")

// stdEpsilon is the marginal standard deviation below which correlation is reported as 1.
const stdEpsilon = 1e-15

// TextureOptions configures the gray-level co-occurrence matrix.
type TextureOptions struct {
	Distance  int     // Pixel distance between the two pixels of a pair
	Angle     float64 // Direction of the offset in radians; 0 points right
	Levels    int     // Number of gray levels; every pixel must be below this
	Symmetric bool    // Count (j, i) whenever (i, j) is counted
	Normed    bool    // Scale the matrix so its entries sum to 1
}

// DefaultTextureOptions returns the options used by the Haralick command:
// distance 5, angle 0, 256 levels, symmetric and normalised.
func DefaultTextureOptions() TextureOptions {
	return TextureOptions{
		Distance:  5,
		Angle:     0,
		Levels:    256,
		Symmetric: true,
		Normed:    true,
	}
}

// offset returns the row and column displacement for the options.
func (o TextureOptions) offset() (dr, dc int) {
	d := float64(o.Distance)
	return int(math.Round(math.Sin(o.Angle) * d)), int(math.Round(math.Cos(o.Angle) * d))
}

func (o TextureOptions) validate() error {
	if o.Distance < 0 {
		return fmt.Errorf("%w: negative distance %d", ErrInvalidOptions, o.Distance)
	}
	if o.Levels < 1 || o.Levels > Bins {
		return fmt.Errorf("%w: levels %d outside [1, %d]", ErrInvalidOptions, o.Levels, Bins)
	}
	return nil
}

// TextureDescriptors are the Haralick properties derived from a co-occurrence matrix.
type TextureDescriptors struct {
	Contrast    float64
	Correlation float64
	Energy      float64
	Homogeneity float64
}

// CoOccurrence builds the Levels x Levels gray-level co-occurrence matrix of
// gray. Entry (i, j) counts the pixels of level i whose neighbour at the
// configured offset has level j. Pairs that fall outside the image are skipped.
func CoOccurrence(gray *image.Gray, opts TextureOptions) (*mat.Dense, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	levels := opts.Levels
	counts := make([]float64, levels*levels)

	b := gray.Bounds()
	rows, cols := b.Dy(), b.Dx()
	dr, dc := opts.offset()

	for r := max(0, -dr); r < min(rows, rows-dr); r++ {
		for c := max(0, -dc); c < min(cols, cols-dc); c++ {
			i := int(gray.GrayAt(b.Min.X+c, b.Min.Y+r).Y)
			j := int(gray.GrayAt(b.Min.X+c+dc, b.Min.Y+r+dr).Y)
			if i >= levels || j >= levels {
				return nil, fmt.Errorf("%w: pixel level %d not below %d levels", ErrInvalidOptions, max(i, j), levels)
			}
			counts[i*levels+j]++
		}
	}

	glcm := mat.NewDense(levels, levels, counts)
	if opts.Symmetric {
		var sym mat.Dense
		sym.Add(glcm, glcm.T())
		glcm = &sym
	}
	if opts.Normed {
		normalize(glcm)
	}
	return glcm, nil
}

// normalize scales m so its entries sum to 1. An all-zero matrix is left as is.
func normalize(m *mat.Dense) {
	if sum := mat.Sum(m); sum != 0 {
		m.Scale(1/sum, m)
	}
}

// Properties derives the texture descriptors from a co-occurrence matrix.
// The matrix is normalised on a copy first, so raw counts are accepted too.
func Properties(glcm mat.Matrix) TextureDescriptors {
	var p mat.Dense
	p.CloneFrom(glcm)
	normalize(&p)

	levels, _ := p.Dims()
	idx := make([]float64, levels)
	rowMarg := make([]float64, levels)
	colMarg := make([]float64, levels)

	var td TextureDescriptors
	var asm float64
	for i := 0; i < levels; i++ {
		idx[i] = float64(i)
		for j := 0; j < levels; j++ {
			v := p.At(i, j)
			if v == 0 {
				continue
			}
			d := float64(i - j)
			td.Contrast += v * d * d
			td.Homogeneity += v / (1 + d*d)
			asm += v * v
			rowMarg[i] += v
			colMarg[j] += v
		}
	}
	td.Energy = math.Sqrt(asm)

	if floats.Sum(rowMarg) == 0 {
		td.Correlation = 1
		return td
	}
	meanI, stdI := stat.PopMeanStdDev(idx, rowMarg)
	meanJ, stdJ := stat.PopMeanStdDev(idx, colMarg)
	if stdI < stdEpsilon || stdJ < stdEpsilon {
		td.Correlation = 1
		return td
	}

	var cov float64
	for i := 0; i < levels; i++ {
		for j := 0; j < levels; j++ {
			if v := p.At(i, j); v != 0 {
				cov += v * (float64(i) - meanI) * (float64(j) - meanJ)
			}
		}
	}
	td.Correlation = cov / (stdI * stdJ)
	return td
}

// Texture computes the co-occurrence matrix of gray and derives its descriptors.
func Texture(gray *image.Gray, opts TextureOptions) (TextureDescriptors, error) {
	glcm, err := CoOccurrence(gray, opts)
	if err != nil {
		return TextureDescriptors{}, err
	}
	return Properties(glcm), nil
}
