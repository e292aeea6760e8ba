package analysis

import (
	"image"
	"math"
)

// RawMoments are the spatial moments up to third order of an intensity
// image. Pixel (x, y) contributes its level times x^p * y^q to Mpq, with x
// the column and y the row.
type RawMoments struct {
	M00, M10, M01      float64
	M20, M11, M02      float64
	M30, M21, M12, M03 float64
}

// CentralMoments are the moments taken about the intensity centroid.
type CentralMoments struct {
	Mu20, Mu11, Mu02       float64
	Mu30, Mu21, Mu12, Mu03 float64
}

// Moments computes the raw moments of gray.
func Moments(gray *image.Gray) RawMoments {
	var m RawMoments
	b := gray.Bounds()
	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		off := gray.PixOffset(b.Min.X, b.Min.Y+y)
		row := gray.Pix[off : off+w]

		// Accumulate per row, then fold in the y powers.
		var r0, r1, r2, r3 float64
		for x, v := range row {
			if v == 0 {
				continue
			}
			fv, fx := float64(v), float64(x)
			r0 += fv
			r1 += fv * fx
			r2 += fv * fx * fx
			r3 += fv * fx * fx * fx
		}
		fy := float64(y)
		m.M00 += r0
		m.M10 += r1
		m.M20 += r2
		m.M30 += r3
		m.M01 += r0 * fy
		m.M11 += r1 * fy
		m.M21 += r2 * fy
		m.M02 += r0 * fy * fy
		m.M12 += r1 * fy * fy
		m.M03 += r0 * fy * fy * fy
	}
	return m
}

// Centroid returns the intensity centroid, or (0, 0) for an all-black image.
func (m RawMoments) Centroid() (cx, cy float64) {
	if m.M00 == 0 {
		return 0, 0
	}
	return m.M10 / m.M00, m.M01 / m.M00
}

// Central returns the central moments.
func (m RawMoments) Central() CentralMoments {
	cx, cy := m.Centroid()
	var c CentralMoments
	c.Mu20 = m.M20 - cx*m.M10
	c.Mu11 = m.M11 - cx*m.M01
	c.Mu02 = m.M02 - cy*m.M01
	c.Mu30 = m.M30 - cx*(3*c.Mu20+cx*m.M10)
	c.Mu21 = m.M21 - cx*(2*c.Mu11+cx*m.M01) - cy*c.Mu20
	c.Mu12 = m.M12 - cy*(2*c.Mu11+cy*m.M10) - cx*c.Mu02
	c.Mu03 = m.M03 - cy*(3*c.Mu02+cy*m.M01)
	return c
}

// Normalized returns the scale invariant central moments
// nu_pq = mu_pq / m00^(1+(p+q)/2). An all-black image yields zeros.
func (m RawMoments) Normalized() CentralMoments {
	if m.M00 == 0 {
		return CentralMoments{}
	}
	c := m.Central()
	s2 := 1 / (m.M00 * m.M00)
	s3 := s2 / math.Sqrt(math.Abs(m.M00))
	return CentralMoments{
		Mu20: c.Mu20 * s2,
		Mu11: c.Mu11 * s2,
		Mu02: c.Mu02 * s2,
		Mu30: c.Mu30 * s3,
		Mu21: c.Mu21 * s3,
		Mu12: c.Mu12 * s3,
		Mu03: c.Mu03 * s3,
	}
}

// HuMoments returns the seven Hu invariants of m. They do not change under
// translation, scale or rotation of the image content; the seventh changes
// sign under reflection.
func HuMoments(m RawMoments) [7]float64 {
	nu := m.Normalized()

	t0 := nu.Mu30 + nu.Mu12
	t1 := nu.Mu21 + nu.Mu03
	q0 := nu.Mu20 - nu.Mu02
	q1 := nu.Mu30 - 3*nu.Mu12
	q2 := 3*nu.Mu21 - nu.Mu03

	var hu [7]float64
	hu[0] = nu.Mu20 + nu.Mu02
	hu[1] = q0*q0 + 4*nu.Mu11*nu.Mu11
	hu[2] = q1*q1 + q2*q2
	hu[3] = t0*t0 + t1*t1
	hu[4] = q1*t0*(t0*t0-3*t1*t1) + q2*t1*(3*t0*t0-t1*t1)
	hu[5] = q0*(t0*t0-t1*t1) + 4*nu.Mu11*t0*t1
	hu[6] = q2*t0*(t0*t0-3*t1*t1) - q1*t1*(3*t0*t0-t1*t1)
	return hu
}
