package analysis

import (
	"context"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

// Bins is the number of histogram bins, one per 8-bit intensity level.
const Bins = 256

// Histogram counts pixels per intensity level in [0, 256).
type Histogram [Bins]uint64

// Total returns the number of pixels counted.
func (h *Histogram) Total() uint64 {
	var n uint64
	for _, c := range h {
		n += c
	}
	return n
}

// Peak returns the largest bin count.
func (h *Histogram) Peak() uint64 {
	var m uint64
	for _, c := range h {
		if c > m {
			m = c
		}
	}
	return m
}

// Channel identifies one colour channel of an RGB image.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// IntensityHistogram counts the levels of a grayscale image.
func IntensityHistogram(gray *image.Gray) Histogram {
	var h Histogram
	b := gray.Bounds()
	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		off := gray.PixOffset(b.Min.X, b.Min.Y+y)
		for _, v := range gray.Pix[off : off+w] {
			h[v]++
		}
	}
	return h
}

// ChannelHistograms counts the red, green and blue levels of img, one
// goroutine per channel. Alpha is ignored.
func ChannelHistograms(ctx context.Context, img image.Image) ([3]Histogram, error) {
	var out [3]Histogram
	src, ok := img.(*image.NRGBA)
	if !ok {
		src = imaging.Clone(img)
	}
	b := src.Bounds()
	w := b.Dx()

	g, ctx := errgroup.WithContext(ctx)
	for _, ch := range []Channel{Red, Green, Blue} {
		g.Go(func() error {
			h := &out[ch]
			for y := b.Min.Y; y < b.Max.Y; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				off := src.PixOffset(b.Min.X, y)
				row := src.Pix[off : off+w*4]
				for x := 0; x < w; x++ {
					h[row[x*4+int(ch)]]++
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return [3]Histogram{}, err
	}
	return out, nil
}
