// Package plot renders histograms as images so any window, or a test, can show them.
package plot

import (
	"image"
	"image/color"
	"strconv"

	"github.com/dixieflatline76/Lumen/pkg/analysis"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Style selects how a series is drawn.
type Style int

const (
	Bars Style = iota // one filled bar per bin
	Line              // a polyline through the bin tops
)

// Series is one histogram in a chart.
type Series struct {
	Label string
	Data  analysis.Histogram
	Color color.Color
	Style Style
}

func (s Series) color() color.Color {
	if s.Color == nil {
		return barColor
	}
	return s.Color
}

// Options control the chart geometry.
type Options struct {
	Width, Height int
	Margin        float64
}

// DefaultOptions is a 640x480 chart.
func DefaultOptions() Options {
	return Options{Width: 640, Height: 480, Margin: 48}
}

// xTicks are the intensity labels along the x axis; the axis spans [0, 256).
var xTicks = []int{0, 64, 128, 192, 256}

var (
	background = color.White
	axisColor  = color.NRGBA{0x33, 0x33, 0x33, 0xff}
	barColor   = color.NRGBA{0x1f, 0x77, 0xb4, 0xff}
)

// Render draws all series on a shared y scale and returns the chart.
func Render(title string, series []Series, opts Options) image.Image {
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(background)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	left, top := opts.Margin, opts.Margin
	right := float64(opts.Width) - opts.Margin/2
	bottom := float64(opts.Height) - opts.Margin
	plotW, plotH := right-left, bottom-top

	var peak uint64
	for _, s := range series {
		peak = max(peak, s.Data.Peak())
	}
	if peak == 0 {
		peak = 1
	}
	binW := plotW / analysis.Bins
	yOf := func(c uint64) float64 {
		return bottom - float64(c)/float64(peak)*plotH
	}

	for _, s := range series {
		dc.SetColor(s.color())
		switch s.Style {
		case Bars:
			for i, c := range s.Data {
				if c == 0 {
					continue
				}
				y := yOf(c)
				dc.DrawRectangle(left+float64(i)*binW, y, binW, bottom-y)
			}
			dc.Fill()
		case Line:
			dc.SetLineWidth(1.5)
			for i, c := range s.Data {
				x := left + (float64(i)+0.5)*binW
				if i == 0 {
					dc.MoveTo(x, yOf(c))
				} else {
					dc.LineTo(x, yOf(c))
				}
			}
			dc.Stroke()
		}
	}

	// Axes and labels go on top of the data.
	dc.SetColor(axisColor)
	dc.SetLineWidth(1)
	dc.DrawLine(left, bottom, right, bottom)
	dc.DrawLine(left, top, left, bottom)
	dc.Stroke()

	for _, tick := range xTicks {
		x := left + float64(tick)*binW
		dc.DrawLine(x, bottom, x, bottom+4)
		dc.Stroke()
		dc.DrawStringAnchored(strconv.Itoa(tick), x, bottom+6, 0.5, 1)
	}
	dc.DrawStringAnchored(strconv.FormatUint(peak, 10), left-4, top, 1, 0.5)
	dc.DrawStringAnchored("0", left-4, bottom, 1, 0.5)
	dc.DrawStringAnchored(title, float64(opts.Width)/2, opts.Margin/2, 0.5, 0.5)

	// Legend, only when there is more than one series to tell apart.
	if len(series) > 1 {
		for i, s := range series {
			y := top + 8 + float64(i)*16
			dc.SetColor(s.color())
			dc.DrawRectangle(right-70, y-5, 10, 10)
			dc.Fill()
			dc.SetColor(axisColor)
			dc.DrawStringAnchored(s.Label, right-55, y, 0, 0.5)
		}
	}

	return dc.Image()
}

// Intensity renders a grayscale histogram as bars.
func Intensity(title string, h analysis.Histogram, opts Options) image.Image {
	return Render(title, []Series{{Label: "intensity", Data: h, Style: Bars}}, opts)
}

// channelColors pairs each channel with the colour of its line.
var channelColors = [3]color.Color{
	analysis.Red:   color.NRGBA{0xd6, 0x27, 0x28, 0xff},
	analysis.Green: color.NRGBA{0x2c, 0xa0, 0x2c, 0xff},
	analysis.Blue:  color.NRGBA{0x1f, 0x77, 0xb4, 0xff},
}

// Channels renders per-channel histograms as overlaid lines.
func Channels(title string, hs [3]analysis.Histogram, opts Options) image.Image {
	series := make([]Series, 0, len(hs))
	for _, ch := range []analysis.Channel{analysis.Red, analysis.Green, analysis.Blue} {
		series = append(series, Series{
			Label: ch.String(),
			Data:  hs[ch],
			Color: channelColors[ch],
			Style: Line,
		})
	}
	return Render(title, series, opts)
}
