package command

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/dixieflatline76/Lumen/pkg/analysis"
	"github.com/dixieflatline76/Lumen/pkg/plot"
	"github.com/dixieflatline76/Lumen/pkg/session"
)

// ClassificationNotice is the only result of the Classify action.
const ClassificationNotice = "Classification not implemented yet."

// Window titles of the visual outputs.
const (
	GrayscaleTitle        = "Grayscale Image"
	IntensityHistTitle    = "Grayscale Histogram"
	ChannelHistogramTitle = "Channel Histogram"
)

func (d *Dispatcher) grayscale(_ context.Context, img *session.LoadedImage) (Outcome, error) {
	return Outcome{Artifacts: []Artifact{{
		Title: GrayscaleTitle,
		Image: analysis.Grayscale(img.Pixels),
	}}}, nil
}

func (d *Dispatcher) histograms(ctx context.Context, img *session.LoadedImage) (Outcome, error) {
	intensity := analysis.IntensityHistogram(analysis.Grayscale(img.Pixels))
	channels, err := analysis.ChannelHistograms(ctx, img.Pixels)
	if err != nil {
		return Outcome{}, fmt.Errorf("computing channel histograms: %w", err)
	}

	return Outcome{Artifacts: []Artifact{
		{Title: IntensityHistTitle, Image: plot.Intensity(IntensityHistTitle, intensity, d.plot)},
		{Title: ChannelHistogramTitle, Image: plot.Channels(ChannelHistogramTitle, channels, d.plot)},
	}}, nil
}

func (d *Dispatcher) haralick(_ context.Context, img *session.LoadedImage) (Outcome, error) {
	td, err := analysis.Texture(analysis.Grayscale(img.Pixels), d.texture)
	if err != nil {
		return Outcome{}, fmt.Errorf("computing texture: %w", err)
	}
	return Outcome{Lines: []string{
		"Haralick Descriptors:",
		fmt.Sprintf("Contrast: %v", td.Contrast),
		fmt.Sprintf("Correlation: %v", td.Correlation),
		fmt.Sprintf("Energy: %v", td.Energy),
		fmt.Sprintf("Homogeneity: %v", td.Homogeneity),
	}}, nil
}

func (d *Dispatcher) huMoments(_ context.Context, img *session.LoadedImage) (Outcome, error) {
	raw, err := d.moments(img.Pixels)
	if err != nil {
		return Outcome{}, fmt.Errorf("computing moments: %w", err)
	}
	hu := analysis.HuMoments(raw)

	lines := make([]string, 0, len(hu)+1)
	lines = append(lines, "Hu Moments:")
	for i, v := range hu {
		lines = append(lines, fmt.Sprintf("Hu Moment %d: %v", i+1, v))
	}
	return Outcome{Lines: lines}, nil
}

func (d *Dispatcher) classifyImage(_ context.Context, img *session.LoadedImage) (Outcome, error) {
	var px image.Image
	if img != nil {
		px = img.Pixels
	}
	label, err := d.classify(px)
	if errors.Is(err, analysis.ErrNotImplemented) {
		return Outcome{Warning: ClassificationNotice}, nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("classifying: %w", err)
	}
	return Outcome{Lines: []string{"Class: " + label}}, nil
}
