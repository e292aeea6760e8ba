package ui

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixieflatline76/Lumen/pkg/command"
)

func TestWindowPresenter_ShowsInSequence(t *testing.T) {
	a := test.NewTempApp(t)
	parent := a.NewWindow("main")
	p := newWindowPresenter(a, parent)

	p.Show(
		command.Artifact{Title: "first", Image: image.NewGray(image.Rect(0, 0, 10, 10))},
		command.Artifact{Title: "second", Image: image.NewGray(image.Rect(0, 0, 10, 10))},
	)
	require.Len(t, p.open, 1)
	assert.Equal(t, "first", p.open[0].Title())

	p.open[0].Close()
	require.Len(t, p.open, 1)
	assert.Equal(t, "second", p.open[0].Title())

	p.open[0].Close()
	assert.Empty(t, p.open)
}

func TestWindowPresenter_Warn(t *testing.T) {
	a := test.NewTempApp(t)
	parent := a.NewWindow("main")
	parent.Resize(fyne.NewSize(400, 300))
	p := newWindowPresenter(a, parent)

	p.Warn(command.NoImageWarning)
	assert.NotNil(t, parent.Canvas().Overlays().Top())
}

func TestArtifactSize(t *testing.T) {
	tests := []struct {
		name string
		in   image.Rectangle
		want fyne.Size
	}{
		{"Small", image.Rect(0, 0, 300, 200), fyne.NewSize(300, 200)},
		{"Wide", image.Rect(0, 0, 1800, 900), fyne.NewSize(900, 450)},
		{"Tall", image.Rect(0, 0, 600, 1800), fyne.NewSize(300, 900)},
		{"Empty", image.Rectangle{}, fyne.NewSize(450, 450)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, artifactSize(tt.in))
		})
	}
}
