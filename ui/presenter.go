package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"

	"github.com/dixieflatline76/Lumen/pkg/command"
)

// maxArtifactSize caps the initial size of an artifact window.
const maxArtifactSize = 900

// windowPresenter shows warnings as dialogs on the main window and each
// artifact in a window of its own.
type windowPresenter struct {
	app    fyne.App
	parent fyne.Window
	open   []fyne.Window // artifact windows currently on screen
}

func newWindowPresenter(a fyne.App, parent fyne.Window) *windowPresenter {
	return &windowPresenter{app: a, parent: parent}
}

// Warn implements command.Presenter.
func (p *windowPresenter) Warn(msg string) {
	dialog.ShowInformation("Warning", msg, p.parent)
}

// Show implements command.Presenter. Only the first artifact opens now; the
// next one opens when the user closes it.
func (p *windowPresenter) Show(artifacts ...command.Artifact) {
	if len(artifacts) == 0 {
		return
	}
	first, rest := artifacts[0], artifacts[1:]

	w := p.app.NewWindow(first.Title)
	img := canvas.NewImageFromImage(first.Image)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleFastest
	w.SetContent(img)
	w.Resize(artifactSize(first.Image.Bounds()))
	w.SetOnClosed(func() {
		p.forget(w)
		p.Show(rest...)
	})
	p.open = append(p.open, w)
	w.Show()
}

func (p *windowPresenter) forget(w fyne.Window) {
	for i, o := range p.open {
		if o == w {
			p.open = append(p.open[:i], p.open[i+1:]...)
			return
		}
	}
}

// artifactSize scales b down to fit maxArtifactSize, keeping the aspect ratio.
func artifactSize(b image.Rectangle) fyne.Size {
	w, h := float32(b.Dx()), float32(b.Dy())
	if w <= 0 || h <= 0 {
		return fyne.NewSize(maxArtifactSize/2, maxArtifactSize/2)
	}
	if scale := maxArtifactSize / max(w, h); scale < 1 {
		w, h = w*scale, h*scale
	}
	return fyne.NewSize(w, h)
}
