//go:build !windows

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/dixieflatline76/Lumen/util/log"
)

// chooseFile shows the fyne open dialog, starting in the last used folder.
// onChosen always runs once, with an empty path on cancel.
func (la *LumenApp) chooseFile(onChosen func(path string)) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("open dialog: %v", err)
			onChosen("")
			return
		}
		if rc == nil {
			onChosen("")
			return
		}
		path := rc.URI().Path()
		rc.Close()
		onChosen(path)
	}, la.window)

	d.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	if dir := la.cfg.GetLastOpenDir(); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Resize(fyne.NewSize(800, 600))
	d.Show()
}
