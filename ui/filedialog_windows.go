//go:build windows

package ui

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/harry1453/go-common-file-dialog/cfd"
	"github.com/harry1453/go-common-file-dialog/cfdutil"

	"github.com/dixieflatline76/Lumen/util/log"
)

// chooseFile shows the native Windows open dialog. The dialog blocks, so it
// runs off the UI goroutine and hands the result back with fyne.Do. onChosen
// always runs once, with an empty path on cancel.
func (la *LumenApp) chooseFile(onChosen func(path string)) {
	patterns := make([]string, len(imageExtensions))
	for i, ext := range imageExtensions {
		patterns[i] = "*" + ext
	}
	dlgConfig := cfd.DialogConfig{
		Title: "Open Image",
		Role:  "LumenOpenImage",
		FileFilters: []cfd.FileFilter{
			{DisplayName: "Images", Pattern: strings.Join(patterns, ";")},
			{DisplayName: "All Files (*.*)", Pattern: "*.*"},
		},
		Folder: la.cfg.GetLastOpenDir(),
	}

	go func() {
		path, err := cfdutil.ShowOpenFileDialog(dlgConfig)
		if err != nil {
			if !errors.Is(err, cfd.ErrorCancelled) {
				log.Printf("open dialog: %v", err)
			}
			path = ""
		}
		fyne.Do(func() { onChosen(path) })
	}()
}
