package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// createStatusLabel creates the label describing the loaded image
func createStatusLabel(text string) *widget.Label {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = widget.LowImportance
	label.TextStyle = fyne.TextStyle{Italic: true}
	return label
}

// createVersionLabel creates the right aligned version label of the about page
func createVersionLabel(version string) *widget.Label {
	label := widget.NewLabel("Version: " + version)
	label.Alignment = fyne.TextAlignTrailing
	label.Importance = widget.MediumImportance
	label.TextStyle = fyne.TextStyle{Bold: true}
	return label
}
