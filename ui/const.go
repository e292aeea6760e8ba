package ui

// logRows and logColumns size the log area in characters.
const (
	logRows    = 20
	logColumns = 80
)

// previewSize is the edge length of the thumbnail in the side panel.
const previewSize = 160

// sideWidth is the space reserved for the button column.
const sideWidth = 260

// imageExtensions are offered by the open dialog.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}
