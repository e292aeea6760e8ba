package ui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/Lumen/asset"
	"github.com/dixieflatline76/Lumen/config"
	"github.com/dixieflatline76/Lumen/pkg/command"
	"github.com/dixieflatline76/Lumen/pkg/session"
	"github.com/dixieflatline76/Lumen/pkg/thumbnail"
	"github.com/dixieflatline76/Lumen/util"
	"github.com/dixieflatline76/Lumen/util/log"
)

// LumenApp is the main window and the session behind it.
type LumenApp struct {
	app       fyne.App
	window    fyne.Window
	assetMgr  *asset.Manager
	cfg       *config.AppConfig
	session   *session.Session
	dispatch  *command.Dispatcher
	presenter command.Presenter

	dialogOpen *util.SafeFlag // an open dialog is on screen

	buttons map[command.ID]*widget.Button
	logView *widget.Entry
	status  *widget.Label
	preview *canvas.Image
}

// NewLumenApp builds the main window on a. Files are decoded with dec and
// actions run through d.
func NewLumenApp(a fyne.App, dec session.Decoder, d *command.Dispatcher) *LumenApp {
	la := &LumenApp{
		app:      a,
		assetMgr: asset.NewManager(),
		cfg:      config.NewAppConfig(a.Preferences()),
		session:  session.New(dec),
		dispatch: d,
		buttons:  make(map[command.ID]*widget.Button),

		dialogOpen: util.NewSafeBool(),
	}
	la.window = a.NewWindow(config.AppName)
	la.presenter = newWindowPresenter(a, la.window)

	if icon, err := la.assetMgr.GetIcon(asset.AppIcon); err == nil {
		a.SetIcon(icon)
	}

	la.window.SetContent(la.buildContent())
	la.window.SetMainMenu(la.buildMainMenu())
	la.addShortcuts()
	la.window.SetMaster()

	la.session.Log().OnAppend(func(lines []string) {
		la.logView.Append(strings.Join(lines, "\n") + "\n")
	})
	// The log area only mirrors the session log; typing is undone.
	la.logView.OnChanged = func(text string) {
		if want := la.sessionText(); text != want {
			la.logView.SetText(want)
		}
	}
	log.Printf("session %s started", la.session.ID())
	return la
}

// buildContent lays out the buttons, the preview and the log area.
func (la *LumenApp) buildContent() fyne.CanvasObject {
	openButton := widget.NewButtonWithIcon("Open Image", theme.FolderOpenIcon(), la.OpenImage)
	openButton.Importance = widget.HighImportance

	buttons := container.NewVBox(openButton)
	for _, id := range command.IDs() {
		b := widget.NewButton(id.Label(), func() { la.RunCommand(id) })
		la.buttons[id] = b
		buttons.Add(b)
	}

	la.status = createStatusLabel("No image opened")
	la.preview = canvas.NewImageFromImage(nil)
	la.preview.FillMode = canvas.ImageFillContain
	la.preview.SetMinSize(fyne.NewSize(previewSize, previewSize))
	la.preview.Hide()

	la.logView = widget.NewMultiLineEntry()
	la.logView.TextStyle = fyne.TextStyle{Monospace: true}
	la.logView.Wrapping = fyne.TextWrapOff
	la.logView.SetMinRowsVisible(logRows)

	side := container.NewVBox(buttons, widget.NewSeparator(), la.preview, la.status)
	return container.NewBorder(nil, nil, side, nil, la.logView)
}

func (la *LumenApp) buildMainMenu() *fyne.MainMenu {
	openItem := fyne.NewMenuItem("Open…", la.OpenImage)
	openItem.Icon = theme.FolderOpenIcon()

	previewItem := fyne.NewMenuItem("Show Preview", nil)
	previewItem.Checked = la.cfg.GetPreviewEnabled()
	previewItem.Action = func() {
		enabled := !la.cfg.GetPreviewEnabled()
		la.cfg.SetPreviewEnabled(enabled)
		previewItem.Checked = enabled
		la.refreshPreview()
	}

	analysisItems := make([]*fyne.MenuItem, 0, len(command.IDs()))
	for _, id := range command.IDs() {
		analysisItems = append(analysisItems, fyne.NewMenuItem(id.Label(), func() { la.RunCommand(id) }))
	}

	return fyne.NewMainMenu(
		fyne.NewMenu("File", openItem, previewItem),
		fyne.NewMenu("Analyze", analysisItems...),
		fyne.NewMenu("Help", fyne.NewMenuItem("About "+config.AppName, la.ShowAbout)),
	)
}

func (la *LumenApp) addShortcuts() {
	la.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyO,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) { la.OpenImage() })
}

// OpenImage asks for a file and loads it into the session. A second
// request while the dialog is still open is ignored.
func (la *LumenApp) OpenImage() {
	if !la.dialogOpen.TrySet() {
		return
	}
	la.chooseFile(func(path string) {
		la.dialogOpen.Set(false)
		if path != "" {
			la.openPath(path)
		}
	})
}

// openPath loads path. Failures leave the current image in place and are
// only written to the application log.
func (la *LumenApp) openPath(path string) {
	li, err := la.session.Open(path)
	if err != nil {
		return
	}
	la.cfg.SetLastOpenDir(filepath.Dir(path))

	b := li.Pixels.Bounds()
	la.status.SetText(fmt.Sprintf("%s\n%d × %d", li.Name(), b.Dx(), b.Dy()))
	la.window.SetTitle(fmt.Sprintf("%s - %s", config.AppName, li.Name()))
	la.refreshPreview()
}

// refreshPreview updates the thumbnail from the current image and preference.
func (la *LumenApp) refreshPreview() {
	li, ok := la.session.Current()
	if !ok || !la.cfg.GetPreviewEnabled() {
		la.preview.Hide()
		return
	}
	thumb, err := thumbnail.Make(li.Pixels, previewSize)
	if err != nil {
		log.Printf("session %s: no preview for %s: %v", la.session.ID(), li.Path, err)
		la.preview.Hide()
		return
	}
	la.preview.Image = thumb
	la.preview.Refresh()
	la.preview.Show()
}

// RunCommand runs one analysis action. Unexpected failures are reported in
// an error dialog; the session stays usable.
func (la *LumenApp) RunCommand(id command.ID) {
	if err := la.dispatch.Run(context.Background(), id, la.session, la.presenter); err != nil {
		log.Printf("session %s: %v", la.session.ID(), err)
		dialog.ShowError(err, la.window)
	}
}

// ShowAbout shows the about page with the application version.
func (la *LumenApp) ShowAbout() {
	text, err := la.assetMgr.GetText(asset.AboutText)
	if err != nil {
		text = config.AppName
	}
	body := widget.NewRichTextFromMarkdown(text)
	body.Wrapping = fyne.TextWrapWord

	content := container.NewBorder(nil, createVersionLabel(config.AppVersion), nil, nil, body)
	d := dialog.NewCustom("About "+config.AppName, "Close", content, la.window)
	d.Resize(fyne.NewSize(520, 360))
	d.Show()
}

// Session returns the session behind the window.
func (la *LumenApp) Session() *session.Session {
	return la.session
}

// sessionText is the session log as the log area shows it.
func (la *LumenApp) sessionText() string {
	lines := la.session.Log().Lines()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// LogText returns everything shown in the log area.
func (la *LumenApp) LogText() string {
	return strings.TrimSuffix(la.logView.Text, "\n")
}

// Run shows the main window and runs the event loop.
func (la *LumenApp) Run() {
	la.window.Resize(la.initialSize())
	la.window.CenterOnScreen()
	la.window.ShowAndRun()
}

// initialSize fits the button column next to a log of logColumns characters.
func (la *LumenApp) initialSize() fyne.Size {
	char := fyne.MeasureText("M", theme.TextSize(), fyne.TextStyle{Monospace: true})
	logWidth := char.Width*logColumns + 2*theme.Padding()
	return fyne.NewSize(logWidth+sideWidth, float32(logRows)*char.Height+4*theme.Padding())
}
