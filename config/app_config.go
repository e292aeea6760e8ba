package config

import "fyne.io/fyne/v2"

// LastOpenDirKey is the key for the directory the open dialog starts in
const LastOpenDirKey = "last_open_dir"

// PreviewEnabledKey is the key for the thumbnail preview preference
const PreviewEnabledKey = "preview_enabled"

// AppConfig holds the application-wide configuration
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// GetLastOpenDir returns the directory of the last successfully opened image, or "" if none
func (c *AppConfig) GetLastOpenDir() string {
	return c.prefs.StringWithFallback(LastOpenDirKey, "")
}

// SetLastOpenDir remembers the directory of the last successfully opened image
func (c *AppConfig) SetLastOpenDir(dir string) {
	c.prefs.SetString(LastOpenDirKey, dir)
}

// GetPreviewEnabled returns whether the main window shows a thumbnail of the loaded image
func (c *AppConfig) GetPreviewEnabled() bool {
	return c.prefs.BoolWithFallback(PreviewEnabledKey, true)
}

// SetPreviewEnabled sets whether the main window shows a thumbnail of the loaded image
func (c *AppConfig) SetPreviewEnabled(enabled bool) {
	c.prefs.SetBool(PreviewEnabledKey, enabled)
}
