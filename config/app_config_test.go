package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// MockPreferences implements fyne.Preferences for testing
type MockPreferences struct {
	data map[string]interface{}
}

func NewMockPreferences() *MockPreferences {
	return &MockPreferences{data: make(map[string]interface{})}
}

func lookup[T any](m *MockPreferences, key string, fallback T) T {
	if val, ok := m.data[key].(T); ok {
		return val
	}
	return fallback
}

func (m *MockPreferences) Bool(key string) bool { return lookup(m, key, false) }
func (m *MockPreferences) BoolWithFallback(key string, fallback bool) bool {
	return lookup(m, key, fallback)
}
func (m *MockPreferences) SetBool(key string, value bool) { m.data[key] = value }

func (m *MockPreferences) Float(key string) float64 { return lookup(m, key, 0.0) }
func (m *MockPreferences) FloatWithFallback(key string, fallback float64) float64 {
	return lookup(m, key, fallback)
}
func (m *MockPreferences) SetFloat(key string, value float64) { m.data[key] = value }

func (m *MockPreferences) Int(key string) int { return lookup(m, key, 0) }
func (m *MockPreferences) IntWithFallback(key string, fallback int) int {
	return lookup(m, key, fallback)
}
func (m *MockPreferences) SetInt(key string, value int) { m.data[key] = value }

func (m *MockPreferences) String(key string) string { return lookup(m, key, "") }
func (m *MockPreferences) StringWithFallback(key string, fallback string) string {
	return lookup(m, key, fallback)
}
func (m *MockPreferences) SetString(key string, value string) { m.data[key] = value }

func (m *MockPreferences) StringList(key string) []string { return lookup(m, key, []string{}) }
func (m *MockPreferences) StringListWithFallback(key string, fallback []string) []string {
	return lookup(m, key, fallback)
}
func (m *MockPreferences) SetStringList(key string, value []string) { m.data[key] = value }

func (m *MockPreferences) BoolList(key string) []bool { return lookup(m, key, []bool{}) }
func (m *MockPreferences) BoolListWithFallback(key string, fallback []bool) []bool {
	return lookup(m, key, fallback)
}
func (m *MockPreferences) SetBoolList(key string, value []bool) { m.data[key] = value }

func (m *MockPreferences) FloatList(key string) []float64 { return lookup(m, key, []float64{}) }
func (m *MockPreferences) FloatListWithFallback(key string, fallback []float64) []float64 {
	return lookup(m, key, fallback)
}
func (m *MockPreferences) SetFloatList(key string, value []float64) { m.data[key] = value }

func (m *MockPreferences) IntList(key string) []int { return lookup(m, key, []int{}) }
func (m *MockPreferences) IntListWithFallback(key string, fallback []int) []int {
	return lookup(m, key, fallback)
}
func (m *MockPreferences) SetIntList(key string, value []int) { m.data[key] = value }

func (m *MockPreferences) RemoveValue(key string) { delete(m.data, key) }

func (m *MockPreferences) AddChangeListener(func()) {}

func (m *MockPreferences) ChangeListeners() []func() { return []func(){} }

func TestAppConfig(t *testing.T) {
	prefs := NewMockPreferences()
	cfg := NewAppConfig(prefs)

	t.Run("LastOpenDir", func(t *testing.T) {
		// Nothing remembered before the first open
		assert.Equal(t, "", cfg.GetLastOpenDir())

		cfg.SetLastOpenDir("/home/user/pictures")
		assert.Equal(t, "/home/user/pictures", cfg.GetLastOpenDir())
		assert.Equal(t, "/home/user/pictures", prefs.String(LastOpenDirKey))
	})

	t.Run("PreviewEnabled", func(t *testing.T) {
		// Default should be true
		assert.True(t, cfg.GetPreviewEnabled())

		cfg.SetPreviewEnabled(false)
		assert.False(t, cfg.GetPreviewEnabled())

		cfg.SetPreviewEnabled(true)
		assert.True(t, cfg.GetPreviewEnabled())
	})
}
