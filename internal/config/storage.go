package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/blinkratio/internal/favorites"
)

// PreferencesStorage stores favorites blobs as string values in Fyne preferences
type PreferencesStorage struct {
	prefs fyne.Preferences
}

var _ favorites.Storage = (*PreferencesStorage)(nil)

// NewPreferencesStorage creates a storage backed by the app's preferences
func NewPreferencesStorage(app fyne.App) *PreferencesStorage {
	return &PreferencesStorage{prefs: app.Preferences()}
}

// Get returns the stored value, false if the key was never set or was removed
func (p *PreferencesStorage) Get(key string) ([]byte, bool) {
	v := p.prefs.String(key)
	if v == "" {
		return nil, false
	}
	return []byte(v), true
}

// Set writes data under key
func (p *PreferencesStorage) Set(key string, data []byte) error {
	p.prefs.SetString(key, string(data))
	return nil
}
