package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/blinkratio/internal/favorites"
	"github.com/ytget/blinkratio/internal/model"
)

func TestPreferencesStorage(t *testing.T) {
	app := test.NewApp()
	storage := NewPreferencesStorage(app)

	_, ok := storage.Get("missing")
	assert.False(t, ok)

	require.NoError(t, storage.Set("k", []byte(`[1,2]`)))
	data, ok := storage.Get("k")
	require.True(t, ok)
	assert.Equal(t, `[1,2]`, string(data))
}

func TestPreferencesStorage_BacksFavorites(t *testing.T) {
	app := test.NewApp()

	store := favorites.NewStore(NewPreferencesStorage(app))
	store.Add(model.NewFavoriteItem("ratio/21:9", "Cinema", "Ultra-wide cinema", "film", model.RGBA{R: 255, G: 0, B: 124, A: 255}, nil))
	store.Add(model.NewFavoriteItem("ratio/1:1", "Square", "Perfect square", "square", model.RGBA{R: 46, G: 170, B: 255, A: 255}, nil))

	reloaded := favorites.NewStore(NewPreferencesStorage(app))
	require.Equal(t, 2, reloaded.Len())
	assert.Equal(t, "ratio/21:9", reloaded.Items()[0].ID)
	assert.Equal(t, "2EAAFF", reloaded.Items()[1].AccentColorHex)
}
