package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/blinkratio/internal/config"
	"github.com/ytget/blinkratio/internal/favorites"
	"github.com/ytget/blinkratio/internal/model"
	"github.com/ytget/blinkratio/internal/reference"
)

func newTestRoot(t *testing.T) (*RootUI, *favorites.Store, *config.Settings) {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)

	settings := config.NewSettings(app)
	settings.SetLanguage("en")
	store := favorites.NewStore(favorites.NewMemoryStorage())
	catalog, err := reference.Load()
	require.NoError(t, err)

	ui := NewRootUI(app.NewWindow("test"), settings, store, catalog)
	t.Cleanup(ui.Close)
	return ui, store, settings
}

func TestRootUI_Tabs(t *testing.T) {
	ui, _, _ := newTestRoot(t)

	require.Len(t, ui.tabs.Items, 3)
	assert.Equal(t, "Reference", ui.tabs.Items[TabReference].Text)
	assert.Equal(t, "Calculators", ui.tabs.Items[TabCalculators].Text)
	assert.Equal(t, "Favorites", ui.tabs.Items[TabFavorites].Text)
}

func TestRootUI_AddFavorite(t *testing.T) {
	ui, store, _ := newTestRoot(t)
	item := model.NewFavoriteItem("ratio/16 : 9", "Widescreen", "Widescreen standard", "rectangle", model.RGBA{R: 46, G: 170, B: 255, A: 255}, nil)

	ui.addFavorite(item)
	ui.addFavorite(item)

	assert.Equal(t, 1, store.Len())
	assert.True(t, store.Contains(item.ID))
	require.Len(t, ui.favoritesView.visible, 1)
	assert.Equal(t, item.ID, ui.favoritesView.visible[0].ID)

	ui.removeFavorite(item.ID)
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, ui.favoritesView.visible)
}

func TestRootUI_FavoritesSearch(t *testing.T) {
	ui, store, _ := newTestRoot(t)
	store.Add(model.NewFavoriteItem("a", "Golden Ratio", "1.618 : 1", "", model.RGBA{A: 255}, nil))
	store.Add(model.NewFavoriteItem("b", "Widescreen", "16 : 9", "", model.RGBA{A: 255}, nil))

	ui.favoritesView.search.SetText("golden")
	require.Len(t, ui.favoritesView.visible, 1)
	assert.Equal(t, "a", ui.favoritesView.visible[0].ID)

	ui.favoritesView.search.SetText("")
	assert.Len(t, ui.favoritesView.visible, 2)
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, store, settings := newTestRoot(t)

	ui.onLanguageChange("pt")

	assert.Equal(t, "pt", settings.GetLanguage())
	assert.Equal(t, "Favoritos", ui.tabs.Items[TabFavorites].Text)

	// The rebuilt favorites view still follows the store
	store.Add(model.NewFavoriteItem("x", "X", "", "", model.RGBA{A: 255}, nil))
	assert.Len(t, ui.favoritesView.visible, 1)
}

func TestRootUI_ClearedBySettings(t *testing.T) {
	ui, store, settings := newTestRoot(t)
	store.Add(model.NewFavoriteItem("x", "X", "", "", model.RGBA{A: 255}, nil))

	settings.ClearAllData()
	ui.onSettingsSaved(true)

	assert.Equal(t, 0, store.Len())
}

func TestFavoriteRow_SwipeRemoves(t *testing.T) {
	test.NewTempApp(t)

	var removed string
	row := NewFavoriteRow(NewLocalization(), func(id string) { removed = id })
	row.SetItem(model.NewFavoriteItem("color/00FF94", "#00FF94", "Color Tools", "", model.RGBA{G: 255, B: 148, A: 255}, nil))

	row.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(200, 10)}})
	row.TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(60, 12)}})

	assert.Equal(t, "color/00FF94", removed)
	assert.Equal(t, color.NRGBA{R: 0, G: 255, B: 148, A: 255}, row.swatch.FillColor)
}

func TestFavoriteRow_RemoveButton(t *testing.T) {
	test.NewTempApp(t)

	var removed string
	row := NewFavoriteRow(NewLocalization(), func(id string) { removed = id })

	test.Tap(row.removeBtn)
	assert.Empty(t, removed, "an empty row has nothing to remove")

	row.SetItem(model.NewFavoriteItem("card/spacing", "8pt Grid", "", "", model.RGBA{A: 255}, nil))
	test.Tap(row.removeBtn)
	assert.Equal(t, "card/spacing", removed)
}

func TestNeonTheme_Colors(t *testing.T) {
	catalog, err := reference.Load()
	require.NoError(t, err)

	for _, th := range []fyne.Theme{NewNeonTheme(catalog), NewNeonTheme(nil)} {
		assert.Equal(t, color.NRGBA{R: 0x00, G: 0xFF, B: 0x94, A: 0xFF}, th.Color(theme.ColorNamePrimary, theme.VariantLight))
		assert.Equal(t, color.NRGBA{R: 0x11, G: 0x12, B: 0x16, A: 0xFF}, th.Color(theme.ColorNameBackground, theme.VariantLight))
		assert.Equal(t, color.NRGBA{R: 0xFF, G: 0x00, B: 0x7C, A: 0xFF}, th.Color(theme.ColorNameError, theme.VariantDark))
	}
}
