package ui

import (
	"log"
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/blinkratio/internal/config"
	"github.com/ytget/blinkratio/internal/favorites"
	"github.com/ytget/blinkratio/internal/model"
	"github.com/ytget/blinkratio/internal/platform"
	"github.com/ytget/blinkratio/internal/reference"
)

// Tab indexes in display order
const (
	TabReference = iota
	TabCalculators
	TabFavorites
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	favorites    favorites.Favorites
	catalog      *reference.Catalog
	localization *Localization
	numbers      *platform.NumberFormat
	mobile       *MobileUI

	tabs           *container.AppTabs
	favoritesView  *FavoritesView
	unsubscribeFav func()
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, favs favorites.Favorites, catalog *reference.Catalog) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		favorites:    favs,
		catalog:      catalog,
		localization: localization,
		numbers:      platform.NewNumberFormat(localization.GetCurrentLanguage()),
		mobile:       NewMobileUI(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.unsubscribeFav = favs.Subscribe(ui.onFavoritesChanged)
	log.Printf("RootUI initialized: %d favorites, %d reference cards", favs.Len(), len(catalog.Cards))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	selected := TabReference
	if ui.tabs != nil {
		selected = ui.tabs.SelectedIndex()
	}

	ui.favoritesView = NewFavoritesView(ui)

	ui.tabs = container.NewAppTabs(
		container.NewTabItem(ui.localization.GetText(KeyTabReference), NewReferenceView(ui).Build()),
		container.NewTabItem(ui.localization.GetText(KeyTabCalculators), NewCalculatorsView(ui).Build()),
		container.NewTabItem(ui.localization.GetText(KeyTabFavorites), ui.favoritesView.Build()),
	)
	if ui.mobile.IsMobileDevice() {
		ui.tabs.SetTabLocation(container.TabLocationBottom)
	}
	ui.tabs.SelectIndex(selected)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	title := widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	topPanel := container.NewBorder(nil, nil, ui.logo(), settingsBtn, title)

	ui.window.SetContent(container.NewBorder(topPanel, nil, nil, nil, ui.tabs))
}

// logo returns the app logo, or an empty spacer when it is not bundled
func (ui *RootUI) logo() fyne.CanvasObject {
	res, err := LoadLogoResource()
	if err != nil {
		return layoutSpacer()
	}
	return newLogoImage(res)
}

// createMenu builds the main menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts rebuilds the screens with the current language
func (ui *RootUI) refreshUITexts() {
	ui.numbers = platform.NewNumberFormat(ui.localization.GetCurrentLanguage())
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.setupUI()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies settings that affect what is on screen
func (ui *RootUI) onSettingsSaved(cleared bool) {
	if cleared {
		ui.favorites.ClearAll()
	}
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.showToast(ui.localization.GetText(KeySettingsSaved))
}

// ShowOnboardingIfNeeded shows the welcome dialog until it is dismissed once
func (ui *RootUI) ShowOnboardingIfNeeded() {
	if ui.settings.GetOnboardingComplete() {
		return
	}

	body := widget.NewLabel(ui.localization.GetText(KeyWelcomeBody))
	body.Wrapping = fyne.TextWrapWord
	d := dialog.NewCustom(ui.localization.GetText(KeyWelcome), ui.localization.GetText(KeyGetStarted), body, ui.window)
	d.SetOnClosed(func() {
		ui.settings.SetOnboardingComplete(true)
	})
	d.Resize(fyne.NewSize(ToastWidth*1.5, ToastHeight*3))
	d.Show()
}

// addFavorite stores item unless it is already saved and reports the outcome
func (ui *RootUI) addFavorite(item model.FavoriteItem) {
	if ui.favorites.Contains(item.ID) {
		ui.showToast(ui.localization.GetText(KeyAlreadyFavorite))
		return
	}
	ui.favorites.Add(item)
	ui.showToast(ui.localization.GetText(KeyAddedToFavorites))
}

// removeFavorite removes the favorite with id
func (ui *RootUI) removeFavorite(id string) {
	ui.favorites.RemoveByID(id)
	ui.showToast(ui.localization.GetText(KeyRemovedFavorite))
}

// onFavoritesChanged is the favorites store subscriber. It may be called
// from any goroutine.
func (ui *RootUI) onFavoritesChanged(items []model.FavoriteItem) {
	fyne.Do(func() {
		if ui.favoritesView != nil {
			ui.favoritesView.Update(items)
		}
	})
}

// Close detaches the UI from the favorites store
func (ui *RootUI) Close() {
	if ui.unsubscribeFav != nil {
		ui.unsubscribeFav()
		ui.unsubscribeFav = nil
	}
}

// showToast shows a short message in the top-right corner
func (ui *RootUI) showToast(message string) {
	fyne.Do(func() {
		label := widget.NewLabel(message)
		label.Wrapping = fyne.TextWrapWord

		toastPopup := widget.NewPopUp(container.NewPadded(label), ui.window.Canvas())

		canvasSize := ui.window.Canvas().Size()
		toastSize := fyne.NewSize(ToastWidth, ToastHeight)
		toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

		toastPopup.Resize(toastSize)
		toastPopup.Move(toastPos)
		toastPopup.Show()

		time.AfterFunc(ToastAutoHide, func() {
			fyne.Do(toastPopup.Hide)
		})
	})
}
