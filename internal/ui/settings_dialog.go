package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/blinkratio/internal/config"
	"github.com/ytget/blinkratio/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(cleared bool)

	clearRequested bool

	// UI components
	qualitySelect      *widget.Select
	measurementsCheck  *widget.Check
	hapticCheck        *widget.Check
	spacingUnitSelect  *widget.Select
	languageSelect     *widget.Select
	languageCodeByName map[string]string
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs
// after a save; cleared reports whether the user asked to erase favorites.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func(cleared bool)) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(cleared bool)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	qualityOptions := []string{}
	for _, q := range sd.settings.GetExportQualityOptions() {
		qualityOptions = append(qualityOptions, string(q))
	}
	sd.qualitySelect = widget.NewSelect(qualityOptions, nil)

	sd.measurementsCheck = widget.NewCheck(loc.GetText(KeyShowMeasurements), nil)
	sd.hapticCheck = widget.NewCheck(loc.GetText(KeyHapticFeedback), nil)

	sd.spacingUnitSelect = widget.NewSelect(unitOptions(model.SpacingUnits()), nil)

	// Language selection shows display names; map them back to codes on save
	sd.languageCodeByName = make(map[string]string)
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		if code == config.DefaultLanguage {
			name = loc.GetText(KeySystemDefault)
		}
		sd.languageCodeByName[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	resetBtn := widget.NewButton(loc.GetText(KeyResetDefaults), func() {
		sd.settings.ResetDefaults()
		sd.loadCurrentSettings()
	})
	onboardingBtn := widget.NewButton(loc.GetText(KeyResetOnboarding), sd.settings.ResetOnboarding)
	clearBtn := widget.NewButton(loc.GetText(KeyClearAllData), sd.onClearAllData)
	clearBtn.Importance = widget.DangerImportance

	form := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem(loc.GetText(KeyExportQuality), sd.qualitySelect),
			widget.NewFormItem(loc.GetText(KeyDefaultSpacingUnit), sd.spacingUnitSelect),
			widget.NewFormItem(loc.GetText(KeyLanguage), sd.languageSelect),
		),
		sd.measurementsCheck,
		sd.hapticCheck,
		widget.NewSeparator(),
		container.NewGridWithColumns(2, resetBtn, onboardingBtn),
		clearBtn,
	)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 420))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.qualitySelect.SetSelected(string(sd.settings.GetExportQuality()))
	sd.measurementsCheck.SetChecked(sd.settings.GetShowMeasurements())
	sd.hapticCheck.SetChecked(sd.settings.GetHapticFeedback())
	sd.spacingUnitSelect.SetSelected(string(sd.settings.GetDefaultSpacingUnit()))

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodeByName {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}
}

// onClearAllData asks for confirmation before erasing favorites
func (sd *SettingsDialog) onClearAllData() {
	loc := sd.localization
	dialog.ShowConfirm(loc.GetText(KeyClearAllData), loc.GetText(KeyConfirmClearAll), func(confirmed bool) {
		if confirmed {
			sd.settings.ClearAllData()
			sd.clearRequested = true
		}
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		if sd.clearRequested && sd.onSaved != nil {
			sd.onSaved(true)
		}
		return
	}

	if sd.qualitySelect.Selected != "" {
		sd.settings.SetExportQuality(model.ExportQuality(sd.qualitySelect.Selected))
	}
	sd.settings.SetShowMeasurements(sd.measurementsCheck.Checked)
	sd.settings.SetHapticFeedback(sd.hapticCheck.Checked)

	if unit, ok := model.ParseDesignUnit(sd.spacingUnitSelect.Selected); ok {
		sd.settings.SetDefaultSpacingUnit(unit)
	}

	if code, ok := sd.languageCodeByName[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved(sd.clearRequested)
	}
}
