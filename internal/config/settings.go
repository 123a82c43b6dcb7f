package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/blinkratio/internal/favorites"
	"github.com/ytget/blinkratio/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyExportQuality      = "export_quality"
	KeyShowMeasurements   = "show_measurements"
	KeyHapticFeedback     = "enable_haptic_feedback"
	KeyDefaultSpacingUnit = "default_spacing_unit"
	KeyLanguage           = "app_language"
	KeyOnboardingComplete = "has_completed_onboarding"
	KeySpacingSteps       = "spacing_scale_steps"
	KeySpacingRatio       = "spacing_scale_ratio"
)

// Default values
const (
	DefaultExportQuality      = model.ExportHigh
	DefaultShowMeasurements   = true
	DefaultHapticFeedback     = true
	DefaultSpacingUnit        = model.UnitPixel
	DefaultLanguage           = "system"
	DefaultSpacingSteps       = 6
	DefaultSpacingRatio       = 1.5
	DefaultOnboardingComplete = false
)

// Spacing scale step bounds offered by the generator
const (
	MinSpacingSteps = 4
	MaxSpacingSteps = 12
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetExportQuality returns the configured export quality
func (s *Settings) GetExportQuality() model.ExportQuality {
	q := model.ExportQuality(s.app.Preferences().String(KeyExportQuality))
	switch q {
	case model.ExportLow, model.ExportMedium, model.ExportHigh:
		return q
	}
	s.SetExportQuality(DefaultExportQuality)
	return DefaultExportQuality
}

// SetExportQuality sets the export quality
func (s *Settings) SetExportQuality(q model.ExportQuality) {
	s.app.Preferences().SetString(KeyExportQuality, string(q))
}

// GetShowMeasurements returns whether reference screens draw measurements
func (s *Settings) GetShowMeasurements() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowMeasurements, DefaultShowMeasurements)
}

// SetShowMeasurements sets whether reference screens draw measurements
func (s *Settings) SetShowMeasurements(show bool) {
	s.app.Preferences().SetBool(KeyShowMeasurements, show)
}

// GetHapticFeedback returns whether haptic feedback is enabled
func (s *Settings) GetHapticFeedback() bool {
	return s.app.Preferences().BoolWithFallback(KeyHapticFeedback, DefaultHapticFeedback)
}

// SetHapticFeedback sets whether haptic feedback is enabled
func (s *Settings) SetHapticFeedback(enabled bool) {
	s.app.Preferences().SetBool(KeyHapticFeedback, enabled)
}

// GetDefaultSpacingUnit returns the unit preselected in calculators
func (s *Settings) GetDefaultSpacingUnit() model.DesignUnit {
	u, ok := model.ParseDesignUnit(s.app.Preferences().String(KeyDefaultSpacingUnit))
	if !ok || !isSpacingUnit(u) {
		s.SetDefaultSpacingUnit(DefaultSpacingUnit)
		return DefaultSpacingUnit
	}
	return u
}

// SetDefaultSpacingUnit sets the default spacing unit; unsupported units reset to the default
func (s *Settings) SetDefaultSpacingUnit(u model.DesignUnit) {
	if !isSpacingUnit(u) {
		u = DefaultSpacingUnit
	}
	s.app.Preferences().SetString(KeyDefaultSpacingUnit, string(u))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetOnboardingComplete returns whether onboarding was finished
func (s *Settings) GetOnboardingComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyOnboardingComplete, DefaultOnboardingComplete)
}

// SetOnboardingComplete records onboarding completion
func (s *Settings) SetOnboardingComplete(done bool) {
	s.app.Preferences().SetBool(KeyOnboardingComplete, done)
}

// ResetOnboarding makes onboarding show again on next launch
func (s *Settings) ResetOnboarding() {
	s.app.Preferences().RemoveValue(KeyOnboardingComplete)
}

// GetSpacingSteps returns the spacing generator step count
func (s *Settings) GetSpacingSteps() int {
	value := s.app.Preferences().Int(KeySpacingSteps)
	if value <= 0 {
		s.SetSpacingSteps(DefaultSpacingSteps)
		return DefaultSpacingSteps
	}
	return value
}

// SetSpacingSteps sets the spacing generator step count, clamped to 4-12
func (s *Settings) SetSpacingSteps(steps int) {
	if steps < MinSpacingSteps {
		steps = MinSpacingSteps
	}
	if steps > MaxSpacingSteps {
		steps = MaxSpacingSteps
	}
	s.app.Preferences().SetInt(KeySpacingSteps, steps)
}

// GetSpacingRatio returns the spacing generator ratio
func (s *Settings) GetSpacingRatio() float64 {
	value := s.app.Preferences().Float(KeySpacingRatio)
	if value <= 0 {
		s.SetSpacingRatio(DefaultSpacingRatio)
		return DefaultSpacingRatio
	}
	return value
}

// SetSpacingRatio sets the spacing generator ratio; non-positive values reset to the default
func (s *Settings) SetSpacingRatio(ratio float64) {
	if ratio <= 0 {
		ratio = DefaultSpacingRatio
	}
	s.app.Preferences().SetFloat(KeySpacingRatio, ratio)
}

// ResetDefaults restores display settings, leaving favorites and onboarding alone
func (s *Settings) ResetDefaults() {
	s.SetExportQuality(DefaultExportQuality)
	s.SetShowMeasurements(DefaultShowMeasurements)
	s.SetHapticFeedback(DefaultHapticFeedback)
	s.SetDefaultSpacingUnit(DefaultSpacingUnit)
}

// ClearAllData erases stored favorites. A running favorites.Store keeps its
// in-memory list; callers should also call ClearAll on it.
func (s *Settings) ClearAllData() {
	s.app.Preferences().RemoveValue(favorites.StorageKey)
}

// GetExportQualityOptions returns available export qualities
func (s *Settings) GetExportQualityOptions() []model.ExportQuality {
	return []model.ExportQuality{model.ExportLow, model.ExportMedium, model.ExportHigh}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func isSpacingUnit(u model.DesignUnit) bool {
	for _, su := range model.SpacingUnits() {
		if su == u {
			return true
		}
	}
	return false
}
