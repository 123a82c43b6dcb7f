package ui

import (
	"fmt"

	"github.com/ytget/blinkratio/internal/platform"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyTabReference       = "tab_reference"
	KeyTabCalculators     = "tab_calculators"
	KeyTabFavorites       = "tab_favorites"
	KeyConverter          = "converter"
	KeyRatioCalculator    = "ratio_calculator"
	KeySpacingGenerator   = "spacing_generator"
	KeyColorTools         = "color_tools"
	KeyValue              = "value"
	KeyFrom               = "from"
	KeyTo                 = "to"
	KeyWidth              = "width"
	KeyHeight             = "height"
	KeyModeFind           = "mode_find"
	KeyModeCompare        = "mode_compare"
	KeyModeScale          = "mode_scale"
	KeyScaleFactor        = "scale_factor"
	KeyRatiosEqual        = "ratios_equal"
	KeyRatiosDiffer       = "ratios_differ"
	KeyMissingWidth       = "missing_width"
	KeyMissingHeight      = "missing_height"
	KeyScaledSize         = "scaled_size"
	KeyBaseSize           = "base_size"
	KeyRatio              = "ratio"
	KeySteps              = "steps"
	KeyHexColor           = "hex_color"
	KeyContrastWhite      = "contrast_white"
	KeyContrastBlack      = "contrast_black"
	KeyAddFavorite        = "add_favorite"
	KeyRemove             = "remove"
	KeyClearAll           = "clear_all"
	KeyConfirmClearAll    = "confirm_clear_all"
	KeyFavoritesEmpty     = "favorites_empty"
	KeySearch             = "search"
	KeyAddedToFavorites   = "added_to_favorites"
	KeyAlreadyFavorite    = "already_favorite"
	KeyRemovedFavorite    = "removed_favorite"
	KeyExportQuality      = "export_quality"
	KeyShowMeasurements   = "show_measurements"
	KeyHapticFeedback     = "haptic_feedback"
	KeyDefaultSpacingUnit = "default_spacing_unit"
	KeyResetDefaults      = "reset_defaults"
	KeyResetOnboarding    = "reset_onboarding"
	KeyClearAllData       = "clear_all_data"
	KeySystemDefault      = "system_default"
	KeyCommonRatios       = "common_ratios"
	KeyColumnWidth        = "column_width"
	KeyContentArea        = "content_area"
	KeyLineHeight         = "line_height"
	KeyWelcome            = "welcome"
	KeyWelcomeBody        = "welcome_body"
	KeyGetStarted         = "get_started"
)

// SupportedLanguages lists the languages with translation tables
var SupportedLanguages = []string{"en", "ru", "pt"}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" resolves to the closest
// supported match for the OS locale.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = platform.DetectLanguage(SupportedLanguages)
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Textf formats the localized text for key with args
func (l *Localization) Textf(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "BlinkRatio",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyTabReference:       "Reference",
		KeyTabCalculators:     "Calculators",
		KeyTabFavorites:       "Favorites",
		KeyConverter:          "Unit Converter",
		KeyRatioCalculator:    "Ratio Calculator",
		KeySpacingGenerator:   "Spacing Scale",
		KeyColorTools:         "Color Tools",
		KeyValue:              "Value",
		KeyFrom:               "From",
		KeyTo:                 "To",
		KeyWidth:              "Width",
		KeyHeight:             "Height",
		KeyModeFind:           "Find Missing",
		KeyModeCompare:        "Compare",
		KeyModeScale:          "Scale",
		KeyScaleFactor:        "Scale factor",
		KeyRatiosEqual:        "Ratios are equal",
		KeyRatiosDiffer:       "Ratios differ by %s%%",
		KeyMissingWidth:       "Width = %s",
		KeyMissingHeight:      "Height = %s",
		KeyScaledSize:         "Scaled: %s × %s",
		KeyBaseSize:           "Base size",
		KeyRatio:              "Ratio",
		KeySteps:              "Steps",
		KeyHexColor:           "Hex color",
		KeyContrastWhite:      "Contrast on white: %s:1",
		KeyContrastBlack:      "Contrast on black: %s:1",
		KeyAddFavorite:        "Add to favorites",
		KeyRemove:             "Remove",
		KeyClearAll:           "Clear all",
		KeyConfirmClearAll:    "Remove all favorites?",
		KeyFavoritesEmpty:     "No favorites yet",
		KeySearch:             "Search…",
		KeyAddedToFavorites:   "Added to favorites",
		KeyAlreadyFavorite:    "Already in favorites",
		KeyRemovedFavorite:    "Removed from favorites",
		KeyExportQuality:      "Export quality",
		KeyShowMeasurements:   "Show measurements",
		KeyHapticFeedback:     "Haptic feedback",
		KeyDefaultSpacingUnit: "Default spacing unit",
		KeyResetDefaults:      "Reset to defaults",
		KeyResetOnboarding:    "Show welcome again",
		KeyClearAllData:       "Clear all data",
		KeySystemDefault:      "System Default",
		KeyCommonRatios:       "Common Ratios",
		KeyColumnWidth:        "Column width at %spt: %s",
		KeyContentArea:        "Content area: %s × %s",
		KeyLineHeight:         "%spt / %spt line",
		KeyWelcome:            "Welcome to BlinkRatio",
		KeyWelcomeBody:        "Design ratios, spacing, typography and color tools in one place.",
		KeyGetStarted:         "Get started",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "BlinkRatio",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyTabReference:       "Справочник",
		KeyTabCalculators:     "Калькуляторы",
		KeyTabFavorites:       "Избранное",
		KeyConverter:          "Конвертер единиц",
		KeyRatioCalculator:    "Пропорции",
		KeySpacingGenerator:   "Шкала отступов",
		KeyColorTools:         "Цвет",
		KeyValue:              "Значение",
		KeyFrom:               "Из",
		KeyTo:                 "В",
		KeyWidth:              "Ширина",
		KeyHeight:             "Высота",
		KeyModeFind:           "Найти сторону",
		KeyModeCompare:        "Сравнить",
		KeyModeScale:          "Масштаб",
		KeyScaleFactor:        "Коэффициент",
		KeyRatiosEqual:        "Пропорции равны",
		KeyRatiosDiffer:       "Разница пропорций %s%%",
		KeyMissingWidth:       "Ширина = %s",
		KeyMissingHeight:      "Высота = %s",
		KeyScaledSize:         "Результат: %s × %s",
		KeyBaseSize:           "Базовый размер",
		KeyRatio:              "Множитель",
		KeySteps:              "Шаги",
		KeyHexColor:           "Цвет (hex)",
		KeyContrastWhite:      "Контраст на белом: %s:1",
		KeyContrastBlack:      "Контраст на чёрном: %s:1",
		KeyAddFavorite:        "В избранное",
		KeyRemove:             "Удалить",
		KeyClearAll:           "Очистить",
		KeyConfirmClearAll:    "Удалить всё избранное?",
		KeyFavoritesEmpty:     "Избранное пусто",
		KeySearch:             "Поиск…",
		KeyAddedToFavorites:   "Добавлено в избранное",
		KeyAlreadyFavorite:    "Уже в избранном",
		KeyRemovedFavorite:    "Удалено из избранного",
		KeyExportQuality:      "Качество экспорта",
		KeyShowMeasurements:   "Показывать размеры",
		KeyHapticFeedback:     "Тактильный отклик",
		KeyDefaultSpacingUnit: "Единица отступов",
		KeyResetDefaults:      "Сбросить настройки",
		KeyResetOnboarding:    "Показать приветствие",
		KeyClearAllData:       "Удалить все данные",
		KeySystemDefault:      "Системный",
		KeyCommonRatios:       "Популярные пропорции",
		KeyColumnWidth:        "Ширина колонки при %spt: %s",
		KeyContentArea:        "Безопасная область: %s × %s",
		KeyLineHeight:         "%spt / строка %spt",
		KeyWelcome:            "Добро пожаловать в BlinkRatio",
		KeyWelcomeBody:        "Пропорции, отступы, типографика и цвет в одном месте.",
		KeyGetStarted:         "Начать",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "BlinkRatio",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyTabReference:       "Referência",
		KeyTabCalculators:     "Calculadoras",
		KeyTabFavorites:       "Favoritos",
		KeyConverter:          "Conversor de Unidades",
		KeyRatioCalculator:    "Calculadora de Proporção",
		KeySpacingGenerator:   "Escala de Espaçamento",
		KeyColorTools:         "Ferramentas de Cor",
		KeyValue:              "Valor",
		KeyFrom:               "De",
		KeyTo:                 "Para",
		KeyWidth:              "Largura",
		KeyHeight:             "Altura",
		KeyModeFind:           "Encontrar",
		KeyModeCompare:        "Comparar",
		KeyModeScale:          "Escalar",
		KeyScaleFactor:        "Fator de escala",
		KeyRatiosEqual:        "As proporções são iguais",
		KeyRatiosDiffer:       "As proporções diferem em %s%%",
		KeyMissingWidth:       "Largura = %s",
		KeyMissingHeight:      "Altura = %s",
		KeyScaledSize:         "Escalado: %s × %s",
		KeyBaseSize:           "Tamanho base",
		KeyRatio:              "Razão",
		KeySteps:              "Passos",
		KeyHexColor:           "Cor hex",
		KeyContrastWhite:      "Contraste no branco: %s:1",
		KeyContrastBlack:      "Contraste no preto: %s:1",
		KeyAddFavorite:        "Adicionar aos favoritos",
		KeyRemove:             "Remover",
		KeyClearAll:           "Limpar tudo",
		KeyConfirmClearAll:    "Remover todos os favoritos?",
		KeyFavoritesEmpty:     "Nenhum favorito ainda",
		KeySearch:             "Buscar…",
		KeyAddedToFavorites:   "Adicionado aos favoritos",
		KeyAlreadyFavorite:    "Já está nos favoritos",
		KeyRemovedFavorite:    "Removido dos favoritos",
		KeyExportQuality:      "Qualidade de exportação",
		KeyShowMeasurements:   "Mostrar medidas",
		KeyHapticFeedback:     "Resposta tátil",
		KeyDefaultSpacingUnit: "Unidade de espaçamento",
		KeyResetDefaults:      "Restaurar padrões",
		KeyResetOnboarding:    "Mostrar boas-vindas",
		KeyClearAllData:       "Apagar todos os dados",
		KeySystemDefault:      "Padrão do sistema",
		KeyCommonRatios:       "Proporções Comuns",
		KeyColumnWidth:        "Largura da coluna em %spt: %s",
		KeyContentArea:        "Área de conteúdo: %s × %s",
		KeyLineHeight:         "%spt / linha %spt",
		KeyWelcome:            "Bem-vindo ao BlinkRatio",
		KeyWelcomeBody:        "Proporções, espaçamento, tipografia e cor em um só lugar.",
		KeyGetStarted:         "Começar",
	}
}
