package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/blinkratio/internal/model"
	"github.com/ytget/blinkratio/internal/reference"
)

// Palette swatch names looked up in the reference catalog
const (
	SwatchNeonGreen  = "Neon Green"
	SwatchNeonPink   = "Neon Pink"
	SwatchNeonBlue   = "Neon Blue"
	SwatchBackground = "Background"
	SwatchSecondary  = "Secondary"
	SwatchWhite      = "White"
)

// fallbacks used when the catalog palette lacks a swatch
var fallbackSwatches = map[string]model.RGBA{
	SwatchNeonGreen:  {R: 0x00, G: 0xFF, B: 0x94, A: 0xFF},
	SwatchNeonPink:   {R: 0xFF, G: 0x00, B: 0x7C, A: 0xFF},
	SwatchNeonBlue:   {R: 0x2E, G: 0xAA, B: 0xFF, A: 0xFF},
	SwatchBackground: {R: 0x11, G: 0x12, B: 0x16, A: 0xFF},
	SwatchSecondary:  {R: 0x1B, G: 0x1D, B: 0x23, A: 0xFF},
	SwatchWhite:      {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
}

// NeonTheme is the dark neon theme. It is always dark regardless of the
// system variant.
type NeonTheme struct {
	primary    color.Color
	accent     color.Color
	info       color.Color
	background color.Color
	secondary  color.Color
	foreground color.Color
}

// NewNeonTheme creates the theme from the catalog palette
func NewNeonTheme(catalog *reference.Catalog) fyne.Theme {
	swatch := func(name string) color.Color {
		if catalog != nil {
			if c, ok := catalog.Swatch(name); ok {
				return toColor(c)
			}
		}
		return toColor(fallbackSwatches[name])
	}

	return &NeonTheme{
		primary:    swatch(SwatchNeonGreen),
		accent:     swatch(SwatchNeonPink),
		info:       swatch(SwatchNeonBlue),
		background: swatch(SwatchBackground),
		secondary:  swatch(SwatchSecondary),
		foreground: swatch(SwatchWhite),
	}
}

// Color returns theme colors
func (t *NeonTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameSuccess, theme.ColorNameFocus:
		return t.primary
	case theme.ColorNameError:
		return t.accent
	case theme.ColorNameHyperlink:
		return t.info
	case theme.ColorNameBackground:
		return t.background
	case theme.ColorNameButton, theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return t.secondary
	case theme.ColorNameForeground:
		return t.foreground
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *NeonTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *NeonTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *NeonTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 8
	case theme.SizeNameSelectionRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}

// toColor converts an engine color to an image color
func toColor(c model.RGBA) color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
