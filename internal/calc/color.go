package calc

import (
	"strconv"
	"strings"
	"unicode"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ytget/blinkratio/internal/model"
)

// nibbleScale expands a 4-bit channel to 8 bits (0xF -> 0xFF)
const nibbleScale = 17

// ColorInfo describes a color for the color tools screen
type ColorInfo struct {
	Hex        string
	Hue        float64 // degrees, 0-360
	Saturation float64 // 0-1
	Lightness  float64 // 0-1
	Luminance  float64 // WCAG relative luminance, 0-1
}

// ParseHexColor parses RGB, RRGGBB or AARRGGBB after stripping every
// non-alphanumeric character, so "#00ff94" and "00FF94" are equivalent.
func ParseHexColor(hex string) (model.RGBA, bool) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, hex)

	n := len([]rune(digits))
	if n != 3 && n != 6 && n != 8 {
		return model.RGBA{}, false
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return model.RGBA{}, false
	}

	switch n {
	case 3:
		return model.RGBA{
			R: uint8(v>>8) * nibbleScale,
			G: uint8(v>>4&0xF) * nibbleScale,
			B: uint8(v&0xF) * nibbleScale,
			A: 255,
		}, true
	case 6:
		return model.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
	default:
		return model.RGBA{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
	}
}

// ColorToHex formats r, g, b as six uppercase hex digits
func ColorToHex(r, g, b uint8) string {
	return model.RGBA{R: r, G: g, B: b, A: 255}.Hex()
}

// DescribeColor returns hex, HSL and luminance for c. Alpha is ignored.
func DescribeColor(c model.RGBA) ColorInfo {
	cc := toColorful(c)
	h, s, l := cc.Hsl()
	return ColorInfo{
		Hex:        c.Hex(),
		Hue:        h,
		Saturation: s,
		Lightness:  l,
		Luminance:  relativeLuminance(cc),
	}
}

// ContrastRatio returns the WCAG contrast ratio between two colors, 1 to 21
func ContrastRatio(a, b model.RGBA) float64 {
	la := relativeLuminance(toColorful(a))
	lb := relativeLuminance(toColorful(b))
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

func toColorful(c model.RGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
