package platform

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MaxDisplayDecimals is the number of fraction digits shown for results
const MaxDisplayDecimals = 2

// RatioSeparator joins the two sides of a displayed ratio
const RatioSeparator = " : "

// NumberFormat renders calculator results with the separators of a language
type NumberFormat struct {
	printer *message.Printer
}

// NewNumberFormat creates a formatter for the language code; unknown codes
// format as English
func NewNumberFormat(lang string) *NumberFormat {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &NumberFormat{printer: message.NewPrinter(tag)}
}

// Format renders v with at most MaxDisplayDecimals fraction digits and no
// trailing zeros
func (f *NumberFormat) Format(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(MaxDisplayDecimals)))
}

// Ratio renders w : h
func (f *NumberFormat) Ratio(w, h float64) string {
	return f.Format(w) + RatioSeparator + f.Format(h)
}
