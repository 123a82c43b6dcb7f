package ui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/blinkratio/internal/calc"
	"github.com/ytget/blinkratio/internal/config"
	"github.com/ytget/blinkratio/internal/model"
	"github.com/ytget/blinkratio/internal/platform"
)

// Ratio calculator modes
type RatioMode int

const (
	RatioModeFind RatioMode = iota
	RatioModeCompare
	RatioModeScale
)

// Default calculator inputs
const (
	DefaultSpacingBase = 8.0
	DefaultColorHex    = model.NeonGreenHex
)

// CalculatorsView hosts the converter, ratio, spacing and color screens
type CalculatorsView struct {
	ui *RootUI
}

// NewCalculatorsView creates the calculators tab
func NewCalculatorsView(ui *RootUI) *CalculatorsView {
	return &CalculatorsView{ui: ui}
}

// Build creates the tab content
func (v *CalculatorsView) Build() fyne.CanvasObject {
	loc := v.ui.localization
	acc := widget.NewAccordion(
		widget.NewAccordionItem(loc.GetText(KeyConverter), v.converter()),
		widget.NewAccordionItem(loc.GetText(KeyRatioCalculator), v.ratio()),
		widget.NewAccordionItem(loc.GetText(KeySpacingGenerator), v.spacing()),
		widget.NewAccordionItem(loc.GetText(KeyColorTools), v.color()),
	)
	acc.MultiOpen = !v.ui.mobile.IsMobileDevice()
	acc.Open(0)
	return container.NewVScroll(acc)
}

// converter builds the unit converter screen
func (v *CalculatorsView) converter() fyne.CanvasObject {
	loc := v.ui.localization
	units := unitOptions(model.AllDesignUnits())

	valueEntry := NewNumericEntry(loc.GetText(KeyValue))
	fromSelect := widget.NewSelect(units, nil)
	toSelect := widget.NewSelect(units, nil)
	result := newResultLabel()

	var favBtn *widget.Button
	update := func() {
		text, ok := converterResult(v.ui.numbers, valueEntry.Text, model.DesignUnit(fromSelect.Selected), model.DesignUnit(toSelect.Selected))
		showResult(result, text, ok)
		setEnabled(favBtn, ok)
	}
	valueEntry.OnChanged = func(string) { update() }
	fromSelect.OnChanged = func(string) { update() }
	toSelect.OnChanged = func(string) { update() }

	favBtn = widget.NewButton(IconStar+" "+loc.GetText(KeyAddFavorite), func() {
		value := strings.TrimSpace(valueEntry.Text)
		meta := result.Text
		v.ui.addFavorite(model.NewFavoriteItem(
			model.FavoriteID("convert", value, fromSelect.Selected, toSelect.Selected),
			value+" "+fromSelect.Selected+" → "+toSelect.Selected,
			loc.GetText(KeyConverter),
			"arrow.left.arrow.right",
			accentFor(model.NeonBlueHex),
			&meta,
		))
	})

	fromSelect.SetSelected(string(v.ui.settings.GetDefaultSpacingUnit()))
	toSelect.SetSelected(string(model.UnitRem))
	valueEntry.SetText("16")

	return container.NewVBox(
		valueEntry,
		v.ui.mobile.CreateAdaptiveContainer(
			widget.NewForm(widget.NewFormItem(loc.GetText(KeyFrom), fromSelect)),
			widget.NewForm(widget.NewFormItem(loc.GetText(KeyTo), toSelect)),
		),
		result,
		favBtn,
	)
}

// ratio builds the ratio calculator with its three modes
func (v *CalculatorsView) ratio() fyne.CanvasObject {
	loc := v.ui.localization

	w1 := NewNumericEntry(loc.GetText(KeyWidth))
	h1 := NewNumericEntry(loc.GetText(KeyHeight))
	w2 := NewNumericEntry(loc.GetText(KeyWidth))
	h2 := NewNumericEntry(loc.GetText(KeyHeight))
	factor := NewNumericEntry(loc.GetText(KeyScaleFactor))
	result := newResultLabel()
	secondRow := v.ui.mobile.CreateAdaptiveContainer(w2, h2)

	modes := []string{loc.GetText(KeyModeFind), loc.GetText(KeyModeCompare), loc.GetText(KeyModeScale)}
	mode := RatioModeFind

	update := func() {
		text, ok := ratioResult(v.ui.localization, v.ui.numbers, mode, w1.Text, h1.Text, w2.Text, h2.Text, factor.Text)
		showResult(result, text, ok)
	}

	modeSelect := widget.NewRadioGroup(modes, func(selected string) {
		for i, m := range modes {
			if m == selected {
				mode = RatioMode(i)
			}
		}
		if mode == RatioModeScale {
			secondRow.Hide()
			factor.Show()
		} else {
			secondRow.Show()
			factor.Hide()
		}
		update()
	})
	modeSelect.Horizontal = true
	modeSelect.Required = true

	for _, e := range []*NumericEntry{w1, h1, w2, h2, factor} {
		e.OnChanged = func(string) { update() }
	}

	favBtn := widget.NewButton(IconStar+" "+loc.GetText(KeyAddFavorite), func() {
		w, okW := parseNumber(w1.Text)
		h, okH := parseNumber(h1.Text)
		r := model.AspectRatio{Width: w, Height: h}
		if !okW || !okH || r.Ratio() <= 0 {
			return
		}
		ratio := v.ui.numbers.Ratio(r.Width, r.Height)
		meta := v.ui.numbers.Format(r.Ratio())
		v.ui.addFavorite(model.NewFavoriteItem(
			model.FavoriteID("ratio", ratio),
			ratio,
			loc.GetText(KeyRatioCalculator),
			model.CardRatios.Icon(),
			accentFor(model.CardRatios.AccentHex()),
			&meta,
		))
	})

	w1.SetText("16")
	h1.SetText("9")
	modeSelect.SetSelected(modes[RatioModeFind])

	return container.NewVBox(
		modeSelect,
		v.ui.mobile.CreateAdaptiveContainer(w1, h1),
		secondRow,
		factor,
		result,
		favBtn,
	)
}

// spacing builds the spacing scale generator
func (v *CalculatorsView) spacing() fyne.CanvasObject {
	loc := v.ui.localization
	settings := v.ui.settings

	baseEntry := NewNumericEntry(loc.GetText(KeyBaseSize))
	ratioEntry := NewNumericEntry(loc.GetText(KeyRatio))
	unitSelect := widget.NewSelect(unitOptions(model.SpacingUnits()), nil)
	stepsLabel := widget.NewLabel("")
	stepsSlider := widget.NewSlider(config.MinSpacingSteps, config.MaxSpacingSteps)
	stepsSlider.Step = 1
	values := container.NewVBox()

	var scale model.SpacingScale
	var favBtn *widget.Button
	update := func() {
		steps := int(stepsSlider.Value)
		stepsLabel.SetText(loc.GetText(KeySteps) + ": " + strconv.Itoa(steps))

		var ok bool
		scale, ok = spacingResult(baseEntry.Text, ratioEntry.Text, steps)
		setEnabled(favBtn, ok && len(scale) > 0)
		values.RemoveAll()
		if !ok {
			return
		}
		for i, value := range scale {
			values.Add(spacingBar(i, v.ui.numbers.Format(value)+" "+unitSelect.Selected, value, scale[len(scale)-1]))
		}
	}

	baseEntry.OnChanged = func(string) { update() }
	ratioEntry.OnChanged = func(text string) {
		if ratio, ok := parseNumber(text); ok && ratio > 0 {
			settings.SetSpacingRatio(ratio)
		}
		update()
	}
	stepsSlider.OnChangeEnded = func(value float64) {
		settings.SetSpacingSteps(int(value))
	}
	stepsSlider.OnChanged = func(float64) { update() }
	unitSelect.OnChanged = func(string) { update() }

	favBtn = widget.NewButton(IconStar+" "+loc.GetText(KeyAddFavorite), func() {
		if len(scale) == 0 {
			return
		}
		parts := make([]string, len(scale))
		for i, value := range scale {
			parts[i] = v.ui.numbers.Format(value)
		}
		meta := strings.Join(parts, ", ")
		v.ui.addFavorite(model.NewFavoriteItem(
			model.FavoriteID("spacing", baseEntry.Text, ratioEntry.Text, strconv.Itoa(len(scale)), unitSelect.Selected),
			loc.GetText(KeySpacingGenerator)+" ×"+strings.TrimSpace(ratioEntry.Text),
			model.CardSpacing.Description(),
			model.CardSpacing.Icon(),
			accentFor(model.CardSpacing.AccentHex()),
			&meta,
		))
	})

	baseEntry.SetText(strconv.FormatFloat(DefaultSpacingBase, 'f', -1, 64))
	ratioEntry.SetText(strconv.FormatFloat(settings.GetSpacingRatio(), 'f', -1, 64))
	stepsSlider.SetValue(float64(settings.GetSpacingSteps()))
	unitSelect.SetSelected(string(settings.GetDefaultSpacingUnit()))

	return container.NewVBox(
		v.ui.mobile.CreateAdaptiveContainer(baseEntry, ratioEntry),
		unitSelect,
		stepsLabel,
		stepsSlider,
		values,
		favBtn,
	)
}

// color builds the hex color tools
func (v *CalculatorsView) color() fyne.CanvasObject {
	loc := v.ui.localization

	hexEntry := widget.NewEntry()
	hexEntry.SetPlaceHolder(loc.GetText(KeyHexColor))
	swatch := canvas.NewRectangle(toColor(fallbackSwatches[SwatchSecondary]))
	swatch.SetMinSize(fyne.NewSize(SwatchSize*2, SwatchSize*2))
	swatch.CornerRadius = SwatchSize / 2
	result := newResultLabel()

	var current model.RGBA
	var favBtn *widget.Button
	update := func() {
		c, ok := calc.ParseHexColor(hexEntry.Text)
		if ok {
			current = c
			swatch.FillColor = toColor(c)
		} else {
			swatch.FillColor = toColor(fallbackSwatches[SwatchSecondary])
		}
		swatch.Refresh()
		showResult(result, colorResult(loc, v.ui.numbers, c), ok)
		setEnabled(favBtn, ok)
	}
	hexEntry.OnChanged = func(string) { update() }

	favBtn = widget.NewButton(IconStar+" "+loc.GetText(KeyAddFavorite), func() {
		info := calc.DescribeColor(current)
		meta := result.Text
		v.ui.addFavorite(model.NewFavoriteItem(
			model.FavoriteID("color", info.Hex),
			"#"+info.Hex,
			loc.GetText(KeyColorTools),
			"paintpalette",
			current,
			&meta,
		))
	})

	hexEntry.SetText(DefaultColorHex)

	return container.NewVBox(
		container.NewBorder(nil, nil, nil, container.NewCenter(swatch), hexEntry),
		result,
		favBtn,
	)
}

// converterResult formats a unit conversion; ok is false on no-result
func converterResult(nf *platform.NumberFormat, valueText string, from, to model.DesignUnit) (string, bool) {
	value, ok := parseNumber(valueText)
	if !ok {
		return "", false
	}
	converted, ok := calc.Convert(value, from, to)
	if !ok {
		return "", false
	}
	return nf.Format(value) + " " + from.String() + " = " + nf.Format(converted) + " " + to.String(), true
}

// ratioResult runs the ratio calculator in mode; ok is false on no-result
func ratioResult(loc *Localization, nf *platform.NumberFormat, mode RatioMode, w1Text, h1Text, w2Text, h2Text, factorText string) (string, bool) {
	w1, ok1 := parseNumber(w1Text)
	h1, ok2 := parseNumber(h1Text)
	if !ok1 || !ok2 {
		return "", false
	}

	switch mode {
	case RatioModeFind:
		w2, ok3 := parseNumber(w2Text)
		h2, ok4 := parseNumber(h2Text)
		if !ok3 || !ok4 {
			return "", false
		}
		dim, ok := calc.SolveMissingDimension(w1, h1, w2, h2)
		if !ok {
			return "", false
		}
		if dim.Side == calc.SideWidth {
			return loc.Textf(KeyMissingWidth, nf.Format(dim.Value)), true
		}
		return loc.Textf(KeyMissingHeight, nf.Format(dim.Value)), true

	case RatioModeCompare:
		w2, ok3 := parseNumber(w2Text)
		h2, ok4 := parseNumber(h2Text)
		if !ok3 || !ok4 {
			return "", false
		}
		cmp, ok := calc.CompareRatios(w1, h1, w2, h2)
		if !ok {
			return "", false
		}
		ratios := nf.Format(cmp.RatioA) + " / " + nf.Format(cmp.RatioB)
		if cmp.Equal {
			return loc.GetText(KeyRatiosEqual) + MiddleDotSeparator + ratios, true
		}
		return loc.Textf(KeyRatiosDiffer, nf.Format(cmp.PercentDifference)) + MiddleDotSeparator + ratios, true

	case RatioModeScale:
		factor, ok := parseNumber(factorText)
		if !ok {
			return "", false
		}
		w, h, ok := calc.ScaleRatio(w1, h1, factor)
		if !ok {
			return "", false
		}
		return loc.Textf(KeyScaledSize, nf.Format(w), nf.Format(h)), true
	}
	return "", false
}

// colorResult describes c for display
func colorResult(loc *Localization, nf *platform.NumberFormat, c model.RGBA) string {
	info := calc.DescribeColor(c)
	white := model.RGBA{R: 255, G: 255, B: 255, A: 255}
	black := model.RGBA{A: 255}

	lines := []string{
		"#" + info.Hex + MiddleDotSeparator + "RGB " + strconv.Itoa(int(c.R)) + ", " + strconv.Itoa(int(c.G)) + ", " + strconv.Itoa(int(c.B)),
		"HSL " + nf.Format(info.Hue) + "°, " + nf.Format(info.Saturation*100) + "%, " + nf.Format(info.Lightness*100) + "%",
		loc.Textf(KeyContrastWhite, nf.Format(calc.ContrastRatio(c, white))),
		loc.Textf(KeyContrastBlack, nf.Format(calc.ContrastRatio(c, black))),
	}
	return strings.Join(lines, "\n")
}

// parseNumber parses a calculator entry. Blank means "not given" and reads
// as zero; a comma decimal separator is accepted.
func parseNumber(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, true
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// spacingResult generates the scale for the entry texts; nil and false on no-result
func spacingResult(baseText, ratioText string, steps int) (model.SpacingScale, bool) {
	base, okBase := parseNumber(baseText)
	ratio, okRatio := parseNumber(ratioText)
	if !okBase || !okRatio {
		return nil, false
	}
	scale, ok := calc.GenerateSpacingScale(base, ratio, steps)
	if !ok {
		return nil, false
	}
	return scale, true
}

func unitOptions(units []model.DesignUnit) []string {
	options := make([]string, len(units))
	for i, u := range units {
		options[i] = u.String()
	}
	return options
}

func accentFor(hex string) model.RGBA {
	c, ok := calc.ParseHexColor(hex)
	if !ok {
		return fallbackSwatches[SwatchNeonGreen]
	}
	return c
}

func newResultLabel() *widget.Label {
	label := widget.NewLabel("")
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.Wrapping = fyne.TextWrapWord
	label.Hide()
	return label
}

// showResult shows text, or hides the label on no-result
func showResult(label *widget.Label, text string, ok bool) {
	if !ok {
		label.Hide()
		return
	}
	label.SetText(text)
	label.Show()
}

func setEnabled(btn *widget.Button, enabled bool) {
	if btn == nil {
		return
	}
	if enabled {
		btn.Enable()
	} else {
		btn.Disable()
	}
}

// spacingBar renders one spacing step as a bar proportional to the largest step
func spacingBar(index int, label string, value, largest float64) fyne.CanvasObject {
	bar := canvas.NewRectangle(toColor(fallbackSwatches[SwatchNeonPink]))
	width := float32(GridPreviewWidth)
	if largest > 0 {
		width = float32(value/largest) * GridPreviewWidth
	}
	bar.SetMinSize(fyne.NewSize(fyne.Max(width, 2), SwatchSize/3))
	text := widget.NewLabel(strconv.Itoa(index) + ". " + label)
	return container.NewBorder(nil, nil, text, nil, container.NewHBox(bar))
}
