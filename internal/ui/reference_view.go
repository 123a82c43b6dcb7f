package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/blinkratio/internal/calc"
	"github.com/ytget/blinkratio/internal/model"
	"github.com/ytget/blinkratio/internal/reference"
)

// ReferenceView shows the reference cards with a search filter
type ReferenceView struct {
	ui       *RootUI
	catalog  *reference.Catalog
	measures bool
	cards    *fyne.Container
}

// NewReferenceView creates the reference tab
func NewReferenceView(ui *RootUI) *ReferenceView {
	return &ReferenceView{
		ui:       ui,
		catalog:  ui.catalog,
		measures: ui.settings.GetShowMeasurements(),
	}
}

// Build creates the tab content
func (v *ReferenceView) Build() fyne.CanvasObject {
	search := widget.NewEntry()
	search.SetPlaceHolder(v.ui.localization.GetText(KeySearch))
	search.OnChanged = v.filter

	v.cards = container.NewVBox()
	v.filter("")

	return container.NewBorder(search, nil, nil, nil, container.NewVScroll(v.cards))
}

// filter shows the cards matching query
func (v *ReferenceView) filter(query string) {
	v.cards.RemoveAll()

	acc := widget.NewAccordion()
	for _, card := range v.catalog.Search(query) {
		acc.Append(widget.NewAccordionItem(card.Title(), v.card(card)))
	}
	v.cards.Add(acc)

	if query == "" {
		v.cards.Add(widget.NewCard(v.ui.localization.GetText(KeyCommonRatios), "", v.commonRatios()))
	}
	v.cards.Refresh()
}

// card builds the detail content for one reference card
func (v *ReferenceView) card(card model.ReferenceCardType) fyne.CanvasObject {
	var body fyne.CanvasObject
	switch card {
	case model.CardRatios:
		body = v.aspectRatios()
	case model.CardSpacing:
		body = v.spacingGrid()
	case model.CardTypography:
		body = v.typography()
	case model.CardSafeZones:
		body = v.safeZones()
	case model.CardGridSystems:
		body = v.gridSystems()
	default:
		body = widget.NewLabel(DashPlaceholder)
	}

	favBtn := widget.NewButton(IconStar, func() {
		v.ui.addFavorite(model.NewFavoriteItem(
			model.FavoriteID("card", card.String()),
			card.Title(),
			card.Description(),
			card.Icon(),
			accentFor(card.AccentHex()),
			nil,
		))
	})
	favBtn.Importance = widget.LowImportance

	accent := canvas.NewRectangle(toColor(accentFor(card.AccentHex())))
	accent.SetMinSize(fyne.NewSize(SwatchSize/6, SwatchSize))
	header := container.NewBorder(nil, nil, accent, favBtn, widget.NewLabel(card.Description()))
	return container.NewVBox(header, body)
}

func (v *ReferenceView) aspectRatios() fyne.CanvasObject {
	rows := container.NewVBox()
	for _, r := range v.catalog.AspectRatios {
		ratio := r.AspectRatio()
		preview := canvas.NewRectangle(toColor(accentFor(r.Color)))
		preview.SetMinSize(fyne.NewSize(RatioPreviewHeight*float32(ratio.Ratio()), RatioPreviewHeight))
		preview.CornerRadius = 4

		text := r.Name + MiddleDotSeparator + r.Description
		if v.measures {
			text += MiddleDotSeparator + v.ui.numbers.Format(ratio.Ratio())
		}
		rows.Add(container.NewBorder(nil, nil, container.NewCenter(preview), v.ratioFavoriteButton(r.Name, r.Description, ratio, r.Color), widget.NewLabel(text)))
	}
	return rows
}

func (v *ReferenceView) commonRatios() fyne.CanvasObject {
	rows := container.NewVBox()
	for _, r := range v.catalog.CommonRatios {
		ratio, ok := calc.ParseRatio(r.Value)
		if !ok {
			continue
		}
		label := widget.NewLabel(r.Name + MiddleDotSeparator + v.ui.numbers.Ratio(ratio.Width, ratio.Height))
		rows.Add(container.NewBorder(nil, nil, nil, v.ratioFavoriteButton(r.Name, r.Value, ratio, model.CardRatios.AccentHex()), label))
	}
	return rows
}

func (v *ReferenceView) ratioFavoriteButton(name, description string, ratio model.AspectRatio, hex string) fyne.CanvasObject {
	return v.ui.mobile.CreateMobileButton(IconStar, func() {
		meta := v.ui.numbers.Format(ratio.Ratio())
		v.ui.addFavorite(model.NewFavoriteItem(
			model.FavoriteID("ratio", v.ui.numbers.Ratio(ratio.Width, ratio.Height)),
			name,
			description,
			model.CardRatios.Icon(),
			accentFor(hex),
			&meta,
		))
	})
}

func (v *ReferenceView) spacingGrid() fyne.CanvasObject {
	rows := container.NewVBox()
	values := v.catalog.Spacing.Values
	if len(values) == 0 {
		return rows
	}
	largest := values[len(values)-1]
	for i, value := range values {
		rows.Add(spacingBar(i, v.ui.numbers.Format(value)+" pt", value, largest))
	}
	return rows
}

func (v *ReferenceView) typography() fyne.CanvasObject {
	rows := container.NewVBox()
	base := v.catalog.Typography.BaseSize
	for _, style := range v.catalog.Typography.Styles {
		sample := canvas.NewText(style.Name, toColor(fallbackSwatches[SwatchWhite]))
		sample.TextSize = float32(style.Size)
		sample.TextStyle = fyne.TextStyle{Bold: style.Weight == "bold" || style.Weight == "semibold"}

		details := style.Usage
		if v.measures {
			details += MiddleDotSeparator + v.ui.localization.Textf(KeyLineHeight, v.ui.numbers.Format(style.Size), v.ui.numbers.Format(style.LineHeight)) +
				MiddleDotSeparator + "×" + v.ui.numbers.Format(style.ScaleRatio(base))
		}
		rows.Add(container.NewVBox(sample, widget.NewLabel(details)))
	}
	return rows
}

func (v *ReferenceView) safeZones() fyne.CanvasObject {
	rows := container.NewVBox()
	for _, device := range v.catalog.Devices {
		area := device.ContentArea()

		screen := canvas.NewRectangle(toColor(fallbackSwatches[SwatchSecondary]))
		screen.StrokeColor = toColor(fallbackSwatches[SwatchNeonBlue])
		screen.StrokeWidth = 1
		screen.SetMinSize(fyne.NewSize(float32(device.Screen.Width)*DevicePreviewScale/2, float32(device.Screen.Height)*DevicePreviewScale/2))

		safe := canvas.NewRectangle(toColor(fallbackSwatches[SwatchNeonGreen]))
		safe.SetMinSize(fyne.NewSize(float32(area.Width)*DevicePreviewScale/2, float32(area.Height)*DevicePreviewScale/2))

		text := device.Name + MiddleDotSeparator + v.ui.numbers.Format(device.Screen.Width) + " × " + v.ui.numbers.Format(device.Screen.Height)
		if v.measures {
			text += "\n" + v.ui.localization.Textf(KeyContentArea, v.ui.numbers.Format(area.Width), v.ui.numbers.Format(area.Height))
		}
		label := widget.NewLabel(text)
		label.Wrapping = fyne.TextWrapWord

		rows.Add(container.NewBorder(nil, nil, container.NewStack(screen, container.NewCenter(safe)), nil, label))
	}
	return rows
}

func (v *ReferenceView) gridSystems() fyne.CanvasObject {
	rows := container.NewVBox()
	for _, grid := range v.catalog.GridSystems {
		columns := container.NewGridWithColumns(max(grid.Columns, 1))
		for i := 0; i < grid.Columns; i++ {
			col := canvas.NewRectangle(toColor(accentFor(model.CardGridSystems.AccentHex())))
			col.SetMinSize(fyne.NewSize(1, GridPreviewHeight))
			columns.Add(col)
		}
		preview := container.NewGridWrap(fyne.NewSize(GridPreviewWidth, GridPreviewHeight), columns)

		text := grid.Name + MiddleDotSeparator + grid.Description
		if v.measures {
			width := DashPlaceholder
			if w, ok := grid.ColumnWidth(ReferenceWidth); ok {
				width = v.ui.numbers.Format(w)
			}
			text += "\n" + v.ui.localization.Textf(KeyColumnWidth, v.ui.numbers.Format(ReferenceWidth), width)
		}
		label := widget.NewLabel(text)
		label.Wrapping = fyne.TextWrapWord
		rows.Add(container.NewVBox(preview, label))
	}
	return rows
}
