package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/blinkratio/internal/model"
)

// FavoriteRow is a list row showing one favorite with its accent swatch.
// On touch devices a left swipe removes the item.
type FavoriteRow struct {
	widget.BaseWidget

	item         model.FavoriteItem
	localization *Localization
	gestures     *GestureHandler

	// UI components
	swatch     *canvas.Rectangle
	titleLabel *widget.Label
	descLabel  *widget.Label
	metaLabel  *widget.Label
	removeBtn  *widget.Button

	onRemove func(id string)
}

var _ mobile.Touchable = (*FavoriteRow)(nil)

// NewFavoriteRow creates a new favorite row widget
func NewFavoriteRow(localization *Localization, onRemove func(id string)) *FavoriteRow {
	fr := &FavoriteRow{
		localization: localization,
		onRemove:     onRemove,
	}
	fr.gestures = NewGestureHandler(fr.onGesture)
	fr.ExtendBaseWidget(fr)
	fr.createUI()
	return fr
}

// SetItem shows item in the row
func (fr *FavoriteRow) SetItem(item model.FavoriteItem) {
	fr.item = item
	fr.swatch.FillColor = toColor(item.AccentColor(fallbackSwatches[SwatchNeonGreen]))
	fr.titleLabel.SetText(item.Title)
	fr.descLabel.SetText(item.Description)
	if meta := item.MetadataOrEmpty(); meta != "" {
		fr.metaLabel.SetText(meta)
		fr.metaLabel.Show()
	} else {
		fr.metaLabel.Hide()
	}
	fr.removeBtn.SetText(fr.localization.GetText(KeyRemove))
	fr.Refresh()
}

// Item returns the favorite shown in the row
func (fr *FavoriteRow) Item() model.FavoriteItem {
	return fr.item
}

// createUI creates the UI components
func (fr *FavoriteRow) createUI() {
	fr.swatch = canvas.NewRectangle(color.Transparent)
	fr.swatch.SetMinSize(fyne.NewSize(SwatchSize, SwatchSize))
	fr.swatch.CornerRadius = SwatchSize / 4

	fr.titleLabel = widget.NewLabel("")
	fr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	fr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	fr.descLabel = widget.NewLabel("")
	fr.descLabel.Truncation = fyne.TextTruncateEllipsis

	fr.metaLabel = widget.NewLabel("")
	fr.metaLabel.TextStyle = fyne.TextStyle{Monospace: true}
	fr.metaLabel.Hide()

	fr.removeBtn = widget.NewButton(fr.localization.GetText(KeyRemove), fr.remove)
	fr.removeBtn.Importance = widget.DangerImportance
}

// CreateRenderer creates the widget renderer
func (fr *FavoriteRow) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(fr.titleLabel, fr.descLabel, fr.metaLabel)
	content := container.NewBorder(nil, nil, container.NewCenter(fr.swatch), container.NewCenter(fr.removeBtn), text)
	return widget.NewSimpleRenderer(content)
}

// MinSize keeps rows tall enough to tap
func (fr *FavoriteRow) MinSize() fyne.Size {
	size := fr.BaseWidget.MinSize()
	minHeight := RowMinHeight
	if fyne.CurrentDevice().IsMobile() {
		minHeight = MobileRowMinHeight
	}
	return fyne.NewSize(fyne.Max(size.Width, RowMinWidth), fyne.Max(size.Height, minHeight))
}

// TouchDown handles touch down events
func (fr *FavoriteRow) TouchDown(event *mobile.TouchEvent) {
	fr.gestures.TouchDown(event)
}

// TouchUp handles touch up events
func (fr *FavoriteRow) TouchUp(event *mobile.TouchEvent) {
	fr.gestures.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (fr *FavoriteRow) TouchCancel(event *mobile.TouchEvent) {
	fr.gestures.TouchCancel(event)
}

func (fr *FavoriteRow) onGesture(g GestureType) {
	if g == GestureSwipeLeft {
		fr.remove()
	}
}

func (fr *FavoriteRow) remove() {
	if fr.item.ID == "" {
		return
	}
	if fr.onRemove == nil {
		log.Printf("onRemove callback is nil for favorite %s", fr.item.ID)
		return
	}
	fr.onRemove(fr.item.ID)
}
