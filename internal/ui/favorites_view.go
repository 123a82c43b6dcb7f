package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/blinkratio/internal/model"
)

// FavoritesView lists saved favorites with search, remove and clear-all
type FavoritesView struct {
	ui *RootUI

	search   *widget.Entry
	list     *widget.List
	empty    *widget.Label
	clearBtn *widget.Button

	all     []model.FavoriteItem
	visible []model.FavoriteItem
}

// NewFavoritesView creates the favorites tab
func NewFavoritesView(ui *RootUI) *FavoritesView {
	return &FavoritesView{ui: ui}
}

// Build creates the tab content
func (v *FavoritesView) Build() fyne.CanvasObject {
	loc := v.ui.localization

	v.search = widget.NewEntry()
	v.search.SetPlaceHolder(loc.GetText(KeySearch))
	v.search.OnChanged = func(string) { v.applyFilter() }

	v.list = widget.NewList(
		func() int {
			return len(v.visible)
		},
		func() fyne.CanvasObject {
			return NewFavoriteRow(loc, v.ui.removeFavorite)
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < 0 || id >= len(v.visible) {
				return
			}
			item.(*FavoriteRow).SetItem(v.visible[id])
		},
	)

	v.empty = widget.NewLabelWithStyle(loc.GetText(KeyFavoritesEmpty), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	v.clearBtn = widget.NewButton(IconDelete+" "+loc.GetText(KeyClearAll), v.onClearAll)
	v.clearBtn.Importance = widget.DangerImportance

	v.Update(v.ui.favorites.Items())

	top := container.NewBorder(nil, nil, nil, v.clearBtn, v.search)
	return container.NewBorder(top, nil, nil, nil, container.NewStack(v.list, container.NewCenter(v.empty)))
}

// Update replaces the shown items. Must run on the UI goroutine.
func (v *FavoritesView) Update(items []model.FavoriteItem) {
	v.all = items
	v.applyFilter()
}

// applyFilter narrows the list to the current search query
func (v *FavoritesView) applyFilter() {
	if v.list == nil {
		return
	}
	query := v.search.Text
	if query == "" {
		v.visible = v.all
	} else {
		v.visible = v.ui.favorites.Search(query)
	}

	if len(v.all) == 0 {
		v.empty.Show()
		v.clearBtn.Disable()
	} else {
		v.empty.Hide()
		v.clearBtn.Enable()
	}
	v.list.Refresh()
}

// onClearAll asks for confirmation, then empties the store
func (v *FavoritesView) onClearAll() {
	loc := v.ui.localization
	dialog.ShowConfirm(loc.GetText(KeyClearAll), loc.GetText(KeyConfirmClearAll), func(confirmed bool) {
		if confirmed {
			v.ui.favorites.ClearAll()
		}
	}, v.ui.window)
}
