package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/layout"
)

const (
	AppIcon = "blinkratio.png"

	LogoSize float32 = 32
)

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

func newLogoImage(res fyne.Resource) *canvas.Image {
	img := canvas.NewImageFromResource(res)
	img.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
	img.FillMode = canvas.ImageFillContain
	return img
}

func layoutSpacer() fyne.CanvasObject {
	return layout.NewSpacer()
}
