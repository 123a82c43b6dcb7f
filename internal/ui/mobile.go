package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a new mobile UI helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{device: fyne.CurrentDevice()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device != nil && m.device.IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	if !m.IsMobileDevice() {
		return true
	}
	orientation := m.device.Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// Columns returns how many calculator panels fit side by side
func (m *MobileUI) Columns() int {
	if m.IsMobileDevice() && !m.IsLandscape() {
		return 1
	}
	return 2
}

// CreateAdaptiveContainer creates a grid that adapts to orientation
func (m *MobileUI) CreateAdaptiveContainer(objects ...fyne.CanvasObject) *fyne.Container {
	return container.NewAdaptiveGrid(m.Columns(), objects...)
}

// CreateMobileButton creates a button sized for touch on mobile devices
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) fyne.CanvasObject {
	btn := widget.NewButton(text, onTapped)
	if !m.IsMobileDevice() {
		return btn
	}
	return container.NewGridWrap(fyne.NewSize(fyne.Max(btn.MinSize().Width, MobileButtonWidth), MobileButtonHeight), btn)
}

// NumericEntry is an entry that asks mobile platforms for the number keyboard
type NumericEntry struct {
	widget.Entry
}

// NewNumericEntry creates a numeric entry with a placeholder
func NewNumericEntry(placeholder string) *NumericEntry {
	e := &NumericEntry{}
	e.ExtendBaseWidget(e)
	e.SetPlaceHolder(placeholder)
	return e
}

// Keyboard implements mobile.Keyboardable
func (e *NumericEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
