package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
	IconLanguage = "🌐"
	IconStar     = "★"
	IconStarOff  = "☆"
	IconDelete   = "🗑️"
	IconCopy     = "📋"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing (FavoriteRow / lists)
const (
	SwatchSize float32 = 28

	RowMinWidth  float32 = 280
	RowMinHeight float32 = 56

	// Mobile-specific sizing
	MobileRowMinHeight float32 = 72

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48

	MobileButtonWidth float32 = 60
)

// Preview sizing for reference screens
const (
	RatioPreviewHeight float32 = 60
	GridPreviewWidth   float32 = 240
	GridPreviewHeight  float32 = 40
	DevicePreviewScale float32 = 0.35
	ReferenceWidth             = 375.0
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 260
	ToastHeight   float32 = 64
	ToastMargin   float32 = 20
	ToastAutoHide         = 2 * time.Second
)
