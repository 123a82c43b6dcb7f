// Package ui contains the Fyne-based user interface for BlinkRatio.
// It renders the design reference cards and calculator screens, forwards
// user input to the calc package, and keeps the favorites list in sync with
// the favorites store. All UI strings are localized via Localization.
package ui
