// Package cli is the headless BlinkRatio command line. It exposes the unit,
// ratio, spacing and color calculators and the reference catalog without
// starting the Fyne UI.
package cli
