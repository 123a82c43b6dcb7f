// Package model defines domain data structures used across the app: design
// units, aspect ratios, colors, favorite items and reference card kinds.
// Values are small and immutable so they can be passed to the UI directly.
package model
