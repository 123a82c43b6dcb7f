// Package platform contains OS and locale integration: system locale detection
// used to pick the UI language when the user leaves it on "system", and
// language-aware number formatting for calculator results.
package platform
