// Package calc implements the design calculators: unit conversion, ratio
// solving and comparison, spacing scale generation and hex color handling.
// Functions are pure and safe for concurrent use. A false ok result means
// "no result": the inputs cannot produce a meaningful answer.
package calc
