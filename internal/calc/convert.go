package calc

import (
	"math"

	"github.com/ytget/blinkratio/internal/model"
)

// Convert converts value from one design unit to another through pixels
func Convert(value float64, from, to model.DesignUnit) (float64, bool) {
	if !isPositive(value) || !from.IsValid() || !to.IsValid() {
		return 0, false
	}
	result := to.FromBase(from.ToBase(value))
	if !isFinite(result) {
		return 0, false
	}
	return result, true
}

// GenerateSpacingScale returns steps values where element i is base*ratio^i.
// Zero steps yields an empty scale; a step that overflows yields no result.
func GenerateSpacingScale(base, ratio float64, steps int) (model.SpacingScale, bool) {
	if !isPositive(base) || !isPositive(ratio) || steps < 0 {
		return nil, false
	}

	scale := make(model.SpacingScale, steps)
	for i := range scale {
		scale[i] = base * math.Pow(ratio, float64(i))
		if !isFinite(scale[i]) {
			return nil, false
		}
	}
	return scale, true
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// isFinite rejects results that overflowed or lost meaning
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
