package calc

import (
	"math"
	"strconv"
	"strings"

	"github.com/ytget/blinkratio/internal/model"
)

// RatioTolerance is the absolute difference under which two ratios are equal
const RatioTolerance = 0.01

// Side names the dimension produced by SolveMissingDimension
type Side string

const (
	SideWidth  Side = "width"
	SideHeight Side = "height"
)

// Dimension is a solved width or height
type Dimension struct {
	Side  Side
	Value float64
}

// RatioComparison is the result of CompareRatios
type RatioComparison struct {
	Equal             bool
	RatioA            float64
	RatioB            float64
	PercentDifference float64
}

// SolveMissingDimension solves w1:h1 = w2:h2 for whichever of w2 or h2 is zero.
// Exactly three inputs must be positive; providing both w2 and h2 is a
// comparison, not a solve, and yields no result.
func SolveMissingDimension(w1, h1, w2, h2 float64) (Dimension, bool) {
	for _, v := range []float64{w1, h1, w2, h2} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return Dimension{}, false
		}
	}
	if countPositive(w1, h1, w2, h2) != 3 {
		return Dimension{}, false
	}

	var d Dimension
	switch {
	case w1 > 0 && h1 > 0 && w2 > 0 && h2 == 0:
		d = Dimension{Side: SideHeight, Value: w2 * h1 / w1}
	case w1 > 0 && h1 > 0 && w2 == 0 && h2 > 0:
		d = Dimension{Side: SideWidth, Value: h2 * w1 / h1}
	default:
		return Dimension{}, false
	}
	if !isFinite(d.Value) {
		return Dimension{}, false
	}
	return d, true
}

// CompareRatios compares w1:h1 against w2:h2
func CompareRatios(w1, h1, w2, h2 float64) (RatioComparison, bool) {
	if countPositive(w1, h1, w2, h2) != 4 {
		return RatioComparison{}, false
	}

	a := w1 / h1
	b := w2 / h2
	diff := math.Abs(a - b)
	percent := diff / a * 100
	if !isFinite(a) || !isFinite(b) || !isFinite(percent) {
		return RatioComparison{}, false
	}
	return RatioComparison{
		Equal:             diff < RatioTolerance,
		RatioA:            a,
		RatioB:            b,
		PercentDifference: percent,
	}, true
}

// ScaleRatio multiplies both sides of w1:h1 by factor
func ScaleRatio(w1, h1, factor float64) (float64, float64, bool) {
	if countPositive(w1, h1, factor) != 3 {
		return 0, 0, false
	}
	w, h := w1*factor, h1*factor
	if !isFinite(w) || !isFinite(h) {
		return 0, 0, false
	}
	return w, h, true
}

// ParseRatio parses "16:9", "16 : 9" or "1.618 : 1"
func ParseRatio(s string) (model.AspectRatio, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return model.AspectRatio{}, false
	}

	w, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return model.AspectRatio{}, false
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return model.AspectRatio{}, false
	}
	if countPositive(w, h) != 2 {
		return model.AspectRatio{}, false
	}
	return model.AspectRatio{Width: w, Height: h}, true
}

func countPositive(values ...float64) int {
	n := 0
	for _, v := range values {
		if isPositive(v) {
			n++
		}
	}
	return n
}
