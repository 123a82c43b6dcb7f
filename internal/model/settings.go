package model

// ExportQuality is the render scale used when exporting references
type ExportQuality string

const (
	ExportLow    ExportQuality = "low"
	ExportMedium ExportQuality = "medium"
	ExportHigh   ExportQuality = "high"
)

// Scale returns the pixel multiplier for the quality
func (q ExportQuality) Scale() float64 {
	switch q {
	case ExportLow:
		return 1
	case ExportMedium:
		return 2
	default:
		return 3
	}
}

// Label returns a human readable name
func (q ExportQuality) Label() string {
	switch q {
	case ExportLow:
		return "Low (1x)"
	case ExportMedium:
		return "Medium (2x)"
	default:
		return "High (3x)"
	}
}

// SpacingUnits lists the units offered as the default spacing unit
func SpacingUnits() []DesignUnit {
	return []DesignUnit{UnitPixel, UnitPoint, UnitRem, UnitEm}
}
