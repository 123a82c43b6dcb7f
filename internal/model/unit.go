package model

// DesignUnit is a length unit used in design specs
type DesignUnit string

const (
	UnitPixel      DesignUnit = "px"
	UnitPoint      DesignUnit = "pt"
	UnitEm         DesignUnit = "em"
	UnitRem        DesignUnit = "rem"
	UnitInch       DesignUnit = "in"
	UnitCentimeter DesignUnit = "cm"
	UnitMillimeter DesignUnit = "mm"
)

// Pixel factors at 96 dpi with a 16px root font size
const (
	PixelsPerPoint      = 1.333
	PixelsPerEm         = 16.0
	PixelsPerRem        = 16.0
	PixelsPerInch       = 96.0
	PixelsPerCentimeter = 37.795
	PixelsPerMillimeter = 3.7795
)

// AllDesignUnits returns every unit in menu order
func AllDesignUnits() []DesignUnit {
	return []DesignUnit{UnitPixel, UnitPoint, UnitEm, UnitRem, UnitInch, UnitCentimeter, UnitMillimeter}
}

// ParseDesignUnit resolves a unit symbol such as "px" or "rem"
func ParseDesignUnit(s string) (DesignUnit, bool) {
	u := DesignUnit(s)
	if !u.IsValid() {
		return "", false
	}
	return u, true
}

// String returns the unit symbol
func (u DesignUnit) String() string {
	return string(u)
}

// IsValid reports whether u is one of the known units
func (u DesignUnit) IsValid() bool {
	_, ok := u.factor()
	return ok
}

// ToBase converts a value in u to pixels
func (u DesignUnit) ToBase(value float64) float64 {
	f, ok := u.factor()
	if !ok {
		return 0
	}
	return value * f
}

// FromBase converts a pixel value to u
func (u DesignUnit) FromBase(pixels float64) float64 {
	f, ok := u.factor()
	if !ok {
		return 0
	}
	return pixels / f
}

func (u DesignUnit) factor() (float64, bool) {
	switch u {
	case UnitPixel:
		return 1, true
	case UnitPoint:
		return PixelsPerPoint, true
	case UnitEm:
		return PixelsPerEm, true
	case UnitRem:
		return PixelsPerRem, true
	case UnitInch:
		return PixelsPerInch, true
	case UnitCentimeter:
		return PixelsPerCentimeter, true
	case UnitMillimeter:
		return PixelsPerMillimeter, true
	}
	return 0, false
}
