package model

// ReferenceCardType identifies a reference screen
type ReferenceCardType string

const (
	CardRatios      ReferenceCardType = "ratios"
	CardSpacing     ReferenceCardType = "spacing"
	CardTypography  ReferenceCardType = "typography"
	CardSafeZones   ReferenceCardType = "safe_zones"
	CardGridSystems ReferenceCardType = "grid_systems"
)

// Brand accent colors
const (
	NeonGreenHex = "00FF94"
	NeonPinkHex  = "FF007C"
	NeonBlueHex  = "2EAAFF"
)

// AllReferenceCardTypes returns the cards in display order
func AllReferenceCardTypes() []ReferenceCardType {
	return []ReferenceCardType{CardRatios, CardSpacing, CardTypography, CardSafeZones, CardGridSystems}
}

// String returns the string representation of ReferenceCardType
func (c ReferenceCardType) String() string {
	return string(c)
}

// IsValid returns true if c is a known card type
func (c ReferenceCardType) IsValid() bool {
	switch c {
	case CardRatios, CardSpacing, CardTypography, CardSafeZones, CardGridSystems:
		return true
	}
	return false
}

// Title returns the card heading
func (c ReferenceCardType) Title() string {
	switch c {
	case CardRatios:
		return "Visual Ratios"
	case CardSpacing:
		return "8pt Grid"
	case CardTypography:
		return "Typography Scale"
	case CardSafeZones:
		return "Safe Zones"
	case CardGridSystems:
		return "Grid Systems"
	}
	return ""
}

// Description returns the card subtitle
func (c ReferenceCardType) Description() string {
	switch c {
	case CardRatios:
		return "4:3, 16:9, 21:9, 1:1 aspect ratios"
	case CardSpacing:
		return "8-point spacing system reference"
	case CardTypography:
		return "Modular scale typography guide"
	case CardSafeZones:
		return "iOS safe area layout guides"
	case CardGridSystems:
		return "6 & 12 column grid layouts"
	}
	return ""
}

// Icon returns the symbolic icon name
func (c ReferenceCardType) Icon() string {
	switch c {
	case CardRatios:
		return "rectangle.ratio.3.to.4"
	case CardSpacing:
		return "grid"
	case CardTypography:
		return "textformat.size"
	case CardSafeZones:
		return "rectangle.inset.filled"
	case CardGridSystems:
		return "grid.circle"
	}
	return ""
}

// AccentHex returns the card accent color as RRGGBB
func (c ReferenceCardType) AccentHex() string {
	switch c {
	case CardSpacing, CardGridSystems:
		return NeonPinkHex
	case CardTypography:
		return NeonBlueHex
	}
	return NeonGreenHex
}
