package model

// AspectRatio is a width/height pair
type AspectRatio struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Ratio returns Width/Height, or 0 when Height is not positive
func (a AspectRatio) Ratio() float64 {
	if a.Height <= 0 {
		return 0
	}
	return a.Width / a.Height
}

// SpacingScale is an ordered geometric sequence of spacing values
type SpacingScale []float64

// Len returns the number of steps
func (s SpacingScale) Len() int {
	return len(s)
}

// RGBA is an 8-bit color with alpha
type RGBA struct {
	R, G, B, A uint8
}

// Opaque reports whether the alpha channel is fully set
func (c RGBA) Opaque() bool {
	return c.A == 255
}
