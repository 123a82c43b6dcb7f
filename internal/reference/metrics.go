package reference

// TypographyScale is the modular type scale
type TypographyScale struct {
	BaseSize         float64           `yaml:"base_size"`
	ScaleFactor      float64           `yaml:"scale_factor"`
	LineHeightFactor float64           `yaml:"line_height_factor"`
	Styles           []TypographyStyle `yaml:"styles"`
}

// TypographyStyle is one text style in the scale
type TypographyStyle struct {
	Name       string  `yaml:"name"`
	Size       float64 `yaml:"size"`
	LineHeight float64 `yaml:"line_height"`
	Weight     string  `yaml:"weight"`
	Usage      string  `yaml:"usage"`
}

// ScaleRatio returns size relative to the base size
func (s TypographyStyle) ScaleRatio(base float64) float64 {
	if base <= 0 {
		return 0
	}
	return s.Size / base
}

// LineHeightRatio returns line height over size
func (s TypographyStyle) LineHeightRatio() float64 {
	if s.Size <= 0 {
		return 0
	}
	return s.LineHeight / s.Size
}

// Leading returns the extra space between lines
func (s TypographyStyle) Leading() float64 {
	return s.LineHeight - s.Size
}

// GridSystem is a column grid
type GridSystem struct {
	Name        string  `yaml:"name"`
	Columns     int     `yaml:"columns"`
	Gutter      float64 `yaml:"gutter"`
	Margin      float64 `yaml:"margin"`
	Description string  `yaml:"description"`
}

// ColumnWidth returns the column width on a screen of the given width.
// ok is false when the margins and gutters leave no room.
func (g GridSystem) ColumnWidth(screenWidth float64) (float64, bool) {
	if g.Columns < 1 {
		return 0, false
	}
	available := screenWidth - 2*g.Margin - g.Gutter*float64(g.Columns-1)
	if available <= 0 {
		return 0, false
	}
	return available / float64(g.Columns), true
}

// Size is a width/height pair in points
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Insets are safe-area insets in points
type Insets struct {
	Top      float64 `yaml:"top"`
	Bottom   float64 `yaml:"bottom"`
	Leading  float64 `yaml:"leading"`
	Trailing float64 `yaml:"trailing"`
}

// Device describes a screen and its safe area
type Device struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Screen        Size   `yaml:"screen"`
	Insets        Insets `yaml:"insets"`
	Notch         bool   `yaml:"notch"`
	HomeIndicator bool   `yaml:"home_indicator"`
}

// ContentArea returns the screen size minus the safe-area insets
func (d Device) ContentArea() Size {
	return Size{
		Width:  d.Screen.Width - d.Insets.Leading - d.Insets.Trailing,
		Height: d.Screen.Height - d.Insets.Top - d.Insets.Bottom,
	}
}
