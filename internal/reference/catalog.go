package reference

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"

	"github.com/ytget/blinkratio/internal/calc"
	"github.com/ytget/blinkratio/internal/model"
)

//go:embed catalog.yaml
var catalogYAML []byte

// NamedRatio is an aspect ratio preset
type NamedRatio struct {
	Name        string  `yaml:"name"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Description string  `yaml:"description"`
	Color       string  `yaml:"color"`
}

// AspectRatio returns the preset as a model value
func (r NamedRatio) AspectRatio() model.AspectRatio {
	return model.AspectRatio{Width: r.Width, Height: r.Height}
}

// CommonRatio is a preset written as "W : H"
type CommonRatio struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Swatch is a named palette color
type Swatch struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
}

// SpacingGrid is the 8pt spacing reference
type SpacingGrid struct {
	Base   float64   `yaml:"base"`
	Values []float64 `yaml:"values"`
}

// Catalog is the static reference data shown by the app
type Catalog struct {
	Cards        []model.ReferenceCardType `yaml:"cards"`
	AspectRatios []NamedRatio              `yaml:"aspect_ratios"`
	CommonRatios []CommonRatio             `yaml:"common_ratios"`
	Typography   TypographyScale           `yaml:"typography"`
	GridSystems  []GridSystem              `yaml:"grid_systems"`
	Devices      []Device                  `yaml:"devices"`
	Spacing      SpacingGrid               `yaml:"spacing"`
	Palette      []Swatch                  `yaml:"palette"`
}

// Load parses the embedded catalog
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// MustLoad is Load for program start-up, where the embedded catalog is known good
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("reference: embedded catalog: %v", err))
	}
	return c
}

// Parse decodes and validates a catalog document
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks names, sizes and colors
func (c *Catalog) Validate() error {
	var errs []error

	for _, card := range c.Cards {
		if !card.IsValid() {
			errs = append(errs, fmt.Errorf("unknown card %q", card))
		}
	}
	for _, r := range c.AspectRatios {
		if r.Name == "" || r.AspectRatio().Ratio() <= 0 {
			errs = append(errs, fmt.Errorf("aspect ratio %q: needs a name and positive sides", r.Name))
		}
		if _, ok := calc.ParseHexColor(r.Color); !ok {
			errs = append(errs, fmt.Errorf("aspect ratio %q: bad color %q", r.Name, r.Color))
		}
	}
	for _, r := range c.CommonRatios {
		if _, ok := calc.ParseRatio(r.Value); !ok {
			errs = append(errs, fmt.Errorf("common ratio %q: bad value %q", r.Name, r.Value))
		}
	}
	if c.Typography.BaseSize <= 0 {
		errs = append(errs, errors.New("typography: base size must be positive"))
	}
	for _, s := range c.Typography.Styles {
		if s.Name == "" || s.Size <= 0 || s.LineHeight <= 0 {
			errs = append(errs, fmt.Errorf("typography style %q: needs a name and positive sizes", s.Name))
		}
	}
	for _, g := range c.GridSystems {
		if g.Columns < 1 || g.Gutter < 0 || g.Margin < 0 {
			errs = append(errs, fmt.Errorf("grid %q: invalid geometry", g.Name))
		}
	}
	for _, d := range c.Devices {
		if d.ID == "" || d.Screen.Width <= 0 || d.Screen.Height <= 0 {
			errs = append(errs, fmt.Errorf("device %q: needs an id and a screen size", d.Name))
		}
	}
	for _, sw := range c.Palette {
		if _, ok := calc.ParseHexColor(sw.Hex); !ok {
			errs = append(errs, fmt.Errorf("swatch %q: bad hex %q", sw.Name, sw.Hex))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return nil
}

// Device returns the device with id
func (c *Catalog) Device(id string) (Device, bool) {
	for _, d := range c.Devices {
		if d.ID == id {
			return d, true
		}
	}
	return Device{}, false
}

// Swatch returns the palette color with name
func (c *Catalog) Swatch(name string) (model.RGBA, bool) {
	for _, sw := range c.Palette {
		if sw.Name == name {
			return calc.ParseHexColor(sw.Hex)
		}
	}
	return model.RGBA{}, false
}

// Search fuzzy-matches query against card titles and descriptions
func (c *Catalog) Search(query string) []model.ReferenceCardType {
	if query == "" {
		return append([]model.ReferenceCardType(nil), c.Cards...)
	}

	searchStrings := make([]string, len(c.Cards))
	for i, card := range c.Cards {
		searchStrings[i] = card.Title() + " " + card.Description()
	}
	matches := fuzzy.Find(query, searchStrings)

	result := make([]model.ReferenceCardType, 0, len(matches))
	for _, match := range matches {
		result = append(result, c.Cards[match.Index])
	}
	return result
}
