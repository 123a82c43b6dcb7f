package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ytget/blinkratio/internal/calc"
	"github.com/ytget/blinkratio/internal/config"
	"github.com/ytget/blinkratio/internal/model"
)

// Reference screen width used for grid column widths
const ReferenceScreenWidth = 375.0

func (a *App) runConvert(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: convert needs VALUE FROM TO", ErrUsage)
	}
	values, err := parseNumbers(args[:1])
	if err != nil {
		return err
	}
	from, ok := model.ParseDesignUnit(args[1])
	if !ok {
		return fmt.Errorf("%w: unknown unit %q", ErrUsage, args[1])
	}
	to, ok := model.ParseDesignUnit(args[2])
	if !ok {
		return fmt.Errorf("%w: unknown unit %q", ErrUsage, args[2])
	}

	result, ok := calc.Convert(values[0], from, to)
	if !ok {
		return ErrNoResult
	}
	a.line(a.numbers.Format(values[0])+" "+from.String(), a.numbers.Format(result)+" "+to.String())
	return nil
}

func (a *App) runRatio(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: ratio needs solve, compare or scale", ErrUsage)
	}
	mode, rest := args[0], args[1:]

	switch mode {
	case "solve":
		if len(rest) != 4 {
			return fmt.Errorf("%w: ratio solve needs W1 H1 W2 H2 with 0 for the unknown side", ErrUsage)
		}
		v, err := parseNumbers(rest)
		if err != nil {
			return err
		}
		dim, ok := calc.SolveMissingDimension(v[0], v[1], v[2], v[3])
		if !ok {
			return ErrNoResult
		}
		a.line(string(dim.Side), a.numbers.Format(dim.Value))

	case "compare":
		if len(rest) != 4 {
			return fmt.Errorf("%w: ratio compare needs W1 H1 W2 H2", ErrUsage)
		}
		v, err := parseNumbers(rest)
		if err != nil {
			return err
		}
		cmp, ok := calc.CompareRatios(v[0], v[1], v[2], v[3])
		if !ok {
			return ErrNoResult
		}
		a.line("ratio A", a.numbers.Format(cmp.RatioA))
		a.line("ratio B", a.numbers.Format(cmp.RatioB))
		a.line("equal", strconv.FormatBool(cmp.Equal))
		a.line("difference", a.numbers.Format(cmp.PercentDifference)+"%")

	case "scale":
		if len(rest) != 3 {
			return fmt.Errorf("%w: ratio scale needs W H FACTOR", ErrUsage)
		}
		v, err := parseNumbers(rest)
		if err != nil {
			return err
		}
		w, h, ok := calc.ScaleRatio(v[0], v[1], v[2])
		if !ok {
			return ErrNoResult
		}
		a.line("scaled", a.numbers.Format(w)+" × "+a.numbers.Format(h))

	default:
		return fmt.Errorf("%w: unknown ratio mode %q", ErrUsage, mode)
	}
	return nil
}

func (a *App) runSpacing(args []string) error {
	fs := a.newFlagSet("spacing")
	base := fs.Float64("base", 8, "first value of the scale")
	ratio := fs.Float64("ratio", config.DefaultSpacingRatio, "multiplier between steps")
	steps := fs.Int("steps", config.DefaultSpacingSteps, "number of values")
	unit := fs.String("unit", string(config.DefaultSpacingUnit), "unit label for the values")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	u, ok := model.ParseDesignUnit(*unit)
	if !ok {
		return fmt.Errorf("%w: unknown unit %q", ErrUsage, *unit)
	}

	scale, ok := calc.GenerateSpacingScale(*base, *ratio, *steps)
	if !ok {
		return ErrNoResult
	}
	fmt.Fprintln(a.out, a.styles.heading.Render(fmt.Sprintf("spacing ×%s", a.numbers.Format(*ratio))))
	for i, v := range scale {
		a.line(strconv.Itoa(i), a.numbers.Format(v)+" "+u.String())
	}
	return nil
}

func (a *App) runColor(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: color needs HEX and optionally a second HEX", ErrUsage)
	}
	c, ok := calc.ParseHexColor(args[0])
	if !ok {
		return ErrNoResult
	}

	info := calc.DescribeColor(c)
	fmt.Fprintln(a.out, a.styles.swatch(c)+" "+a.styles.heading.Render("#"+info.Hex))
	a.line("rgba", fmt.Sprintf("%d, %d, %d, %d", c.R, c.G, c.B, c.A))
	a.line("hsl", fmt.Sprintf("%s°, %s%%, %s%%", a.numbers.Format(info.Hue), a.numbers.Format(info.Saturation*100), a.numbers.Format(info.Lightness*100)))
	a.line("luminance", a.numbers.Format(info.Luminance))

	against := []model.RGBA{{R: 255, G: 255, B: 255, A: 255}, {A: 255}}
	if len(args) == 2 {
		other, ok := calc.ParseHexColor(args[1])
		if !ok {
			return ErrNoResult
		}
		against = []model.RGBA{other}
	}
	for _, bg := range against {
		a.line("contrast on #"+bg.Hex(), a.numbers.Format(calc.ContrastRatio(c, bg))+":1")
	}
	return nil
}

// Catalog sections listed by the catalog command
const (
	SectionCards      = "cards"
	SectionRatios     = "ratios"
	SectionTypography = "typography"
	SectionGrids      = "grids"
	SectionDevices    = "devices"
	SectionPalette    = "palette"
)

func (a *App) runCatalog(args []string) error {
	fs := a.newFlagSet("catalog")
	section := fs.String("section", SectionCards, "one of cards, ratios, typography, grids, devices, palette")
	if err := fs.Parse(args); err != nil {
		return err
	}
	query := strings.Join(fs.Args(), " ")

	switch *section {
	case SectionCards:
		cards := a.catalog.Search(query)
		if len(cards) == 0 {
			return ErrNoResult
		}
		for _, card := range cards {
			a.line(card.Title(), card.Description())
		}
	case SectionRatios:
		for _, r := range a.catalog.AspectRatios {
			a.line(r.Name, r.Description)
		}
		for _, r := range a.catalog.CommonRatios {
			if ratio, ok := calc.ParseRatio(r.Value); ok {
				a.line(r.Name, a.numbers.Ratio(ratio.Width, ratio.Height)+" ("+a.numbers.Format(ratio.Ratio())+")")
			}
		}
	case SectionTypography:
		base := a.catalog.Typography.BaseSize
		for _, s := range a.catalog.Typography.Styles {
			a.line(s.Name, fmt.Sprintf("%spt / %spt ×%s", a.numbers.Format(s.Size), a.numbers.Format(s.LineHeight), a.numbers.Format(s.ScaleRatio(base))))
		}
	case SectionGrids:
		for _, g := range a.catalog.GridSystems {
			width := "-"
			if w, ok := g.ColumnWidth(ReferenceScreenWidth); ok {
				width = a.numbers.Format(w)
			}
			a.line(g.Name, fmt.Sprintf("column %spt at %spt", width, a.numbers.Format(ReferenceScreenWidth)))
		}
	case SectionDevices:
		for _, d := range a.catalog.Devices {
			area := d.ContentArea()
			a.line(d.Name, fmt.Sprintf("%s × %s, safe %s × %s",
				a.numbers.Format(d.Screen.Width), a.numbers.Format(d.Screen.Height),
				a.numbers.Format(area.Width), a.numbers.Format(area.Height)))
		}
	case SectionPalette:
		for _, sw := range a.catalog.Palette {
			c, ok := calc.ParseHexColor(sw.Hex)
			if !ok {
				continue
			}
			fmt.Fprintln(a.out, a.styles.swatch(c)+" "+a.styles.label.Render(sw.Name+":")+" "+a.styles.value.Render("#"+c.Hex()))
		}
	default:
		return fmt.Errorf("%w: unknown section %q", ErrUsage, *section)
	}
	return nil
}
