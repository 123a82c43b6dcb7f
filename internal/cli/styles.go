package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/blinkratio/internal/model"
)

var (
	ColorNeonGreen = lipgloss.Color("#" + model.NeonGreenHex)
	ColorNeonPink  = lipgloss.Color("#" + model.NeonPinkHex)
	ColorNeonBlue  = lipgloss.Color("#" + model.NeonBlueHex)
	ColorMuted     = lipgloss.Color("#8A8F98")
)

// styles holds the lipgloss styles bound to one output. Colors drop out
// automatically when the output is not a terminal.
type styles struct {
	renderer *lipgloss.Renderer

	heading lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		renderer: r,
		heading: r.NewStyle().Bold(true).Foreground(ColorNeonBlue),
		label:   r.NewStyle().Foreground(ColorMuted),
		value:   r.NewStyle().Bold(true).Foreground(ColorNeonGreen),
		err:     r.NewStyle().Bold(true).Foreground(ColorNeonPink),
		muted:   r.NewStyle().Foreground(ColorMuted),
	}
}

// swatch renders a two-cell color sample in c
func (s styles) swatch(c model.RGBA) string {
	return s.renderer.NewStyle().
		Background(lipgloss.Color("#" + c.Hex())).
		Render("  ")
}
