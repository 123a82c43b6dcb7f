package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/blinkratio/internal/reference"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	catalog, err := reference.Load()
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	code := New(&out, &errOut, catalog, "1.2.3").Run(args)
	return code, out.String(), errOut.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, errOut := run(t)
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, "convert VALUE FROM TO")

	code, _, _ = run(t, "help")
	assert.Equal(t, ExitOK, code)

	code, _, errOut = run(t, "frobnicate")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, `unknown command "frobnicate"`)
}

func TestRun_Version(t *testing.T) {
	code, out, _ := run(t, "version")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "1.2.3\n", out)
}

func TestRun_Convert(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		out  string
	}{
		{"px to rem", []string{"convert", "16", "px", "rem"}, ExitOK, "16 px: 1 rem\n"},
		{"inch to cm", []string{"convert", "1", "in", "cm"}, ExitOK, "1 in: 2.54 cm\n"},
		{"zero", []string{"convert", "0", "px", "rem"}, ExitNoResult, ""},
		{"bad unit", []string{"convert", "16", "ft", "rem"}, ExitUsage, ""},
		{"bad value", []string{"convert", "x", "px", "rem"}, ExitUsage, ""},
		{"missing args", []string{"convert", "16"}, ExitUsage, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, _ := run(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.out, out)
		})
	}
}

func TestRun_Ratio(t *testing.T) {
	code, out, _ := run(t, "ratio", "solve", "16", "9", "32", "0")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "height: 18\n", out)

	code, out, _ = run(t, "ratio", "solve", "16", "9", "0", "18")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "width: 32\n", out)

	code, _, _ = run(t, "ratio", "solve", "16", "9", "32", "18")
	assert.Equal(t, ExitNoResult, code)

	code, out, _ = run(t, "ratio", "compare", "4", "3", "16", "9")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "equal: false")
	assert.Contains(t, out, "difference: 33.33%")

	code, out, _ = run(t, "ratio", "compare", "16", "9", "16", "9")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "equal: true")
	assert.Contains(t, out, "difference: 0%")

	code, out, _ = run(t, "ratio", "scale", "16", "9", "2")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "scaled: 32 × 18\n", out)

	code, _, _ = run(t, "ratio", "stretch")
	assert.Equal(t, ExitUsage, code)
}

func TestRun_Spacing(t *testing.T) {
	code, out, _ := run(t, "spacing", "-base", "8", "-ratio", "2", "-steps", "4")
	require.Equal(t, ExitOK, code)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "spacing ×2", lines[0])
	assert.Equal(t, "0: 8 px", lines[1])
	assert.Equal(t, "3: 64 px", lines[4])

	code, _, _ = run(t, "spacing", "-base", "0")
	assert.Equal(t, ExitNoResult, code)

	code, _, _ = run(t, "spacing", "-unit", "ft")
	assert.Equal(t, ExitUsage, code)

	code, _, _ = run(t, "spacing", "-h")
	assert.Equal(t, ExitOK, code)
}

func TestRun_Color(t *testing.T) {
	code, out, _ := run(t, "color", "#00ff94")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "#00FF94")
	assert.Contains(t, out, "rgba: 0, 255, 148, 255")
	assert.Contains(t, out, "contrast on #FFFFFF")
	assert.Contains(t, out, "contrast on #000000")

	code, out, _ = run(t, "color", "FFF", "000")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "contrast on #000000: 21:1")
	assert.NotContains(t, out, "contrast on #FFFFFF")

	code, _, _ = run(t, "color", "12")
	assert.Equal(t, ExitNoResult, code)
}

func TestRun_Catalog(t *testing.T) {
	code, out, _ := run(t, "catalog")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Typography Scale")
	assert.Contains(t, out, "Safe Zones")

	code, out, _ = run(t, "catalog", "typo")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Typography Scale")

	code, _, _ = run(t, "catalog", "qqqq")
	assert.Equal(t, ExitNoResult, code)

	for _, section := range []string{SectionRatios, SectionTypography, SectionGrids, SectionDevices, SectionPalette} {
		code, out, _ = run(t, "catalog", "-section", section)
		assert.Equal(t, ExitOK, code, section)
		assert.NotEmpty(t, out, section)
	}

	code, out, _ = run(t, "catalog", "-section", SectionDevices)
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "iPhone 14 Pro: 393 × 852, safe 393 × 759")

	code, _, _ = run(t, "catalog", "-section", "fonts")
	assert.Equal(t, ExitUsage, code)
}
