package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridSystem_ColumnWidth(t *testing.T) {
	c := MustLoad()
	require.Len(t, c.GridSystems, 2)

	// 375 - 40 - 80 = 255 over 6 columns
	six, ok := c.GridSystems[0].ColumnWidth(375)
	require.True(t, ok)
	assert.InDelta(t, 42.5, six, 1e-9)

	// 375 - 64 - 264 = 47 over 12 columns
	twelve, ok := c.GridSystems[1].ColumnWidth(375)
	require.True(t, ok)
	assert.InDelta(t, 47.0/12.0, twelve, 1e-9)

	_, ok = c.GridSystems[1].ColumnWidth(300)
	assert.False(t, ok, "gutters wider than the screen leave no columns")

	_, ok = GridSystem{Columns: 0}.ColumnWidth(375)
	assert.False(t, ok)
}

func TestTypographyStyle(t *testing.T) {
	body := TypographyStyle{Name: "Body", Size: 17, LineHeight: 22}
	assert.InDelta(t, 1.0, body.ScaleRatio(17), 1e-9)
	assert.InDelta(t, 22.0/17.0, body.LineHeightRatio(), 1e-9)
	assert.Equal(t, 5.0, body.Leading())

	title := TypographyStyle{Name: "Large Title", Size: 34, LineHeight: 41}
	assert.InDelta(t, 2.0, title.ScaleRatio(17), 1e-9)
	assert.Zero(t, title.ScaleRatio(0))
	assert.Zero(t, TypographyStyle{}.LineHeightRatio())
}
