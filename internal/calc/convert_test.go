package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/ytget/blinkratio/internal/model"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		value    float64
		from, to model.DesignUnit
		expected float64
	}{
		{16, model.UnitPixel, model.UnitRem, 1},
		{1, model.UnitRem, model.UnitPixel, 16},
		{1, model.UnitInch, model.UnitPixel, 96},
		{1, model.UnitInch, model.UnitCentimeter, 96 / 37.795},
		{10, model.UnitMillimeter, model.UnitCentimeter, 10 * 3.7795 / 37.795},
		{16, model.UnitPixel, model.UnitPoint, 16 / 1.333},
		{2, model.UnitEm, model.UnitRem, 2},
	}

	for _, test := range tests {
		result, ok := Convert(test.value, test.from, test.to)
		require.True(t, ok, "Convert(%v, %s, %s)", test.value, test.from, test.to)
		assert.InDelta(t, test.expected, result, 1e-9, "Convert(%v, %s, %s)", test.value, test.from, test.to)
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	values := []float64{0.001, 0.5, 1, 16, 37.795, 1440, 1e6}
	for _, a := range model.AllDesignUnits() {
		for _, b := range model.AllDesignUnits() {
			for _, v := range values {
				there, ok := Convert(v, a, b)
				require.True(t, ok)
				back, ok := Convert(there, b, a)
				require.True(t, ok)
				assert.True(t, scalar.EqualWithinRel(back, v, 1e-12),
					"round trip %v %s->%s->%s gave %v", v, a, b, a, back)
			}
		}
	}
}

func TestConvert_NoResult(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to model.DesignUnit
	}{
		{"zero", 0, model.UnitPixel, model.UnitRem},
		{"negative", -4, model.UnitPixel, model.UnitRem},
		{"unknown from", 4, model.DesignUnit("pc"), model.UnitRem},
		{"unknown to", 4, model.UnitPixel, model.DesignUnit("")},
		{"overflow", 1e308, model.UnitInch, model.UnitPixel},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, ok := Convert(test.value, test.from, test.to)
			assert.False(t, ok)
		})
	}
}

func TestGenerateSpacingScale(t *testing.T) {
	scale, ok := GenerateSpacingScale(8, 1.5, 6)
	require.True(t, ok)
	require.Len(t, scale, 6)

	assert.Equal(t, 8.0, scale[0])
	for i := 1; i < len(scale); i++ {
		assert.True(t, scalar.EqualWithinAbsOrRel(scale[i], scale[i-1]*1.5, 1e-12, 1e-12),
			"element %d = %v, expected %v", i, scale[i], scale[i-1]*1.5)
	}
	assert.InDelta(t, 60.75, scale[5], 1e-9)
}

func TestGenerateSpacingScale_Lengths(t *testing.T) {
	for steps := 0; steps <= 12; steps++ {
		scale, ok := GenerateSpacingScale(4, 2, steps)
		require.True(t, ok)
		assert.Equal(t, steps, scale.Len())
	}

	empty, ok := GenerateSpacingScale(4, 2, 0)
	require.True(t, ok)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestGenerateSpacingScale_FreshSlice(t *testing.T) {
	a, _ := GenerateSpacingScale(8, 2, 3)
	a[0] = 999
	b, _ := GenerateSpacingScale(8, 2, 3)
	assert.Equal(t, 8.0, b[0])
}

func TestGenerateSpacingScale_NoResult(t *testing.T) {
	_, ok := GenerateSpacingScale(0, 1.5, 4)
	assert.False(t, ok)
	_, ok = GenerateSpacingScale(8, 0, 4)
	assert.False(t, ok)
	_, ok = GenerateSpacingScale(8, -1.5, 4)
	assert.False(t, ok)
	_, ok = GenerateSpacingScale(8, 1.5, -1)
	assert.False(t, ok)
	_, ok = GenerateSpacingScale(8, 1e200, 3)
	assert.False(t, ok)
}
