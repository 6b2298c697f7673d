package stretch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLegendSevenTicks(t *testing.T) {
	breaks := Breaks{-0.3, 0.02, 0.5, 0.98, 1.2}

	ticks, err := BuildLegend(breaks, DefaultTickCount, 2)

	require.NoError(t, err)
	require.Len(t, ticks, 7)
	assert.Equal(t, "< 0.02", ticks[0].Label)
	assert.Equal(t, "> 0.98", ticks[6].Label)
	assert.InDelta(t, 0.02, ticks[0].Value, 1e-12)
	assert.InDelta(t, 0.5, ticks[3].Value, 1e-12)
	assert.InDelta(t, 0.98, ticks[6].Value, 1e-12)
	for i := 1; i < 6; i++ {
		assert.NotContains(t, ticks[i].Label, "<")
		assert.NotContains(t, ticks[i].Label, ">")
	}
}

func TestBuildLegendEvenSpacing(t *testing.T) {
	breaks := Breaks{0, 10, 20, 30, 40}

	ticks, err := BuildLegend(breaks, 3, 0)

	require.NoError(t, err)
	require.Len(t, ticks, 3)
	assert.Equal(t, 10.0, ticks[0].Value)
	assert.Equal(t, 20.0, ticks[1].Value)
	assert.Equal(t, 30.0, ticks[2].Value)
	assert.Equal(t, "< 10", ticks[0].Label)
	assert.Equal(t, "20", ticks[1].Label)
	assert.Equal(t, "> 30", ticks[2].Label)
}

func TestBuildLegendRoundsLabels(t *testing.T) {
	breaks := Breaks{0, 0.024, 0.5, 0.976, 1}

	ticks, err := BuildLegend(breaks, 3, 1)

	require.NoError(t, err)
	assert.Equal(t, "< 0.0", ticks[0].Label)
	assert.Equal(t, "0.5", ticks[1].Label)
	assert.Equal(t, "> 1.0", ticks[2].Label)
}

func TestBuildLegendZeroDigits(t *testing.T) {
	breaks := Breaks{-30, -20, 0, 20, 30}

	ticks, err := BuildLegend(breaks, 2, 0)

	require.NoError(t, err)
	assert.Equal(t, "< -20", ticks[0].Label)
	assert.Equal(t, "> 20", ticks[1].Label)
}

func TestBuildLegendConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		breaks Breaks
		nTicks int
		digits int
	}{
		{"one tick", Breaks{0, 1, 2}, 1, 0},
		{"too few breaks", Breaks{0, 1}, 7, 0},
		{"negative digits", Breaks{0, 1, 2}, 7, -1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := BuildLegend(test.breaks, test.nTicks, test.digits)

			require.ErrorIs(t, err, ErrConfiguration)
		})
	}
}
