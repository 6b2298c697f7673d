package stretch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forest-guardian/landsat-guardian-poc/internal/raster"
)

func bandFromValues(t *testing.T, values []float64) *raster.Band {
	t.Helper()
	band := raster.NewBand(len(values), 1, math.NaN())
	copy(band.Data, values)
	return band
}

func TestComputeBreaksUniformRamp(t *testing.T) {
	values := make([]float64, 11)
	for i := range values {
		values[i] = float64(i) / 10
	}
	band := bandFromValues(t, values)

	breaks, err := ComputeBreaks(band, DefaultPercentiles, DefaultBreakCount)

	require.NoError(t, err)
	require.Len(t, breaks, 256)
	assert.InDelta(t, 0.0, breaks[0], 1e-12)
	assert.InDelta(t, 0.02, breaks[1], 1e-12)
	assert.InDelta(t, 0.98, breaks[254], 1e-12)
	assert.InDelta(t, 1.0, breaks[255], 1e-12)
	for i := 1; i < len(breaks); i++ {
		require.GreaterOrEqual(t, breaks[i], breaks[i-1], "breaks must be non-decreasing at %d", i)
	}
}

func TestComputeBreaksIgnoresNoData(t *testing.T) {
	band := bandFromValues(t, []float64{math.NaN(), 0.2, math.NaN(), 0.8})

	breaks, err := ComputeBreaks(band, DefaultPercentiles, 4)

	require.NoError(t, err)
	assert.InDelta(t, 0.2, breaks[0], 1e-12)
	assert.InDelta(t, 0.8, breaks[3], 1e-12)
}

func TestComputeBreaksAllNoData(t *testing.T) {
	band := raster.NewBand(3, 3, math.NaN())

	_, err := ComputeBreaks(band, DefaultPercentiles, DefaultBreakCount)

	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestComputeBreaksSingleValue(t *testing.T) {
	band := bandFromValues(t, []float64{0.5})

	breaks, err := ComputeBreaks(band, DefaultPercentiles, 16)

	require.NoError(t, err)
	for _, b := range breaks {
		assert.InDelta(t, 0.5, b, 1e-12)
	}
}

func TestComputeBreaksTwoBreaks(t *testing.T) {
	band := bandFromValues(t, []float64{-0.4, 0.1, 0.9})

	breaks, err := ComputeBreaks(band, DefaultPercentiles, 2)

	require.NoError(t, err)
	assert.InDelta(t, -0.4, breaks[0], 1e-12)
	assert.InDelta(t, 0.9, breaks[1], 1e-12)
}

func TestComputeBreaksConfigurationErrors(t *testing.T) {
	band := bandFromValues(t, []float64{0.1, 0.2})

	tests := []struct {
		name        string
		percentiles Percentiles
		nBreaks     int
	}{
		{"too few breaks", DefaultPercentiles, 1},
		{"percentile above one", Percentiles{0, 0.02, 1.5, 1}, 8},
		{"negative percentile", Percentiles{-0.1, 0.02, 0.98, 1}, 8},
		{"decreasing percentiles", Percentiles{0, 0.98, 0.02, 1}, 8},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ComputeBreaks(band, test.percentiles, test.nBreaks)

			require.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestQuantileInterpolation(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}

	assert.InDelta(t, 10, quantile(sorted, 0), 1e-12)
	assert.InDelta(t, 40, quantile(sorted, 1), 1e-12)
	assert.InDelta(t, 25, quantile(sorted, 0.5), 1e-12)
	assert.InDelta(t, 13, quantile(sorted, 0.1), 1e-12)
	assert.InDelta(t, 7, quantile([]float64{7}, 0.75), 1e-12)
}

func TestComputeBreaksOutliersStayBounded(t *testing.T) {
	values := make([]float64, 0, 102)
	values = append(values, -25)
	for i := 0; i < 100; i++ {
		values = append(values, 0.2+0.006*float64(i))
	}
	values = append(values, 30)
	band := bandFromValues(t, values)

	breaks, err := ComputeBreaks(band, DefaultPercentiles, 16)

	require.NoError(t, err)
	assert.InDelta(t, -25, breaks[0], 1e-12)
	assert.InDelta(t, 30, breaks[15], 1e-12)
	// Interior breaks stay inside the populated range.
	for _, b := range breaks[1:15] {
		assert.Greater(t, b, 0.0)
		assert.Less(t, b, 1.0)
	}
}
