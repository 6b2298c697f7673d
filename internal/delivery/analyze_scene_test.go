package delivery

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forest-guardian/landsat-guardian-poc/internal/landsat"
	"github.com/forest-guardian/landsat-guardian-poc/internal/mask"
	"github.com/forest-guardian/landsat-guardian-poc/internal/raster"
)

// syntheticScene builds a 3x2 scene: two clear vegetation cells, one
// clear bare-soil cell, one cloudy cell, one water cell and one NoData
// cell.
func syntheticScene(t *testing.T) (*raster.Stack, *raster.Band) {
	t.Helper()

	qaBand := raster.NewBand(3, 2, math.NaN())
	copy(qaBand.Data, []float64{2, 2, 2, 32, 4, math.NaN()})

	bands := make([]*raster.Band, 6)
	for i := range bands {
		bands[i] = raster.NewBand(3, 2, math.NaN())
	}
	// Red (index 2) and NIR (index 3) drive the NDVI.
	copy(bands[2].Data, []float64{0.1, 0.12, 0.3, 0.2, 0.05, 0.2})
	copy(bands[3].Data, []float64{0.5, 0.6, 0.35, 0.4, 0.02, 0.6})

	stack, err := raster.NewStack(bands...)
	require.NoError(t, err)
	return stack, qaBand
}

func TestRunPipelineMasksAndStretches(t *testing.T) {
	stack, qaBand := syntheticScene(t)

	result, err := runPipeline(stack, qaBand, DefaultOptions())

	require.NoError(t, err)
	assert.Equal(t, 1024, result.Table.KeepCount())

	// Only the three clear cells survive the mask.
	assert.Equal(t, 1.0, result.Mask.At(0, 0))
	assert.Equal(t, 1.0, result.Mask.At(1, 0))
	assert.Equal(t, 1.0, result.Mask.At(2, 0))
	assert.Equal(t, 0.0, result.Mask.At(0, 1))
	assert.Equal(t, 0.0, result.Mask.At(1, 1))
	assert.True(t, math.IsNaN(result.Mask.At(2, 1)))

	nir := result.Masked.Bands[3]
	assert.True(t, nir.IsNoData(nir.At(0, 1)))
	assert.Equal(t, 0.5, nir.At(0, 0))

	require.NotNil(t, result.NDVI)
	assert.InDelta(t, (0.5-0.1)/(0.5+0.1), result.NDVI.At(0, 0), 1e-12)
	assert.True(t, result.NDVI.IsNoData(result.NDVI.At(0, 1)))

	require.Len(t, result.Breaks, 256)
	for i := 1; i < len(result.Breaks); i++ {
		assert.GreaterOrEqual(t, result.Breaks[i], result.Breaks[i-1])
	}
	require.NotNil(t, result.Mapping)
	assert.Len(t, result.Mapping.Colors, 255)
	require.Len(t, result.Legend, 7)
	assert.Contains(t, result.Legend[0].Label, "< ")
	assert.Contains(t, result.Legend[6].Label, "> ")
}

func TestRunPipelineCustomPredicate(t *testing.T) {
	stack, qaBand := syntheticScene(t)
	opts := DefaultOptions()
	opts.Predicate = mask.KeepPredicate{0, 0, 1, 0, 0, 0}

	result, err := runPipeline(stack, qaBand, opts)

	require.NoError(t, err)
	// Only the single water cell survives, so every NDVI quantile
	// collapses onto its value.
	assert.Equal(t, 1.0, result.Mask.At(1, 1))
	assert.Equal(t, 0.0, result.Mask.At(0, 0))
	want := (0.02 - 0.05) / (0.02 + 0.05)
	assert.InDelta(t, want, result.Breaks[0], 1e-12)
	assert.InDelta(t, want, result.Breaks[255], 1e-12)
}

func TestRunPipelineAllCloudy(t *testing.T) {
	stack, qaBand := syntheticScene(t)
	for i := range qaBand.Data {
		qaBand.Data[i] = 32
	}

	_, err := runPipeline(stack, qaBand, DefaultOptions())

	require.Error(t, err)
}

func TestRunPipelineBadRoles(t *testing.T) {
	stack, qaBand := syntheticScene(t)
	opts := DefaultOptions()
	opts.Roles = landsat.BandRoles{NIR: 9, Red: 2}

	_, err := runPipeline(stack, qaBand, opts)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "band roles out of range")
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, mask.DefaultKeepPredicate, opts.Predicate)
	assert.Equal(t, landsat.DefaultBandRoles, opts.Roles)
	assert.Equal(t, 256, opts.BreakCount)
	assert.Equal(t, 7, opts.TickCount)
	assert.Equal(t, 0, opts.TickDigits)
}
