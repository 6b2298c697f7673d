package stretch

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/forest-guardian/landsat-guardian-poc/internal/raster"
)

var (
	ErrInsufficientData = errors.New("no valid cells to stretch")
	ErrConfiguration    = errors.New("invalid stretch configuration")
)

const DefaultBreakCount = 256

// Percentiles are the four probe points of the stretch, in order:
// floor, lower anchor, upper anchor, ceiling.
type Percentiles [4]float64

// DefaultPercentiles clips 2% of each tail so outliers do not eat the
// color range.
var DefaultPercentiles = Percentiles{0, 0.02, 0.98, 1}

// Breaks are non-decreasing class boundaries. The first break is the
// floor quantile, the last the ceiling quantile, and the interior
// breaks run evenly from the lower to the upper anchor.
type Breaks []float64

// ComputeBreaks derives nBreaks class boundaries from the valid cells
// of a band. NoData cells are ignored. A band with no valid cells
// cannot be stretched.
func ComputeBreaks(band *raster.Band, percentiles Percentiles, nBreaks int) (Breaks, error) {
	if nBreaks < 2 {
		return nil, fmt.Errorf("%w: need at least 2 breaks, got %d", ErrConfiguration, nBreaks)
	}
	for i, p := range percentiles {
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("%w: percentile %d is %v", ErrConfiguration, i, p)
		}
		if i > 0 && p < percentiles[i-1] {
			return nil, fmt.Errorf("%w: percentiles must be non-decreasing", ErrConfiguration)
		}
	}

	values := make([]float64, 0, len(band.Data))
	for _, value := range band.Data {
		if band.IsNoData(value) {
			continue
		}
		values = append(values, value)
	}
	if len(values) == 0 {
		return nil, ErrInsufficientData
	}
	sort.Float64s(values)

	floor := quantile(values, percentiles[0])
	lower := quantile(values, percentiles[1])
	upper := quantile(values, percentiles[2])
	ceiling := quantile(values, percentiles[3])

	breaks := make(Breaks, nBreaks)
	breaks[0] = floor
	breaks[nBreaks-1] = ceiling

	interior := nBreaks - 2
	switch interior {
	case 0:
	case 1:
		breaks[1] = (lower + upper) / 2
	default:
		step := (upper - lower) / float64(interior-1)
		for i := 0; i < interior; i++ {
			breaks[1+i] = lower + step*float64(i)
		}
		breaks[nBreaks-2] = upper
	}

	// Rounding in the step walk must not break monotonicity.
	for i := 1; i < nBreaks; i++ {
		if breaks[i] < breaks[i-1] {
			breaks[i] = breaks[i-1]
		}
	}
	return breaks, nil
}

// quantile interpolates linearly between the two order statistics
// around rank p*(n-1).
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
