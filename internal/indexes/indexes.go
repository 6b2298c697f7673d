package indexes

import (
	"fmt"
	"math"

	"github.com/forest-guardian/landsat-guardian-poc/internal/raster"
)

// NormalizedDifference computes (a-b)/(a+b) cell by cell. Cells where
// either input is NoData, or where the denominator is zero, come out
// NoData. Input values are taken as-is, reflectance outside [0,1]
// included.
func NormalizedDifference(a, b *raster.Band) (*raster.Band, error) {
	if !a.SameShape(b) {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			raster.ErrShapeMismatch, a.Width, a.Height, b.Width, b.Height)
	}

	out := raster.NewBand(a.Width, a.Height, math.NaN())
	for i := range a.Data {
		av := a.Data[i]
		bv := b.Data[i]
		if a.IsNoData(av) || b.IsNoData(bv) {
			continue
		}
		sum := av + bv
		if sum == 0 {
			continue
		}
		out.Data[i] = (av - bv) / sum
	}
	return out, nil
}

// NDVI is the normalized difference of the near infrared and red
// bands.
func NDVI(nir, red *raster.Band) (*raster.Band, error) {
	return NormalizedDifference(nir, red)
}
