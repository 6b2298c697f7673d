package mask

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/forest-guardian/landsat-guardian-poc/internal/qa"
	"github.com/forest-guardian/landsat-guardian-poc/internal/raster"
)

// KeepValue is the mask band value for kept cells. Discarded cells
// hold 0 and NoData QA cells stay NoData in the mask.
const KeepValue = 1

// Reclassify maps a QA band through the lookup table into a binary
// keep mask. QA values that are NoData, fractional or outside the code
// domain are treated as NoData codes and end up discarded.
func Reclassify(qaBand *raster.Band, table *LookupTable) *raster.Band {
	maskBand := raster.NewBand(qaBand.Width, qaBand.Height, math.NaN())

	for i, value := range qaBand.Data {
		code := qa.NoDataCode
		if !qaBand.IsNoData(value) && value == math.Trunc(value) && value >= 0 && value <= qa.MaxCode {
			code = int(value)
		}
		if table.Lookup(code) == Keep {
			maskBand.Data[i] = KeepValue
		} else if code != qa.NoDataCode {
			maskBand.Data[i] = 0
		}
	}
	return maskBand
}

// ApplyMask copies reflectance values through the keep mask: kept
// cells pass, everything else becomes the band's NoData. Bands are
// masked in parallel.
func ApplyMask(stack *raster.Stack, maskBand *raster.Band) (*raster.Stack, error) {
	for i, band := range stack.Bands {
		if !band.SameShape(maskBand) {
			return nil, fmt.Errorf("%w: band %d is %dx%d, mask is %dx%d",
				raster.ErrShapeMismatch, i, band.Width, band.Height, maskBand.Width, maskBand.Height)
		}
	}

	masked := make([]*raster.Band, len(stack.Bands))
	var group errgroup.Group
	for i, band := range stack.Bands {
		i, band := i, band
		group.Go(func() error {
			out := raster.NewBand(band.Width, band.Height, band.NoData)
			for j, value := range band.Data {
				if maskBand.Data[j] == KeepValue {
					out.Data[j] = value
				}
			}
			masked[i] = out
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return raster.NewStack(masked...)
}
