package landsat

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/airbusgeo/godal"

	"github.com/forest-guardian/landsat-guardian-poc/internal/raster"
	"github.com/forest-guardian/landsat-guardian-poc/internal/utils"
)

// sceneBands is the band layout produced by the download evalscript:
// six reflectance bands followed by the QA band.
var sceneBands = []string{"B02", "B03", "B04", "B05", "B06", "B07", "PIXEL_QA"}

const reflectanceBandCount = 6

// BandRoles points at the stack indices consumed by the NDVI
// calculation.
type BandRoles struct {
	NIR int
	Red int
}

// DefaultBandRoles follows the download band order: B05 is near
// infrared, B04 is red.
var DefaultBandRoles = BandRoles{NIR: 3, Red: 2}

var registerOnce sync.Once

func registerDrivers() {
	registerOnce.Do(godal.RegisterAll)
}

func openScene(path string) (*godal.Dataset, error) {
	registerDrivers()
	return godal.Open(path, godal.ErrLogger(func(ec godal.ErrorCategory, code int, msg string) error {
		if ec == godal.CE_Warning {
			return nil
		}
		return errors.New(msg)
	}))
}

func validateScene(path string) error {
	ds, err := openScene(path)
	if err != nil {
		return fmt.Errorf("failed to open scene: %v", err)
	}
	defer ds.Close()

	if len(ds.Bands()) < len(sceneBands) {
		return fmt.Errorf("scene has %d bands, expected %d", len(ds.Bands()), len(sceneBands))
	}
	return nil
}

// ReadScene loads a downloaded scene into memory: the reflectance
// bands as a stack and the QA band on its own. Both use NaN as the
// NoData sentinel.
func ReadScene(path string) (*raster.Stack, *raster.Band, error) {
	var stack *raster.Stack
	var qaBand *raster.Band
	var err error
	utils.ExecuteWithMutex(func() {
		stack, qaBand, err = readScene(path)
	})
	return stack, qaBand, err
}

func readScene(path string) (*raster.Stack, *raster.Band, error) {
	ds, err := openScene(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open scene %s: %v", path, err)
	}
	defer ds.Close()

	width := ds.Structure().SizeX
	height := ds.Structure().SizeY
	bands := ds.Bands()
	if len(bands) < len(sceneBands) {
		return nil, nil, fmt.Errorf("scene %s has %d bands, expected %d", path, len(bands), len(sceneBands))
	}

	loaded := make([]*raster.Band, len(sceneBands))
	for i, name := range sceneBands {
		band := raster.NewBand(width, height, math.NaN())
		if err := bands[i].Read(0, 0, band.Data, width, height); err != nil {
			return nil, nil, fmt.Errorf("failed to read band %s: %w", name, err)
		}
		loaded[i] = band
	}

	stack, err := raster.NewStack(loaded[:reflectanceBandCount]...)
	if err != nil {
		return nil, nil, err
	}
	return stack, loaded[reflectanceBandCount], nil
}
