package delivery

import (
	"fmt"
	"time"

	"github.com/forest-guardian/landsat-guardian-poc/internal/indexes"
	"github.com/forest-guardian/landsat-guardian-poc/internal/landsat"
	"github.com/forest-guardian/landsat-guardian-poc/internal/mask"
	"github.com/forest-guardian/landsat-guardian-poc/internal/raster"
	"github.com/forest-guardian/landsat-guardian-poc/internal/stretch"
	"github.com/forest-guardian/landsat-guardian-poc/internal/utils"
)

// Options configures a scene analysis. Start from DefaultOptions, the
// zero value has no breaks or ticks.
type Options struct {
	Predicate   mask.KeepPredicate
	Roles       landsat.BandRoles
	Percentiles stretch.Percentiles
	BreakCount  int
	TickCount   int
	TickDigits  int
}

func DefaultOptions() Options {
	return Options{
		Predicate:   mask.DefaultKeepPredicate,
		Roles:       landsat.DefaultBandRoles,
		Percentiles: stretch.DefaultPercentiles,
		BreakCount:  stretch.DefaultBreakCount,
		TickCount:   stretch.DefaultTickCount,
		TickDigits:  stretch.DefaultTickDigits,
	}
}

// Result bundles every artifact of a scene analysis.
type Result struct {
	SceneDate time.Time
	ScenePath string
	Table     *mask.LookupTable
	Mask      *raster.Band
	Masked    *raster.Stack
	NDVI      *raster.Band
	Breaks    stretch.Breaks
	Mapping   *stretch.ColorMapping
	Legend    []stretch.Tick
}

// fetchWindowDays covers two Landsat revisits so at least one scene
// should exist in the range.
const fetchWindowDays = 2 * landsat.SceneRevisitDays

// AnalyzeScene runs the full pipeline over the most recent scene
// available up to endDate: QA lookup table, reclassification, masking,
// NDVI and the contrast stretch.
func AnalyzeScene(site, scene string, endDate time.Time, opts Options) (*Result, error) {
	start := time.Now()

	aoi, err := landsat.LoadAOI(site, scene)
	if err != nil {
		return nil, err
	}

	startDate := endDate.AddDate(0, 0, -fetchWindowDays)
	stepStart := time.Now()
	scenes, err := landsat.GetScenes(aoi, startDate, endDate, landsat.SceneRevisitDays)
	if err != nil {
		return nil, err
	}
	fmt.Printf("GetScenes took %v\n", time.Since(stepStart))

	sceneDate, ok := utils.MostRecent(scenes)
	if !ok {
		return nil, fmt.Errorf("no scenes available for site %s scene %s", site, scene)
	}
	scenePath := scenes[sceneDate]
	fmt.Println("Analyzing scene from", sceneDate.Format("2006-01-02"))

	stepStart = time.Now()
	stack, qaBand, err := landsat.ReadScene(scenePath)
	if err != nil {
		return nil, err
	}
	fmt.Printf("ReadScene took %v\n", time.Since(stepStart))

	result, err := runPipeline(stack, qaBand, opts)
	if err != nil {
		return nil, err
	}
	result.SceneDate = sceneDate
	result.ScenePath = scenePath

	fmt.Printf("Total scene analysis time: %v\n", time.Since(start))
	return result, nil
}

func runPipeline(stack *raster.Stack, qaBand *raster.Band, opts Options) (*Result, error) {
	if opts.Roles.NIR < 0 || opts.Roles.NIR >= len(stack.Bands) ||
		opts.Roles.Red < 0 || opts.Roles.Red >= len(stack.Bands) {
		return nil, fmt.Errorf("band roles out of range: NIR=%d Red=%d with %d bands",
			opts.Roles.NIR, opts.Roles.Red, len(stack.Bands))
	}

	stepStart := time.Now()
	table := mask.BuildLookupTable(opts.Predicate)
	fmt.Printf("BuildLookupTable took %v\n", time.Since(stepStart))

	stepStart = time.Now()
	maskBand := mask.Reclassify(qaBand, table)
	masked, err := mask.ApplyMask(stack, maskBand)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Masking took %v\n", time.Since(stepStart))

	stepStart = time.Now()
	ndvi, err := indexes.NDVI(masked.Bands[opts.Roles.NIR], masked.Bands[opts.Roles.Red])
	if err != nil {
		return nil, err
	}
	fmt.Printf("NDVI took %v\n", time.Since(stepStart))

	stepStart = time.Now()
	breaks, err := stretch.ComputeBreaks(ndvi, opts.Percentiles, opts.BreakCount)
	if err != nil {
		return nil, err
	}
	mapping, err := stretch.MapToPalette(breaks, stretch.DefaultNDVIPalette)
	if err != nil {
		return nil, err
	}
	legend, err := stretch.BuildLegend(breaks, opts.TickCount, opts.TickDigits)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Contrast stretch took %v\n", time.Since(stepStart))

	return &Result{
		Table:   table,
		Mask:    maskBand,
		Masked:  masked,
		NDVI:    ndvi,
		Breaks:  breaks,
		Mapping: mapping,
		Legend:  legend,
	}, nil
}
