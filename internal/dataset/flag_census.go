package dataset

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/schollz/progressbar/v3"

	"github.com/forest-guardian/landsat-guardian-poc/internal/properties"
	"github.com/forest-guardian/landsat-guardian-poc/internal/qa"
	"github.com/forest-guardian/landsat-guardian-poc/internal/raster"
)

// FlagCensusRow is one line of a scene's QA census: how many cells
// raise the flag and what share of the scene that is.
type FlagCensusRow struct {
	Flag    string  `csv:"flag"`
	Pixels  int     `csv:"pixels"`
	Percent float64 `csv:"percent"`
}

var censusFlags = []string{
	"fill",
	"clear",
	"water",
	"cloud_shadow",
	"snow",
	"cloud",
	"cloud_confidence_none",
	"cloud_confidence_low",
	"cloud_confidence_medium",
	"cloud_confidence_high",
	"cirrus_confidence_none",
	"cirrus_confidence_low",
	"cirrus_confidence_medium",
	"cirrus_confidence_high",
	"terrain_occluded",
	"no_data",
}

// BuildFlagCensus counts how many cells of a QA band raise each flag.
// Cells are tallied by code first so each distinct code is decoded
// once, however many cells share it.
func BuildFlagCensus(qaBand *raster.Band) ([]FlagCensusRow, error) {
	total := len(qaBand.Data)
	if total == 0 {
		return nil, fmt.Errorf("no cells to census in a %dx%d band", qaBand.Width, qaBand.Height)
	}

	codeCounts := make(map[int]int)
	progressBar := progressbar.Default(int64(total), "Counting QA codes")
	for _, value := range qaBand.Data {
		code := qa.NoDataCode
		if !qaBand.IsNoData(value) && value == math.Trunc(value) && value >= 0 && value <= qa.MaxCode {
			code = int(value)
		}
		codeCounts[code]++
		progressBar.Add(1)
	}
	progressBar.Finish()

	flagCounts := make(map[string]int)
	for code, count := range codeCounts {
		bits, err := qa.Decode(code)
		if err != nil {
			return nil, err
		}
		flags := qa.Interpret(bits)
		if flags.NoData {
			flagCounts["no_data"] += count
			continue
		}

		if flags.Fill {
			flagCounts["fill"] += count
		}
		if flags.Clear {
			flagCounts["clear"] += count
		}
		if flags.Water {
			flagCounts["water"] += count
		}
		if flags.CloudShadow {
			flagCounts["cloud_shadow"] += count
		}
		if flags.Snow {
			flagCounts["snow"] += count
		}
		if flags.Cloud {
			flagCounts["cloud"] += count
		}
		if flags.TerrainOccluded {
			flagCounts["terrain_occluded"] += count
		}
		flagCounts["cloud_confidence_"+flags.CloudConfidence.String()] += count
		flagCounts["cirrus_confidence_"+flags.CirrusConfidence.String()] += count
	}

	rows := make([]FlagCensusRow, 0, len(censusFlags))
	for _, flag := range censusFlags {
		count := flagCounts[flag]
		rows = append(rows, FlagCensusRow{
			Flag:    flag,
			Pixels:  count,
			Percent: float64(count) / float64(total) * 100,
		})
	}
	return rows, nil
}

// SaveFlagCensus writes the census to the scene's result folder as
// CSV.
func SaveFlagCensus(rows []FlagCensusRow, site, scene string, date time.Time) (string, error) {
	resultPath := fmt.Sprintf("%s/data/result/%s/%s/census", properties.RootPath(), site, scene)
	if err := os.MkdirAll(resultPath, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create result folder: %v", err)
	}

	filePath := fmt.Sprintf("%s/%s_%s_%s.csv", resultPath, site, scene, date.Format("2006-01-02"))
	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create census file: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return "", fmt.Errorf("failed to save census to file: %w", err)
	}

	fmt.Printf("QA census with %d rows successfully saved to %s.\n", len(rows), filePath)
	return filePath, nil
}
