package delivery

import (
	"fmt"
	"time"

	"github.com/forest-guardian/landsat-guardian-poc/internal/dataset"
	"github.com/forest-guardian/landsat-guardian-poc/internal/landsat"
	"github.com/forest-guardian/landsat-guardian-poc/internal/utils"
)

// CensusResult carries the QA flag census of a scene together with the
// inputs the renderers need.
type CensusResult struct {
	SceneDate time.Time
	CSVPath   string
	Rows      []dataset.FlagCensusRow
	AOI       *landsat.AOI
}

// RunSceneCensus tallies the QA flags of the most recent scene up to
// endDate and writes the census CSV to the scene's result folder.
func RunSceneCensus(site, scene string, endDate time.Time) (*CensusResult, error) {
	aoi, err := landsat.LoadAOI(site, scene)
	if err != nil {
		return nil, err
	}

	startDate := endDate.AddDate(0, 0, -fetchWindowDays)
	scenes, err := landsat.GetScenes(aoi, startDate, endDate, landsat.SceneRevisitDays)
	if err != nil {
		return nil, err
	}

	sceneDate, ok := utils.MostRecent(scenes)
	if !ok {
		return nil, fmt.Errorf("no scenes available for site %s scene %s", site, scene)
	}

	stepStart := time.Now()
	_, qaBand, err := landsat.ReadScene(scenes[sceneDate])
	if err != nil {
		return nil, err
	}
	fmt.Printf("ReadScene took %v\n", time.Since(stepStart))

	rows, err := dataset.BuildFlagCensus(qaBand)
	if err != nil {
		return nil, err
	}

	csvPath, err := dataset.SaveFlagCensus(rows, site, scene, sceneDate)
	if err != nil {
		return nil, err
	}

	return &CensusResult{SceneDate: sceneDate, CSVPath: csvPath, Rows: rows, AOI: aoi}, nil
}
