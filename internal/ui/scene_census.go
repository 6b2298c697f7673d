package ui

import (
	"fmt"

	"github.com/forest-guardian/landsat-guardian-poc/internal/delivery"
	"github.com/forest-guardian/landsat-guardian-poc/output"
)

// SceneCensus handles the UI for tallying QA flags of a scene for a specific date
func SceneCensus() {
	PrintWarning("- A '.geojson' file with the site name should be present in data/aoi folder.\n- The '.geojson' file should contain the desired scene in its features identified by scene_id.")

	// Read site and scene
	site, scene, err := ReadSiteAndScene()
	if err != nil {
		PrintError(err.Error())
		return
	}

	// Read date
	endDate, err := ReadDate("Enter the date to be analyzed (YYYY-MM-DD | today): ")
	if err != nil {
		PrintError(err.Error())
		return
	}

	// Run census
	result, err := delivery.RunSceneCensus(site, scene, endDate)
	if err != nil {
		PrintError(fmt.Sprintf("Error running scene census: %s", err.Error()))
		return
	}

	// Create result directory
	resultPath, err := CreateResultDirectory(site, scene, "census")
	if err != nil {
		PrintError(err.Error())
		return
	}

	// Create output files
	outputFilePath := fmt.Sprintf("%s/%s_%s_%s", resultPath, site, scene, result.SceneDate.Format("2006-01-02"))

	geojsonPath, err := output.CreateCensusGeoJSON(result.Rows, result.AOI, outputFilePath+".geojson")
	if err != nil {
		PrintError(fmt.Sprintf("Error creating census geojson: %s", err.Error()))
		return
	}

	PrintSuccess(fmt.Sprintf("Successful census!\nCensus csv located at: %s\nCensus geojson located at: %s", result.CSVPath, geojsonPath))
}
