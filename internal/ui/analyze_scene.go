package ui

import (
	"fmt"

	"github.com/forest-guardian/landsat-guardian-poc/internal/delivery"
	"github.com/forest-guardian/landsat-guardian-poc/internal/notification"
	"github.com/forest-guardian/landsat-guardian-poc/output"
)

// AnalyzeScene handles the UI for rendering the masked NDVI of a scene for a specific date
func AnalyzeScene() {
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

	// Analyze scene
	result, err := delivery.AnalyzeScene(site, scene, endDate, delivery.DefaultOptions())
	if err != nil {
		PrintError(fmt.Sprintf("Error analyzing scene: %s", err.Error()))
		return
	}

	// Create result directory
	resultPath, err := CreateResultDirectory(site, scene, "ndvi")
	if err != nil {
		PrintError(err.Error())
		return
	}

	// Create output files
	outputFilePath := fmt.Sprintf("%s/%s_%s_%s", resultPath, site, scene, result.SceneDate.Format("2006-01-02"))

	err = output.CreateNDVIImage(result.NDVI, result.Mapping, outputFilePath+"_ndvi.png")
	if err != nil {
		PrintError(fmt.Sprintf("Error creating NDVI image: %s", err.Error()))
		return
	}

	err = output.CreateMaskImage(result.Mask, outputFilePath+"_mask.jpeg")
	if err != nil {
		PrintError(fmt.Sprintf("Error creating mask image: %s", err.Error()))
		return
	}

	err = output.CreateLegendImage(result.Mapping, result.Legend, outputFilePath+"_legend.png")
	if err != nil {
		PrintError(fmt.Sprintf("Error creating legend image: %s", err.Error()))
		return
	}

	notification.SendDiscordSuccessNotification(fmt.Sprintf("Scene %s_%s analyzed for %s", site, scene, result.SceneDate.Format("2006-01-02")))
	PrintSuccess(fmt.Sprintf("Successful analysis!\nNDVI image located at: %s_ndvi.png\nMask image located at: %s_mask.jpeg\nLegend located at: %s_legend.png", outputFilePath, outputFilePath, outputFilePath))
}
