package ui

import (
	"fmt"
)

// ListScenes handles the UI for viewing the list of available scenes of a site
func ListScenes(site string) {
	PrintWarning("To add a scene to a site add the 'scene_id' property at the '.geojson' file from the site of your choice.\nThe 'scene_id' property should be located at 'features[N]properties.scene_id'.")

	if site == "" {
		site = ReadString("Enter the site name: ")
	}

	sceneIDs, err := GetSceneIDsFromGeoJSON(site)
	if err != nil {
		PrintError(err.Error())
		return
	}

	fmt.Printf("\n%sAvailable scenes:%s\n", ColorGreen, ColorReset)
	for _, sceneID := range sceneIDs {
		fmt.Printf("%s- %s%s\n", ColorGreen, sceneID, ColorReset)
	}
}
