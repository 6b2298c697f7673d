package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/forest-guardian/landsat-guardian-poc/internal/properties"
)

// ListSites handles the UI for viewing the list of available sites
func ListSites() {
	files, err := os.ReadDir(properties.RootPath() + "/data/aoi")
	if err != nil {
		PrintError(fmt.Sprintf("Error reading aoi folder: %s", err.Error()))
		return
	}

	PrintWarning("To add a new site, add its '.geojson' file at 'data/aoi' folder.")

	fmt.Printf("\n%sAvailable sites:%s\n", ColorGreen, ColorReset)
	for _, file := range files {
		if strings.HasSuffix(file.Name(), ".geojson") {
			fmt.Printf("%s- %s%s\n", ColorGreen, strings.TrimSuffix(file.Name(), ".geojson"), ColorReset)
		}
	}
}
