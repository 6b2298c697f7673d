package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/forest-guardian/landsat-guardian-poc/internal/properties"
)

// Colors for consistent UI
const (
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorReset  = "\033[0m"
)

// PrintWarning displays a warning message with consistent formatting
func PrintWarning(message string) {
	fmt.Printf("%s\nWarning:%s\n", ColorYellow, ColorReset)
	fmt.Printf("%s%s%s\n", ColorYellow, message, ColorReset)
}

// PrintError displays an error message with consistent formatting
func PrintError(message string) {
	fmt.Printf("\n%sError: %s%s\n", ColorRed, message, ColorReset)
}

// PrintSuccess displays a success message with consistent formatting
func PrintSuccess(message string) {
	fmt.Printf("\n%s%s%s\n", ColorGreen, message, ColorReset)
}

// PrintInfo displays an info message with consistent formatting
func PrintInfo(message string) {
	fmt.Printf("%s%s%s", ColorBlue, message, ColorReset)
}

// ReadString reads a string from stdin with trimming
func ReadString(prompt string) string {
	reader := bufio.NewReader(os.Stdin)
	PrintInfo(prompt)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// ReadInt reads an integer from stdin with validation
func ReadInt(prompt string, min, max int) (int, error) {
	PrintInfo(prompt)
	var input string
	fmt.Scanln(&input)
	input = strings.TrimSpace(input)

	value, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", input)
	}

	if value < min || value > max {
		return 0, fmt.Errorf("value must be between %d and %d", min, max)
	}

	return value, nil
}

// ReadDate reads a date from stdin with validation
func ReadDate(prompt string) (time.Time, error) {
	input := ReadString(prompt)
	if input == "today" {
		return time.Now(), nil
	}
	date, err := time.Parse("2006-01-02", input)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s. Please use YYYY-MM-DD", input)
	}
	return date, nil
}

// GetSceneIDsFromGeoJSON reads the scene IDs tagged in a site's AOI
// file.
func GetSceneIDsFromGeoJSON(site string) ([]string, error) {
	filePath := properties.RootPath() + "/data/aoi/" + site + ".geojson"
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %s", err.Error())
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding GEOJSON: %s", err.Error())
	}

	sceneIDs := []string{}
	for _, feature := range fc.Features {
		sceneID, ok := feature.Properties["scene_id"].(string)
		if ok {
			sceneIDs = append(sceneIDs, sceneID)
		}
	}

	if len(sceneIDs) == 0 {
		return nil, fmt.Errorf("no scene IDs found in the GEOJSON file")
	}

	return sceneIDs, nil
}

// ReadSiteAndScene reads site and scene information
func ReadSiteAndScene() (string, string, error) {
	PrintInfo("Available sites: ")
	ListSites()
	site := ReadString("Enter the site name: ")
	PrintInfo("Available scenes: ")
	ListScenes(site)
	scene := ReadString("Enter the scene id: ")

	if site == "" || scene == "" {
		return "", "", fmt.Errorf("site name and scene id cannot be empty")
	}

	return site, scene, nil
}

// CreateResultDirectory creates the result directory structure
func CreateResultDirectory(site, scene, resultType string) (string, error) {
	resultPath := fmt.Sprintf("%s/data/result/%s/%s/%s", properties.RootPath(), site, scene, resultType)
	err := os.MkdirAll(resultPath, os.ModePerm)
	if err != nil {
		return "", fmt.Errorf("failed to create result folder: %v", err)
	}
	return resultPath, nil
}
