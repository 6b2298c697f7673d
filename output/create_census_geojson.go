package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/forest-guardian/landsat-guardian-poc/internal/dataset"
	"github.com/forest-guardian/landsat-guardian-poc/internal/landsat"
)

// CreateCensusGeoJSON writes the QA census as a single point feature
// at the footprint centroid, so the numbers can be dropped onto a map.
func CreateCensusGeoJSON(rows []dataset.FlagCensusRow, aoi *landsat.AOI, outputPath string) (string, error) {
	lat, lon, err := aoi.Centroid()
	if err != nil {
		return "", err
	}

	feature := geojson.NewFeature(orb.Point{lon, lat})
	feature.Properties["site"] = aoi.Site
	feature.Properties["scene"] = aoi.Scene

	census := make(map[string]interface{}, len(rows))
	for _, row := range rows {
		census[row.Flag] = map[string]interface{}{
			"pixels":  row.Pixels,
			"percent": row.Percent,
		}
	}
	feature.Properties["census"] = census

	fc := geojson.NewFeatureCollection()
	fc.Append(feature)

	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("error creating GeoJSON file: %v", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(fc); err != nil {
		return "", fmt.Errorf("error encoding GeoJSON: %v", err)
	}

	fmt.Println("GeoJSON file created successfully at", outputPath)
	return outputPath, nil
}
