package landsat

import (
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/forest-guardian/landsat-guardian-poc/internal/properties"
)

// AOI is one scene footprint read from a site's GeoJSON file.
type AOI struct {
	Site     string
	Scene    string
	Geometry orb.Geometry
}

// LoadAOI finds the feature identified by scene_id in the site's file
// under data/aoi.
func LoadAOI(site, scene string) (*AOI, error) {
	filePath := fmt.Sprintf("%s/data/aoi/%s.geojson", properties.RootPath(), site)
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read AOI file: %v", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse AOI file %s: %w", filePath, err)
	}

	for _, feature := range fc.Features {
		id, ok := feature.Properties["scene_id"].(string)
		if !ok || id != scene {
			continue
		}
		return &AOI{Site: site, Scene: scene, Geometry: feature.Geometry}, nil
	}

	return nil, fmt.Errorf("scene %s not found in AOI file for site %s", scene, site)
}

func (a *AOI) Bound() orb.Bound {
	return a.Geometry.Bound()
}

// Centroid returns the latitude and longitude of the footprint center.
func (a *AOI) Centroid() (float64, float64, error) {
	centroid, area := planar.CentroidArea(a.Geometry)
	if area <= 0 {
		return 0, 0, errors.New("error getting centroid")
	}
	return centroid.Y(), centroid.X(), nil
}
