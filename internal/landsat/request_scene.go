package landsat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/paulmach/orb/geojson"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/forest-guardian/landsat-guardian-poc/internal/properties"
)

// sceneResolution is the ground sample distance of the reflectance
// bands, in meters.
const sceneResolution = 30.0

func calculatePixels(distance float64, resolution float64) int {
	pixels := distance * (111_000.0 / resolution)
	if pixels < 1 {
		return 1
	}
	return int(pixels)
}

func requestScene(startDate, endDate time.Time, aoi *AOI) ([]byte, error) {
	// Format the dates to ensure they are in ISO-8601 format
	startDateStr := startDate.Format(time.RFC3339)
	endDateStr := endDate.Format(time.RFC3339)

	bbox := aoi.Bound()
	widthPixels := calculatePixels(bbox.Max[0]-bbox.Min[0], sceneResolution)
	heightPixels := calculatePixels(bbox.Max[1]-bbox.Min[1], sceneResolution)
	// Clamp to allowed range (1-2500)
	if widthPixels > 2500 {
		widthPixels = 2500
	}
	if heightPixels > 2500 {
		heightPixels = 2500
	}

	evalscript := `
    //VERSION=3
    function setup() {
      return {
        input: ["B02", "B03", "B04", "B05", "B06", "B07", "PIXEL_QA"],
        output: {
          id: "default",
          bands: 7,
          sampleType: SampleType.FLOAT32,
        },
      }
    }

    function evaluatePixel(sample) {
      return [sample.B02, sample.B03, sample.B04, sample.B05, sample.B06, sample.B07, sample.PIXEL_QA];
    }
  `

	requestPayload := map[string]interface{}{
		"input": map[string]interface{}{
			"bounds": map[string]interface{}{
				"geometry": geojson.NewGeometry(aoi.Geometry),
			},
			"data": []map[string]interface{}{
				{
					"dataFilter": map[string]interface{}{
						"timeRange": map[string]string{
							"from": startDateStr,
							"to":   endDateStr,
						},
					},
					"type": "landsat-c1-l2",
				},
			},
		},
		"output": map[string]interface{}{
			"width":  widthPixels,
			"height": heightPixels,
			"responses": []map[string]interface{}{
				{
					"identifier": "default",
					"format": map[string]string{
						"type": "image/tiff",
					},
				},
			},
		},
		"evalscript": evalscript,
		"mosaicking": "mostRecent",
	}

	requestBody, err := json.Marshal(requestPayload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %v", err)
	}

	clientIDs := properties.LandsatClientID()
	clientSecrets := properties.LandsatClientSecret()
	tokenURL := properties.LandsatTokenURL()

	if clientIDs == "" || clientSecrets == "" || tokenURL == "" {
		return nil, fmt.Errorf("missing required environment variables: LANDSAT_CLIENT_ID, LANDSAT_CLIENT_SECRET, or LANDSAT_TOKEN_URL")
	}

	clientIDList := strings.Split(clientIDs, ",")
	clientSecretList := strings.Split(clientSecrets, ",")

	var responseContent []byte
	for i, clientID := range clientIDList {
		if i >= len(clientSecretList) {
			return nil, fmt.Errorf("mismatched number of client IDs and secrets")
		}
		clientSecret := clientSecretList[i]
		config := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
		}

		httpClient := config.Client(context.Background())

		url := properties.LandsatProcessURL()

		retries := 10
		var response *http.Response
		for attempt := 1; attempt <= retries; attempt++ {
			response, err = httpClient.Post(url, "application/json", bytes.NewBuffer(requestBody))
			if err == nil && response.StatusCode == http.StatusOK {
				break
			}

			if response != nil {
				body, _ := io.ReadAll(response.Body)
				bodyStr := string(body)
				response.Body.Close()
				if strings.Contains(bodyStr, "403") {
					err = fmt.Errorf("unauthorized access, check your client ID and secret")
					break
				}
				fmt.Printf("Attempt %d failed: %s\n", attempt, bodyStr)
			} else {
				fmt.Printf("Attempt %d failed: %v\n", attempt, err)
			}

			time.Sleep(5 * time.Second)
		}

		if err != nil {
			err = fmt.Errorf("failed to request scene after %d attempts: %v", retries, err)
			continue
		}

		responseContent, err = io.ReadAll(response.Body)
		response.Body.Close()
		if err != nil {
			err = fmt.Errorf("failed to read response body: %v", err)
			continue
		}
		break
	}

	return responseContent, err
}
