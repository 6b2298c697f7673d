package output

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/forest-guardian/landsat-guardian-poc/internal/raster"
	"github.com/forest-guardian/landsat-guardian-poc/internal/stretch"
)

// CreateNDVIImage renders the stretched NDVI raster as a PNG. NoData
// cells stay transparent.
func CreateNDVIImage(ndvi *raster.Band, mapping *stretch.ColorMapping, outputPath string) error {
	newImage := image.NewRGBA(image.Rect(0, 0, ndvi.Width, ndvi.Height))

	for y := 0; y < ndvi.Height; y++ {
		for x := 0; x < ndvi.Width; x++ {
			value := ndvi.At(x, y)
			if ndvi.IsNoData(value) {
				continue
			}
			newImage.Set(x, y, mapping.Color(value))
		}
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create PNG file: %v", err)
	}
	defer outputFile.Close()

	if err := png.Encode(outputFile, newImage); err != nil {
		return fmt.Errorf("failed to encode PNG file: %v", err)
	}

	fmt.Println("PNG image created successfully as", outputPath)
	return nil
}
