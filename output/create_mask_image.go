package output

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"

	"github.com/forest-guardian/landsat-guardian-poc/internal/mask"
	"github.com/forest-guardian/landsat-guardian-poc/internal/raster"
)

var (
	maskKeepColor    = color.RGBA{R: 64, G: 160, B: 64, A: 255}
	maskDiscardColor = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	maskNoDataColor  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// CreateMaskImage renders the keep mask as a JPEG: green for kept
// cells, dark gray for discarded ones, black where the QA band had no
// observation.
func CreateMaskImage(maskBand *raster.Band, outputPath string) error {
	newImage := image.NewRGBA(image.Rect(0, 0, maskBand.Width, maskBand.Height))

	for y := 0; y < maskBand.Height; y++ {
		for x := 0; x < maskBand.Width; x++ {
			value := maskBand.At(x, y)
			switch {
			case maskBand.IsNoData(value):
				newImage.Set(x, y, maskNoDataColor)
			case value == mask.KeepValue:
				newImage.Set(x, y, maskKeepColor)
			default:
				newImage.Set(x, y, maskDiscardColor)
			}
		}
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create JPEG file: %v", err)
	}
	defer outputFile.Close()

	err = jpeg.Encode(outputFile, newImage, &jpeg.Options{
		Quality: 100,
	})
	if err != nil {
		return fmt.Errorf("failed to encode JPEG file: %v", err)
	}

	fmt.Println("JPEG image created successfully as", outputPath)
	return nil
}
