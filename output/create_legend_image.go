package output

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/forest-guardian/landsat-guardian-poc/internal/stretch"
)

const (
	legendWidth  = 380
	legendHeight = 64
	legendMargin = 14.0
	barTop       = 10.0
	barHeight    = 22.0
)

// CreateLegendImage draws the color bar with its tick labels as a PNG.
func CreateLegendImage(mapping *stretch.ColorMapping, ticks []stretch.Tick, outputPath string) error {
	dc := gg.NewContext(legendWidth, legendHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	barWidth := float64(legendWidth) - 2*legendMargin
	step := barWidth / float64(len(mapping.Colors))
	for i, clr := range mapping.Colors {
		dc.SetRGB255(int(clr.R), int(clr.G), int(clr.B))
		dc.DrawRectangle(legendMargin+float64(i)*step, barTop, step+1, barHeight)
		dc.Fill()
	}

	dc.SetRGB(0, 0, 0)
	if len(ticks) > 1 {
		tickStep := barWidth / float64(len(ticks)-1)
		for i, tick := range ticks {
			x := legendMargin + float64(i)*tickStep
			dc.DrawLine(x, barTop, x, barTop+barHeight+4)
			dc.Stroke()
			dc.DrawStringAnchored(tick.Label, x, barTop+barHeight+14, 0.5, 0.5)
		}
	}

	if err := dc.SavePNG(outputPath); err != nil {
		return fmt.Errorf("failed to save legend image: %v", err)
	}

	fmt.Println("Legend image created successfully as", outputPath)
	return nil
}
