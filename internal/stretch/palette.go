package stretch

import (
	"fmt"
	"image/color"
	"math"
	"sort"
)

// DefaultNDVIPalette runs from bare soil browns through pale yellow
// into deep vegetation greens.
var DefaultNDVIPalette = []color.RGBA{
	{R: 145, G: 81, B: 28, A: 255},
	{R: 191, G: 140, B: 59, A: 255},
	{R: 222, G: 197, B: 131, A: 255},
	{R: 246, G: 238, B: 186, A: 255},
	{R: 202, G: 222, B: 131, A: 255},
	{R: 128, G: 183, B: 77, A: 255},
	{R: 56, G: 131, B: 46, A: 255},
	{R: 13, G: 84, B: 22, A: 255},
}

// ColorMapping assigns one color per class interval. Colors[i] covers
// values from Breaks[i] up to but not including Breaks[i+1], and the
// last color covers everything at or above the last break.
type ColorMapping struct {
	Breaks Breaks
	Colors []color.RGBA
}

// MapToPalette spreads a base palette over the class intervals of the
// breaks. A palette already sized to the intervals is used as is,
// anything else is resampled by linear interpolation.
func MapToPalette(breaks Breaks, base []color.RGBA) (*ColorMapping, error) {
	if len(breaks) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 breaks, got %d", ErrConfiguration, len(breaks))
	}
	if len(base) == 0 {
		return nil, fmt.Errorf("%w: empty palette", ErrConfiguration)
	}

	intervals := len(breaks) - 1
	colors := base
	if len(base) != intervals {
		colors = interpolatePalette(base, intervals)
	}
	return &ColorMapping{Breaks: breaks, Colors: colors}, nil
}

func interpolatePalette(base []color.RGBA, size int) []color.RGBA {
	colors := make([]color.RGBA, size)
	if len(base) == 1 {
		for i := range colors {
			colors[i] = base[0]
		}
		return colors
	}
	if size == 1 {
		colors[0] = base[0]
		return colors
	}

	for i := 0; i < size; i++ {
		pos := float64(i) / float64(size-1) * float64(len(base)-1)
		lower := int(math.Floor(pos))
		if lower >= len(base)-1 {
			colors[i] = base[len(base)-1]
			continue
		}
		colors[i] = lerpColor(base[lower], base[lower+1], pos-float64(lower))
	}
	return colors
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + t*(float64(y)-float64(x)) + 0.5)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}

// Color classifies a value into its interval color. Values below the
// first break clamp to the first color, values at or above the last
// break clamp to the last.
func (m *ColorMapping) Color(value float64) color.RGBA {
	if value < m.Breaks[0] {
		return m.Colors[0]
	}
	if value >= m.Breaks[len(m.Breaks)-1] {
		return m.Colors[len(m.Colors)-1]
	}

	i := sort.SearchFloat64s(m.Breaks, value)
	if i < len(m.Breaks) && m.Breaks[i] == value {
		return m.Colors[min(i, len(m.Colors)-1)]
	}
	return m.Colors[i-1]
}
