package stretch

import (
	"fmt"
	"math"
	"strconv"
)

const (
	DefaultTickCount  = 7
	DefaultTickDigits = 0
)

// Tick is one legend entry: a rounded tick value and its label.
type Tick struct {
	Value float64
	Label string
}

// BuildLegend spaces nTicks ticks evenly between the lower and upper
// stretch anchors, breaks[1] and breaks[len-2]. The first and last
// labels read "< v" and "> v" because values beyond the anchors clamp
// to the end colors.
func BuildLegend(breaks Breaks, nTicks, digits int) ([]Tick, error) {
	if nTicks < 2 {
		return nil, fmt.Errorf("%w: need at least 2 ticks, got %d", ErrConfiguration, nTicks)
	}
	if len(breaks) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 breaks for a legend, got %d", ErrConfiguration, len(breaks))
	}
	if digits < 0 {
		return nil, fmt.Errorf("%w: negative label precision %d", ErrConfiguration, digits)
	}

	low := breaks[1]
	high := breaks[len(breaks)-2]
	step := (high - low) / float64(nTicks-1)

	ticks := make([]Tick, nTicks)
	for i := range ticks {
		value := roundTo(low+step*float64(i), digits)
		label := formatValue(value, digits)
		switch i {
		case 0:
			label = "< " + label
		case nTicks - 1:
			label = "> " + label
		}
		ticks[i] = Tick{Value: value, Label: label}
	}
	return ticks, nil
}

func roundTo(value float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(value*scale) / scale
}

func formatValue(value float64, digits int) string {
	return strconv.FormatFloat(value, 'f', digits, 64)
}
