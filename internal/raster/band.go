package raster

import (
	"errors"
	"fmt"
	"math"
)

var ErrShapeMismatch = errors.New("raster shape mismatch")

// Band holds a single raster band in row-major order: the cell at
// column x, row y lives at Data[y*Width+x]. NoData marks cells that
// carry no observation and may be NaN.
type Band struct {
	Width  int
	Height int
	NoData float64
	Data   []float64
}

func NewBand(width, height int, noData float64) *Band {
	band := &Band{
		Width:  width,
		Height: height,
		NoData: noData,
		Data:   make([]float64, width*height),
	}
	if noData != 0 {
		for i := range band.Data {
			band.Data[i] = noData
		}
	}
	return band
}

func (b *Band) At(x, y int) float64 {
	return b.Data[y*b.Width+x]
}

func (b *Band) Set(x, y int, value float64) {
	b.Data[y*b.Width+x] = value
}

// Row returns the y-th row as a slice aliasing the band's storage.
func (b *Band) Row(y int) []float64 {
	return b.Data[y*b.Width : (y+1)*b.Width]
}

func (b *Band) IsNoData(value float64) bool {
	if math.IsNaN(b.NoData) {
		return math.IsNaN(value)
	}
	return value == b.NoData
}

func (b *Band) SameShape(other *Band) bool {
	return b.Width == other.Width && b.Height == other.Height
}

func (b *Band) Clone() *Band {
	clone := &Band{
		Width:  b.Width,
		Height: b.Height,
		NoData: b.NoData,
		Data:   make([]float64, len(b.Data)),
	}
	copy(clone.Data, b.Data)
	return clone
}

// Stack groups bands that share the same width and height.
type Stack struct {
	Bands []*Band
}

func NewStack(bands ...*Band) (*Stack, error) {
	if len(bands) == 0 {
		return nil, errors.New("cannot build a stack with no bands")
	}
	first := bands[0]
	for i, band := range bands[1:] {
		if !first.SameShape(band) {
			return nil, fmt.Errorf("%w: band 0 is %dx%d, band %d is %dx%d",
				ErrShapeMismatch, first.Width, first.Height, i+1, band.Width, band.Height)
		}
	}
	return &Stack{Bands: bands}, nil
}

func (s *Stack) Width() int {
	return s.Bands[0].Width
}

func (s *Stack) Height() int {
	return s.Bands[0].Height
}
