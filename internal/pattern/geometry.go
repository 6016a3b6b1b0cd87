package pattern

import (
	"errors"
	"fmt"
)

// ErrInvalidDPI is returned for print resolutions that are not positive or too
// low to fit a single pixel in a stitch.
var ErrInvalidDPI = errors.New("invalid dpi")

// Physical sizes in centimeters.
const (
	crossCm        = 0.3
	lineCm         = 0.05
	marginCm       = 1.5
	swatchCm       = 0.6
	legendMarginCm = 0.2
	columnCm       = 12.0
	labelCm        = 0.45

	// legendRows is the number of flosses listed per legend column.
	legendRows = 8
)

// Geometry holds the pixel dimensions of a printout at a given resolution.
type Geometry struct {
	DPI int

	// Cross is the side of a colored stitch square.
	Cross int
	// Line is the gridline width. It is always even so a line can be
	// centered on a cell boundary.
	Line int
	// Cell is the distance between two gridlines: Cross + Line.
	Cell int
	// Margin is the white frame around the grid and the legend.
	Margin int

	Swatch       int
	LegendMargin int
	LegendCell   int
	ColumnWidth  int

	// LabelSize is the em size in pixels of axis labels and legend text.
	LabelSize float64
}

// NewGeometry computes the printout dimensions for dpi.
func NewGeometry(dpi int) (Geometry, error) {
	if dpi <= 0 {
		return Geometry{}, fmt.Errorf("%w: %d must be positive", ErrInvalidDPI, dpi)
	}

	g := Geometry{
		DPI:          dpi,
		Cross:        toPixels(crossCm, dpi),
		Line:         toPixels(lineCm, dpi),
		Margin:       toPixels(marginCm, dpi),
		Swatch:       toPixels(swatchCm, dpi),
		LegendMargin: toPixels(legendMarginCm, dpi),
		ColumnWidth:  toPixels(columnCm, dpi),
		LabelSize:    float64(toPixels(labelCm, dpi)),
	}
	g.Line += g.Line % 2
	g.Cell = g.Cross + g.Line
	g.LegendCell = g.Swatch + 2*g.LegendMargin

	if g.Cross < 1 {
		return Geometry{}, fmt.Errorf("%w: %d is too low for a %.0fmm stitch", ErrInvalidDPI, dpi, crossCm*10)
	}
	return g, nil
}

// GridSize returns the size of a framed grid printout for a pattern of
// cols x rows stitches.
func (g Geometry) GridSize(cols, rows int) (width, height int) {
	return g.Cell*cols + 2*g.Margin, g.Cell*rows + 2*g.Margin
}

// Centimeters converts a pixel length to centimeters at the geometry's DPI.
func (g Geometry) Centimeters(px int) float64 {
	return float64(px) * 2.54 / float64(g.DPI)
}

func toPixels(cm float64, dpi int) int {
	return int(cm * float64(dpi) / 2.54)
}
