package pattern

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/xstitch/internal/floss"
	"github.com/ironsheep/xstitch/internal/logging"
)

var (
	gridGray   = color.RGBA{150, 150, 150, 255}
	gridBlack  = color.RGBA{0, 0, 0, 255}
	centerMark = color.RGBA{200, 0, 0, 255}
)

const (
	// majorEvery is the number of cells between two black gridlines.
	majorEvery = 5
	// labelEvery is the number of cells between two axis labels.
	labelEvery = 10
)

// RenderGrid draws the stitch grid of img, one cell per pixel, framed by a
// white margin carrying axis labels and a "WxH" caption.
//
// Every cell is filled with the pixel color and marked with its Symbol in the
// matching TextColor. Gridlines are gray at every cell boundary and black
// every fifth boundary and around the border. A two pixel red crosshair marks
// the horizontal and vertical midlines.
//
// The result is exactly Geometry.GridSize(width, height) pixels.
func RenderGrid(img image.Image, dpi int) (*image.RGBA, error) {
	g, err := NewGeometry(dpi)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}

	cols, rows := bounds.Dx(), bounds.Dy()
	fw, fh := g.GridSize(cols, rows)
	c, err := newCanvas(fw, fh)
	if err != nil {
		return nil, err
	}
	defer c.close()

	logging.Debugf("Cell size: %d, line width: %d, cross size: %d", g.Cell, g.Line, g.Cross)

	// Grid area in canvas coordinates.
	w, h := g.Cell*cols, g.Cell*rows
	area := image.Rect(g.Margin, g.Margin, g.Margin+w, g.Margin+h)
	symbolSize := float64(g.Cross) * 0.7

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			col := floss.RGBFromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			x0 := area.Min.X + x*g.Cell + g.Line/2
			y0 := area.Min.Y + y*g.Cell + g.Line/2
			cell := image.Rect(x0, y0, x0+g.Cross, y0+g.Cross)
			c.fill(cell, col.ToColor())
			c.centered(Symbol(col), cell, symbolSize, TextColor(col).ToColor())
		}
	}

	half := g.Line / 2
	border := half
	if border < 1 {
		border = 1
	}
	hline := func(y0, y1 int, col color.Color) {
		c.fill(image.Rect(area.Min.X, area.Min.Y+y0, area.Max.X, area.Min.Y+y1).Intersect(area), col)
	}
	vline := func(x0, x1 int, col color.Color) {
		c.fill(image.Rect(area.Min.X+x0, area.Min.Y, area.Min.X+x1, area.Max.Y).Intersect(area), col)
	}

	for b := 0; b < h; b += g.Cell {
		hline(b-half, b+half+1, gridGray)
	}
	for b := 0; b < w; b += g.Cell {
		vline(b-half, b+half+1, gridGray)
	}

	hline(0, half+1, gridBlack)
	hline(h-border, h, gridBlack)
	for b := 0; b < h; b += g.Cell * majorEvery {
		hline(b-half, b+half+1, gridBlack)
	}
	vline(0, half+1, gridBlack)
	vline(w-border, w, gridBlack)
	for b := 0; b < w; b += g.Cell * majorEvery {
		vline(b-half, b+half+1, gridBlack)
	}

	hline(h/2-1, h/2+1, centerMark)
	vline(w/2-1, w/2+1, centerMark)

	gap := g.Cross / 2
	for y := g.Cell * labelEvery; y < h; y += g.Cell * labelEvery {
		c.middle(fmt.Sprint(y/g.Cell), fw-g.Margin+gap, g.Margin+y, g.LabelSize, gridBlack)
	}
	for x := g.Cell * labelEvery; x < w; x += g.Cell * labelEvery {
		label := fmt.Sprint(x / g.Cell)
		c.text(label, g.Margin+x-c.textWidth(label, g.LabelSize)/2, g.Margin-gap, g.LabelSize, gridBlack)
	}
	caption := fmt.Sprintf("%dx%d", cols, rows)
	c.text(caption, (fw-c.textWidth(caption, g.LabelSize))/2, fh-g.Margin/2, g.LabelSize, gridBlack)

	logging.Debugf("Printout image is %.1fcm x %.1fcm", g.Centimeters(fw), g.Centimeters(fh))
	return c.dst, nil
}
