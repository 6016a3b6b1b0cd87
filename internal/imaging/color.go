package imaging

import (
	"fmt"
	"image"
	"image/color"
)

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
//   - Width = X2 - X1, Height = Y2 - Y1
type Region struct {
	X1 int `json:"x1"` // Left edge X coordinate (inclusive)
	Y1 int `json:"y1"` // Top edge Y coordinate (inclusive)
	X2 int `json:"x2"` // Right edge X coordinate (exclusive)
	Y2 int `json:"y2"` // Bottom edge Y coordinate (exclusive)
}

// Rect returns the region as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// Validate checks that r is non-empty and lies within bounds.
func (r Region) Validate(bounds image.Rectangle) error {
	if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
		return fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
		return fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	return nil
}

// SampleColor extracts the opaque color at a specific pixel coordinate.
//
// Coordinates are 0-based with origin at top-left. Alpha is ignored: the
// straight channels of a translucent pixel are returned as opaque.
func SampleColor(img image.Image, x, y int) (color.RGBA, error) {
	bounds := img.Bounds()
	if !image.Pt(x, y).In(bounds) {
		return color.RGBA{}, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	c := straight(img.At(x, y))
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}, nil
}

func straight(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// AverageColor returns the mean color of the pixels in region, with each
// channel truncated to 8 bits.
//
// Alpha is ignored as in SampleColor.
func AverageColor(img image.Image, region Region) (color.RGBA, error) {
	if err := region.Validate(img.Bounds()); err != nil {
		return color.RGBA{}, err
	}

	var sumR, sumG, sumB, n uint64
	for y := region.Y1; y < region.Y2; y++ {
		for x := region.X1; x < region.X2; x++ {
			c := straight(img.At(x, y))
			sumR += uint64(c.R)
			sumG += uint64(c.G)
			sumB += uint64(c.B)
			n++
		}
	}
	return color.RGBA{R: uint8(sumR / n), G: uint8(sumG / n), B: uint8(sumB / n), A: 255}, nil
}

// StitchRegion returns the square of source pixels that becomes the stitch
// containing (x, y) when img is scaled to width stitches per row.
func StitchRegion(img image.Image, x, y, width int) (Region, error) {
	bounds := img.Bounds()
	if width <= 0 {
		return Region{}, fmt.Errorf("invalid width %d: must be positive", width)
	}
	if !image.Pt(x, y).In(bounds) {
		return Region{}, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	size := bounds.Dx() / width
	if size < 1 {
		size = 1
	}
	x1 := bounds.Min.X + (x-bounds.Min.X)/size*size
	y1 := bounds.Min.Y + (y-bounds.Min.Y)/size*size
	r := Region{X1: x1, Y1: y1, X2: x1 + size, Y2: y1 + size}
	if r.X2 > bounds.Max.X {
		r.X2 = bounds.Max.X
	}
	if r.Y2 > bounds.Max.Y {
		r.Y2 = bounds.Max.Y
	}
	return r, nil
}
