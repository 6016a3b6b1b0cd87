package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Regions lists the names accepted by NamedRegion.
var Regions = []string{
	"top-left", "top-right", "bottom-left", "bottom-right",
	"top-half", "bottom-half", "left-half", "right-half", "center",
}

// Crop extracts a rectangular region from an image. The result has bounds
// starting at the origin.
func Crop(img image.Image, region Region) (*image.NRGBA, error) {
	if err := region.Validate(img.Bounds()); err != nil {
		return nil, err
	}
	return imaging.Crop(img, region.Rect()), nil
}

// NamedRegion resolves a named part of bounds, such as "top-left" or
// "center" (the middle 50% in both directions).
func NamedRegion(bounds image.Rectangle, name string) (Region, error) {
	w := bounds.Dx()
	h := bounds.Dy()
	midX := w / 2
	midY := h / 2

	var x1, y1, x2, y2 int

	switch name {
	case "top-left":
		x1, y1, x2, y2 = 0, 0, midX, midY
	case "top-right":
		x1, y1, x2, y2 = midX, 0, w, midY
	case "bottom-left":
		x1, y1, x2, y2 = 0, midY, midX, h
	case "bottom-right":
		x1, y1, x2, y2 = midX, midY, w, h
	case "top-half":
		x1, y1, x2, y2 = 0, 0, w, midY
	case "bottom-half":
		x1, y1, x2, y2 = 0, midY, w, h
	case "left-half":
		x1, y1, x2, y2 = 0, 0, midX, h
	case "right-half":
		x1, y1, x2, y2 = midX, 0, w, h
	case "center":
		qW := w / 4
		qH := h / 4
		x1, y1, x2, y2 = qW, qH, w-qW, h-qH
	default:
		return Region{}, fmt.Errorf("unknown region: %s", name)
	}

	return Region{
		X1: bounds.Min.X + x1,
		Y1: bounds.Min.Y + y1,
		X2: bounds.Min.X + x2,
		Y2: bounds.Min.Y + y2,
	}, nil
}

// ErrRegionConflict is returned by SelectRegion when both a region name and a
// rectangle are given.
var ErrRegionConflict = errors.New("region and crop are mutually exclusive")

// SelectRegion restricts img to a named region or an explicit rectangle. At
// most one of them may be given; with neither, img is returned as is.
func SelectRegion(img image.Image, name string, rect *Region) (image.Image, error) {
	var region Region
	switch {
	case name != "" && rect != nil:
		return nil, ErrRegionConflict
	case name != "":
		r, err := NamedRegion(img.Bounds(), name)
		if err != nil {
			return nil, err
		}
		region = r
	case rect != nil:
		region = *rect
	default:
		return img, nil
	}

	cropped, err := Crop(img, region)
	if err != nil {
		return nil, err
	}
	return cropped, nil
}

// ParseRegion reads a rectangle written as "x1,y1,x2,y2".
func ParseRegion(s string) (Region, error) {
	var r Region
	var rest string
	n, _ := fmt.Sscanf(s, "%d,%d,%d,%d%s", &r.X1, &r.Y1, &r.X2, &r.Y2, &rest)
	if n != 4 {
		return Region{}, fmt.Errorf("invalid region %q: want x1,y1,x2,y2", s)
	}
	return r, nil
}
