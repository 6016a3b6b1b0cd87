package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/histogram"
	"github.com/disintegration/imaging"
)

// ErrEmptyImage is returned for images with zero width or height.
var ErrEmptyImage = errors.New("image has zero area")

// Equalize spreads the luminance of img over the full 0-255 range while
// keeping its chroma.
//
// # Algorithm
//
//  1. Convert every pixel to YCbCr (ITU-R BT.601).
//  2. Build the histogram of Y and its cumulative distribution.
//  3. Remap each Y value through the normalized cumulative distribution:
//
//     y' = round((cdf[y] - cdfMin) * 255 / (pixels - cdfMin))
//
//     where cdfMin is the first non-zero cumulative count.
//  4. Convert back to RGB with the original Cb and Cr.
//
// Images with a single luminance level are returned unchanged (as a copy).
func Equalize(img image.Image) (*image.NRGBA, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}
	src := imaging.Clone(img)
	w, h := bounds.Dx(), bounds.Dy()

	luma := image.NewGray(image.Rect(0, 0, w, h))
	cb := make([]uint8, w*h)
	cr := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.NRGBAAt(x, y)
			yy, b, r := color.RGBToYCbCr(c.R, c.G, c.B)
			luma.SetGray(x, y, color.Gray{Y: yy})
			cb[y*w+x] = b
			cr[y*w+x] = r
		}
	}

	cdf := histogram.NewRGBAHistogram(luma).R.Cumulative().Bins
	total := w * h
	cdfMin := 0
	for _, v := range cdf {
		if v > 0 {
			cdfMin = v
			break
		}
	}
	if total == cdfMin {
		return src, nil
	}

	var lut [256]uint8
	for i := range lut {
		if i >= len(cdf) || cdf[i] < cdfMin {
			continue
		}
		v := math.Round(float64(cdf[i]-cdfMin) * 255 / float64(total-cdfMin))
		lut[i] = uint8(math.Min(255, math.Max(0, v)))
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			r, g, b := color.YCbCrToRGB(lut[luma.GrayAt(x, y).Y], cb[i], cr[i])
			out.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return out, nil
}

// ResizeToWidth scales img to width pixels, keeping the aspect ratio. The
// height is width*h/w rounded down, and never less than one row.
func ResizeToWidth(img image.Image, width int) (*image.NRGBA, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}
	if width <= 0 {
		return nil, fmt.Errorf("invalid width %d: must be positive", width)
	}
	height := scaledHeight(bounds.Dx(), bounds.Dy(), width)
	return imaging.Resize(img, width, height, imaging.Lanczos), nil
}

func scaledHeight(srcW, srcH, width int) int {
	if srcW <= 0 {
		return 0
	}
	h := width * srcH / srcW
	if h < 1 {
		h = 1
	}
	return h
}
