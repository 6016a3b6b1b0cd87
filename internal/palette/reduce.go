// Package palette reduces a photo to a bounded number of representative
// colors before floss matching.
package palette

import (
	"errors"
	"fmt"
	"image"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/ironsheep/xstitch/internal/floss"
	"github.com/ironsheep/xstitch/internal/logging"
)

var (
	// ErrEmptyImage is returned for images with zero width or height.
	ErrEmptyImage = errors.New("image has zero area")

	// ErrInvalidMaxColors is returned when the color budget is not positive.
	ErrInvalidMaxColors = errors.New("max colors must be positive")
)

// CountColors returns the number of distinct colors in img, ignoring alpha.
func CountColors(img image.Image) int {
	return len(histogram(img))
}

// Reduce replaces every pixel of img with the centroid of its k-means
// cluster, so that the result has at most maxColors distinct colors.
//
// Clustering runs on all pixels, duplicates included, so frequent colors pull
// centroids toward themselves. The number of clusters is
// min(maxColors, distinct colors); an image that already fits the budget is
// returned as an unchanged copy. Centroid channels are truncated to integers.
//
// The input is never modified. The result has the same size as img with
// bounds starting at the origin.
func Reduce(img image.Image, maxColors int) (*image.RGBA, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}
	if maxColors <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxColors, maxColors)
	}

	counts := histogram(img)
	logging.Debugf("Original image had %d colors. Reducing to %d.", len(counts), maxColors)

	if len(counts) <= maxColors {
		return mapPixels(img, func(c floss.RGB) floss.RGB { return c }), nil
	}

	dataset := make(clusters.Observations, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dataset = append(dataset, coordinates(floss.RGBFromColor(img.At(x, y))))
		}
	}

	cc, err := kmeans.New().Partition(dataset, maxColors)
	if err != nil {
		return nil, fmt.Errorf("k-means clustering failed: %w", err)
	}

	centroids := make([]floss.RGB, len(cc))
	for i, c := range cc {
		centroids[i] = floss.Truncate(c.Center[0], c.Center[1], c.Center[2])
	}

	assign := make(map[floss.RGB]floss.RGB, len(counts))
	for c := range counts {
		assign[c] = centroids[cc.Nearest(coordinates(c))]
	}

	return mapPixels(img, func(c floss.RGB) floss.RGB { return assign[c] }), nil
}

func coordinates(c floss.RGB) clusters.Coordinates {
	return clusters.Coordinates{float64(c.R), float64(c.G), float64(c.B)}
}

func histogram(img image.Image) map[floss.RGB]int {
	bounds := img.Bounds()
	counts := make(map[floss.RGB]int)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			counts[floss.RGBFromColor(img.At(x, y))]++
		}
	}
	return counts
}

// mapPixels builds a new origin-based RGBA image from img, transforming every
// pixel color through fn.
func mapPixels(img image.Image, fn func(floss.RGB) floss.RGB) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			c := fn(floss.RGBFromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
			out.SetRGBA(x, y, c.ToColor())
		}
	}
	return out
}
