package pattern

import (
	"context"
	"fmt"
	"image"

	"github.com/ironsheep/xstitch/internal/floss"
	"github.com/ironsheep/xstitch/internal/imaging"
	"github.com/ironsheep/xstitch/internal/logging"
	"github.com/ironsheep/xstitch/internal/palette"
)

// Result holds every artifact of a pattern build.
type Result struct {
	// Stitches has one pixel per stitch, colored with floss reference colors.
	Stitches *image.RGBA
	Usage    Usage
	// Entries lists the flosses used, sorted like the legend.
	Entries []LegendEntry

	Grid   *image.RGBA
	Legend *image.RGBA
	// Scheme is the grid stacked on top of the legend.
	Scheme *image.RGBA

	Geometry Geometry
}

// Build is BuildContext with a background context.
func Build(photo image.Image, catalog *floss.Catalog, opts Options) (*Result, error) {
	return BuildContext(context.Background(), photo, catalog, opts)
}

// BuildContext turns a photo into a complete pattern: optional luminance
// equalization, scaling to opts.Width stitches, palette reduction, floss
// conversion, then grid and legend rendering.
func BuildContext(ctx context.Context, photo image.Image, catalog *floss.Catalog, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if catalog == nil || catalog.Len() == 0 {
		return nil, fmt.Errorf("empty floss catalog")
	}
	geom, err := NewGeometry(opts.DPI)
	if err != nil {
		return nil, err
	}

	img := photo
	if opts.Enhance {
		if img, err = imaging.Equalize(img); err != nil {
			return nil, fmt.Errorf("failed to enhance image: %w", err)
		}
	}
	if img, err = imaging.ResizeToWidth(img, opts.Width); err != nil {
		return nil, fmt.Errorf("failed to resize image: %w", err)
	}

	reduced, err := palette.Reduce(img, opts.MaxColors)
	if err != nil {
		return nil, fmt.Errorf("failed to reduce palette: %w", err)
	}

	conv := NewConverter(floss.NewMatcher(catalog))
	conv.Workers = opts.Workers
	stitches, usage, err := conv.ConvertContext(ctx, reduced)
	if err != nil {
		return nil, fmt.Errorf("failed to convert to flosses: %w", err)
	}

	entries, err := LegendEntries(catalog, usage)
	if err != nil {
		return nil, err
	}
	SortLegend(entries)

	grid, err := RenderGrid(stitches, opts.DPI)
	if err != nil {
		return nil, fmt.Errorf("failed to render grid: %w", err)
	}
	legend, err := RenderLegend(stitches, entries, opts.DPI)
	if err != nil {
		return nil, fmt.Errorf("failed to render legend: %w", err)
	}
	scheme := Compose(grid, legend)

	logging.Debugf("Scheme size is %.1fcm x %.1fcm",
		geom.Centimeters(scheme.Bounds().Dx()), geom.Centimeters(scheme.Bounds().Dy()))

	return &Result{
		Stitches: stitches,
		Usage:    usage,
		Entries:  entries,
		Grid:     grid,
		Legend:   legend,
		Scheme:   scheme,
		Geometry: geom,
	}, nil
}

// Columns returns the pattern width in stitches.
func (r *Result) Columns() int { return r.Stitches.Bounds().Dx() }

// Rows returns the pattern height in stitches.
func (r *Result) Rows() int { return r.Stitches.Bounds().Dy() }
