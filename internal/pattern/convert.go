package pattern

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/xstitch/internal/floss"
	"github.com/ironsheep/xstitch/internal/logging"
)

// ErrEmptyImage is returned for images with zero width or height.
var ErrEmptyImage = errors.New("image has zero area")

// Usage maps a floss identifier to the number of stitches worked in it.
type Usage map[string]int

// Total returns the number of stitches over all flosses.
func (u Usage) Total() int {
	n := 0
	for _, c := range u {
		n += c
	}
	return n
}

// IDs returns the identifiers in u in lexical order.
func (u Usage) IDs() []string {
	ids := make([]string, 0, len(u))
	for id := range u {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (u Usage) merge(other Usage) {
	for id, c := range other {
		u[id] += c
	}
}

// Converter replaces the colors of an image with the reference colors of
// their closest flosses.
type Converter struct {
	matcher *floss.Matcher

	// Workers is the number of goroutines converting rows. Each one owns a
	// match cache and a usage counter; the counters are merged at the end.
	Workers int
}

// NewConverter creates a sequential converter matching against m.
func NewConverter(m *floss.Matcher) *Converter {
	return &Converter{matcher: m, Workers: 1}
}

// Convert is ConvertContext with a background context.
func (c *Converter) Convert(img image.Image) (*image.RGBA, Usage, error) {
	return c.ConvertContext(context.Background(), img)
}

// ConvertContext returns a copy of img in which every pixel carries the
// reference color of its closest floss, along with the number of pixels per
// floss. The counts always sum to the pixel count of img.
//
// Rows are split into contiguous bands, one per worker. The context is checked
// before every row; on cancellation the context error is returned.
func (c *Converter) ConvertContext(ctx context.Context, img image.Image) (*image.RGBA, Usage, error) {
	if c.matcher == nil {
		return nil, nil, errors.New("converter has no matcher")
	}
	if c.Workers < 1 {
		return nil, nil, fmt.Errorf("invalid worker count %d: must be positive", c.Workers)
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, nil, ErrEmptyImage
	}

	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))

	workers := c.Workers
	if workers > h {
		workers = h
	}
	counts := make([]Usage, workers)
	band := (h + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		y0, y1 := i*band, (i+1)*band
		if y1 > h {
			y1 = h
		}
		g.Go(func() error {
			cache := make(floss.MatchCache)
			usage := make(Usage)
			for y := y0; y < y1; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				for x := 0; x < w; x++ {
					src := floss.RGBFromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
					e := c.matcher.Closest(src, cache)
					out.SetRGBA(x, y, e.Color.ToColor())
					usage[e.ID]++
				}
			}
			counts[i] = usage
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	usage := make(Usage)
	for _, u := range counts {
		usage.merge(u)
	}
	logging.Debugf("Image has %d unique flosses.", len(usage))
	return out, usage, nil
}
