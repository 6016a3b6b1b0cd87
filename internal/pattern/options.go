package pattern

import (
	"fmt"
	"runtime"
)

// Options configures Build.
type Options struct {
	// Width is the number of stitches per row. The number of rows follows the
	// aspect ratio of the photo.
	Width int `json:"width"`

	// MaxColors bounds the number of palette colors, and therefore flosses.
	MaxColors int `json:"max_colors"`

	// DPI is the print resolution.
	DPI int `json:"dpi"`

	// Enhance equalizes the photo's luminance before scaling.
	Enhance bool `json:"enhance"`

	// Workers is the number of goroutines used for floss matching.
	Workers int `json:"workers"`
}

// DefaultOptions returns the settings of a 120 stitch wide, 15 floss pattern
// printed at 300 dpi.
func DefaultOptions() Options {
	return Options{
		Width:     120,
		MaxColors: 15,
		DPI:       300,
		Enhance:   true,
		Workers:   runtime.NumCPU(),
	}
}

// Validate reports the first invalid setting.
func (o Options) Validate() error {
	switch {
	case o.Width <= 0:
		return fmt.Errorf("invalid width %d: must be positive", o.Width)
	case o.MaxColors <= 0:
		return fmt.Errorf("invalid max colors %d: must be positive", o.MaxColors)
	case o.Workers <= 0:
		return fmt.Errorf("invalid workers %d: must be positive", o.Workers)
	}
	if _, err := NewGeometry(o.DPI); err != nil {
		return err
	}
	return nil
}
