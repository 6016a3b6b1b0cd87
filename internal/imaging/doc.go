// Package imaging handles the photo side of pattern generation: loading,
// contrast enhancement, scaling to the stitch grid, and saving the finished
// printout.
//
// None of these steps decide anything about flosses or layout; they hand the
// pattern pipeline a small raster with one pixel per stitch and write back the
// raster it renders.
//
// # Regions
//
// A pattern may be built from part of a photo. Region is a half-open
// rectangle; NamedRegion resolves names such as "top-left" or "center", and
// SelectRegion crops to either form. StitchRegion finds the photo pixels that
// end up in a single stitch once the photo is scaled to a given width, and
// AverageColor reduces them to one color for floss lookup.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based with (0,0) at the
// top-left corner. Results are always returned with bounds starting at the
// origin, whatever the bounds of the input.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The other functions are
// stateless and never modify their input image.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Images with zero width or height (ErrEmptyImage)
//   - Non-positive target widths
//   - Regions that are empty or extend past the photo
//   - File I/O errors during image loading and saving
package imaging
