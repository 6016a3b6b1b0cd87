// Package pattern turns a palette-reduced photo into a printable cross-stitch
// pattern.
//
// # Pipeline
//
// A pattern is produced in four stages:
//
//  1. Convert maps every pixel to its closest floss and counts how many
//     stitches each floss covers (see Converter).
//  2. RenderGrid draws one symbol-annotated cell per stitch with gridlines,
//     axis labels and a center marker.
//  3. RenderLegend lists every floss used, most stitches first, next to a
//     preview of the converted image.
//  4. Compose stacks the grid on top of the legend.
//
// Build runs the whole pipeline, including the photo preparation done by the
// imaging and palette packages.
//
// # Physical Dimensions
//
// All sizes are derived from the print resolution (see Geometry): a stitch is
// 3mm wide, gridlines are 0.5mm and the printout carries a 1.5cm margin.
// Pixel sizes are computed as cm*dpi/2.54 and truncated.
//
// # Thread Safety
//
// Rendering functions are stateless and safe for concurrent use. A Converter
// may be shared between goroutines; every call owns its match caches and
// usage counters.
package pattern
