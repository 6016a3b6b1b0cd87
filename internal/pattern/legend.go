package pattern

import (
	"fmt"
	"image"
	"sort"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/xstitch/internal/floss"
	"github.com/ironsheep/xstitch/internal/logging"
)

// LegendEntry is one row of the legend: a floss and the number of stitches
// worked in it.
type LegendEntry struct {
	Floss floss.Entry `json:"floss"`
	Count int         `json:"count"`
}

// Line returns the legend text for e.
func (e LegendEntry) Line() string {
	return fmt.Sprintf("(#%s) %s: %d", e.Floss.ID, e.Floss.Name, e.Count)
}

// LegendEntries resolves every identifier in u against catalog and returns
// the entries in catalog order.
func LegendEntries(catalog *floss.Catalog, u Usage) ([]LegendEntry, error) {
	entries := make([]LegendEntry, 0, len(u))
	for id, count := range u {
		f, err := catalog.Get(id)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LegendEntry{Floss: f, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		return catalog.Position(entries[i].Floss.ID) < catalog.Position(entries[j].Floss.ID)
	})
	return entries, nil
}

// SortLegend orders entries by descending count, keeping the existing order
// of equal counts.
func SortLegend(entries []LegendEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
}

// RenderLegend draws the floss legend with a preview of the pattern to its
// right.
//
// Entries are sorted with SortLegend (on a copy) and packed eight to a
// column, columns placed left to right. Each row shows a color swatch with
// the floss symbol and the text "(#id) name: count". The preview is scaled to
// one column width; whichever of the legend and the preview is shorter is
// padded with white. The block gets a white margin on the left, right and
// bottom.
func RenderLegend(preview image.Image, entries []LegendEntry, dpi int) (*image.RGBA, error) {
	g, err := NewGeometry(dpi)
	if err != nil {
		return nil, err
	}
	pb := preview.Bounds()
	if pb.Empty() {
		return nil, ErrEmptyImage
	}

	sorted := make([]LegendEntry, len(entries))
	copy(sorted, entries)
	SortLegend(sorted)

	columns := (len(sorted) + legendRows - 1) / legendRows
	legendW := g.ColumnWidth*columns + 2*g.LegendMargin
	legendH := g.LegendCell*legendRows + 2*g.LegendMargin

	previewH := int(float64(pb.Dy()) / float64(pb.Dx()) * float64(g.ColumnWidth))
	if previewH < 1 {
		previewH = 1
	}
	scaled := imaging.Resize(preview, g.ColumnWidth, previewH, imaging.Lanczos)

	blockH := legendH
	if previewH > blockH {
		blockH = previewH
	}
	fw := legendW + g.ColumnWidth + 2*g.Margin
	fh := blockH + g.Margin
	c, err := newCanvas(fw, fh)
	if err != nil {
		return nil, err
	}
	defer c.close()

	symbolSize := float64(g.Swatch) * 0.7
	for i, e := range sorted {
		x := g.Margin + (i/legendRows)*g.ColumnWidth + g.LegendMargin
		y := g.LegendMargin + (i%legendRows)*g.LegendCell
		swatch := image.Rect(x, y, x+g.Swatch, y+g.Swatch)
		c.fill(swatch, e.Floss.Color.ToColor())
		c.centered(Symbol(e.Floss.Color), swatch, symbolSize, TextColor(e.Floss.Color).ToColor())
		c.middle(e.Line(), x+g.Swatch+g.LegendMargin, y+g.Swatch/2, g.LabelSize, gridBlack)
	}
	c.paste(scaled, image.Pt(g.Margin+legendW, 0))

	logging.Debugf("Printout flosses map is %.1fcm x %.1fcm", g.Centimeters(fw), g.Centimeters(fh))
	return c.dst, nil
}
