package pattern

import (
	"image"
	"image/color"
)

// Compose stacks grid on top of legend, both aligned left, on a white canvas
// as wide as the wider of the two.
func Compose(grid, legend image.Image) *image.RGBA {
	gb, lb := grid.Bounds(), legend.Bounds()
	w := gb.Dx()
	if lb.Dx() > w {
		w = lb.Dx()
	}
	c := &canvas{dst: image.NewRGBA(image.Rect(0, 0, w, gb.Dy()+lb.Dy()))}
	c.fill(c.dst.Bounds(), color.White)
	c.paste(grid, image.Point{})
	c.paste(legend, image.Pt(0, gb.Dy()))
	return c.dst
}
