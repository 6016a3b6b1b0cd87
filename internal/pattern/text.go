package pattern

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

var (
	regularOnce sync.Once
	regularFont *truetype.Font
	regularErr  error
)

func loadRegular() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regularFont, regularErr = truetype.Parse(goregular.TTF)
		if regularErr != nil {
			regularErr = fmt.Errorf("failed to parse font: %w", regularErr)
		}
	})
	return regularFont, regularErr
}

// canvas draws shapes and text onto an RGBA image. Font faces keep a glyph
// cache and are not safe for concurrent use, so every render call owns its
// canvas.
type canvas struct {
	dst   *image.RGBA
	font  *truetype.Font
	faces map[float64]font.Face
}

// newCanvas allocates a white width x height image.
func newCanvas(width, height int) (*canvas, error) {
	f, err := loadRegular()
	if err != nil {
		return nil, err
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	return &canvas{dst: dst, font: f, faces: make(map[float64]font.Face)}, nil
}

func (c *canvas) close() {
	for _, face := range c.faces {
		face.Close()
	}
}

func (c *canvas) face(size float64) font.Face {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(c.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	c.faces[size] = f
	return f
}

// fill paints r, clipped to the canvas.
func (c *canvas) fill(r image.Rectangle, col color.Color) {
	draw.Draw(c.dst, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// paste copies src with its top-left corner at at.
func (c *canvas) paste(src image.Image, at image.Point) {
	b := src.Bounds()
	draw.Draw(c.dst, image.Rectangle{Min: at, Max: at.Add(b.Size())}, src, b.Min, draw.Src)
}

// text draws s with its baseline starting at (x, y).
func (c *canvas) text(s string, x, y int, size float64, col color.Color) {
	d := &font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(col),
		Face: c.face(size),
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// centered draws s with the center of its ink box on the center of r.
func (c *canvas) centered(s string, r image.Rectangle, size float64, col color.Color) {
	face := c.face(size)
	b, _ := font.BoundString(face, s)
	d := &font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(r.Min.X+r.Max.X)/2 - (b.Min.X+b.Max.X)/2,
			Y: fixed.I(r.Min.Y+r.Max.Y)/2 - (b.Min.Y+b.Max.Y)/2,
		},
	}
	d.DrawString(s)
}

// middle draws s starting at x, vertically centered on y.
func (c *canvas) middle(s string, x, y int, size float64, col color.Color) {
	face := c.face(size)
	b, _ := font.BoundString(face, s)
	d := &font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) - (b.Min.Y+b.Max.Y)/2},
	}
	d.DrawString(s)
}

// textWidth returns the advance width of s in pixels.
func (c *canvas) textWidth(s string, size float64) int {
	return font.MeasureString(c.face(size), s).Ceil()
}
