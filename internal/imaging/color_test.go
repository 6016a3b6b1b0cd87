package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 255})

	got, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if got != (color.RGBA{255, 128, 64, 255}) {
		t.Errorf("got %v, want (255,128,64)", got)
	}
}

func TestSampleColor_Quadrants(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"top-left", 10, 10, color.RGBA{255, 0, 0, 255}},
		{"top-right", 90, 10, color.RGBA{0, 255, 0, 255}},
		{"bottom-left", 10, 90, color.RGBA{0, 0, 255, 255}},
		{"bottom-right", 90, 90, color.RGBA{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SampleColor(img, tt.x, tt.y)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.White)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(img, tt.x, tt.y); err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestAverageColor(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		name   string
		region Region
		want   color.RGBA
	}{
		{"single quadrant", Region{0, 0, 50, 50}, color.RGBA{255, 0, 0, 255}},
		{"red and green", Region{40, 0, 60, 10}, color.RGBA{127, 127, 0, 255}},
		{"whole image", Region{0, 0, 100, 100}, color.RGBA{127, 127, 127, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AverageColor(img, tt.region)
			if err != nil {
				t.Fatalf("AverageColor failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAverageColor_InvalidRegion(t *testing.T) {
	img := createInMemoryImage(20, 20, color.White)

	for _, r := range []Region{{5, 5, 5, 10}, {10, 0, 5, 5}, {0, 0, 21, 5}, {-1, 0, 5, 5}} {
		if _, err := AverageColor(img, r); err == nil {
			t.Errorf("region %+v: expected error", r)
		}
	}
}

func TestStitchRegion(t *testing.T) {
	img := createInMemoryImage(400, 300, color.White)

	tests := []struct {
		name  string
		x, y  int
		width int
		want  Region
	}{
		{"first stitch", 0, 0, 100, Region{0, 0, 4, 4}},
		{"inside a stitch", 7, 9, 100, Region{4, 8, 8, 12}},
		{"last column", 399, 299, 100, Region{396, 296, 400, 300}},
		{"wider than photo", 5, 5, 800, Region{5, 5, 6, 6}},
		{"partial edge stitch", 399, 0, 3, Region{399, 0, 400, 133}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StitchRegion(img, tt.x, tt.y, tt.width)
			if err != nil {
				t.Fatalf("StitchRegion failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}

	if _, err := StitchRegion(img, 0, 0, 0); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := StitchRegion(img, 400, 0, 10); err == nil {
		t.Error("expected error for point outside image")
	}
}

func TestSampleColor_IgnoresAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{200, 0, 0, 40})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 100, 255})

	got, err := SampleColor(img, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if got != (color.RGBA{200, 0, 0, 255}) {
		t.Errorf("SampleColor: got %v, want {200 0 0 255}", got)
	}

	avg, err := AverageColor(img, Region{0, 0, 2, 1})
	if err != nil {
		t.Fatalf("AverageColor failed: %v", err)
	}
	if avg != (color.RGBA{100, 0, 50, 255}) {
		t.Errorf("AverageColor: got %v, want {100 0 50 255}", avg)
	}
}
