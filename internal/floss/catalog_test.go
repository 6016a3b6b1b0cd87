package floss

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const twoFlosses = `Floss#,Description,Red,Green,Blue
A,Red,200,0,0
B,Blue,0,0,200
`

// mustLoad parses an inline CSV catalog or fails the test.
func mustLoad(t *testing.T, src string) *Catalog {
	t.Helper()
	c, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return c
}

func TestLoad(t *testing.T) {
	c := mustLoad(t, twoFlosses)

	if c.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", c.Len())
	}

	a, err := c.Get("A")
	if err != nil {
		t.Fatalf("Get(A) failed: %v", err)
	}
	if a.Name != "Red" || a.Color != (RGB{200, 0, 0}) {
		t.Errorf("A: got %+v, want Red (200,0,0)", a)
	}

	if c.At(1).ID != "B" {
		t.Errorf("At(1): got %s, want B", c.At(1).ID)
	}
	if c.Position("B") != 1 || c.Position("Z") != -1 {
		t.Errorf("Position: got B=%d Z=%d, want 1 and -1", c.Position("B"), c.Position("Z"))
	}
}

func TestLoad_ColumnAliasesAndOrder(t *testing.T) {
	src := "blue,green,red,name,identifier,extra\n10,20,30,Thing,X1,ignored\n"
	c := mustLoad(t, src)

	e, err := c.Get("X1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if e.Color != (RGB{30, 20, 10}) || e.Name != "Thing" {
		t.Errorf("got %+v, want Thing (30,20,10)", e)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantLine int
	}{
		{"empty source", "", 0},
		{"header only", "Floss#,Description,Red,Green,Blue\n", 0},
		{"missing column", "Floss#,Description,Red,Green\nA,Red,1,2\n", 1},
		{"non-integer channel", "Floss#,Description,Red,Green,Blue\nA,Red,1.5,2,3\n", 2},
		{"channel out of range", "Floss#,Description,Red,Green,Blue\nA,Red,1,2,300\n", 2},
		{"negative channel", "Floss#,Description,Red,Green,Blue\nA,Red,-1,2,3\n", 2},
		{"empty identifier", "Floss#,Description,Red,Green,Blue\n,Red,1,2,3\n", 2},
		{"duplicate identifier", "Floss#,Description,Red,Green,Blue\nA,Red,1,2,3\nA,Again,4,5,6\n", 3},
		{"short row", "Floss#,Description,Red,Green,Blue\nA,Red,1,2,3\nB,Blue,1\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var loadErr *CatalogLoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("expected *CatalogLoadError, got %T: %v", err, err)
			}
			if loadErr.Line != tt.wantLine {
				t.Errorf("Line: got %d, want %d (%v)", loadErr.Line, tt.wantLine, err)
			}
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	c := mustLoad(t, twoFlosses)

	_, err := c.Get("nope")
	var unknown *UnknownFlossError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownFlossError, got %v", err)
	}
	if unknown.ID != "nope" {
		t.Errorf("ID: got %q, want nope", unknown.ID)
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	c := mustLoad(t, twoFlosses)

	entries := c.Entries()
	entries[0].Name = "changed"

	if c.At(0).Name != "Red" {
		t.Error("modifying Entries() result changed the catalog")
	}
}

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	if c.Len() < 400 {
		t.Errorf("Len: got %d, want at least 400 DMC flosses", c.Len())
	}

	black, err := c.Get("310")
	if err != nil {
		t.Fatalf("Get(310) failed: %v", err)
	}
	if black.Color != (RGB{0, 0, 0}) {
		t.Errorf("310: got %v, want black", black.Color)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.csv")
	if err := os.WriteFile(path, []byte(twoFlosses), 0o644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len: got %d, want 2", c.Len())
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#FF0000", RGB{255, 0, 0}, false},
		{"00ff80", RGB{0, 255, 128}, false},
		{"#fff", RGB{255, 255, 255}, false},
		{"", RGB{}, true},
		{"#GGGGGG", RGB{}, true},
		{"#12345", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRGB_Hex(t *testing.T) {
	if got := (RGB{200, 0, 16}).Hex(); got != "#c80010" {
		t.Errorf("Hex: got %s, want #c80010", got)
	}
}

func TestRGB_DeltaE(t *testing.T) {
	red := RGB{255, 0, 0}
	if d := red.DeltaE(red); d != 0 {
		t.Errorf("DeltaE to itself: got %f, want 0", d)
	}
	if red.DeltaE(RGB{0, 0, 255}) <= red.DeltaE(RGB{250, 10, 10}) {
		t.Error("blue should be farther from red than a near-red")
	}
}

func TestRGBFromColor_IgnoresAlpha(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want RGB
	}{
		{"opaque", color.RGBA{1, 2, 3, 255}, RGB{1, 2, 3}},
		{"straight translucent", color.NRGBA{200, 0, 0, 40}, RGB{200, 0, 0}},
		{"premultiplied translucent", color.RGBA{80, 0, 0, 102}, RGB{200, 0, 0}},
		{"gray", color.Gray{Y: 77}, RGB{77, 77, 77}},
		{"transparent", color.NRGBA{200, 100, 50, 0}, RGB{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBFromColor(tt.in); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
