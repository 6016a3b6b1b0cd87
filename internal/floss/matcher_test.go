package floss

import (
	"math/rand"
	"testing"
)

// linearClosest is the reference scan: first entry with the minimum distance.
func linearClosest(c *Catalog, q RGB) int {
	best, bestDist := 0, Distance(q, c.At(0).Color)
	for i := 1; i < c.Len(); i++ {
		if d := Distance(q, c.At(i).Color); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b RGB
		want int
	}{
		{RGB{0, 0, 0}, RGB{0, 0, 0}, 0},
		{RGB{0, 0, 0}, RGB{255, 255, 255}, 3 * 255 * 255},
		{RGB{10, 20, 30}, RGB{13, 16, 30}, 25},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%v,%v): got %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		r, g, b float64
		want    RGB
	}{
		{200.9, 0.2, 99.99, RGB{200, 0, 99}},
		{-3, 256, 255, RGB{0, 255, 255}},
		{0, 0, 0, RGB{0, 0, 0}},
	}
	for _, tt := range tests {
		if got := Truncate(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("Truncate(%v,%v,%v): got %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestClosest_TwoFlosses(t *testing.T) {
	m := NewMatcher(mustLoad(t, twoFlosses))

	tests := []struct {
		query RGB
		want  string
	}{
		{RGB{210, 5, 5}, "A"},
		{RGB{5, 5, 210}, "B"},
		{RGB{200, 0, 0}, "A"},
		{RGB{0, 0, 0}, "A"}, // equidistant: first in catalog order wins
	}

	for _, tt := range tests {
		if got := m.Closest(tt.query, nil); got.ID != tt.want {
			t.Errorf("Closest(%v): got %s, want %s", tt.query, got.ID, tt.want)
		}
	}
}

func TestClosest_DuplicateColorsPreferCatalogOrder(t *testing.T) {
	src := `Floss#,Description,Red,Green,Blue
X,Other,10,10,10
B5200,Snow White,255,255,255
White,White,255,255,255
Y,Another White,255,255,255
`
	m := NewMatcher(mustLoad(t, src))

	for i := 0; i < 3; i++ {
		if got := m.Closest(RGB{255, 255, 255}, nil); got.ID != "B5200" {
			t.Fatalf("Closest(white): got %s, want B5200", got.ID)
		}
	}
	if got := m.Closest(RGB{250, 250, 250}, MatchCache{}); got.ID != "B5200" {
		t.Errorf("Closest(near white): got %s, want B5200", got.ID)
	}
}

func TestClosest_Deterministic(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	m := NewMatcher(c)

	q := RGB{123, 45, 67}
	first := m.Closest(q, MatchCache{})
	second := m.Closest(q, MatchCache{})
	uncached := m.Closest(q, nil)

	if first != second || first != uncached {
		t.Errorf("Closest not deterministic: %v, %v, %v", first, second, uncached)
	}
}

func TestClosest_Cache(t *testing.T) {
	m := NewMatcher(mustLoad(t, twoFlosses))
	cache := MatchCache{}

	m.Closest(RGB{210, 5, 5}, cache)
	m.Closest(RGB{210, 5, 5}, cache)
	m.Closest(RGB{5, 5, 210}, cache)

	if len(cache) != 2 {
		t.Fatalf("cache size: got %d, want 2", len(cache))
	}
	if cache[RGB{210, 5, 5}] != 0 || cache[RGB{5, 5, 210}] != 1 {
		t.Errorf("cache contents: got %v", cache)
	}
}

func TestClosest_MatchesLinearScan(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	m := NewMatcher(c)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		q := RGB{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256))}
		want := c.At(linearClosest(c, q))
		if got := m.Closest(q, nil); got != want {
			t.Fatalf("Closest(%v): got %s %v, want %s %v", q, got.ID, got.Color, want.ID, want.Color)
		}
	}
}

func TestClosest_MatchesLinearScanWithDuplicates(t *testing.T) {
	src := "id,name,red,green,blue\n"
	colors := []string{"0,0,0", "128,128,128", "0,0,0", "255,0,0", "128,128,128", "255,0,0", "0,255,0", "0,0,0"}
	for i, col := range colors {
		src += string(rune('a'+i)) + ",n," + col + "\n"
	}
	c := mustLoad(t, src)
	m := NewMatcher(c)
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 2000; i++ {
		q := RGB{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256))}
		want := c.At(linearClosest(c, q))
		if got := m.Closest(q, nil); got.ID != want.ID {
			t.Fatalf("Closest(%v): got %s, want %s", q, got.ID, want.ID)
		}
	}
}

func TestMatcher_Catalog(t *testing.T) {
	c := mustLoad(t, twoFlosses)
	if NewMatcher(c).Catalog() != c {
		t.Error("Catalog() should return the indexed catalog")
	}
}
