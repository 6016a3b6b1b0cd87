package pattern

import (
	"testing"

	"github.com/ironsheep/xstitch/internal/floss"
)

func TestSymbol(t *testing.T) {
	tests := []struct {
		c    floss.RGB
		want string
	}{
		{floss.RGB{R: 0, G: 0, B: 0}, "*"},
		{floss.RGB{R: 255, G: 255, B: 255}, "*"},
		{floss.RGB{R: 1, G: 0, B: 0}, "+"},
		{floss.RGB{R: 0, G: 1, B: 0}, "A"},
		{floss.RGB{R: 0, G: 0, B: 13}, "||"},
		{floss.RGB{R: 0, G: 0, B: 14}, "^"},
		{floss.RGB{R: 200, G: 0, B: 0}, "B"},
	}
	for _, tt := range tests {
		if got := Symbol(tt.c); got != tt.want {
			t.Errorf("Symbol(%v): got %q, want %q", tt.c, got, tt.want)
		}
		if Symbol(tt.c) != Symbol(tt.c) {
			t.Errorf("Symbol(%v) is not deterministic", tt.c)
		}
	}
}

func TestTextColor(t *testing.T) {
	tests := []struct {
		name string
		c    floss.RGB
		want floss.RGB
	}{
		{"black background", floss.RGB{R: 0, G: 0, B: 0}, Light},
		{"white background", floss.RGB{R: 255, G: 255, B: 255}, Dark},
		{"just below threshold", floss.RGB{R: 129, G: 130, B: 130}, Light},
		{"at threshold", floss.RGB{R: 130, G: 130, B: 130}, Dark},
		{"saturated red", floss.RGB{R: 200, G: 0, B: 0}, Light},
		{"yellow", floss.RGB{R: 255, G: 230, B: 0}, Dark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextColor(tt.c); got != tt.want {
				t.Errorf("TextColor(%v): got %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}
