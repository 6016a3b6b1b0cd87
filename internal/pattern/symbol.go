package pattern

import "github.com/ironsheep/xstitch/internal/floss"

// symbols is the glyph alphabet used to mark cells. Entries repeat; two
// dissimilar colors may share a glyph.
var symbols = []string{"*", "-", "+", "T", ">", "<", "V", "O", "X", "U", "B", "A", "X", "||", "^"}

// contrastThreshold is the average channel value below which a background
// counts as dark.
const contrastThreshold = 130

var (
	// Light is the text color drawn over dark backgrounds.
	Light = floss.RGB{R: 255, G: 255, B: 255}

	// Dark is the text color drawn over light backgrounds.
	Dark = floss.RGB{R: 0, G: 0, B: 0}
)

// Symbol returns the glyph that marks cells of color c.
func Symbol(c floss.RGB) string {
	return symbols[(17*int(c.R)+11*int(c.G)+int(c.B))%len(symbols)]
}

// TextColor returns a color that stays legible on a background of color c.
func TextColor(c floss.RGB) floss.RGB {
	if (int(c.R)+int(c.G)+int(c.B))/3 < contrastThreshold {
		return Light
	}
	return Dark
}
