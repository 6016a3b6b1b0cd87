package floss

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

//go:embed data/dmc.csv
var dmcTable []byte

// RGB is a color with 8-bit channels, used both for pixels and for catalog
// reference colors.
type RGB struct {
	R, G, B uint8
}

// RGBFromColor converts any color.Color to RGB. Alpha is ignored: the
// straight (non-premultiplied) channels are kept, so a translucent pixel keeps
// its hue and brightness. Fully transparent pixels come out black.
func RGBFromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// ToColor converts the color to an opaque color.RGBA.
func (c RGB) ToColor() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// DeltaE returns the CIE76 distance between two colors in Lab space.
// Matching never uses it; it is reported so a user can judge how faithful a
// floss substitution is.
func (c RGB) DeltaE(other RGB) float64 {
	return c.colorful().DistanceLab(other.colorful())
}

func (c RGB) colorful() colorful.Color {
	cf, _ := colorful.MakeColor(c.ToColor())
	return cf
}

// ParseHex parses "#rrggbb" (or the short "#rgb" form) into an RGB color.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Entry is one row of the catalog.
type Entry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color RGB    `json:"color"`
}

// Catalog is an ordered, immutable set of flosses. Iteration order is the
// order of the source rows; matching relies on it to break ties.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

var (
	idColumns   = []string{"floss#", "identifier", "id"}
	nameColumns = []string{"description", "name"}
)

// Load reads a catalog from CSV. The first row must be a header naming the
// identifier, description, red, green and blue columns; other columns are
// ignored.
func Load(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &CatalogLoadError{Err: errors.New("no header row")}
	}
	if err != nil {
		return nil, csvLoadError(err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, &CatalogLoadError{Line: 1, Err: err}
	}

	c := &Catalog{index: make(map[string]int)}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvLoadError(err)
		}
		line, _ := reader.FieldPos(0)

		entry, err := parseEntry(record, cols)
		if err != nil {
			return nil, &CatalogLoadError{Line: line, Err: err}
		}
		if _, dup := c.index[entry.ID]; dup {
			return nil, &CatalogLoadError{Line: line, Err: fmt.Errorf("duplicate identifier %q", entry.ID)}
		}
		c.index[entry.ID] = len(c.entries)
		c.entries = append(c.entries, entry)
	}

	if len(c.entries) == 0 {
		return nil, &CatalogLoadError{Err: errors.New("catalog has no entries")}
	}
	return c, nil
}

// LoadFile loads a catalog from a CSV file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the DMC catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(dmcTable))
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// At returns the i-th entry in catalog order.
func (c *Catalog) At(i int) Entry { return c.entries[i] }

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Get looks up an entry by identifier.
func (c *Catalog) Get(id string) (Entry, error) {
	i, ok := c.index[id]
	if !ok {
		return Entry{}, &UnknownFlossError{ID: id}
	}
	return c.entries[i], nil
}

// Position returns the catalog order of an identifier, or -1.
func (c *Catalog) Position(id string) int {
	if i, ok := c.index[id]; ok {
		return i
	}
	return -1
}

type columns struct {
	id, name, r, g, b int
}

func resolveColumns(header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.ToLower(strings.TrimSpace(h))] = i
	}
	find := func(names ...string) (int, error) {
		for _, n := range names {
			if i, ok := pos[n]; ok {
				return i, nil
			}
		}
		return 0, fmt.Errorf("missing column %q", names[0])
	}

	var cols columns
	var err error
	if cols.id, err = find(idColumns...); err != nil {
		return cols, err
	}
	if cols.name, err = find(nameColumns...); err != nil {
		return cols, err
	}
	if cols.r, err = find("red"); err != nil {
		return cols, err
	}
	if cols.g, err = find("green"); err != nil {
		return cols, err
	}
	if cols.b, err = find("blue"); err != nil {
		return cols, err
	}
	return cols, nil
}

func parseEntry(record []string, cols columns) (Entry, error) {
	id := strings.TrimSpace(record[cols.id])
	if id == "" {
		return Entry{}, errors.New("empty identifier")
	}

	var ch [3]uint8
	for i, col := range []int{cols.r, cols.g, cols.b} {
		v, err := strconv.Atoi(strings.TrimSpace(record[col]))
		if err != nil {
			return Entry{}, fmt.Errorf("floss %s: channel value %q is not an integer", id, record[col])
		}
		if v < 0 || v > 255 {
			return Entry{}, fmt.Errorf("floss %s: channel value %d outside 0-255", id, v)
		}
		ch[i] = uint8(v)
	}

	return Entry{
		ID:    id,
		Name:  strings.TrimSpace(record[cols.name]),
		Color: RGB{R: ch[0], G: ch[1], B: ch[2]},
	}, nil
}

func csvLoadError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &CatalogLoadError{Line: pe.Line, Err: pe.Err}
	}
	return &CatalogLoadError{Err: err}
}
