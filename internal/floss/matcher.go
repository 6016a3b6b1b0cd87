package floss

import (
	"math"
	"sort"
)

// MatchCache memoizes Closest lookups, keyed by the exact queried color.
// The value is the position of the matched entry in catalog order.
//
// A MatchCache is not safe for concurrent use; give every worker its own.
type MatchCache map[RGB]int

// Distance returns the squared Euclidean distance between two colors.
func Distance(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// Truncate converts floating-point channel values (e.g. cluster centroids)
// to an RGB color by truncation, clamping to the 0-255 range.
func Truncate(r, g, b float64) RGB {
	return RGB{R: truncChannel(r), G: truncChannel(g), B: truncChannel(b)}
}

func truncChannel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Matcher finds the closest catalog entry to an arbitrary color.
type Matcher struct {
	catalog *Catalog
	root    *kdNode
}

// NewMatcher indexes the catalog colors for nearest-neighbor search.
func NewMatcher(c *Catalog) *Matcher {
	points := make([]kdPoint, c.Len())
	for i, e := range c.entries {
		points[i] = kdPoint{color: e.Color, index: i}
	}
	return &Matcher{catalog: c, root: buildKDTree(points)}
}

// Catalog returns the catalog the matcher searches.
func (m *Matcher) Catalog() *Catalog { return m.catalog }

// Closest returns the entry nearest to c. When cache is non-nil it is
// consulted first and populated on a miss.
func (m *Matcher) Closest(c RGB, cache MatchCache) Entry {
	if cache != nil {
		if i, ok := cache[c]; ok {
			return m.catalog.entries[i]
		}
	}

	i := m.nearest(c)
	if cache != nil {
		cache[c] = i
	}
	return m.catalog.entries[i]
}

func (m *Matcher) nearest(c RGB) int {
	best := kdBest{index: -1, dist: math.MaxInt}
	m.root.search(c, &best)
	return best.index
}

// kdPoint is a catalog color together with its catalog position.
type kdPoint struct {
	color RGB
	index int
}

type kdNode struct {
	point       kdPoint
	axis        int
	left, right *kdNode
}

type kdBest struct {
	index int
	dist  int
}

// better reports whether a candidate beats the current best: a smaller
// distance wins, and an equal distance wins only with an earlier catalog
// position.
func (b *kdBest) better(dist, index int) bool {
	return dist < b.dist || (dist == b.dist && index < b.index)
}

func buildKDTree(points []kdPoint) *kdNode {
	if len(points) == 0 {
		return nil
	}

	axis := splitAxis(points)
	sort.Slice(points, func(i, j int) bool {
		ci, cj := component(points[i].color, axis), component(points[j].color, axis)
		if ci != cj {
			return ci < cj
		}
		return points[i].index < points[j].index
	})

	median := len(points) / 2
	return &kdNode{
		point: points[median],
		axis:  axis,
		left:  buildKDTree(points[:median]),
		right: buildKDTree(points[median+1:]),
	}
}

// splitAxis picks the channel with the widest spread.
func splitAxis(points []kdPoint) int {
	var lo, hi [3]int
	for a := 0; a < 3; a++ {
		lo[a], hi[a] = 255, 0
	}
	for _, p := range points {
		for a := 0; a < 3; a++ {
			v := int(component(p.color, a))
			if v < lo[a] {
				lo[a] = v
			}
			if v > hi[a] {
				hi[a] = v
			}
		}
	}
	axis := 0
	for a := 1; a < 3; a++ {
		if hi[a]-lo[a] > hi[axis]-lo[axis] {
			axis = a
		}
	}
	return axis
}

func component(c RGB, axis int) uint8 {
	switch axis {
	case 0:
		return c.R
	case 1:
		return c.G
	default:
		return c.B
	}
}

func (n *kdNode) search(target RGB, best *kdBest) {
	if n == nil {
		return
	}

	if d := Distance(target, n.point.color); best.better(d, n.point.index) {
		best.dist = d
		best.index = n.point.index
	}

	diff := int(component(target, n.axis)) - int(component(n.point.color, n.axis))
	near, far := n.left, n.right
	if diff >= 0 {
		near, far = n.right, n.left
	}

	near.search(target, best)
	// Equal-valued points can sit on either side of the split, so the far
	// side is searched whenever it could hold an equally distant point.
	if diff*diff <= best.dist {
		far.search(target, best)
	}
}
