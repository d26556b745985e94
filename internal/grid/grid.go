package grid

import (
	"sort"
	"strings"
)

var directions = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is the set of live cells. The zero value is an empty grid ready to use.
type Grid struct {
	cells map[Point]struct{}
}

func New(points ...Point) *Grid {
	g := &Grid{cells: make(map[Point]struct{}, len(points))}
	for _, p := range points {
		g.cells[p] = struct{}{}
	}
	return g
}

func Empty() *Grid {
	return &Grid{cells: make(map[Point]struct{})}
}

func (g *Grid) IsAlive(p Point) bool {
	_, ok := g.cells[p]
	return ok
}

// SetAlive reports whether p was newly brought to life.
func (g *Grid) SetAlive(p Point) bool {
	if g.cells == nil {
		g.cells = make(map[Point]struct{})
	}
	if _, ok := g.cells[p]; ok {
		return false
	}
	g.cells[p] = struct{}{}
	return true
}

// SetDead reports whether p was alive before the call.
func (g *Grid) SetDead(p Point) bool {
	if _, ok := g.cells[p]; !ok {
		return false
	}
	delete(g.cells, p)
	return true
}

func (g *Grid) Clear() { clear(g.cells) }

func (g *Grid) IsEmpty() bool { return len(g.cells) == 0 }

func (g *Grid) Len() int { return len(g.cells) }

// Points returns the live cells ordered by row, then column.
func (g *Grid) Points() []Point {
	pts := make([]Point, 0, len(g.cells))
	for p := range g.cells {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Y != pts[j].Y {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})
	return pts
}

func (g *Grid) Equal(other *Grid) bool {
	if g.Len() != other.Len() {
		return false
	}
	for p := range g.cells {
		if !other.IsAlive(p) {
			return false
		}
	}
	return true
}

func (g *Grid) Clone() *Grid {
	c := &Grid{cells: make(map[Point]struct{}, len(g.cells))}
	for p := range g.cells {
		c.cells[p] = struct{}{}
	}
	return c
}

// AdjacentCells returns the Moore neighbourhood of p, alive or not.
func (g *Grid) AdjacentCells(p Point) []Point {
	adj := make([]Point, 0, len(directions))
	for _, d := range directions {
		if q, ok := p.neighbor(d); ok {
			adj = append(adj, q)
		}
	}
	return adj
}

func (g *Grid) LiveNeighbors(p Point) int {
	n := 0
	for _, d := range directions {
		if q, ok := p.neighbor(d); ok && g.IsAlive(q) {
			n++
		}
	}
	return n
}

// ActiveCells returns every cell whose state may change next generation:
// the live cells and their neighbours. A dead cell with no live neighbour
// stays dead, so nothing outside this set needs evaluating.
func (g *Grid) ActiveCells() map[Point]struct{} {
	active := make(map[Point]struct{}, len(g.cells)*9)
	for p := range g.cells {
		active[p] = struct{}{}
		for _, d := range directions {
			if q, ok := p.neighbor(d); ok {
				active[q] = struct{}{}
			}
		}
	}
	return active
}

// Bounds returns the lowest and highest coordinates of the live cells,
// or two origin points when the grid is empty.
func (g *Grid) Bounds() (Point, Point) {
	first := true
	var lo, hi Point
	for p := range g.cells {
		if first {
			lo, hi = p, p
			first = false
			continue
		}
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	return lo, hi
}

// Midpoint returns the cell closest to the centre of the bounds, that is
// (lo+hi+1)/2 per axis with the sum truncated toward zero.
func (g *Grid) Midpoint() Point {
	lo, hi := g.Bounds()
	return Point{X: midpoint(lo.X, hi.X), Y: midpoint(lo.Y, hi.Y)}
}

// midpoint computes (lo+hi+1)/2 for lo <= hi without overflowing int64.
func midpoint(lo, hi int64) int64 {
	d := uint64(hi) - uint64(lo)
	m := int64(uint64(lo) + d/2 + d%2)
	// a negative odd sum truncates up, not down; ^lo is -lo-1
	if hi < ^lo && d%2 == 0 {
		m++
	}
	return m
}

// Render draws the inclusive rectangle lo..hi, one line per row.
func (g *Grid) Render(lo, hi Point, alive, dead rune) string {
	var sb strings.Builder
	if lo.X > hi.X || lo.Y > hi.Y {
		return ""
	}
	for y := lo.Y; ; y++ {
		for x := lo.X; ; x++ {
			if g.IsAlive(Point{X: x, Y: y}) {
				sb.WriteRune(alive)
			} else {
				sb.WriteRune(dead)
			}
			if x == hi.X {
				break
			}
		}
		sb.WriteByte('\n')
		if y == hi.Y {
			break
		}
	}
	return sb.String()
}
