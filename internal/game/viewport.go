package game

import (
	"math"

	"github.com/san-kum/conway/internal/grid"
)

// Viewport is the rectangle of the lattice that gets rendered. Origin is taken
// from the initial grid and stays put; only Scroll moves afterwards. Width and
// Height lie in 1..math.MaxInt64 for viewports built by New. Rectangles near
// the end of the int64 range are pulled back inside it, so they always keep
// their size.
type Viewport struct {
	Origin grid.Point
	Scroll grid.Point
	Width  uint64
	Height uint64
}

// Bounds returns the fixed-mode rectangle at origin plus scroll.
func (v Viewport) Bounds() (grid.Point, grid.Point) {
	return v.rect(v.Origin.Add(v.Scroll))
}

// Centered returns a rectangle of the viewport's size around p. Scroll is ignored.
func (v Viewport) Centered(p grid.Point) (grid.Point, grid.Point) {
	dx0, _ := SplitInt(int64(v.Width))
	dy0, _ := SplitInt(int64(v.Height))
	return v.rect(grid.Point{X: below(p.X, dx0), Y: below(p.Y, dy0)})
}

// Following returns the centered rectangle around p shifted by scroll.
func (v Viewport) Following(p grid.Point) (grid.Point, grid.Point) {
	lo, _ := v.Centered(p)
	return v.rect(lo.Add(v.Scroll))
}

// Center sets scroll so that Bounds matches Centered(p).
func (v *Viewport) Center(p grid.Point) {
	lo, _ := v.Centered(p)
	v.Scroll = lo.Sub(v.Origin)
}

func (v *Viewport) ScrollBy(dx, dy int64) {
	v.Scroll = v.Scroll.Add(grid.Point{X: dx, Y: dy})
}

// rect returns the Width x Height rectangle whose low corner is lo.
func (v Viewport) rect(lo grid.Point) (grid.Point, grid.Point) {
	x0, x1 := window(lo.X, v.Width)
	y0, y1 := window(lo.Y, v.Height)
	return grid.Point{X: x0, Y: y0}, grid.Point{X: x1, Y: y1}
}

// window returns the n cells starting at lo, shifted down when they would
// run past math.MaxInt64.
func window(lo int64, n uint64) (int64, int64) {
	last := int64(n - 1)
	if lo > math.MaxInt64-last {
		lo = math.MaxInt64 - last
	}
	return lo, lo + last
}

// below returns p-d, stopping at math.MinInt64. d is never negative.
func below(p, d int64) int64 {
	if p < math.MinInt64+d {
		return math.MinInt64
	}
	return p - d
}

// SplitInt splits n into two halves that add up to n, the odd remainder
// going to the second half.
func SplitInt(n int64) (int64, int64) {
	q, r := n/2, n%2
	return q, q + r
}
