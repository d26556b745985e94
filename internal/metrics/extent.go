package metrics

import "github.com/san-kum/conway/internal/grid"

// Extent is the largest bounding box area the live cells have covered.
type Extent struct {
	name string
	area int64
}

func NewExtent() *Extent {
	return &Extent{name: "max_extent"}
}

func (e *Extent) Name() string { return e.name }

func (e *Extent) OnTick(generation int, g *grid.Grid) {
	if g.IsEmpty() {
		return
	}
	lo, hi := g.Bounds()
	area := (hi.X - lo.X + 1) * (hi.Y - lo.Y + 1)
	e.area = max(e.area, area)
}

func (e *Extent) Value() float64 { return float64(e.area) }

func (e *Extent) Reset() { e.area = 0 }
