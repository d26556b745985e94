package metrics

import "github.com/san-kum/conway/internal/grid"

// Churn is the mean number of cells born or died per generation.
type Churn struct {
	name    string
	prev    *grid.Grid
	changes int
	samples int
}

func NewChurn() *Churn {
	return &Churn{name: "churn"}
}

func (c *Churn) Name() string { return c.name }

func (c *Churn) OnTick(generation int, g *grid.Grid) {
	if c.prev != nil {
		changed := 0
		for _, p := range g.Points() {
			if !c.prev.IsAlive(p) {
				changed++
			}
		}
		for _, p := range c.prev.Points() {
			if !g.IsAlive(p) {
				changed++
			}
		}
		c.changes += changed
		c.samples++
	}
	c.prev = g.Clone()
}

func (c *Churn) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.changes) / float64(c.samples)
}

func (c *Churn) Reset() {
	c.prev = nil
	c.changes = 0
	c.samples = 0
}
