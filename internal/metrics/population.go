package metrics

import "github.com/san-kum/conway/internal/grid"

// Population is the live cell count of the latest generation.
type Population struct {
	name  string
	count int
}

func NewPopulation() *Population {
	return &Population{name: "population"}
}

func (p *Population) Name() string { return p.name }

func (p *Population) OnTick(generation int, g *grid.Grid) {
	p.count = g.Len()
}

func (p *Population) Value() float64 { return float64(p.count) }

func (p *Population) Reset() { p.count = 0 }

// Peak is the largest population seen.
type Peak struct {
	name string
	max  int
}

func NewPeak() *Peak {
	return &Peak{name: "peak_population"}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) OnTick(generation int, g *grid.Grid) {
	p.max = max(p.max, g.Len())
}

func (p *Peak) Value() float64 { return float64(p.max) }

func (p *Peak) Reset() { p.max = 0 }
