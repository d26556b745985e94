package metrics

import (
	"github.com/san-kum/conway/internal/game"
	"github.com/san-kum/conway/internal/grid"
)

// Metric summarises a run as one number, observing every generation.
type Metric interface {
	game.Observer
	Name() string
	Value() float64
	Reset()
}

// Defaults returns the metrics recorded for every stored run.
func Defaults() []Metric {
	return []Metric{NewPopulation(), NewPeak(), NewExtent(), NewChurn()}
}

// Collect gathers the current value of each metric keyed by name.
func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Observe forwards the starting generation, which ticks never report.
func Observe(ms []Metric, g *grid.Grid) {
	for _, m := range ms {
		m.OnTick(0, g)
	}
}
