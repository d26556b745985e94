package metrics

import "github.com/san-kum/conway/internal/grid"

// History records the population of every generation, keeping at most
// capacity samples when capacity is positive.
type History struct {
	capacity    int
	generations []int
	populations []float64
}

func NewHistory(capacity int) *History {
	return &History{capacity: capacity}
}

func (h *History) OnTick(generation int, g *grid.Grid) {
	h.generations = append(h.generations, generation)
	h.populations = append(h.populations, float64(g.Len()))
	if h.capacity > 0 && len(h.populations) > h.capacity {
		h.generations = h.generations[1:]
		h.populations = h.populations[1:]
	}
}

func (h *History) Generations() []int { return h.generations }

func (h *History) Populations() []float64 { return h.populations }

func (h *History) Len() int { return len(h.populations) }

func (h *History) Reset() {
	h.generations = h.generations[:0]
	h.populations = h.populations[:0]
}
