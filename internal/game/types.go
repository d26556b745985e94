package game

import "github.com/san-kum/conway/internal/grid"

// Observer is notified after every generation with the new current grid.
// The grid must not be retained or modified.
type Observer interface {
	OnTick(generation int, g *grid.Grid)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(generation int, g *grid.Grid)

func (f ObserverFunc) OnTick(generation int, g *grid.Grid) { f(generation, g) }
