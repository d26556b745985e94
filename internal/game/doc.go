// Package game runs Conway's Game of Life over a [grid.Grid] and frames it
// for text output.
//
//   - [Game]: current and scratch grids, the B3/S23 rule, tick and draw
//   - [Viewport]: the rendered window with fixed, centered and follow framing
//   - [Frames]: lazy sequence of rendered generations
//
// # Example
//
//	g, _ := grid.Parse(".x.\n..x\nxxx")
//	gm, _ := game.New(g, game.DefaultSettings(), 20, 10)
//	for frame := range gm.Frames().Seq() {
//		fmt.Print(frame)
//	}
//
// # Thread Safety
//
// Game instances are NOT thread-safe. Ticks, scrolls and draws must come
// from a single goroutine.
package game
