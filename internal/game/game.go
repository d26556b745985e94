package game

import (
	"fmt"
	"math"
	"time"

	"github.com/san-kum/conway/internal/grid"
)

// Game holds the high-level gameplay logic.
type Game struct {
	grid       *grid.Grid
	swap       *grid.Grid
	opts       Settings
	viewport   Viewport
	generation int
	observers  []Observer
}

// New builds a Game around g. A zero width or height is derived from the
// span of g's live cells. The viewport starts centered on g's midpoint.
// Sides above math.MaxInt64 fail with ErrViewportSize.
func New(g *grid.Grid, opts Settings, width, height uint64) (*Game, error) {
	if !opts.View.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownView, int(opts.View))
	}
	if g == nil {
		g = grid.Empty()
	}

	origin, hi := g.Bounds()
	var err error
	if width, err = side("width", width, origin.X, hi.X); err != nil {
		return nil, err
	}
	if height, err = side("height", height, origin.Y, hi.Y); err != nil {
		return nil, err
	}

	game := &Game{
		grid: g,
		swap: grid.Empty(),
		opts: opts,
		viewport: Viewport{
			Origin: origin,
			Width:  width,
			Height: height,
		},
		observers: make([]Observer, 0),
	}
	game.CenterViewport()
	return game, nil
}

// side returns n, or the cell count of lo..hi when n is zero.
func side(name string, n uint64, lo, hi int64) (uint64, error) {
	if n == 0 {
		d := uint64(hi) - uint64(lo)
		if d >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: pattern spans more than %d cells, set the %s explicitly",
				ErrViewportSize, uint64(math.MaxInt64), name)
		}
		return d + 1, nil
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %s %d exceeds %d", ErrViewportSize, name, n, uint64(math.MaxInt64))
	}
	return n, nil
}

func (g *Game) AddObserver(o Observer) { g.observers = append(g.observers, o) }

func (g *Game) Settings() Settings { return g.opts }

// Grid exposes the current generation. Callers must not modify it.
func (g *Game) Grid() *grid.Grid { return g.grid }

func (g *Game) Generation() int { return g.generation }

func (g *Game) Population() int { return g.grid.Len() }

// ViewportState returns a copy of the viewport geometry.
func (g *Game) ViewportState() Viewport { return g.viewport }

// Tick advances the game by one generation. Every active cell is judged
// against the current grid before the scratch grid becomes current.
func (g *Game) Tick() {
	for cell := range g.grid.ActiveCells() {
		if g.Survives(cell) {
			g.swap.SetAlive(cell)
		}
	}
	g.grid.Clear()
	g.grid, g.swap = g.swap, g.grid
	g.generation++

	for _, o := range g.observers {
		o.OnTick(g.generation, g.grid)
	}
}

// TickWithDelay sleeps for the configured delay, then ticks.
func (g *Game) TickWithDelay() {
	if g.opts.Delay > 0 {
		time.Sleep(g.opts.Delay)
	}
	g.Tick()
}

// Survives applies B3/S23 to the cell at p.
func (g *Game) Survives(p grid.Point) bool {
	n := g.grid.LiveNeighbors(p)
	if g.grid.IsAlive(p) {
		return n == 2 || n == 3
	}
	return n == 3
}

// IsOver reports extinction. Still lifes and oscillators never end a game.
// TODO: detect stabilised patterns by hashing recent generations.
func (g *Game) IsOver() bool {
	return g.grid.IsEmpty()
}

// Draw renders the viewport as rows of alive and dead glyphs.
func (g *Game) Draw() string {
	lo, hi := g.Viewport()
	return g.grid.Render(lo, hi, g.opts.CharAlive, g.opts.CharDead)
}

// Viewport returns the lower and upper bounds to render for the current view.
func (g *Game) Viewport() (grid.Point, grid.Point) {
	switch g.opts.View {
	case Fixed:
		return g.viewport.Bounds()
	case Centered:
		return g.viewport.Centered(g.grid.Midpoint())
	case Follow:
		return g.viewport.Following(g.grid.Midpoint())
	default:
		panic(fmt.Sprintf("%v: %d", ErrUnknownView, int(g.opts.View)))
	}
}

// Scroll shifts the viewport by dx and dy.
func (g *Game) Scroll(dx, dy int64) {
	g.viewport.ScrollBy(dx, dy)
}

// CenterViewport moves the viewport onto the grid's midpoint. In follow
// mode the frame already tracks the midpoint, so the offset is dropped.
func (g *Game) CenterViewport() {
	if g.opts.View == Follow {
		g.viewport.Scroll = grid.Origin()
		return
	}
	g.viewport.Center(g.grid.Midpoint())
}
