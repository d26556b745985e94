package game

import "iter"

// Frames yields the rendered output of successive generations. Each pull
// ticks the game once; the sequence ends when the game is over. It shares
// the Game, so it cannot be rewound.
type Frames struct {
	game      *Game
	withDelay bool
}

// Frames returns a frame sequence over g without delay between ticks.
func (g *Game) Frames() *Frames {
	return &Frames{game: g}
}

func (f *Frames) WithDelay(withDelay bool) *Frames {
	f.withDelay = withDelay
	return f
}

// Next ticks and returns the new frame, or false once the game is over.
func (f *Frames) Next() (string, bool) {
	if f.game.IsOver() {
		return "", false
	}
	if f.withDelay {
		f.game.TickWithDelay()
	} else {
		f.game.Tick()
	}
	return f.game.Draw(), true
}

func (f *Frames) Seq() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			frame, ok := f.Next()
			if !ok || !yield(frame) {
				return
			}
		}
	}
}
