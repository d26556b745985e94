package game

import "time"

const (
	DefaultCharAlive = '#'
	DefaultCharDead  = ' '
	DefaultDelay     = 100 * time.Millisecond
)

// Settings holds the rendering and pacing options of a Game.
type Settings struct {
	CharAlive rune
	CharDead  rune
	Delay     time.Duration
	View      View
}

func DefaultSettings() Settings {
	return Settings{
		CharAlive: DefaultCharAlive,
		CharDead:  DefaultCharDead,
		Delay:     DefaultDelay,
		View:      Centered,
	}
}
