package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/conway/internal/grid"
)

// Patterns is the built-in library, written in grid.DefaultSyntax.
var Patterns = map[string]string{
	"blinker": `
# period 2 oscillator
xxx`,
	"block": `
xx
xx`,
	"beacon": `
xx..
xx..
..xx
..xx`,
	"toad": `
.xxx
xxx.`,
	"glider": `
# moves one cell diagonally every 4 generations
.x.
..x
xxx`,
	"lwss": `
# lightweight spaceship
.x..x
x....
x...x
xxxx.`,
	"r-pentomino": `
.xx
xx.
.x.`,
	"diehard": `
# dies out after 130 generations
......x.
xx......
.x...xxx`,
	"acorn": `
.x.....
...x...
xx..xxx`,
	"pulsar": `
..xxx...xxx..
.............
x....x.x....x
x....x.x....x
x....x.x....x
..xxx...xxx..
.............
..xxx...xxx..
x....x.x....x
x....x.x....x
x....x.x....x
.............
..xxx...xxx..`,
	"gosper-gun": `
# Gosper glider gun
........................x...........
......................x.x...........
............xx......xx............xx
...........x...x....xx............xx
xx........x.....x...xx..............
xx........x...x.xx....x.x...........
..........x.....x.......x...........
...........x...x....................
............xx......................`,
}

func GetPattern(name string) (*grid.Grid, error) {
	text, ok := Patterns[name]
	if !ok {
		return nil, fmt.Errorf("unknown pattern: %s (available: %v)", name, ListPatterns())
	}
	return grid.Parse(text)
}

func ListPatterns() []string {
	names := make([]string, 0, len(Patterns))
	for name := range Patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
