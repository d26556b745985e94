package grid

import "strings"

// Syntax names the three characters of the pattern format. The characters
// must differ from one another for a block to parse unambiguously.
type Syntax struct {
	Alive   rune
	Dead    rune
	Comment rune
}

const (
	ReadCharAlive = 'x'
	ReadCharDead  = '.'
	CommentChar   = '#'
)

var DefaultSyntax = Syntax{Alive: ReadCharAlive, Dead: ReadCharDead, Comment: CommentChar}

// Parse reads a pattern block written in DefaultSyntax.
func Parse(text string) (*Grid, error) {
	return ParseWith(text, DefaultSyntax)
}

// ParseWith reads a pattern block. Line index becomes y and character index
// becomes x; comment lines are skipped before numbering.
func ParseWith(text string, syn Syntax) (*Grid, error) {
	g := Empty()
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return g, nil
	}

	var y int64
	for i, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, string(syn.Comment)) {
			continue
		}

		var x int64
	cells:
		for _, ch := range line {
			switch ch {
			case syn.Alive:
				g.SetAlive(Point{X: x, Y: y})
			case syn.Dead:
			case syn.Comment:
				break cells
			default:
				return nil, &ParseError{Line: i + 1, Column: int(x) + 1, Char: ch}
			}
			x++
		}
		y++
	}
	return g, nil
}
