package grid

import (
	"fmt"
	"math"
)

// Point is a cell coordinate on the unbounded lattice.
type Point struct {
	X, Y int64
}

func Origin() Point { return Point{} }

func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// neighbor returns p moved by a unit offset d. ok is false when the move
// would leave the int64 lattice; the lattice does not wrap.
func (p Point) neighbor(d Point) (Point, bool) {
	if (d.X > 0 && p.X == math.MaxInt64) || (d.X < 0 && p.X == math.MinInt64) ||
		(d.Y > 0 && p.Y == math.MaxInt64) || (d.Y < 0 && p.Y == math.MinInt64) {
		return Point{}, false
	}
	return p.Add(d), true
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
