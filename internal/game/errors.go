package game

import "errors"

// ErrUnknownView indicates a view mode outside Centered, Fixed and Follow.
var ErrUnknownView = errors.New("game: unknown view mode")

// ErrViewportSize indicates a viewport side that does not fit the int64
// lattice, either given explicitly or derived from a pattern's span.
var ErrViewportSize = errors.New("game: viewport size out of range")
