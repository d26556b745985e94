package tui

import (
	"fmt"
	"io"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer streams frames to a terminal, redrawing in place. In plain
// mode frames are appended without escape codes, which suits pipes.
type LiveRenderer struct {
	w     io.Writer
	title string
	plain bool
}

func NewLiveRenderer(w io.Writer, title string, plain bool) *LiveRenderer {
	return &LiveRenderer{w: w, title: title, plain: plain}
}

func (r *LiveRenderer) Start() error {
	if r.plain {
		return nil
	}
	_, err := io.WriteString(r.w, hideCursor)
	return err
}

func (r *LiveRenderer) Stop() error {
	if r.plain {
		return nil
	}
	_, err := io.WriteString(r.w, showCursor)
	return err
}

// Render writes one frame preceded by a status line.
func (r *LiveRenderer) Render(frame string, generation, population int) error {
	if !r.plain {
		if _, err := io.WriteString(r.w, clearScreen); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(r.w, "%s | generation %d | population %d\n", r.title, generation, population); err != nil {
		return err
	}
	_, err := io.WriteString(r.w, frame)
	return err
}
