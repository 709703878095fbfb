package model

import (
	"fmt"
	"io"
)

const (
	// Move the cursor home and erase the display
	ansiClearScreen = "\033[H\033[2J"
)

// Renderer draws one generation per frame
type Renderer interface {
	Clear()
	Display(g *Grid, status string)
}

// TerminalRenderer writes plain text frames to an io.Writer
type TerminalRenderer struct {
	out io.Writer
}

func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out}
}

// Display renders the grid followed by the status line
func (r *TerminalRenderer) Display(g *Grid, status string) {
	fmt.Fprintln(r.out, g.String())
	if status != "" {
		fmt.Fprintln(r.out, status)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.out, ansiClearScreen)
}
