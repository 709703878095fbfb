package model

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// ErrUserQuit is returned by WaitForQuit when the user asked to leave
var ErrUserQuit = errors.New("quit requested")

// ScreenRenderer draws generations on a full-screen tcell display
type ScreenRenderer struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewScreenRenderer initializes screen and takes ownership of it
func NewScreenRenderer(screen tcell.Screen) (*ScreenRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to init screen")
	}
	style := tcell.StyleDefault
	screen.SetStyle(style)
	screen.HideCursor()
	return &ScreenRenderer{screen: screen, style: style}, nil
}

// Clear blanks the screen buffer
func (r *ScreenRenderer) Clear() {
	r.screen.Clear()
}

// Display draws the grid text, then the status line below it, and flushes.
// When the grid is taller than the screen, rows that do not fit above the
// last screen row are clipped so the status line stays visible.
func (r *ScreenRenderer) Display(g *Grid, status string) {
	_, height := r.screen.Size()
	if height <= 0 {
		return
	}

	y := 0
	for row := range min(g.GetRows(), height-1) {
		x := 0
		for col := range g.GetCols() {
			if col > 0 {
				r.screen.SetContent(x, y, ' ', nil, r.style)
				x++
			}
			glyph := ' '
			if g.cells[row][col].IsAlive() {
				glyph = '*'
			}
			r.screen.SetContent(x, y, glyph, nil, r.style)
			x++
		}
		y++
	}
	r.drawText(0, min(y, height-1), status)
	r.screen.Show()
}

func (r *ScreenRenderer) drawText(x, y int, s string) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, r.style)
		x++
	}
}

// WaitForQuit blocks until the user presses q, Esc or Ctrl+C (ErrUserQuit)
// or ctx is cancelled (nil)
func (r *ScreenRenderer) WaitForQuit(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = r.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			// screen finalized
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventKey:
			if isQuitKey(ev) {
				return ErrUserQuit
			}
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Close restores the terminal
func (r *ScreenRenderer) Close() {
	r.screen.Fini()
}
