package model

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

func TestTerminalRendererDisplay(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)

	r.Display(mustGrid(t, 4, 4, beacon), "Gen: 0")
	want := "* *    \n* *    \n    * *\n    * *\nGen: 0\n"
	if got := buf.String(); got != want {
		t.Fatalf("Display wrote\n%q\nwant\n%q", got, want)
	}

	buf.Reset()
	r.Clear()
	if buf.String() != ansiClearScreen {
		t.Fatalf("Clear wrote %q", buf.String())
	}
}

func newSimulationRenderer(t *testing.T) (*ScreenRenderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	r, err := NewScreenRenderer(screen)
	if err != nil {
		t.Fatalf("NewScreenRenderer: %v", err)
	}
	t.Cleanup(r.Close)
	screen.SetSize(20, 8)
	return r, screen
}

func TestScreenRendererDisplay(t *testing.T) {
	r, screen := newSimulationRenderer(t)

	r.Clear()
	r.Display(mustGrid(t, 4, 4, beacon), "Gen: 1")

	lines := []string{"* *    ", "* *    ", "    * *", "    * *", "Gen: 1"}
	for y, line := range lines {
		for x, want := range line {
			got, _, _, _ := screen.GetContent(x, y)
			if got != want {
				t.Fatalf("content at (%d,%d) = %q, want %q", x, y, got, want)
			}
		}
	}
}

func TestScreenRendererStatusFitsShortScreen(t *testing.T) {
	r, screen := newSimulationRenderer(t)
	screen.SetSize(20, 3)

	r.Clear()
	r.Display(mustGrid(t, 4, 4, beacon), "Gen: 9")

	lines := []string{"* *    ", "* *    ", "Gen: 9"}
	for y, line := range lines {
		for x, want := range line {
			got, _, _, _ := screen.GetContent(x, y)
			if got != want {
				t.Fatalf("content at (%d,%d) = %q, want %q", x, y, got, want)
			}
		}
	}
}

func TestScreenRendererQuitKey(t *testing.T) {
	keys := []struct {
		name string
		key  tcell.Key
		ch   rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"escape", tcell.KeyEscape, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0},
	}
	for _, tt := range keys {
		t.Run(tt.name, func(t *testing.T) {
			r, screen := newSimulationRenderer(t)
			screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
			screen.InjectKey(tt.key, tt.ch, tcell.ModNone)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := r.WaitForQuit(ctx); !errors.Is(err, ErrUserQuit) {
				t.Fatalf("WaitForQuit = %v, want ErrUserQuit", err)
			}
		})
	}
}

func TestScreenRendererCancel(t *testing.T) {
	r, _ := newSimulationRenderer(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.WaitForQuit(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("WaitForQuit after cancel = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("WaitForQuit did not return after cancel")
	}
}
