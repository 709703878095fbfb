package model

import (
	"math/rand/v2"
	"testing"
)

func TestCellKillReanimate(t *testing.T) {
	c := NewCell(Position{Col: 2, Row: 1}, Dead)
	if c.IsAlive() {
		t.Fatalf("new dead cell reports alive")
	}

	c.Reanimate()
	c.Reanimate()
	if !c.IsAlive() {
		t.Fatalf("reanimated cell reports dead")
	}

	c.Kill()
	c.Kill()
	if c.IsAlive() {
		t.Fatalf("killed cell reports alive")
	}
	if got := c.GetPosition(); got != (Position{Col: 2, Row: 1}) {
		t.Fatalf("position changed to %v", got)
	}
}

func TestCellGlyph(t *testing.T) {
	if got := NewCell(Position{}, Alive).String(); got != "*" {
		t.Fatalf("alive glyph = %q, want %q", got, "*")
	}
	if got := NewCell(Position{}, Dead).String(); got != " " {
		t.Fatalf("dead glyph = %q, want %q", got, " ")
	}
}

func TestNewRandomCellIsDeterministic(t *testing.T) {
	a := rand.New(rand.NewPCG(7, 0))
	b := rand.New(rand.NewPCG(7, 0))

	alive := 0
	for i := range 200 {
		pos := Position{Col: i, Row: 0}
		ca, cb := NewRandomCell(pos, a), NewRandomCell(pos, b)
		if ca.GetState() != cb.GetState() {
			t.Fatalf("cell %d differs between identically seeded generators", i)
		}
		if ca.IsAlive() {
			alive++
		}
	}
	if alive == 0 || alive == 200 {
		t.Fatalf("expected a mix of states, got %d alive out of 200", alive)
	}
}
