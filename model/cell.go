package model

import (
	"fmt"
	"math/rand/v2"
)

const (
	aliveGlyph = "*"
	deadGlyph  = " "
)

// CellState is the binary state of a cell
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Position addresses a grid slot by column and row, both 0-indexed
type Position struct {
	Col int
	Row int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Col, p.Row)
}

// Cell is a single grid position holding an alive/dead state.
// The position is fixed at creation; only the state changes.
type Cell struct {
	state    CellState
	position Position
}

// NewCell creates a cell at pos with the given state
func NewCell(pos Position, state CellState) Cell {
	return Cell{state: state, position: pos}
}

// NewRandomCell creates a cell at pos whose state is drawn uniformly from rng
func NewRandomCell(pos Position, rng *rand.Rand) Cell {
	state := Dead
	if rng.IntN(2) == 1 {
		state = Alive
	}
	return NewCell(pos, state)
}

// GetPosition returns the position the cell was created for
func (c Cell) GetPosition() Position {
	return c.position
}

// GetState returns the current state of the cell
func (c Cell) GetState() CellState {
	return c.state
}

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c.state == Alive
}

// Kill marks the cell dead
func (c *Cell) Kill() {
	c.state = Dead
}

// Reanimate marks the cell alive
func (c *Cell) Reanimate() {
	c.state = Alive
}

// String renders the cell as its display glyph
func (c Cell) String() string {
	if c.IsAlive() {
		return aliveGlyph
	}
	return deadGlyph
}
