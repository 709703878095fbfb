package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-cgol/rules"
)

// neighborOffsets lists the Moore neighborhood in scan order:
// row offset outer, column offset inner, skipping the cell itself
var neighborOffsets = [8]Position{
	{Col: -1, Row: -1}, {Col: 0, Row: -1}, {Col: 1, Row: -1},
	{Col: -1, Row: 0}, {Col: 1, Row: 0},
	{Col: -1, Row: 1}, {Col: 0, Row: 1}, {Col: 1, Row: 1},
}

// Grid is a bounded rows x cols board of cells, indexed [row][col].
// Positions outside the board are invalid; there is no wraparound.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewGrid creates a grid with the specified dimensions.
// With a nil rng every cell starts dead, otherwise each cell is drawn from rng.
func NewGrid(rows, cols int, rng *rand.Rand) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] rows=%d cols=%d", rows, cols)
	}

	g := &Grid{}
	g.reset(rows, cols)
	if rng != nil {
		for row := range rows {
			for col := range cols {
				g.cells[row][col] = NewRandomCell(Position{Col: col, Row: row}, rng)
			}
		}
	}
	return g, nil
}

// GetRows returns the number of rows
func (g *Grid) GetRows() int {
	return g.rows
}

// GetCols returns the number of columns
func (g *Grid) GetCols() int {
	return g.cols
}

// reset resizes the grid and fills it with dead cells carrying their slot positions.
// Callers have already validated rows and cols.
func (g *Grid) reset(rows, cols int) {
	g.rows = rows
	g.cols = cols

	// Resize cells if needed
	if len(g.cells) != rows {
		g.cells = make([][]Cell, rows)
	}
	for row := range g.cells {
		if len(g.cells[row]) != cols {
			g.cells[row] = make([]Cell, cols)
		}
		for col := range g.cells[row] {
			g.cells[row][col] = NewCell(Position{Col: col, Row: row}, Dead)
		}
	}
}

// IsInBounds reports whether pos addresses a slot of the grid
func (g *Grid) IsInBounds(pos Position) bool {
	return pos.Col >= 0 && pos.Col < g.cols && pos.Row >= 0 && pos.Row < g.rows
}

// GetCell returns a copy of the cell at pos
func (g *Grid) GetCell(pos Position) (Cell, error) {
	if !g.IsInBounds(pos) {
		return Cell{}, g.outOfBounds("GetCell", pos)
	}
	return g.cells[pos.Row][pos.Col], nil
}

// SetCell replaces the slot at pos with cell. The cell must have been created for pos.
func (g *Grid) SetCell(pos Position, cell Cell) error {
	if !g.IsInBounds(pos) {
		return g.outOfBounds("SetCell", pos)
	}
	if cell.GetPosition() != pos {
		return errors.Wrapf(ErrPositionMismatch, "[SetCell] cell at %v placed into slot %v", cell.GetPosition(), pos)
	}
	g.cells[pos.Row][pos.Col] = cell
	return nil
}

// GetNeighbors returns copies of the up to 8 in-bounds cells surrounding pos, in scan order
func (g *Grid) GetNeighbors(pos Position) ([]Cell, error) {
	if !g.IsInBounds(pos) {
		return nil, g.outOfBounds("GetNeighbors", pos)
	}

	neighbors := make([]Cell, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := Position{Col: pos.Col + off.Col, Row: pos.Row + off.Row}
		if g.IsInBounds(n) {
			neighbors = append(neighbors, g.cells[n.Row][n.Col])
		}
	}
	return neighbors, nil
}

// CountLiveNeighbors returns how many of the neighbors of pos are alive
func (g *Grid) CountLiveNeighbors(pos Position) (int, error) {
	if !g.IsInBounds(pos) {
		return 0, g.outOfBounds("CountLiveNeighbors", pos)
	}
	return g.liveNeighbors(pos.Col, pos.Row), nil
}

// liveNeighbors counts without allocating; callers guarantee (col, row) is in bounds
func (g *Grid) liveNeighbors(col, row int) (count int) {
	for _, off := range neighborOffsets {
		nc, nr := col+off.Col, row+off.Row
		if nc < 0 || nc >= g.cols || nr < 0 || nr >= g.rows {
			continue
		}
		if g.cells[nr][nc].IsAlive() {
			count++
		}
	}
	return
}

// NextGeneration computes the following generation into a separate grid.
// The receiver is only read. The result comes from pool when one is given.
func (g *Grid) NextGeneration(pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.get(g.rows, g.cols)
	} else {
		next = &Grid{}
		next.reset(g.rows, g.cols)
	}

	for row := range g.rows {
		for col := range g.cols {
			if rules.Next(g.cells[row][col].IsAlive(), g.liveNeighbors(col, row)) {
				next.cells[row][col].Reanimate()
			}
		}
	}
	return next
}

// Advance returns the next generation of g without modifying it
func Advance(g *Grid) *Grid {
	return g.NextGeneration(nil)
}

// PlaceSeed overwrites the sub-rectangle starting at `at` with a 0/1 pattern.
// The grid is left untouched when the pattern is malformed or does not fit.
func (g *Grid) PlaceSeed(pattern [][]int, at Position) error {
	if len(pattern) == 0 || len(pattern[0]) == 0 {
		return errors.Wrap(ErrMalformedSeed, "[PlaceSeed] empty pattern")
	}
	width := len(pattern[0])
	for r, line := range pattern {
		if len(line) != width {
			return errors.Wrapf(ErrMalformedSeed, "[PlaceSeed] row %d has %d columns, want %d", r, len(line), width)
		}
		for c, v := range line {
			if v != 0 && v != 1 {
				return errors.Wrapf(ErrMalformedSeed, "[PlaceSeed] value %d at %v", v, Position{Col: c, Row: r})
			}
		}
	}

	last := Position{Col: at.Col + width - 1, Row: at.Row + len(pattern) - 1}
	if !g.IsInBounds(at) || !g.IsInBounds(last) {
		return errors.Wrapf(ErrSeedPlacementOutOfBounds, "[PlaceSeed] %dx%d pattern at %v on %dx%d grid",
			len(pattern), width, at, g.rows, g.cols)
	}

	for r, line := range pattern {
		for c, v := range line {
			pos := Position{Col: at.Col + c, Row: at.Row + r}
			state := Dead
			if v == 1 {
				state = Alive
			}
			g.cells[pos.Row][pos.Col] = NewCell(pos, state)
		}
	}
	return nil
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, cells: make([][]Cell, g.rows)}
	for row := range g.cells {
		c.cells[row] = append([]Cell(nil), g.cells[row]...)
	}
	return c
}

// Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col].GetState() != other.cells[row][col].GetState() {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.rows {
		for col := range g.cols {
			if g.cells[row][col].IsAlive() {
				count++
			}
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the dimensions and cell states
func (g *Grid) GetGridHash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.rows, g.cols)
	for row := range g.rows {
		for col := range g.cols {
			h.Write([]byte{byte(g.cells[row][col].GetState())})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders each row as space separated glyphs, rows separated by newlines
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * g.cols * 2)
	for row := range g.rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range g.cols {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(g.cells[row][col].String())
		}
	}
	return sb.String()
}

func (g *Grid) outOfBounds(op string, pos Position) error {
	return errors.Wrapf(ErrOutOfBounds, "[%s] %v on %dx%d grid", op, pos, g.rows, g.cols)
}
