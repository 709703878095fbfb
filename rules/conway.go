package rules

const (
	// SurviveMin and SurviveMax bound the live neighbor count that keeps a live cell alive
	SurviveMin = 2
	SurviveMax = 3
	// BirthCount is the exact live neighbor count that brings a dead cell to life
	BirthCount = 3
)

/*
Next returns the state of a cell in the following generation.

It only looks at the cell's current state and the number of live neighbors in
the current generation:
  - a live cell with 2 or 3 live neighbors survives
  - a dead cell with exactly 3 live neighbors is born
  - every other cell is dead in the next generation
*/
func Next(alive bool, liveNeighbors int) bool {
	if alive {
		return liveNeighbors >= SurviveMin && liveNeighbors <= SurviveMax
	}
	return liveNeighbors == BirthCount
}
