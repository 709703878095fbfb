package model

// History remembers the hashes of the most recent generations so a driver
// can notice still lifes and short oscillators
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps up to size generations (at least 1)
func NewHistory(size int) *History {
	return &History{size: max(1, size)}
}

// Record adds g as the most recent generation
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.GetGridHash())

	// Keep only the last size states
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[len(h.hashes)-h.size:]
	}
}

// Period reports how many generations ago g last appeared.
// 1 means g is a still life, 2 a period-2 oscillator and so on.
func (h *History) Period(g *Grid) (int, bool) {
	current := g.GetGridHash()
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == current {
			return len(h.hashes) - i, true
		}
	}
	return 0, false
}

// Len returns how many generations are remembered
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = nil
}
