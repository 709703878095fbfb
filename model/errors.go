package model

import "github.com/pkg/errors"

// Error kinds returned by the grid. Callers match them with errors.Is; the
// returned errors are wrapped with the offending values.
var (
	ErrInvalidDimension         = errors.New("invalid grid dimension")
	ErrOutOfBounds              = errors.New("position out of bounds")
	ErrPositionMismatch         = errors.New("cell position does not match slot")
	ErrSeedPlacementOutOfBounds = errors.New("seed placement exceeds grid")
	ErrMalformedSeed            = errors.New("malformed seed pattern")
)
