// Package seeds holds predefined patterns that show interesting behavior.
// Each pattern is a rectangular 0/1 matrix indexed [row][col].
package seeds

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownSeed is returned for names that are not in the table
var ErrUnknownSeed = errors.New("unknown seed")

var table = map[string][][]int{
	"diehard": {
		{0, 0, 0, 0, 0, 0, 1, 0},
		{1, 1, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 1, 1, 1},
	},
	"boat": {
		{1, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	},
	"r_pentomino": {
		{0, 1, 1},
		{1, 1, 0},
		{0, 1, 0},
	},
	"pentadecathlon": {
		{1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 1, 1, 1, 1, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
	},
	"beacon": {
		{1, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 1, 1},
	},
	"acorn": {
		{0, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0},
		{1, 1, 0, 0, 1, 1, 1},
	},
	"spaceship": {
		{0, 0, 1, 1, 0},
		{1, 1, 0, 1, 1},
		{1, 1, 1, 1, 0},
		{0, 1, 1, 0, 0},
	},
	"block_switch_engine": {
		{0, 0, 0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 1, 0, 1, 1},
		{0, 0, 0, 0, 1, 0, 1, 0},
		{0, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0, 0},
		{1, 0, 1, 0, 0, 0, 0, 0},
	},
	"infinite": {
		{1, 1, 1, 0, 1},
		{1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1},
		{0, 1, 1, 0, 1},
		{1, 0, 1, 0, 1},
	},
}

// Lookup returns a copy of the named pattern
func Lookup(name string) ([][]int, error) {
	pattern, ok := table[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSeed, "[Lookup] %q", name)
	}

	out := make([][]int, len(pattern))
	for i, row := range pattern {
		out[i] = append([]int(nil), row...)
	}
	return out, nil
}

// Names returns every known seed name in sorted order
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
