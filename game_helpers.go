package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-cgol/model"
	"github.com/sheikhrachel/go-cgol/seeds"
	"github.com/sheikhrachel/go-cgol/utils"
)

// resolveConfig builds the configuration from defaults, an optional JSON
// file and the command line, in increasing order of precedence
func resolveConfig(args []string, output io.Writer) (config utils.Config, listSeeds bool, err error) {
	var configPath string
	newFlagSet := func(c *utils.Config) *flag.FlagSet {
		fs := flag.NewFlagSet("cgol", flag.ContinueOnError)
		fs.SetOutput(output)
		c.Bind(fs)
		fs.StringVar(&configPath, "config", configPath, "JSON configuration file")
		fs.BoolVar(&listSeeds, "list-seeds", listSeeds, "print the available seeds and exit")
		return fs
	}

	config = utils.DefaultConfig()
	if err = newFlagSet(&config).Parse(args); err != nil {
		return config, false, err
	}

	if configPath != "" {
		if config, err = utils.LoadConfig(configPath); err != nil {
			return config, false, err
		}
		// Flags win over the file
		if err = newFlagSet(&config).Parse(args); err != nil {
			return config, false, err
		}
	}

	return config, listSeeds, config.Validate()
}

// initializeGame builds the first generation: random or all dead, then the seed on top
func initializeGame(config utils.Config) (*model.Grid, error) {
	var rng *rand.Rand
	if config.Randomize {
		rng = rand.New(rand.NewPCG(config.RandSeed, 0))
	}

	grid, err := model.NewGrid(config.Rows, config.Cols, rng)
	if err != nil {
		return nil, err
	}

	if config.Seed == "" {
		return grid, nil
	}

	pattern, err := seeds.Lookup(config.Seed)
	if err != nil {
		return nil, err
	}
	at := model.Position{Col: config.SeedCol, Row: config.SeedRow}
	if err = grid.PlaceSeed(pattern, at); err != nil {
		return nil, errors.Wrapf(err, "[initializeGame] seed %q", config.Seed)
	}
	return grid, nil
}

// checkStopConditions determines if the game should stop
func checkStopConditions(
	generation, livingCells, period int,
	cycled bool,
	config utils.Config,
) (bool, string) {
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, fmt.Sprintf("reached generation limit (%d)", config.MaxGenerations)
	}
	if !config.StopOnCycle {
		return false, ""
	}
	if livingCells == 0 {
		return true, "extinction"
	}
	if cycled {
		if period == 1 {
			return true, "still life"
		}
		return true, fmt.Sprintf("oscillator with period %d", period)
	}
	return false, ""
}

// displayStatus formats the line shown under the grid
func displayStatus(stats *utils.Stats, period int, cycled bool) string {
	status := stats.StatusLine()
	if cycled {
		status += fmt.Sprintf(" | Repeats every %d", period)
	}
	return status
}

// runLoop renders and advances generations until a stop condition holds or
// ctx is cancelled. It takes ownership of grid.
func runLoop(
	ctx context.Context,
	config utils.Config,
	grid *model.Grid,
	renderer model.Renderer,
	stats *utils.Stats,
) string {
	var (
		pool       = model.NewGridPool()
		history    = model.NewHistory(config.HistorySize)
		generation = 0
		lastFrame  = time.Now()
	)

	for {
		if ctx.Err() != nil {
			return "interrupted"
		}

		frameStart := time.Now()
		livingCells := grid.CountLivingCells()
		stats.Update(generation, livingCells, frameStart.Sub(lastFrame))
		lastFrame = frameStart

		period, cycled := history.Period(grid)
		renderer.Clear()
		renderer.Display(grid, displayStatus(stats, period, cycled))

		if stop, reason := checkStopConditions(generation, livingCells, period, cycled, config); stop {
			return reason
		}

		history.Record(grid)
		next := grid.NextGeneration(pool)
		model.GridToPool(grid, pool)
		grid = next
		generation++

		select {
		case <-ctx.Done():
			return "interrupted"
		case <-time.After(config.FrameRate):
		}
	}
}
