package utils

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned when a resolved configuration cannot drive a simulation
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the game
type Config struct {
	Cols           int           `json:"cols"`
	Rows           int           `json:"rows"`
	Randomize      bool          `json:"randomize"`
	RandSeed       uint64        `json:"rand_seed"`
	Seed           string        `json:"seed"`
	SeedCol        int           `json:"seed_col"`
	SeedRow        int           `json:"seed_row"`
	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations int           `json:"max_generations"`
	StopOnCycle    bool          `json:"stop_on_cycle"`
	HistorySize    int           `json:"history_size"`
	Plain          bool          `json:"plain"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Cols:           50,
		Rows:           50,
		SeedCol:        40,
		SeedRow:        40,
		FrameRate:      100 * time.Millisecond,
		MaxGenerations: 0, // run until interrupted
		HistorySize:    5,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to fs. Current values become the flag defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Var(&pairValue{a: &c.Cols, b: &c.Rows}, "size", "size of the universe (cols,rows)")
	fs.BoolVar(&c.Randomize, "rand", c.Randomize, "random generation of universe")
	fs.Uint64Var(&c.RandSeed, "rand-seed", c.RandSeed, "seed for the random generator")
	fs.StringVar(&c.Seed, "seed", c.Seed, "named seed pattern to place")
	fs.Var(&pairValue{a: &c.SeedCol, b: &c.SeedRow}, "seed-position", "position of the seed (col,row)")
	fs.DurationVar(&c.FrameRate, "delay", c.FrameRate, "delay between generations")
	fs.IntVar(&c.MaxGenerations, "generations", c.MaxGenerations, "stop after this many generations (0 runs forever)")
	fs.BoolVar(&c.StopOnCycle, "stop-on-cycle", c.StopOnCycle, "stop once a still life or oscillator is reached")
	fs.BoolVar(&c.Plain, "plain", c.Plain, "print plain text frames instead of a full-screen display")
}

// Validate checks the values the simulation cannot recover from
func (c Config) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] size must be positive, got %d,%d", c.Cols, c.Rows)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] delay must not be negative, got %v", c.FrameRate)
	}
	return nil
}

// ParsePair parses "a,b" into two integers
func ParsePair(s string) (int, int, error) {
	first, second, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, errors.Wrapf(ErrInvalidConfig, "[ParsePair] expected two comma separated integers, got %q", s)
	}
	a, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "[ParsePair] bad first value in %q", s)
	}
	b, err := strconv.Atoi(strings.TrimSpace(second))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "[ParsePair] bad second value in %q", s)
	}
	return a, b, nil
}

// pairValue is a flag.Value writing "a,b" into two ints
type pairValue struct {
	a, b *int
}

func (p *pairValue) String() string {
	if p.a == nil || p.b == nil {
		return ""
	}
	return strconv.Itoa(*p.a) + "," + strconv.Itoa(*p.b)
}

func (p *pairValue) Set(s string) error {
	a, b, err := ParsePair(s)
	if err != nil {
		return err
	}
	*p.a, *p.b = a, b
	return nil
}
