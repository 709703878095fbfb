package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-cgol/model"
	"github.com/sheikhrachel/go-cgol/seeds"
	"github.com/sheikhrachel/go-cgol/utils"
)

func main() {
	config, listSeeds, err := resolveConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	if listSeeds {
		fmt.Println(strings.Join(seeds.Names(), "\n"))
		return
	}

	grid, err := initializeGame(config)
	if err != nil {
		log.Fatalf("grid setup: %v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats := utils.NewStats()
	reason, err := run(ctx, config, grid, stats, tcell.NewScreen)
	if err != nil {
		log.Fatalf("display: %v", err)
	}

	fmt.Printf("Stopped: %s\n", reason)
	fmt.Printf("Final stats: %d generations in %.1f seconds, %.1f avg population\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds(), stats.AveragePopulation)
}

// screenFactory opens the terminal screen for the full-screen display
type screenFactory func() (tcell.Screen, error)

// run drives the simulation on the configured renderer.
// A quit key ends the run normally with reason "quit".
func run(
	ctx context.Context,
	config utils.Config,
	grid *model.Grid,
	stats *utils.Stats,
	newScreen screenFactory,
) (string, error) {
	if config.Plain {
		return runLoop(ctx, config, grid, model.NewTerminalRenderer(os.Stdout), stats), nil
	}

	screen, err := newScreen()
	if err != nil {
		return "", errors.Wrap(err, "[run] failed to open terminal")
	}
	renderer, err := model.NewScreenRenderer(screen)
	if err != nil {
		return "", err
	}
	defer renderer.Close()

	var (
		reason          string
		eg, egCtx       = errgroup.WithContext(ctx)
		loopCtx, cancel = context.WithCancel(egCtx)
	)
	defer cancel()

	eg.Go(func() error {
		defer cancel()
		reason = runLoop(loopCtx, config, grid, renderer, stats)
		return nil
	})
	eg.Go(func() error {
		return renderer.WaitForQuit(loopCtx)
	})

	if err = eg.Wait(); errors.Is(err, model.ErrUserQuit) {
		// the loop only saw its context cancelled
		return "quit", nil
	}
	return reason, err
}
