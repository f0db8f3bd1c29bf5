// Command astar solves a maze file in place using Hash-Distributed
// bidirectional A*. Uses the standard flag package for argument
// handling, the same way Starfleet2-maze's CLI does.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/haldor/hdastar"
	"github.com/haldor/hdastar/maze"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("astar", flag.ContinueOnError)
	workers := fs.Int("workers", 0, "total worker goroutines, split evenly between directions (default: all CPUs)")
	verbose := fs.Bool("v", false, "log search progress to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: astar [-workers N] [-v] <maze-file>")
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	grid, err := maze.New(fs.Arg(0))
	if err != nil {
		logger.Error("failed to open maze", "error", err)
		return 1
	}
	defer func() {
		if err := grid.Close(); err != nil {
			logger.Error("failed to flush maze", "error", err)
		}
	}()

	opts := []hdastar.Option{hdastar.WithLogger(logger)}
	if *workers > 0 {
		opts = append(opts, hdastar.WithWorkers(*workers))
	}

	result, err := hdastar.Solve(context.Background(), grid, opts...)
	if err != nil {
		logger.Error("search failed", "error", err)
		return 1
	}

	fmt.Println(result.Length)
	return 0
}
