package hdastar

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/haldor/hdastar/maze"
)

// Options controls a Solve call. The zero value is not meant to be used
// directly; build one through WithWorkers/WithLogger or let Solve apply
// its defaults.
type Options struct {
	Workers int
	Logger  *slog.Logger
}

// Option is a functional option for Solve, carried forward from the
// teacher's own Option func(*Options) pattern and rebound to the new
// concrete maze domain.
type Option func(*Options)

// WithWorkers overrides the total worker count split between the two
// directions. Values below 2 are clamped up to 2 (one per direction).
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger overrides the default no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

func defaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
		Logger:  slog.New(slog.NewTextHandler(discardWriter{}, nil)),
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// Result reports the outcome of a successful Solve call.
type Result struct {
	Length     int
	MeetX      int32
	MeetY      int32
}

// Solve runs Hash-Distributed bidirectional A* over grid to completion
// and marks the winning path in place. It spawns two direction pools —
// forward from grid.Start() and backward from grid.Goal() — each with
// half of the requested worker budget, and blocks until either a meeting
// point is confirmed optimal or both directions provably exhaust their
// search space with none found.
func Solve(ctx context.Context, grid *maze.Grid, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	total := o.Workers
	if total < 2 {
		total = 2
	}
	perDirection := int32(total / 2)
	if perDirection < 1 {
		perDirection = 1
	}

	startX, startY := grid.Start()
	goalX, goalY := grid.Goal()

	best := newBestMeeting()
	done := new(atomic.Bool)
	fwdQuiescent := new(atomic.Bool)
	bwdQuiescent := new(atomic.Bool)

	fwdTable := newNodeTable(grid.Cols(), grid.Rows())
	bwdTable := newNodeTable(grid.Cols(), grid.Rows())

	fwd := newDirection(fwdTable, perDirection, grid, bwdTable, best, done, fwdQuiescent, bwdQuiescent, startX, startY, goalX, goalY)
	bwd := newDirection(bwdTable, perDirection, grid, fwdTable, best, done, bwdQuiescent, fwdQuiescent, goalX, goalY, startX, startY)

	o.Logger.Debug("solve starting", "workers_per_direction", perDirection, "cols", grid.Cols(), "rows", grid.Rows())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return fwd.run(gctx) })
	g.Go(func() error { return bwd.run(gctx) })
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("hdastar: %w", err)
	}

	x, y, length := best.Snapshot()
	if length >= inf {
		return Result{}, ErrNoPath
	}

	pathLen := reconstruct(grid, fwdTable, bwdTable, x, y)
	o.Logger.Debug("solve finished", "length", pathLen, "meet_x", x, "meet_y", y)

	return Result{Length: pathLen, MeetX: x, MeetY: y}, nil
}
