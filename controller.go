package hdastar

import (
	"sync/atomic"

	"github.com/llxisdsh/synx"

	"github.com/haldor/hdastar/maze"
)

// bestMeeting is the shared best-known meeting point: a single
// mutex-guarded record of the shortest confirmed length found so far and
// where it was found. minLen is kept in an atomic.Int32 alongside the
// mutex so that a worker's hot-path prune check can peek at it without
// taking the lock; the lock only ever guards the three-field update
// together with the coordinated x/y write.
type bestMeeting struct {
	mu     synx.TicketLock
	minLen atomic.Int32
	x, y   int32
}

func newBestMeeting() *bestMeeting {
	b := &bestMeeting{x: -1, y: -1}
	b.minLen.Store(inf)
	return b
}

// Peek returns the current best length without synchronization.
func (b *bestMeeting) Peek() int32 { return b.minLen.Load() }

// TryUpdate records (x, y, length) as the new best meeting point if it
// improves on the current one.
func (b *bestMeeting) TryUpdate(x, y, length int32) {
	b.mu.Lock()
	if length < b.minLen.Load() {
		b.minLen.Store(length)
		b.x, b.y = x, y
	}
	b.mu.Unlock()
}

// Snapshot returns a consistent view of the record, meant for use after
// the search has already terminated.
func (b *bestMeeting) Snapshot() (x, y, length int32) {
	b.mu.Lock()
	x, y, length = b.x, b.y, b.minLen.Load()
	b.mu.Unlock()
	return
}

// reconstruct stamps every cell on the winning path and returns its
// length, including the meeting cell itself. It walks the forward
// table's parent chain from the meeting cell back to the seed (whose
// Parent is nil) and the backward table's chain likewise.
func reconstruct(grid *maze.Grid, fwd, bwd *nodeTable, x, y int32) int {
	grid.WriteMark(x, y)
	count := 1

	for n := fwd.Load(x, y).Parent; n != nil; n = n.Parent {
		grid.WriteMark(n.X, n.Y)
		count++
	}
	for n := bwd.Load(x, y).Parent; n != nil; n = n.Parent {
		grid.WriteMark(n.X, n.Y)
		count++
	}

	return count
}
