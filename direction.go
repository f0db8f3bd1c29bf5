package hdastar

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/haldor/hdastar/internal/arena"
	"github.com/haldor/hdastar/maze"
)

// direction owns one frontier's worker pool and node table: it builds a
// pool of worker goroutines sharing one set of mailboxes and one node
// table, starts them all, and joins them.
type direction struct {
	table   *nodeTable
	workers []*worker
}

// newDirection builds a direction's W workers, wiring each one's mailbox,
// arena, and counters, and cross-links the counterpart's table and
// quiescence flag so meet-checks and termination detection can read them.
func newDirection(
	table *nodeTable,
	workerCount int32,
	grid *maze.Grid,
	counterpart *nodeTable,
	best *bestMeeting,
	done *atomic.Bool,
	selfQuiescent, counterpartQuiescent *atomic.Bool,
	startX, startY, goalX, goalY int32,
) *direction {
	allSent := make([]atomic.Uint64, workerCount)
	allReceived := make([]atomic.Uint64, workerCount)
	mailboxes := make([]*inbox, workerCount)
	for i := range mailboxes {
		mailboxes[i] = newInbox()
	}

	workers := make([]*worker, workerCount)
	for i := int32(0); i < workerCount; i++ {
		workers[i] = &worker{
			id:                   i,
			workerCount:          workerCount,
			grid:                 grid,
			startX:               startX,
			startY:               startY,
			goalX:                goalX,
			goalY:                goalY,
			table:                table,
			counterpart:          counterpart,
			arena:                arena.New[Node](),
			heap:                 newMinHeap(),
			mailbox:              mailboxes[i],
			peers:                mailboxes,
			sent:                 &allSent[i],
			received:             &allReceived[i],
			allSent:              allSent,
			allReceived:          allReceived,
			best:                 best,
			done:                 done,
			selfQuiescent:        selfQuiescent,
			counterpartQuiescent: counterpartQuiescent,
		}
	}

	// Seed the origin node synchronously, before any worker goroutine
	// starts: whichever worker owns (startX, startY) gets its sent
	// counter bumped here. Doing this before run() launches anything
	// rules out a non-owner reaching idlePoll and observing all-zero
	// sent/received sums as if the direction had nothing left to do.
	for _, w := range workers {
		w.seedIfOwner()
	}

	return &direction{table: table, workers: workers}
}

// run starts every worker, then waits for all of them to exit.
func (d *direction) run(ctx context.Context) error {
	g, _ := errgroup.WithContext(ctx)
	for _, w := range d.workers {
		w := w
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					// Stop every other worker too, so Wait can return.
					w.done.Store(true)
					err = fmt.Errorf("hdastar: worker %d panicked: %v", w.id, r)
				}
			}()
			w.run()
			return nil
		})
	}
	return g.Wait()
}
