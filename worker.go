package hdastar

import (
	"sync/atomic"

	"github.com/haldor/hdastar/internal/arena"
	"github.com/haldor/hdastar/maze"
)

// neighborOffsets lists the four cardinal steps in a fixed order:
// +x, -x, +y, -y.
var neighborOffsets = [4][2]int32{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// worker is one HDA* worker: it owns one heap, one arena, and one inbox,
// and otherwise only ever touches read-only or atomic shared state.
type worker struct {
	id          int32
	workerCount int32

	grid *maze.Grid

	startX, startY int32
	goalX, goalY   int32

	table       *nodeTable // this direction's table; I own cells hashing to my id
	counterpart *nodeTable // the other direction's table; read-only

	arena   *arena.Arena[Node]
	heap    *minHeap
	mailbox *inbox
	peers   []*inbox // every worker's mailbox in this direction, indexed by id

	sent        *atomic.Uint64 // my own counter
	received    *atomic.Uint64
	allSent     []atomic.Uint64 // every worker's counters in this direction, for quiescence sums
	allReceived []atomic.Uint64

	best *bestMeeting

	done *atomic.Bool // global: set by either direction once the search is over

	selfQuiescent        *atomic.Bool // my direction's "own queues drained" flag
	counterpartQuiescent *atomic.Bool // the other direction's equivalent flag
}

func (w *worker) owns(x, y int32) int32 {
	m := (x + y) % w.workerCount
	if m < 0 {
		m += w.workerCount
	}
	return m
}

// seedIfOwner creates the direction's origin node if this worker is the
// one that owns its cell, mirroring the usual start-of-search
// direct insertion (no message needed, but sent is still bumped by one to
// balance the ledger as if one had arrived).
func (w *worker) seedIfOwner() {
	if w.owns(w.startX, w.startY) != w.id {
		return
	}
	n := w.arena.Alloc()
	n.X, n.Y = w.startX, w.startY
	n.G.Store(1)
	n.F = 1 + heuristic(w.startX, w.startY, w.goalX, w.goalY)
	n.Parent = nil
	n.HeapIndex = 0
	w.heap.Insert(n)
	w.table.Store(w.startX, w.startY, n)
	w.sent.Add(1)
}

// run is the worker's main loop.
func (w *worker) run() {
	for !w.done.Load() {
		if w.heap.Len() > 0 {
			n := w.heap.ExtractMin()

			if n.G.Load() >= w.best.Peek() {
				// n itself was never matched or expanded, so its own
				// deferred receive credit (from the insert that put it
				// in the heap) is paid here too, not just the siblings
				// DiscardAll dumps — otherwise a direction that ever
				// prunes could never again show sum(sent)==sum(received)
				// and would starve quiescence detection.
				discarded := w.heap.DiscardAll()
				w.received.Add(uint64(discarded) + 1)
				w.drainInbox()
				continue
			}

			if m := w.counterpart.Load(n.X, n.Y); m != nil {
				w.best.TryUpdate(n.X, n.Y, n.G.Load()+m.G.Load())
				w.received.Add(1)
				w.drainInbox()
				continue
			}

			w.expand(n)
			w.drainInbox()
			continue
		}

		if !w.idlePoll() {
			return
		}
		w.drainInbox()
	}
}

// expand dispatches a proposal to the owner of each open, improvable
// neighbor of n.
func (w *worker) expand(n *Node) {
	for _, d := range neighborOffsets {
		nx, ny := n.X+d[0], n.Y+d[1]
		if w.grid.IsWall(nx, ny) {
			continue
		}
		tentativeG := n.G.Load() + 1
		if existing := w.table.Load(nx, ny); existing != nil && tentativeG >= existing.G.Load() {
			continue
		}
		owner := w.owns(nx, ny)
		msg := w.mailbox.alloc(n, nx, ny, tentativeG)
		w.peers[owner].push(msg)
		w.sent.Add(1)
	}
	w.received.Add(1)
}

// drainInbox consumes every message currently queued for this worker.
func (w *worker) drainInbox() {
	msg := w.mailbox.drain()
	for msg != nil {
		next := msg.next
		w.receiveOne(msg)
		w.mailbox.free(msg)
		msg = next
	}
}

// receiveOne applies one inbound proposal to this worker's node table and
// heap. The table pointer for a brand-new node is published only after
// every field a reader could care about has been written.
func (w *worker) receiveOne(msg *message) {
	node := w.table.Load(msg.x, msg.y)
	freshlyCreated := node == nil
	if freshlyCreated {
		node = w.arena.Alloc()
		node.X, node.Y = msg.x, msg.y
		node.G.Store(inf)
		node.F = inf
		node.Parent = nil
		node.HeapIndex = 0
	}

	if msg.g < node.G.Load() {
		node.Parent = msg.parent
		node.G.Store(msg.g)
		node.F = msg.g + heuristic(msg.x, msg.y, w.goalX, w.goalY)
		if node.HeapIndex != 0 {
			w.heap.DecreaseKey(node)
			w.received.Add(1)
		} else {
			w.heap.Insert(node)
		}
	} else {
		w.received.Add(1)
	}

	if freshlyCreated {
		w.table.Store(msg.x, msg.y, node)
	}
}

// idlePoll spins while this worker's inbox is empty, watching for either
// new work or global quiescence. It returns false when the caller should
// stop (termination observed or declared), true when new work arrived.
func (w *worker) idlePoll() bool {
	for w.mailbox.empty() {
		if w.done.Load() {
			return false
		}

		sentSum, receivedSum := sumCounters(w.allSent), sumCounters(w.allReceived)
		if sentSum == receivedSum {
			if w.best.Peek() < inf {
				w.done.Store(true)
				return false
			}
			w.selfQuiescent.Store(true)
			if w.counterpartQuiescent.Load() {
				w.done.Store(true)
				return false
			}
		} else {
			w.selfQuiescent.Store(false)
		}
	}
	return true
}

func sumCounters(counters []atomic.Uint64) uint64 {
	var sum uint64
	for i := range counters {
		sum += counters[i].Load()
	}
	return sum
}
