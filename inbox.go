package hdastar

import (
	"sync/atomic"

	"github.com/haldor/hdastar/internal/arena"
)

// inbox is a worker's lock-free multi-producer single-consumer mailbox.
// Any worker may push a message onto another worker's inbox; only the
// owning worker ever drains, allocates from, or frees onto it, grounded on
// the pack's CAS-based lock-free queue implementations.
//
// head forms a LIFO stack: push is a retrying compare-and-swap, drain is
// an atomic exchange of the whole chain for nil. Messages are allocated
// from the owner's own arena and recycled onto a free-list the owner
// alone touches, so alloc/free need no synchronization even though push
// is called cross-goroutine.
type inbox struct {
	head atomic.Pointer[message]

	arena   *arena.Arena[message]
	freeTop *message
}

func newInbox() *inbox {
	return &inbox{arena: arena.New[message]()}
}

// alloc returns a message for the owner to fill in and send, reusing a
// freed one if available.
func (ib *inbox) alloc(parent *Node, x, y, g int32) *message {
	var m *message
	if ib.freeTop != nil {
		m = ib.freeTop
		ib.freeTop = m.next
	} else {
		m = ib.arena.Alloc()
	}
	m.parent, m.x, m.y, m.g, m.next = parent, x, y, g, nil
	return m
}

// free recycles a consumed message onto the owner's free-list.
func (ib *inbox) free(m *message) {
	m.next = ib.freeTop
	ib.freeTop = m
}

// push is called by any worker, including the owner, to deliver msg to
// this inbox.
func (ib *inbox) push(m *message) {
	for {
		old := ib.head.Load()
		m.next = old
		if ib.head.CompareAndSwap(old, m) {
			return
		}
	}
}

// drain atomically takes the whole pending chain, oldest-push-last (the
// chain arrives most-recently-pushed first; order of consumption within a
// batch doesn't matter since every message carries its own target cell).
func (ib *inbox) drain() *message {
	return ib.head.Swap(nil)
}

func (ib *inbox) empty() bool {
	return ib.head.Load() == nil
}
