package hdastar

import (
	"math"
	"sync/atomic"
)

// inf is the sentinel g/f-score for a node that has not been reached yet.
const inf int32 = math.MaxInt32

// Node is a single search node in one direction's frontier. Nodes are
// allocated from a worker's arena, never freed individually, and are
// mutated only by the worker that owns their (X, Y) cell.
type Node struct {
	X, Y int32

	// G is read by the owning worker's own loop (plain field would do),
	// but also by a counterpart-direction worker checking for a meeting
	// and by any same-direction worker walking a neighbor's table entry
	// for the expand gate — both after the owner has already republished
	// it via a later decreaseKey, past the table's one-time pointer
	// publication. atomic.Int32 makes those cross-goroutine reads and the
	// owner's updates well-defined instead of a benign-looking race.
	G atomic.Int32 // path cost from this direction's origin
	F int32        // G + heuristic to this direction's goal; owner-only

	Parent *Node

	// HeapIndex is this node's 1-based position in its owning worker's
	// heap array; zero means the node is not currently in any heap.
	HeapIndex int32
}

func heuristic(x1, y1, x2, y2 int32) int32 {
	dx := x1 - x2
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y2
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
