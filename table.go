package hdastar

import "sync/atomic"

// nodeTable is one direction's dense (x, y) -> *Node mapping. A cell is
// written only by the worker that owns it (hash(x, y) == worker id); any
// worker in either direction may read any cell to check for a meeting.
// Entries are atomic.Pointer so that a node's fields are guaranteed
// visible to a reader before the reader observes the pointer at all.
type nodeTable struct {
	cols, rows int32
	cells      []atomic.Pointer[Node]
}

func newNodeTable(cols, rows int32) *nodeTable {
	return &nodeTable{cols: cols, rows: rows, cells: make([]atomic.Pointer[Node], int(cols)*int(rows))}
}

func (t *nodeTable) index(x, y int32) int {
	return int(y*t.cols + x)
}

func (t *nodeTable) Load(x, y int32) *Node {
	return t.cells[t.index(x, y)].Load()
}

func (t *nodeTable) Store(x, y int32, n *Node) {
	t.cells[t.index(x, y)].Store(n)
}
