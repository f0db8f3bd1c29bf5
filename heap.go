package hdastar

// minHeap is a 1-based array binary min-heap over *Node keyed by Node.F.
// Index 0 holds an unused dummy slot so that no real node ever sifts
// past it; every move through the array writes the moved node's
// HeapIndex back, which is what lets decreaseKey start from a known
// position instead of searching for one.
type minHeap struct {
	nodes []*Node
}

func newMinHeap() *minHeap {
	return &minHeap{nodes: make([]*Node, 1, 64)}
}

func (h *minHeap) Len() int { return len(h.nodes) - 1 }

// Insert adds n to the heap and sifts it up into position.
func (h *minHeap) Insert(n *Node) {
	h.nodes = append(h.nodes, n)
	i := len(h.nodes) - 1
	n.HeapIndex = int32(i)
	h.siftUp(i)
}

// ExtractMin removes and returns the node with the smallest F.
func (h *minHeap) ExtractMin() *Node {
	min := h.nodes[1]
	last := len(h.nodes) - 1
	h.nodes[1] = h.nodes[last]
	h.nodes = h.nodes[:last]
	min.HeapIndex = 0
	if len(h.nodes) > 1 {
		h.nodes[1].HeapIndex = 1
		h.siftDown(1)
	}
	return min
}

// DecreaseKey restores heap order after n.F has decreased in place.
func (h *minHeap) DecreaseKey(n *Node) {
	h.siftUp(int(n.HeapIndex))
}

// DiscardAll empties the heap, resetting each discarded node's HeapIndex
// to zero, and returns how many entries were dropped. Used by the prune
// step, which only needs the count for its receive-counter ledger.
func (h *minHeap) DiscardAll() int {
	discarded := len(h.nodes) - 1
	for _, n := range h.nodes[1:] {
		n.HeapIndex = 0
	}
	h.nodes = h.nodes[:1]
	return discarded
}

func (h *minHeap) siftUp(i int) {
	for i > 1 {
		parent := i / 2
		if h.nodes[i].F >= h.nodes[parent].F {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *minHeap) siftDown(i int) {
	n := len(h.nodes) - 1
	for {
		left, right := 2*i, 2*i+1
		smallest := i
		if left <= n && h.nodes[left].F < h.nodes[smallest].F {
			smallest = left
		}
		if right <= n && h.nodes[right].F < h.nodes[smallest].F {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *minHeap) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.nodes[i].HeapIndex = int32(i)
	h.nodes[j].HeapIndex = int32(j)
}
