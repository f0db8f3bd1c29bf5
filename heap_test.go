package hdastar

import (
	"math/rand"
	"testing"
)

func checkHeapInvariant(t *testing.T, h *minHeap) {
	t.Helper()
	for i := 2; i <= h.Len(); i++ {
		parent := h.nodes[i/2]
		if parent.F > h.nodes[i].F {
			t.Fatalf("heap property violated: nodes[%d].F=%d > nodes[%d].F=%d", i/2, parent.F, i, h.nodes[i].F)
		}
		if h.nodes[i].HeapIndex != int32(i) {
			t.Fatalf("nodes[%d].HeapIndex = %d, want %d", i, h.nodes[i].HeapIndex, i)
		}
	}
}

func TestHeapInsertExtractOrdersByF(t *testing.T) {
	h := newMinHeap()
	fs := []int32{5, 3, 8, 1, 9, 2, 7}
	for _, f := range fs {
		h.Insert(&Node{F: f})
	}
	checkHeapInvariant(t, h)

	var got []int32
	for h.Len() > 0 {
		got = append(got, h.ExtractMin().F)
	}

	want := []int32{1, 2, 3, 5, 7, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestHeapDecreaseKey(t *testing.T) {
	h := newMinHeap()
	n1 := &Node{F: 10}
	n2 := &Node{F: 20}
	n3 := &Node{F: 30}
	h.Insert(n1)
	h.Insert(n2)
	h.Insert(n3)

	n3.F = 1
	h.DecreaseKey(n3)
	checkHeapInvariant(t, h)

	if min := h.ExtractMin(); min != n3 {
		t.Fatalf("expected n3 to sort to the front after decrease-key, got F=%d", min.F)
	}
}

func TestHeapDiscardAll(t *testing.T) {
	h := newMinHeap()
	for i := 0; i < 5; i++ {
		h.Insert(&Node{F: int32(i)})
	}
	discarded := h.DiscardAll()
	if discarded != 5 {
		t.Fatalf("DiscardAll() = %d, want 5", discarded)
	}
	if h.Len() != 0 {
		t.Fatalf("heap not empty after DiscardAll: len=%d", h.Len())
	}
}

func TestHeapRandomizedAgainstInvariant(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	h := newMinHeap()
	var live []*Node

	for i := 0; i < 2000; i++ {
		switch {
		case len(live) == 0 || r.Intn(2) == 0:
			n := &Node{F: int32(r.Intn(1000))}
			h.Insert(n)
			live = append(live, n)
		default:
			idx := r.Intn(len(live))
			if live[idx].HeapIndex != 0 {
				live[idx].F -= int32(r.Intn(50))
				h.DecreaseKey(live[idx])
			}
		}
		checkHeapInvariant(t, h)
	}
}
