package arena

import "testing"

func TestAllocReturnsDistinctStableAddresses(t *testing.T) {
	a := New[int]()
	seen := make(map[*int]int)
	for i := 0; i < 200_000; i++ {
		p := a.Alloc()
		if _, dup := seen[p]; dup {
			t.Fatalf("Alloc returned an address already handed out: %p", p)
		}
		seen[p] = i
		*p = i
	}
	for p, want := range seen {
		if *p != want {
			t.Fatalf("value at %p = %d after later allocations, want %d", p, *p, want)
		}
	}
}

func TestAllocZerosFreshMemory(t *testing.T) {
	type node struct {
		x, y int32
	}
	a := New[node]()
	n := a.Alloc()
	if n.x != 0 || n.y != 0 {
		t.Fatalf("Alloc returned non-zeroed memory: %+v", *n)
	}
}

func TestAllocGrowsAcrossChunks(t *testing.T) {
	a := New[byte]()
	first := a.chunks[0]
	for i := 0; i < 2*len(first)+1; i++ {
		a.Alloc()
	}
	if len(a.chunks) < 2 {
		t.Fatalf("expected Alloc to grow into a new chunk, got %d chunk(s)", len(a.chunks))
	}
}
