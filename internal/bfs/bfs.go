// Package bfs is a single-threaded reference oracle used only by tests to
// check that the solver's path length is optimal. Grounded
// on the pack's mit-pdos-sigmaos bfs-s-layers.go (frontier/next-frontier
// layer swap), adapted from an integer-indexed graph to a maze's (x, y)
// coordinate space and a caller-supplied wall predicate instead of an
// adjacency list.
package bfs

import "errors"

// ErrNoPath is returned when start and goal are not connected.
var ErrNoPath = errors.New("bfs: no path between start and goal")

type cell struct{ x, y int32 }

// ShortestPathLength runs a layered BFS from (startX, startY) to
// (goalX, goalY) over the 4-connected grid described by isWall, and
// returns the number of cells on a shortest path (inclusive of both
// endpoints).
func ShortestPathLength(cols, rows int32, isWall func(x, y int32) bool, startX, startY, goalX, goalY int32) (int, error) {
	if startX == goalX && startY == goalY {
		return 1, nil
	}

	visited := make(map[cell]bool)
	start := cell{startX, startY}
	goal := cell{goalX, goalY}
	visited[start] = true

	frontier := []cell{start}
	length := 1

	deltas := [4][2]int32{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	for len(frontier) > 0 {
		next := make([]cell, 0, len(frontier))
		for _, c := range frontier {
			for _, d := range deltas {
				nc := cell{c.x + d[0], c.y + d[1]}
				if nc.x < 0 || nc.y < 0 || nc.x >= cols || nc.y >= rows {
					continue
				}
				if visited[nc] || isWall(nc.x, nc.y) {
					continue
				}
				if nc == goal {
					return length + 1, nil
				}
				visited[nc] = true
				next = append(next, nc)
			}
		}
		frontier = next
		length++
	}

	return 0, ErrNoPath
}
