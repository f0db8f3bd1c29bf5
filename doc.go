// Package hdastar solves a single shortest path through a dense 4-connected
// block maze using Hash-Distributed A* (HDA*): two opposing frontiers,
// forward from start and backward from goal, each expanded by a pool of
// worker goroutines that statically partition grid cells by hash and
// exchange successor proposals through per-worker lock-free inboxes.
//
// The package exposes one entry point, Solve, which runs the bidirectional
// search to completion against a maze.Grid and reports the meeting point
// and path length. Callers that want to solve individual maze files end
// to end should use the cmd/astar command instead of calling Solve
// directly.
package hdastar
