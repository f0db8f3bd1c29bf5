package hdastar

import "errors"

// ErrNoPath is returned by Solve when both directions reach quiescence
// without ever finding a meeting cell — the maze has no path between
// start and goal.
var ErrNoPath = errors.New("hdastar: no path between start and goal")
