package hdastar_test

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/haldor/hdastar"
	"github.com/haldor/hdastar/internal/bfs"
	"github.com/haldor/hdastar/maze"
)

func writeMaze(t *testing.T, rows []string) string {
	t.Helper()
	var b strings.Builder
	fmt.Fprintf(&b, "%d %d\n", len(rows), len(rows[0]))
	for _, row := range rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	path := filepath.Join(t.TempDir(), "maze.txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write maze: %v", err)
	}
	return path
}

func solve(t *testing.T, rows []string, opts ...hdastar.Option) (hdastar.Result, error) {
	t.Helper()
	path := writeMaze(t, rows)
	g, err := maze.New(path)
	if err != nil {
		t.Fatalf("maze.New: %v", err)
	}
	defer g.Close()
	return hdastar.Solve(context.Background(), g, opts...)
}

func TestSolveTrivialCorridor(t *testing.T) {
	rows := []string{
		"#####",
		"#@ %#",
		"#####",
	}
	result, err := solve(t, rows, hdastar.WithWorkers(2))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if result.Length != 3 {
		t.Fatalf("Length = %d, want 3", result.Length)
	}
}

func TestSolveObstacleDetour(t *testing.T) {
	rows := []string{
		"#########",
		"#@      #",
		"#  #### #",
		"#       #",
		"#  #### #",
		"#      %#",
		"#########",
	}
	result, err := solve(t, rows, hdastar.WithWorkers(4))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	walls := func(x, y int32) bool { return rows[y][x] == '#' }
	want, err := bfs.ShortestPathLength(int32(len(rows[0])), int32(len(rows)), walls, 1, 1, int32(len(rows[0])-2), int32(len(rows)-2))
	if err != nil {
		t.Fatalf("bfs oracle: %v", err)
	}
	if result.Length != want {
		t.Fatalf("Length = %d, want %d (bfs oracle)", result.Length, want)
	}
}

func TestSolveNoPathReturnsErrNoPath(t *testing.T) {
	rows := []string{
		"#####",
		"#@###",
		"## ##",
		"###%#",
		"#####",
	}
	_, err := solve(t, rows, hdastar.WithWorkers(2))
	if err != hdastar.ErrNoPath {
		t.Fatalf("err = %v, want ErrNoPath", err)
	}
}

func TestSolveSingleWorkerPerDirectionClamp(t *testing.T) {
	rows := []string{
		"#########",
		"#@      #",
		"#  #### #",
		"#       #",
		"#  #### #",
		"#      %#",
		"#########",
	}
	result, err := solve(t, rows, hdastar.WithWorkers(1))
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if result.Length != 11 {
		t.Fatalf("Length = %d, want 11", result.Length)
	}
}

func TestSolveMatchesBFSOnRandomMazes(t *testing.T) {
	const size = 40
	for seed := int64(0); seed < 8; seed++ {
		rows := randomMaze(t, size, size, seed, 0.22)

		walls := func(x, y int32) bool { return rows[y][x] == '#' }
		want, bfsErr := bfs.ShortestPathLength(int32(size), int32(size), walls, 1, 1, int32(size-2), int32(size-2))

		result, err := solve(t, rows, hdastar.WithWorkers(4))
		if bfsErr != nil {
			if err != hdastar.ErrNoPath {
				t.Fatalf("seed %d: bfs found no path but Solve returned err=%v", seed, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("seed %d: Solve: %v", seed, err)
		}
		if result.Length != want {
			t.Fatalf("seed %d: Length = %d, want %d (bfs oracle)", seed, result.Length, want)
		}
	}
}

func TestSolveIdempotentOnAlreadySolvedMaze(t *testing.T) {
	rows := []string{
		"#########",
		"#@      #",
		"#  #### #",
		"#       #",
		"#  #### #",
		"#      %#",
		"#########",
	}
	path := writeMaze(t, rows)

	g1, err := maze.New(path)
	if err != nil {
		t.Fatalf("maze.New: %v", err)
	}
	first, err := hdastar.Solve(context.Background(), g1, hdastar.WithWorkers(4))
	if err != nil {
		t.Fatalf("first Solve: %v", err)
	}
	if err := g1.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	g2, err := maze.New(path)
	if err != nil {
		t.Fatalf("reopen solved maze: %v", err)
	}
	defer g2.Close()
	second, err := hdastar.Solve(context.Background(), g2, hdastar.WithWorkers(4))
	if err != nil {
		t.Fatalf("second Solve: %v", err)
	}

	if first.Length != second.Length {
		t.Fatalf("re-solving a marked maze changed the length: %d vs %d", first.Length, second.Length)
	}
}

// randomMaze builds a rows x cols maze with a border of walls and random
// interior walls at the given density, leaving start and goal open.
func randomMaze(t *testing.T, rows, cols int, seed int64, density float64) []string {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	grid := make([][]byte, rows)
	for y := 0; y < rows; y++ {
		grid[y] = make([]byte, cols)
		for x := 0; x < cols; x++ {
			switch {
			case x == 0 || y == 0 || x == cols-1 || y == rows-1:
				grid[y][x] = '#'
			case r.Float64() < density:
				grid[y][x] = '#'
			default:
				grid[y][x] = ' '
			}
		}
	}
	grid[1][1] = '@'
	grid[rows-2][cols-2] = '%'

	out := make([]string, rows)
	for y := range grid {
		out[y] = string(grid[y])
	}
	return out
}
