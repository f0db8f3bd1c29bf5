// Package maze maps a maze file into memory and exposes it as an indexed
// character grid: wall/open queries for the solver and in-place path
// marking for the result. Uses golang.org/x/sys/unix for the mmap calls
// instead of hand-rolled syscalls.
package maze

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Grid is a memory-mapped maze file. The first line is "<rows> <cols>\n";
// each of the following rows lines is exactly cols bytes followed by
// '\n'. '#' is wall; every other non-newline byte is traversable.
type Grid struct {
	file *os.File
	data []byte

	rows, cols int32
	rowOffset  []int32
}

// New opens path read-write and maps it into memory.
func New(path string) (*Grid, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("maze: open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("maze: stat %s: %w", path, err)
	}
	size := int(info.Size())
	if size == 0 {
		f.Close()
		return nil, fmt.Errorf("maze: %s is empty", path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("maze: mmap %s: %w", path, err)
	}

	g := &Grid{file: f, data: data}
	if err := g.parseHeader(); err != nil {
		unix.Munmap(data)
		f.Close()
		return nil, err
	}
	return g, nil
}

func (g *Grid) parseHeader() error {
	nl := bytes.IndexByte(g.data, '\n')
	if nl < 0 {
		return fmt.Errorf("maze: missing header line")
	}
	var rows, cols int
	if _, err := fmt.Sscanf(string(g.data[:nl]), "%d %d", &rows, &cols); err != nil {
		return fmt.Errorf("maze: bad header %q: %w", g.data[:nl], err)
	}
	if rows < 3 || cols < 3 {
		return fmt.Errorf("maze: %d x %d maze is too small to have an interior", rows, cols)
	}

	rowOffset := make([]int32, rows)
	pos := nl + 1
	for i := 0; i < rows; i++ {
		if pos+cols > len(g.data) {
			return fmt.Errorf("maze: row %d is truncated", i)
		}
		rowOffset[i] = int32(pos)
		pos += cols
		if pos >= len(g.data) || g.data[pos] != '\n' {
			return fmt.Errorf("maze: row %d is not %d bytes long", i, cols)
		}
		pos++
	}

	g.rows, g.cols = int32(rows), int32(cols)
	g.rowOffset = rowOffset
	return nil
}

// IsWall reports whether (x, y) is a wall or outside the grid entirely;
// out-of-range coordinates count as wall, while cells inside the grid
// (border rows and columns included) are wall only if they hold '#'.
func (g *Grid) IsWall(x, y int32) bool {
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows {
		return true
	}
	return g.data[g.rowOffset[y]+x] == '#'
}

// WriteMark stamps a path cell, preserving the start and goal characters.
func (g *Grid) WriteMark(x, y int32) {
	off := g.rowOffset[y] + x
	switch g.data[off] {
	case '@', '%':
		return
	default:
		g.data[off] = '*'
	}
}

// Start returns the fixed start coordinate (1, 1).
func (g *Grid) Start() (int32, int32) { return 1, 1 }

// Goal returns the fixed goal coordinate (cols-2, rows-2).
func (g *Grid) Goal() (int32, int32) { return g.cols - 2, g.rows - 2 }

func (g *Grid) Rows() int32 { return g.rows }
func (g *Grid) Cols() int32 { return g.cols }

// Close flushes the mapping back to disk and releases it.
func (g *Grid) Close() error {
	if err := unix.Msync(g.data, unix.MS_ASYNC); err != nil {
		unix.Munmap(g.data)
		g.file.Close()
		return fmt.Errorf("maze: msync: %w", err)
	}
	if err := unix.Munmap(g.data); err != nil {
		g.file.Close()
		return fmt.Errorf("maze: munmap: %w", err)
	}
	return g.file.Close()
}
