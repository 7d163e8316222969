package board

import (
	"fmt"
	"strings"
)

// Coord addresses a single cell within a grid. The origin (0, 0) is the
// top-left cell; X grows rightwards and Y grows downwards.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Grid is a fixed-size rectangular container of values, addressed by
// Coord. The dimensions are set at construction and never change.
type Grid[T any] struct {
	xSize, ySize int
	cells        [][]T
}

// NewGrid creates an xSize by ySize grid filled with T's zero value.
// Both dimensions must be positive.
func NewGrid[T any](xSize, ySize int) *Grid[T] {
	if xSize <= 0 || ySize <= 0 {
		panic(fmt.Sprintf("grid dimensions must be positive, got %dx%d", xSize, ySize))
	}
	cells := make([][]T, ySize)
	for y := range cells {
		cells[y] = make([]T, xSize)
	}
	return &Grid[T]{xSize: xSize, ySize: ySize, cells: cells}
}

func (g *Grid[T]) XSize() int {
	return g.xSize
}

func (g *Grid[T]) YSize() int {
	return g.ySize
}

func (g *Grid[T]) NumCells() int {
	return g.xSize * g.ySize
}

// Contains reports whether coord lies within the grid's bounds.
func (g *Grid[T]) Contains(coord Coord) bool {
	return coord.X >= 0 && coord.X < g.xSize && coord.Y >= 0 && coord.Y < g.ySize
}

func (g *Grid[T]) checkBounds(coord Coord) {
	if !g.Contains(coord) {
		panic(NewOutOfBoundsError(coord, g.xSize, g.ySize))
	}
}

// At returns the value stored at coord. Panics with *OutOfBoundsError if
// coord lies outside the grid.
func (g *Grid[T]) At(coord Coord) T {
	g.checkBounds(coord)
	return g.cells[coord.Y][coord.X]
}

// Set stores value at coord. Panics with *OutOfBoundsError if coord lies
// outside the grid.
func (g *Grid[T]) Set(coord Coord, value T) {
	g.checkBounds(coord)
	g.cells[coord.Y][coord.X] = value
}

// Fill stores value in every cell.
func (g *Grid[T]) Fill(value T) {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x] = value
		}
	}
}

// AllCoords returns every coordinate of the grid exactly once, in
// column-major order: (0,0), (0,1), ..., (1,0), (1,1), ... The order is
// stable across calls.
func (g *Grid[T]) AllCoords() []Coord {
	coords := make([]Coord, 0, g.NumCells())
	for x := 0; x < g.xSize; x++ {
		for y := 0; y < g.ySize; y++ {
			coords = append(coords, Coord{x, y})
		}
	}
	return coords
}

// Neighbors returns the in-bounds coordinates at Chebyshev distance 1
// from coord, excluding coord itself. For grids with both dimensions at
// least 3, corner cells have 3 neighbors, edge cells 5, interior cells 8.
// Panics with *OutOfBoundsError if coord lies outside the grid.
func (g *Grid[T]) Neighbors(coord Coord) []Coord {
	return g.neighbors(coord, false)
}

// NeighborsWithOrigin is Neighbors with coord itself included.
func (g *Grid[T]) NeighborsWithOrigin(coord Coord) []Coord {
	return g.neighbors(coord, true)
}

func (g *Grid[T]) neighbors(coord Coord, includeOrigin bool) []Coord {
	g.checkBounds(coord)
	nbrs := make([]Coord, 0, 9)
	for x := max(0, coord.X-1); x <= min(g.xSize-1, coord.X+1); x++ {
		for y := max(0, coord.Y-1); y <= min(g.ySize-1, coord.Y+1); y++ {
			c := Coord{x, y}
			if c == coord && !includeOrigin {
				continue
			}
			nbrs = append(nbrs, c)
		}
	}
	return nbrs
}

// Copy returns an independent deep copy of the grid.
func (g *Grid[T]) Copy() *Grid[T] {
	out := NewGrid[T](g.xSize, g.ySize)
	for y := range g.cells {
		copy(out.cells[y], g.cells[y])
	}
	return out
}

// Format renders the grid as aligned text: cells right-aligned to
// cellSize characters and separated by single spaces, rows separated by
// newlines, with no trailing whitespace or newline. The mapping converts
// a value to its representation; nil means fmt.Sprint. A cellSize of 0
// picks the widest rendered value.
func (g *Grid[T]) Format(mapping func(T) string, cellSize int) string {
	if mapping == nil {
		mapping = func(v T) string { return fmt.Sprint(v) }
	}

	if cellSize <= 0 {
		for y := range g.cells {
			for x := range g.cells[y] {
				if n := len(mapping(g.cells[y][x])); n > cellSize {
					cellSize = n
				}
			}
		}
	}

	var sb strings.Builder
	for y := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range g.cells[y] {
			if x > 0 {
				sb.WriteByte(' ')
			}
			rep := mapping(g.cells[y][x])
			if len(rep) > cellSize {
				rep = rep[:cellSize]
			}
			fmt.Fprintf(&sb, "%*s", cellSize, rep)
		}
	}
	return sb.String()
}

func (g *Grid[T]) String() string {
	return fmt.Sprintf("<%dx%d grid>", g.xSize, g.ySize)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
