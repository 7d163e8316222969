package board

import (
	"fmt"
	"strings"
)

// Board is a grid of CellContents. Every cell is Unclicked at
// construction and after Reset. The type system guarantees a board never
// holds anything other than a CellContents value.
type Board struct {
	*Grid[CellContents]
}

// NewBoard creates an all-Unclicked board. Both dimensions must be
// positive.
func NewBoard(xSize, ySize int) *Board {
	return &Board{Grid: NewGrid[CellContents](xSize, ySize)}
}

// Reset sets every cell back to Unclicked without changing dimensions.
func (b *Board) Reset() {
	b.Fill(Unclicked)
}

// Copy returns an independent deep copy of the board.
func (b *Board) Copy() *Board {
	return &Board{Grid: b.Grid.Copy()}
}

// Equal reports whether both boards have the same dimensions and the
// same contents in every cell.
func (b *Board) Equal(other *Board) bool {
	if b.XSize() != other.XSize() || b.YSize() != other.YSize() {
		return false
	}
	for _, coord := range b.AllCoords() {
		if b.At(coord) != other.At(coord) {
			return false
		}
	}
	return true
}

// String renders the board row-major: aligned cells separated by single
// spaces, rows separated by newlines. The result parses back with
// ParseBoard.
func (b *Board) String() string {
	return b.Format(CellContents.String, 0)
}

// ParseBoard parses a board serialization as produced by String: one
// whitespace-separated token per cell, one line per row. All rows must
// have the same number of tokens. Any unrecognized token fails the whole
// load with a *ParseBoardError.
func ParseBoard(text string) (*Board, error) {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty board serialization")
	}

	board := NewBoard(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != board.XSize() {
			return nil, fmt.Errorf(
				"ragged board serialization: row %d has %d cells, want %d",
				y, len(row), board.XSize())
		}
		for x, token := range row {
			contents, err := ParseCellContents(token)
			if err != nil {
				return nil, NewParseBoardError(Coord{x, y}, err)
			}
			board.Set(Coord{x, y}, contents)
		}
	}
	return board, nil
}
