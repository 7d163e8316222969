package board

import "fmt"

// OutOfBoundsError reports a coordinate outside a grid's bounds. Grid
// accessors panic with this error, since an out-of-bounds coordinate is a
// caller bug rather than a recoverable condition.
type OutOfBoundsError struct {
	coord        Coord
	xSize, ySize int
}

func NewOutOfBoundsError(coord Coord, xSize, ySize int) error {
	return &OutOfBoundsError{coord: coord, xSize: xSize, ySize: ySize}
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("coordinate %v is outside the %dx%d grid", e.coord, e.xSize, e.ySize)
}

// InvalidCountError reports construction of cell contents with a count
// outside the kind's domain.
type InvalidCountError struct {
	kind CellKind
	num  int
}

func NewInvalidCountError(kind CellKind, num int) error {
	return &InvalidCountError{kind: kind, num: num}
}

func (e *InvalidCountError) Error() string {
	if e.kind == KindNum {
		return fmt.Sprintf("cell value cannot be negative, got %d", e.num)
	}
	return fmt.Sprintf("mine-type cell contents must represent one or more mines, got %d", e.num)
}

// InvalidOperandError reports arithmetic on cell contents that carry no
// count.
type InvalidOperandError struct {
	contents CellContents
}

func NewInvalidOperandError(contents CellContents) error {
	return &InvalidOperandError{contents: contents}
}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("cannot add integers to %q cell contents", e.contents)
}

// UnknownTagError reports a character that matches no cell contents kind.
type UnknownTagError struct {
	tag byte
}

func NewUnknownTagError(tag byte) error {
	return &UnknownTagError{tag: tag}
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown cell contents tag %q", string(e.tag))
}

// ParseCellError reports a malformed textual cell representation.
type ParseCellError struct {
	token string
}

func NewParseCellError(token string) error {
	return &ParseCellError{token: token}
}

func (e *ParseCellError) Error() string {
	return fmt.Sprintf("unknown cell contents representation %q", e.token)
}

// ParseBoardError reports a malformed board serialization, wrapping the
// offending cell's error.
type ParseBoardError struct {
	coord Coord
	cause error
}

func NewParseBoardError(coord Coord, cause error) error {
	return &ParseBoardError{coord: coord, cause: cause}
}

func (e *ParseBoardError) Error() string {
	return fmt.Sprintf("bad cell at %v: %v", e.coord, e.cause)
}

func (e *ParseBoardError) Unwrap() error {
	return e.cause
}
