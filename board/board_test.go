package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardAllUnclicked(t *testing.T) {
	b := NewBoard(4, 3)
	assert.Equal(t, 4, b.XSize())
	assert.Equal(t, 3, b.YSize())
	for _, coord := range b.AllCoords() {
		assert.Equal(t, Unclicked, b.At(coord))
	}
}

func TestBoardReset(t *testing.T) {
	b := NewBoard(3, 3)
	b.Set(Coord{0, 0}, Num(2))
	b.Set(Coord{2, 1}, Flag(3))

	b.Reset()

	assert.Equal(t, 3, b.XSize())
	assert.Equal(t, 3, b.YSize())
	for _, coord := range b.AllCoords() {
		assert.Equal(t, Unclicked, b.At(coord))
	}
}

func TestBoardString(t *testing.T) {
	b := NewBoard(3, 2)
	b.Set(Coord{0, 0}, Num(0))
	b.Set(Coord{1, 0}, Flag(2))
	b.Set(Coord{2, 1}, Num(11))

	assert.Equal(t, " 0 F2  #\n #  # 11", b.String())
}

func TestBoardParseRoundTrip(t *testing.T) {
	b := NewBoard(4, 4)
	b.Set(Coord{0, 0}, Num(0))
	b.Set(Coord{1, 0}, Num(3))
	b.Set(Coord{2, 2}, Flag(1))
	b.Set(Coord{3, 3}, Flag(3))
	b.Set(Coord{0, 3}, Mine(2))
	b.Set(Coord{1, 3}, HitMine(1))
	b.Set(Coord{2, 3}, WrongFlag(1))

	parsed, err := ParseBoard(b.String())
	require.NoError(t, err)
	assert.True(t, b.Equal(parsed))
}

func TestBoardParseRejectsBadToken(t *testing.T) {
	_, err := ParseBoard("# # Z\n# # #")
	require.Error(t, err)
	assert.IsType(t, &ParseBoardError{}, err)

	var parseErr *ParseBoardError
	require.ErrorAs(t, err, &parseErr)
	assert.IsType(t, &ParseCellError{}, parseErr.Unwrap())
}

func TestBoardParseRejectsRaggedRows(t *testing.T) {
	_, err := ParseBoard("# # #\n# #")
	assert.Error(t, err)
}

func TestBoardParseRejectsEmpty(t *testing.T) {
	_, err := ParseBoard("")
	assert.Error(t, err)

	_, err = ParseBoard("\n  \n")
	assert.Error(t, err)
}

func TestBoardParseDimensions(t *testing.T) {
	b, err := ParseBoard("# 1 F2\n0 # M1")
	require.NoError(t, err)
	assert.Equal(t, 3, b.XSize())
	assert.Equal(t, 2, b.YSize())
	assert.Equal(t, Num(1), b.At(Coord{1, 0}))
	assert.Equal(t, Mine(1), b.At(Coord{2, 1}))
}

func TestBoardCopy(t *testing.T) {
	b := NewBoard(2, 2)
	b.Set(Coord{0, 0}, Num(1))

	dup := b.Copy()
	dup.Set(Coord{0, 0}, Flag(1))

	assert.Equal(t, Num(1), b.At(Coord{0, 0}))
	assert.Equal(t, Flag(1), dup.At(Coord{0, 0}))
	assert.False(t, b.Equal(dup))
}
