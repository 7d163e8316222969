package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellConstructors(t *testing.T) {
	assert.Equal(t, 0, Num(0).Count())
	assert.Equal(t, 5, Num(5).Count())
	assert.Equal(t, KindNum, Num(5).Kind())

	assert.Equal(t, 1, Mine(1).Count())
	assert.Equal(t, 3, Flag(3).Count())
	assert.Equal(t, KindHitMine, HitMine(2).Kind())
	assert.Equal(t, KindWrongFlag, WrongFlag(1).Kind())
}

func TestCellInvalidCounts(t *testing.T) {
	assert.Panics(t, func() { Num(-1) })
	assert.Panics(t, func() { Mine(0) })
	assert.Panics(t, func() { HitMine(0) })
	assert.Panics(t, func() { Flag(-2) })
	assert.Panics(t, func() { WrongFlag(0) })

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.IsType(t, &InvalidCountError{}, err)
	}()
	Flag(0)
}

func TestCellZeroValueIsUnclicked(t *testing.T) {
	var contents CellContents
	assert.Equal(t, Unclicked, contents)
	assert.Equal(t, KindUnclicked, contents.Kind())
}

func TestCellArithmetic(t *testing.T) {
	assert.Equal(t, Num(5), Num(3).Plus(2))
	assert.Equal(t, Num(0), Num(1).Minus(1))
	assert.Equal(t, Flag(2), Flag(1).Plus(1))
	assert.Equal(t, Mine(1), Mine(2).Minus(1))
	assert.Equal(t, WrongFlag(3), WrongFlag(1).Plus(2))

	// Arithmetic on Unclicked is a contract violation.
	assert.Panics(t, func() { Unclicked.Plus(1) })
	// So is leaving the count domain.
	assert.Panics(t, func() { Flag(1).Minus(1) })
	assert.Panics(t, func() { Num(0).Minus(1) })
}

func TestCellArithmeticOperandError(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.IsType(t, &InvalidOperandError{}, err)
	}()
	Unclicked.Minus(2)
}

func TestCellEquality(t *testing.T) {
	assert.True(t, Num(3) == Num(3))
	assert.False(t, Num(3) == Num(4))
	assert.False(t, Flag(1) == WrongFlag(1))
	assert.False(t, Mine(1) == HitMine(1))

	// Structural equality makes cell contents usable as map keys.
	counts := map[CellContents]int{}
	counts[Num(3)]++
	counts[Num(3)]++
	counts[Flag(2)]++
	assert.Equal(t, 2, counts[Num(3)])
	assert.Equal(t, 1, counts[Flag(2)])
}

func TestCellMineTypes(t *testing.T) {
	assert.True(t, Mine(1).IsMineType())
	assert.True(t, HitMine(1).IsMineType())
	assert.True(t, Flag(1).IsMineType())
	assert.True(t, WrongFlag(1).IsMineType())
	assert.False(t, Num(1).IsMineType())
	assert.False(t, Unclicked.IsMineType())
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "#", Unclicked.String())
	assert.Equal(t, "0", Num(0).String())
	assert.Equal(t, "12", Num(12).String())
	assert.Equal(t, "M2", Mine(2).String())
	assert.Equal(t, "!1", HitMine(1).String())
	assert.Equal(t, "F3", Flag(3).String())
	assert.Equal(t, "X1", WrongFlag(1).String())
}

func TestKindFromTag(t *testing.T) {
	for tag, want := range map[byte]CellKind{
		'#': KindUnclicked,
		'M': KindMine,
		'!': KindHitMine,
		'F': KindFlag,
		'X': KindWrongFlag,
	} {
		kind, err := KindFromTag(tag)
		require.NoError(t, err)
		assert.Equal(t, want, kind)
	}

	_, err := KindFromTag('Z')
	require.Error(t, err)
	assert.IsType(t, &UnknownTagError{}, err)
}

func TestParseCellContents(t *testing.T) {
	for token, want := range map[string]CellContents{
		"#":  Unclicked,
		"0":  Num(0),
		"5":  Num(5),
		"18": Num(18),
		"M1": Mine(1),
		"!3": HitMine(3),
		"F2": Flag(2),
		"X1": WrongFlag(1),
	} {
		got, err := ParseCellContents(token)
		require.NoError(t, err, "token %q", token)
		assert.Equal(t, want, got, "token %q", token)
	}
}

func TestParseCellContentsErrors(t *testing.T) {
	for _, token := range []string{
		"", " ", "-1", "+5", "F0", "F10", "Fx", "#2", "Z2", "!", "M", "3F", "##",
	} {
		_, err := ParseCellContents(token)
		require.Error(t, err, "token %q", token)
		assert.IsType(t, &ParseCellError{}, err, "token %q", token)
	}
}

func TestCellStringParseRoundTrip(t *testing.T) {
	for _, contents := range []CellContents{
		Unclicked, Num(0), Num(7), Num(15), Mine(1), HitMine(2), Flag(3), WrongFlag(1),
	} {
		parsed, err := ParseCellContents(contents.String())
		require.NoError(t, err)
		assert.Equal(t, contents, parsed)
	}
}
