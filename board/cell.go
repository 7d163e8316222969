package board

import (
	"strconv"
)

// CellKind discriminates the closed set of cell contents variants.
type CellKind int

const (
	KindUnclicked CellKind = iota
	KindNum
	KindMine
	KindHitMine
	KindFlag
	KindWrongFlag
)

var cellKinds = []CellKind{
	KindUnclicked,
	KindNum,
	KindMine,
	KindHitMine,
	KindFlag,
	KindWrongFlag,
}

// Tag returns the kind's canonical single-character representation.
// KindNum has no tag: numbers render as bare digits.
func (k CellKind) Tag() string {
	switch k {
	case KindUnclicked:
		return "#"
	case KindNum:
		return ""
	case KindMine:
		return "M"
	case KindHitMine:
		return "!"
	case KindFlag:
		return "F"
	case KindWrongFlag:
		return "X"
	}
	return "?"
}

// IsMineType reports whether the kind's count denotes a multiplicity of
// mines or flags.
func (k CellKind) IsMineType() bool {
	switch k {
	case KindMine, KindHitMine, KindFlag, KindWrongFlag:
		return true
	}
	return false
}

// KindFromTag returns the kind whose tag is the given character, or a
// *UnknownTagError if the character matches no kind.
func KindFromTag(tag byte) (CellKind, error) {
	for _, kind := range cellKinds {
		if t := kind.Tag(); len(t) == 1 && t[0] == tag {
			return kind, nil
		}
	}
	return 0, NewUnknownTagError(tag)
}

// CellContents is the contents of a single board cell: one of a closed
// set of variants, the countable ones carrying a count. Values are
// comparable; two instances are equal iff they have the same kind and
// count, so CellContents works directly as a map key.
type CellContents struct {
	kind CellKind
	num  int
}

// Unclicked is the canonical unclicked cell value. It is the zero value
// of CellContents, so a freshly constructed board grid is all-Unclicked.
var Unclicked = CellContents{kind: KindUnclicked}

func newCellContents(kind CellKind, num int) CellContents {
	if kind == KindNum && num < 0 || kind.IsMineType() && num < 1 {
		panic(NewInvalidCountError(kind, num))
	}
	return CellContents{kind: kind, num: num}
}

// Num returns number cell contents with the given revealed count.
// Panics with *InvalidCountError if n is negative.
func Num(n int) CellContents {
	return newCellContents(KindNum, n)
}

// Mine returns mine cell contents with the given multiplicity.
// Panics with *InvalidCountError if n is less than 1, as do the other
// mine-type constructors.
func Mine(n int) CellContents {
	return newCellContents(KindMine, n)
}

// HitMine returns hit-mine cell contents with the given multiplicity.
func HitMine(n int) CellContents {
	return newCellContents(KindHitMine, n)
}

// Flag returns flag cell contents with the given multiplicity.
func Flag(n int) CellContents {
	return newCellContents(KindFlag, n)
}

// WrongFlag returns wrong-flag cell contents with the given
// multiplicity. It counts as a flag for arithmetic purposes but is a
// distinct variant for display and parsing.
func WrongFlag(n int) CellContents {
	return newCellContents(KindWrongFlag, n)
}

func (c CellContents) Kind() CellKind {
	return c.kind
}

// Count returns the variant's count. Zero for Unclicked.
func (c CellContents) Count() int {
	return c.num
}

// Is reports whether the contents are of the given kind.
func (c CellContents) Is(kind CellKind) bool {
	return c.kind == kind
}

// IsMineType reports whether the contents are a mine-type variant.
func (c CellContents) IsMineType() bool {
	return c.kind.IsMineType()
}

// Plus returns the same variant with the count increased by k. Panics
// with *InvalidOperandError on Unclicked, and with *InvalidCountError if
// the resulting count leaves the variant's domain.
func (c CellContents) Plus(k int) CellContents {
	if c.kind != KindNum && !c.kind.IsMineType() {
		panic(NewInvalidOperandError(c))
	}
	return newCellContents(c.kind, c.num+k)
}

// Minus returns the same variant with the count decreased by k, under
// the same contract as Plus.
func (c CellContents) Minus(k int) CellContents {
	return c.Plus(-k)
}

// String renders the contents in their textual form: the tag alone for
// Unclicked, bare digits for numbers, and <tag><count> for mine-type
// variants.
func (c CellContents) String() string {
	if c.kind == KindNum {
		return strconv.Itoa(c.num)
	}
	if c.kind.IsMineType() {
		return c.kind.Tag() + strconv.Itoa(c.num)
	}
	return c.kind.Tag()
}

// ParseCellContents parses a textual cell representation: a bare
// non-negative integer is a number, a two-character <tag><digit> string
// is a mine-type variant with that count, and the Unclicked tag alone is
// Unclicked. Anything else fails with *ParseCellError.
func ParseCellContents(s string) (CellContents, error) {
	if isDigits(s) {
		n, err := strconv.Atoi(s)
		if err == nil {
			return Num(n), nil
		}
	}
	if len(s) == 2 && s[1] >= '1' && s[1] <= '9' {
		kind, err := KindFromTag(s[0])
		if err == nil && kind.IsMineType() {
			return newCellContents(kind, int(s[1]-'0')), nil
		}
	}
	if s == Unclicked.String() {
		return Unclicked, nil
	}
	return CellContents{}, NewParseCellError(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
