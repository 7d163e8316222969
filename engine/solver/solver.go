// Package solver provides the built-in probability engine: an exact
// constraint solver over the revealed numbers, backtracking through the
// possible mine placements of each independent boundary segment.
package solver

import (
	"fmt"

	"github.com/mineprobs/mineprobs/board"
)

// DefaultMaxSegmentCells bounds the size of a segment the solver will
// enumerate. Segments above the bound fall back to the background mine
// density.
const DefaultMaxSegmentCells = 12

// Solver implements engine.Engine by exact enumeration of boundary
// segments.
type Solver struct {
	MaxSegmentCells int
}

func New() *Solver {
	return &Solver{MaxSegmentCells: DefaultMaxSegmentCells}
}

// BoardProbs parses the serialized board and returns, for every cell,
// the probability that it holds at least one mine. Unclicked cells
// adjacent to revealed numbers are solved exactly per segment; remaining
// unclicked cells get the residual mine density; numbers get 0 and
// mine-type cells 1.
func (s *Solver) BoardProbs(boardText string, mines, perCell int) ([][]float64, error) {
	if mines <= 0 {
		return nil, fmt.Errorf("mines must be positive, got %d", mines)
	}
	if perCell <= 0 {
		return nil, fmt.Errorf("perCell must be positive, got %d", perCell)
	}

	b, err := board.ParseBoard(boardText)
	if err != nil {
		return nil, err
	}

	probs := make([][]float64, b.YSize())
	for y := range probs {
		probs[y] = make([]float64, b.XSize())
	}

	knownMines := 0
	var unknowns []board.Coord
	for _, coord := range b.AllCoords() {
		contents := b.At(coord)
		switch {
		case contents.IsMineType():
			knownMines += contents.Count()
			probs[coord.Y][coord.X] = 1
		case contents == board.Unclicked:
			unknowns = append(unknowns, coord)
		}
	}

	rules, err := collectRules(b)
	if err != nil {
		return nil, err
	}

	segments := splitSegments(rules)

	constrained := make(map[board.Coord]struct{})
	expectedSegmentMines := 0.0
	for _, seg := range segments {
		for _, coord := range seg.cells {
			constrained[coord] = struct{}{}
		}
		if len(seg.cells) > s.maxSegmentCells() {
			continue
		}
		expected, err := seg.solve(probs, perCell)
		if err != nil {
			return nil, err
		}
		expectedSegmentMines += expected
	}

	// Residual density over the cells no rule touches. Oversized
	// segments fall back to this as well.
	numBackground := 0
	for _, coord := range unknowns {
		if _, ok := constrained[coord]; !ok {
			numBackground++
		}
	}
	if numBackground > 0 {
		density := (float64(mines) - float64(knownMines) - expectedSegmentMines) /
			float64(numBackground)
		density = clamp01(density)
		for _, coord := range unknowns {
			if _, ok := constrained[coord]; !ok {
				probs[coord.Y][coord.X] = density
			}
		}
	}
	for _, seg := range segments {
		if len(seg.cells) > s.maxSegmentCells() {
			for _, coord := range seg.cells {
				probs[coord.Y][coord.X] = clamp01(
					(float64(mines) - float64(knownMines)) / float64(len(unknowns)))
			}
		}
	}

	return probs, nil
}

func (s *Solver) maxSegmentCells() int {
	if s.MaxSegmentCells > 0 {
		return s.MaxSegmentCells
	}
	return DefaultMaxSegmentCells
}

// rule constrains the total mine count across a set of unclicked cells,
// derived from one revealed number with neighboring flag counts already
// subtracted.
type rule struct {
	origin board.Coord
	cells  []board.Coord
	mines  int
}

func collectRules(b *board.Board) ([]rule, error) {
	var rules []rule
	for _, coord := range b.AllCoords() {
		contents := b.At(coord)
		if !contents.Is(board.KindNum) {
			continue
		}

		need := contents.Count()
		var cells []board.Coord
		for _, nbr := range b.Neighbors(coord) {
			nbrContents := b.At(nbr)
			if nbrContents.IsMineType() {
				need -= nbrContents.Count()
			} else if nbrContents == board.Unclicked {
				cells = append(cells, nbr)
			}
		}

		if need < 0 {
			return nil, fmt.Errorf(
				"inconsistent board: cell %v needs %d mines", coord, need)
		}
		if len(cells) == 0 {
			if need != 0 {
				return nil, fmt.Errorf(
					"inconsistent board: cell %v needs %d mines with no unclicked neighbors",
					coord, need)
			}
			continue
		}
		rules = append(rules, rule{origin: coord, cells: cells, mines: need})
	}
	return rules, nil
}

// segment is a connected component of rules: rules sharing any unclicked
// cell solve together, independent segments solve apart.
type segment struct {
	cells []board.Coord
	rules []rule
}

func splitSegments(rules []rule) []*segment {
	parent := make(map[board.Coord]board.Coord)

	var find func(board.Coord) board.Coord
	find = func(c board.Coord) board.Coord {
		if parent[c] != c {
			parent[c] = find(parent[c])
		}
		return parent[c]
	}
	union := func(a, b board.Coord) {
		parent[find(a)] = find(b)
	}

	for _, r := range rules {
		for _, c := range r.cells {
			if _, ok := parent[c]; !ok {
				parent[c] = c
			}
			union(r.cells[0], c)
		}
	}

	segmentsByRoot := make(map[board.Coord]*segment)
	var segments []*segment
	for c := range parent {
		root := find(c)
		seg, ok := segmentsByRoot[root]
		if !ok {
			seg = &segment{}
			segmentsByRoot[root] = seg
			segments = append(segments, seg)
		}
		seg.cells = append(seg.cells, c)
	}
	for _, r := range rules {
		segmentsByRoot[find(r.cells[0])].rules = append(
			segmentsByRoot[find(r.cells[0])].rules, r)
	}
	return segments
}

// solve enumerates all mine placements satisfying the segment's rules,
// each cell holding 0 to perCell mines, and writes P(cell holds a mine)
// into probs. Returns the expected total mine count of the segment.
func (seg *segment) solve(probs [][]float64, perCell int) (float64, error) {
	index := make(map[board.Coord]int, len(seg.cells))
	for i, coord := range seg.cells {
		index[coord] = i
	}

	type localRule struct {
		cells []int
		mines int
	}
	localRules := make([]localRule, len(seg.rules))
	for i, r := range seg.rules {
		lr := localRule{mines: r.mines}
		for _, c := range r.cells {
			lr.cells = append(lr.cells, index[c])
		}
		localRules[i] = lr
	}

	config := make([]int, len(seg.cells))
	minedSolutions := make([]int, len(seg.cells))
	numSolutions := 0
	totalMines := 0

	valid := func(assigned int, final bool) bool {
		for _, r := range localRules {
			sum, unassigned := 0, 0
			for _, idx := range r.cells {
				if idx < assigned {
					sum += config[idx]
				} else {
					unassigned++
				}
			}
			if sum > r.mines {
				return false
			}
			if final && sum != r.mines {
				return false
			}
			if sum+unassigned*perCell < r.mines {
				return false
			}
		}
		return true
	}

	var backtrack func(int)
	backtrack = func(idx int) {
		if idx == len(config) {
			if valid(idx, true) {
				numSolutions++
				for i, count := range config {
					if count > 0 {
						minedSolutions[i]++
					}
					totalMines += count
				}
			}
			return
		}
		if !valid(idx, false) {
			return
		}
		for count := 0; count <= perCell; count++ {
			config[idx] = count
			backtrack(idx + 1)
		}
		config[idx] = 0
	}
	backtrack(0)

	if numSolutions == 0 {
		return 0, fmt.Errorf("no consistent mine placement for segment of %d cells", len(seg.cells))
	}

	for i, coord := range seg.cells {
		probs[coord.Y][coord.X] = float64(minedSolutions[i]) / float64(numSolutions)
	}
	return float64(totalMines) / float64(numSolutions), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
