// Package engine defines the boundary to the probability engine the
// editor queries after each committed edit. The editor treats the engine
// as an opaque synchronous call and recovers from any failure by keeping
// the previous probabilities.
package engine

// Engine computes per-cell mine probabilities for a serialized board.
//
// The board text is the editor's row-major serialization; mines is the
// total mine count and perCell the maximum mines a single cell may hold,
// both positive. The result has one row per board row and one value per
// cell, each in [0, 1].
type Engine interface {
	BoardProbs(boardText string, mines, perCell int) ([][]float64, error)
}

// Func adapts a plain function to the Engine interface.
type Func func(boardText string, mines, perCell int) ([][]float64, error)

func (f Func) BoardProbs(boardText string, mines, perCell int) ([][]float64, error) {
	return f(boardText, mines, perCell)
}
