// Package minefield implements the interactive board editor: a state
// machine over normalized pointer events that edits a board of cell
// contents and keeps per-cell mine probabilities fresh through the
// probability engine.
package minefield

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mineprobs/mineprobs/board"
	"github.com/mineprobs/mineprobs/engine"
	"github.com/mineprobs/mineprobs/util/collections"
)

// phase is the interaction state machine's single explicit state. The
// original interface tracked chord/suppression/double-click as separate
// booleans; collapsing them into one value keeps their combinations
// deliberate.
type phase int

const (
	// phaseIdle: no buttons down.
	phaseIdle phase = iota
	// phaseSinking: primary button held, cells visually sunken.
	phaseSinking
	// phaseSecondaryHeld: secondary button held after a flag-cycle.
	phaseSecondaryHeld
	// phaseChord: both buttons were down together; persists until every
	// button is released.
	phaseChord
	// phaseDoubleClick: a primary double-press was handled; further
	// input waits for release.
	phaseDoubleClick
	// phaseSuppressed: all pointer input ignored until every button is
	// released.
	phaseSuppressed
)

// Config carries the editor's settings.
//
// FlagCap bounds the flag count a cell can be cycled up to, and PerCell
// is passed to the engine as the maximum mines per cell. They are
// independent, but are conventionally kept equal.
type Config struct {
	XSize, YSize int
	Mines        int
	PerCell      int
	FlagCap      int

	// Engine computes probabilities after each committing edit; nil
	// disables refreshes.
	Engine engine.Engine

	// Snapshot to load the starting board from, overriding the sizes
	// and settings above.
	Snapshot *board.Snapshot

	// OnEdit is called after every board mutation with the affected
	// coordinate and its new contents.
	OnEdit func(coord board.Coord, contents board.CellContents)
}

// NewConfig returns the default 8x8 editor configuration.
func NewConfig() Config {
	return Config{
		XSize:   8,
		YSize:   8,
		Mines:   8,
		PerCell: 3,
		FlagCap: 3,
	}
}

// Editor owns a board and mutates it in response to pointer events. All
// methods must be called from a single goroutine; event dispatch never
// blocks except on the synchronous engine call.
type Editor struct {
	config Config
	board  *board.Board

	phase  phase
	coord  *board.Coord
	sunken collections.Set[board.Coord]

	probs *board.Grid[float64]
}

// NewEditor creates an editor with an all-Unclicked board, or with the
// board restored from config.Snapshot when one is given.
func NewEditor(config Config) (*Editor, error) {
	var b *board.Board
	if config.Snapshot != nil {
		restored, err := config.Snapshot.RestoreBoard()
		if err != nil {
			return nil, err
		}
		b = restored
		config.XSize, config.YSize = b.XSize(), b.YSize()
		if config.Snapshot.Mines > 0 {
			config.Mines = config.Snapshot.Mines
		}
		if config.Snapshot.PerCell > 0 {
			config.PerCell = config.Snapshot.PerCell
		}
	} else {
		if config.XSize <= 0 || config.YSize <= 0 {
			return nil, fmt.Errorf(
				"board dimensions must be positive, got %dx%d",
				config.XSize, config.YSize,
			)
		}
		b = board.NewBoard(config.XSize, config.YSize)
	}

	logrus.Infof("Initialising %dx%d minefield editor", b.XSize(), b.YSize())
	return &Editor{
		config: config,
		board:  b,
		sunken: make(collections.Set[board.Coord]),
	}, nil
}

// Board returns the editor's board. Callers must not mutate it.
func (ed *Editor) Board() *board.Board {
	return ed.board
}

func (ed *Editor) Config() Config {
	return ed.config
}

// IsSunken reports whether the cell is transiently shown pressed-down.
func (ed *Editor) IsSunken(coord board.Coord) bool {
	return ed.sunken.Contains(coord) && ed.board.At(coord) == board.Unclicked
}

// Probability returns the cell's mine probability from the last
// successful refresh. Probabilities are only exposed for Unclicked
// cells; ok is false otherwise, and before any refresh has succeeded.
func (ed *Editor) Probability(coord board.Coord) (prob float64, ok bool) {
	if ed.probs == nil || ed.board.At(coord) != board.Unclicked {
		return 0, false
	}
	return ed.probs.At(coord), true
}

// Snapshot captures the current board and settings.
func (ed *Editor) Snapshot() *board.Snapshot {
	return board.TakeSnapshot(ed.board, ed.config.Mines, ed.config.PerCell)
}

// Reset clears the board to all-Unclicked and restores the initial
// interaction state. Input stays suppressed until every button is
// released, since a reset can land mid-press.
func (ed *Editor) Reset() {
	logrus.Info("Resetting minefield editor")
	ed.board.Reset()
	ed.sunken.Clear()
	ed.probs = nil
	ed.coord = nil
	ed.phase = phaseSuppressed
}

// Dispatch normalizes and processes one pointer event.
func (ed *Editor) Dispatch(ev PointerEvent) {
	ev, ok := Normalize(ev)
	if !ok {
		return
	}

	switch ev.Type {
	case EventPress:
		ed.press(ev)
	case EventDoublePress:
		ed.doublePress(ev)
	case EventMove:
		ed.move(ev)
	case EventRelease:
		ed.release(ev)
	}
}

func (ed *Editor) press(ev PointerEvent) {
	// A press of the sole held button starts a fresh interaction; a
	// press outside the grid suppresses input until all buttons are
	// released again.
	if ev.Button == ev.Held {
		ed.phase = phaseIdle
		if ev.Coord == nil {
			ed.phase = phaseSuppressed
		}
	}

	if ed.phase == phaseDoubleClick {
		ed.phase = phaseSuppressed
		return
	}
	if ed.phase == phaseSuppressed {
		return
	}

	ed.coord = ev.Coord

	switch {
	case ev.Held == ButtonPrimary|ButtonSecondary:
		logrus.Debugf("Both mouse buttons down on cell %v", ev.Coord)
		ed.phase = phaseChord
	case ev.Button == ButtonPrimary:
		logrus.Debugf("Left mouse button down on cell %v", ev.Coord)
		ed.phase = phaseSinking
		ed.sink(*ev.Coord)
	case ev.Button == ButtonSecondary:
		logrus.Debugf("Right mouse button down on cell %v", ev.Coord)
		ed.phase = phaseSecondaryHeld
		ed.flagCycle(*ev.Coord)
	}
}

func (ed *Editor) doublePress(ev PointerEvent) {
	ed.coord = ev.Coord

	if ev.Button != ButtonPrimary || ed.phase == phaseChord || ev.Coord == nil {
		ed.press(ev)
		return
	}

	logrus.Debugf("Left mouse button double-click on cell %v", ev.Coord)
	ed.phase = phaseDoubleClick

	coord := *ev.Coord
	if ed.board.At(coord).Is(board.KindFlag) {
		ed.setCell(coord, board.Unclicked)
	} else {
		// Not a flag: treat as an ordinary single press.
		ed.phase = phaseSinking
		ed.sink(coord)
	}
}

func (ed *Editor) move(ev PointerEvent) {
	if ed.phase == phaseSuppressed || coordsEqual(ev.Coord, ed.coord) {
		return
	}

	ed.coord = ev.Coord

	if ed.phase == phaseDoubleClick {
		return
	}
	// Chords do not drag.
	if ev.Held == ButtonPrimary|ButtonSecondary || ed.phase == phaseChord {
		return
	}

	if ev.Held&ButtonPrimary != 0 {
		ed.raiseAll()
		if ev.Coord != nil {
			ed.sink(*ev.Coord)
		}
	}
	// A secondary-button drag has no edit policy; the coordinate is
	// recorded and nothing else happens.
}

func (ed *Editor) release(ev PointerEvent) {
	if ed.phase == phaseSuppressed {
		if ev.Held == 0 {
			ed.coord = nil
			ed.phase = phaseIdle
		}
		return
	}

	if ed.phase == phaseChord {
		// Wait for the final release.
	} else if ev.Button == ButtonPrimary && ed.phase != phaseDoubleClick {
		logrus.Debugf("Left mouse button release on cell %v", ed.coord)
		ed.raiseAll()
		if ed.coord != nil {
			ed.commit(*ed.coord)
		}
	}

	if ev.Held == 0 {
		logrus.Debug("No mouse buttons down, reset variables")
		ed.coord = nil
		ed.phase = phaseIdle
	}
}

// sink marks an Unclicked cell visually pressed-down. No board
// mutation happens until the press commits.
func (ed *Editor) sink(coord board.Coord) {
	if ed.board.At(coord) == board.Unclicked {
		ed.sunken.Add(coord)
	}
}

// raiseAll restores the raised display of every sunken cell that is
// still Unclicked and empties the sunken set.
func (ed *Editor) raiseAll() {
	ed.sunken.Clear()
}

// commit applies the primary-release edit: Unclicked becomes Num(0),
// numbers grow by one, everything else is left alone.
func (ed *Editor) commit(coord board.Coord) {
	contents := ed.board.At(coord)
	switch {
	case contents == board.Unclicked:
		ed.setCell(coord, board.Num(0))
	case contents.Is(board.KindNum):
		ed.setCell(coord, contents.Plus(1))
	default:
		return
	}
	ed.refreshProbs()
}

// flagCycle applies the secondary-press edit: Unclicked gains a flag,
// flags grow up to the cap, numbers clear back to Unclicked, everything
// else is left alone.
func (ed *Editor) flagCycle(coord board.Coord) {
	contents := ed.board.At(coord)
	switch {
	case contents == board.Unclicked:
		ed.setCell(coord, board.Flag(1))
	case contents.Is(board.KindFlag):
		if contents.Count() == ed.config.FlagCap {
			return
		}
		ed.setCell(coord, contents.Plus(1))
	case contents.Is(board.KindNum):
		ed.setCell(coord, board.Unclicked)
	default:
		return
	}
	ed.refreshProbs()
}

func (ed *Editor) setCell(coord board.Coord, contents board.CellContents) {
	ed.board.Set(coord, contents)
	if ed.config.OnEdit != nil {
		ed.config.OnEdit(coord, contents)
	}
}

// refreshProbs queries the engine with the current board. A failure is
// non-fatal: it is logged and the previous probabilities stay in place.
func (ed *Editor) refreshProbs() {
	if ed.config.Engine == nil {
		return
	}

	rows, err := ed.config.Engine.BoardProbs(
		ed.board.String(), ed.config.Mines, ed.config.PerCell)
	if err == nil {
		err = ed.storeProbs(rows)
	}
	if err != nil {
		logrus.Warnf("Failed to calculate probabilities: %v", err)
	}
}

func (ed *Editor) storeProbs(rows [][]float64) error {
	if len(rows) != ed.board.YSize() {
		return fmt.Errorf("engine returned %d rows, want %d", len(rows), ed.board.YSize())
	}
	probs := board.NewGrid[float64](ed.board.XSize(), ed.board.YSize())
	for y, row := range rows {
		if len(row) != ed.board.XSize() {
			return fmt.Errorf("engine returned %d cells in row %d, want %d",
				len(row), y, ed.board.XSize())
		}
		for x, prob := range row {
			if prob < 0 || prob > 1 {
				return fmt.Errorf("engine returned probability %v at (%d, %d)", prob, x, y)
			}
			probs.Set(board.Coord{X: x, Y: y}, prob)
		}
	}
	ed.probs = probs
	return nil
}

func coordsEqual(a, b *board.Coord) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
