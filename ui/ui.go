// Package ui renders the board editor in a pixelgl window and turns the
// window's mouse input into the editor's pointer events. Unclicked cells
// are coloured by mine probability after each refresh.
package ui

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/mineprobs/mineprobs/board"
	"github.com/mineprobs/mineprobs/minefield"
)

const (
	headerHeight   = 50
	minWindowWidth = 200

	doubleClickInterval = 400 * time.Millisecond
)

type Config struct {
	Editor minefield.Config

	// CellSize is the square cell size in pixels.
	CellSize int

	// Transparency of edit highlights when first displayed
	AnnotationBaseAlpha float64
	// Total time an edit highlight will be displayed
	AnnotationDuration time.Duration

	// Path to directory where a final snapshot of the board should be
	// saved on exit; empty disables saving.
	SavedSnapshotsDir string
}

func NewConfig() Config {
	return Config{
		Editor:              minefield.NewConfig(),
		CellSize:            32,
		AnnotationBaseAlpha: 0.5,
		AnnotationDuration:  200 * time.Millisecond,
	}
}

// annotation is a fading highlight over a freshly edited cell.
type annotation struct {
	coord      board.Coord
	contents   board.CellContents
	firstShown time.Time
}

// Run opens the editor window and blocks until it is closed. Must be
// called from within pixelgl.Run.
func Run(config Config) {
	var annotations deque.Deque

	editorConfig := config.Editor
	editorConfig.OnEdit = func(coord board.Coord, contents board.CellContents) {
		annotations.PushBack(annotation{
			coord:      coord,
			contents:   contents,
			firstShown: time.Now(),
		})
	}

	editor, err := minefield.NewEditor(editorConfig)
	if err != nil {
		logrus.Errorf("Failed to create editor: %v", err)
		return
	}

	b := editor.Board()
	cellSize := float64(config.CellSize)
	boardWidth := float64(b.XSize()) * cellSize
	boardHeight := float64(b.YSize()) * cellSize

	cfg := pixelgl.WindowConfig{
		Title: "mine-probs",
		Bounds: pixel.R(
			0, 0,
			math.Max(boardWidth, minWindowWidth),
			boardHeight+headerHeight,
		),
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		panic(err)
	}

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)

	topLeft := win.Bounds().Vertices()[1]
	topRight := win.Bounds().Max

	headerText := text.New(topLeft.Add(pixel.V(20, -30)), basicAtlas)
	headerText.Color = colornames.Black

	cellPosText := text.New(topRight.Add(pixel.V(-60, -30)), basicAtlas)
	cellPosText.Color = colornames.Darkcyan

	cellToScreen := func(coord board.Coord) pixel.Vec {
		return pixel.V(
			float64(coord.X)*cellSize,
			float64(b.YSize()-1-coord.Y)*cellSize,
		)
	}
	screenToCell := func(pos pixel.Vec) *board.Coord {
		if pos.X < 0 || pos.X >= boardWidth || pos.Y < 0 || pos.Y >= boardHeight {
			return nil
		}
		coord := board.Coord{
			X: int(pos.X / cellSize),
			Y: b.YSize() - 1 - int(pos.Y/cellSize),
		}
		if !b.Contains(coord) {
			return nil
		}
		return &coord
	}

	heldButtons := func() minefield.Buttons {
		var held minefield.Buttons
		if win.Pressed(pixelgl.MouseButtonLeft) {
			held |= minefield.ButtonPrimary
		}
		if win.Pressed(pixelgl.MouseButtonRight) {
			held |= minefield.ButtonSecondary
		}
		return held
	}

	var hoveredCell *board.Coord
	var lastPrimaryPress time.Time
	var lastPrimaryCoord *board.Coord

	var (
		frames = 0
		second = time.Tick(time.Second)
	)

	bgColor := colornames.Gainsboro
	for !win.Closed() {
		win.Update()
		win.Clear(bgColor)

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		if win.MouseInsideWindow() {
			hoveredCell = screenToCell(win.MousePosition())
		} else {
			hoveredCell = nil
		}

		if win.JustPressed(pixelgl.KeyR) {
			editor.Reset()
			annotations = deque.Deque{}
		}

		// Pointer events, in press/move/release order within the frame.
		if win.JustPressed(pixelgl.MouseButtonLeft) {
			eventType := minefield.EventPress
			if time.Since(lastPrimaryPress) < doubleClickInterval &&
				coordsEqual(hoveredCell, lastPrimaryCoord) {
				eventType = minefield.EventDoublePress
				lastPrimaryPress = time.Time{}
			} else {
				lastPrimaryPress = time.Now()
				lastPrimaryCoord = hoveredCell
			}
			editor.Dispatch(minefield.PointerEvent{
				Type:   eventType,
				Coord:  hoveredCell,
				Button: minefield.ButtonPrimary,
				Held:   heldButtons(),
			})
		}
		if win.JustPressed(pixelgl.MouseButtonRight) {
			editor.Dispatch(minefield.PointerEvent{
				Type:   minefield.EventPress,
				Coord:  hoveredCell,
				Button: minefield.ButtonSecondary,
				Held:   heldButtons(),
			})
		}
		if heldButtons() != 0 {
			editor.Dispatch(minefield.PointerEvent{
				Type:  minefield.EventMove,
				Coord: hoveredCell,
				Held:  heldButtons(),
			})
		}
		if win.JustReleased(pixelgl.MouseButtonLeft) {
			editor.Dispatch(minefield.PointerEvent{
				Type:   minefield.EventRelease,
				Button: minefield.ButtonPrimary,
				Held:   heldButtons(),
			})
		}
		if win.JustReleased(pixelgl.MouseButtonRight) {
			editor.Dispatch(minefield.PointerEvent{
				Type:   minefield.EventRelease,
				Button: minefield.ButtonSecondary,
				Held:   heldButtons(),
			})
		}

		headerText.Clear()
		fmt.Fprintf(headerText, "mines: %d  per-cell: %d  [R] reset",
			editor.Config().Mines, editor.Config().PerCell)
		headerText.Draw(win, pixel.IM)

		cellPosText.Clear()
		if hoveredCell != nil {
			fmt.Fprintf(cellPosText, "(%d, %d)", hoveredCell.X, hoveredCell.Y)
			cellPosText.Draw(win, pixel.IM)
		}

		imd := imdraw.New(nil)
		for _, coord := range b.AllCoords() {
			start := cellToScreen(coord)
			end := start.Add(pixel.V(cellSize, cellSize))

			imd.Color = cellColor(editor, coord)
			imd.Push(start.Add(pixel.V(1, 1)), end.Sub(pixel.V(1, 1)))
			imd.Rectangle(0)

			if prob, ok := editor.Probability(coord); ok {
				imd.Color = probColor(prob, editor.Config().Mines, b.NumCells())
				imd.Push(start.Add(pixel.V(4, 4)), end.Sub(pixel.V(4, 4)))
				imd.Rectangle(0)
			}
		}
		imd.Draw(win)

		// Fading highlights over recent edits, oldest first.
		if annotations.Len() > 0 {
			highlights := imdraw.New(nil)

			now := time.Now()
			for i := 0; i < annotations.Len(); i++ {
				el := annotations.At(i)
				if el == nil {
					continue
				}
				a := el.(annotation)

				timeShown := now.Sub(a.firstShown)
				if timeShown > config.AnnotationDuration {
					annotations.PopFront()
					continue
				}

				start := cellToScreen(a.coord)
				end := start.Add(pixel.V(cellSize, cellSize))

				progress := 1 - float64(timeShown)/float64(config.AnnotationDuration)
				alpha := config.AnnotationBaseAlpha * InOutCubic(progress)

				highlights.Color = annotationColor(a.contents).Mul(pixel.Alpha(alpha))
				highlights.Push(start, end)
				highlights.Rectangle(0)
			}

			highlights.Draw(win)
		}

		for _, coord := range b.AllCoords() {
			drawCellText(win, basicAtlas, editor, coord, cellToScreen(coord), cellSize)
		}
	}

	saveSnapshot(editor, config.SavedSnapshotsDir)
}

func coordsEqual(a, b *board.Coord) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func cellColor(editor *minefield.Editor, coord board.Coord) color.Color {
	contents := editor.Board().At(coord)
	switch {
	case contents == board.Unclicked:
		if editor.IsSunken(coord) {
			return colornames.Darkgray
		}
		return colornames.Silver
	case contents.Is(board.KindNum):
		return colornames.Whitesmoke
	case contents.Is(board.KindHitMine):
		return colornames.Mistyrose
	default:
		return colornames.Silver
	}
}

var numberColors = []color.RGBA{
	colornames.Blue,
	colornames.Green,
	colornames.Red,
	colornames.Navy,
	colornames.Maroon,
	colornames.Teal,
	colornames.Black,
	colornames.Gray,
}

func drawCellText(
	win *pixelgl.Window,
	atlas *text.Atlas,
	editor *minefield.Editor,
	coord board.Coord,
	bottomLeft pixel.Vec,
	cellSize float64,
) {
	contents := editor.Board().At(coord)

	var label string
	textColor := colornames.Black
	switch {
	case contents == board.Unclicked:
		return
	case contents.Is(board.KindNum):
		if contents.Count() == 0 {
			return
		}
		label = contents.String()
		if contents.Count() <= len(numberColors) {
			textColor = numberColors[contents.Count()-1]
		}
	case contents.Is(board.KindFlag), contents.Is(board.KindWrongFlag):
		label = contents.String()
		textColor = colornames.Crimson
	default:
		label = contents.String()
	}

	txt := text.New(pixel.ZV, atlas)
	txt.Color = textColor
	fmt.Fprint(txt, label)

	pos := bottomLeft.Add(pixel.V(
		(cellSize-txt.Bounds().W())/2,
		cellSize/2-4,
	))
	txt.Draw(win, pixel.IM.Moved(pos))
}

func annotationColor(contents board.CellContents) pixel.RGBA {
	switch {
	case contents.Is(board.KindNum):
		return pixel.RGB(1, 0, 0)
	case contents.Is(board.KindFlag):
		return pixel.RGB(0, 0, 1)
	default:
		return pixel.RGB(0, 1, 0)
	}
}

// probColor blends yellow to red above the board's mine density and
// toward green below it, matching how safe or dangerous the cell is
// relative to an average cell.
func probColor(prob float64, mines, numCells int) color.Color {
	density := float64(mines) / float64(numCells)
	if prob >= density {
		return blendColors((prob-density)/(1-density), pixel.RGB(1, 0, 0))
	}
	return blendColors((density-prob)/density, pixel.RGB(0, 1, 0))
}

func blendColors(ratio float64, high pixel.RGBA) pixel.RGBA {
	low := pixel.RGB(1, 1, 0.25)
	return pixel.RGBA{
		R: low.R + ratio*(high.R-low.R),
		G: low.G + ratio*(high.G-low.G),
		B: low.B + ratio*(high.B-low.B),
		A: 1,
	}
}

func InOutCubic(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	} else {
		t -= 2
		return 0.5 * (t*t*t + 2)
	}
}

func saveSnapshot(editor *minefield.Editor, dir string) {
	if dir == "" {
		return
	}

	stat, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0777); err != nil {
				logrus.Errorf("Failed to create snapshot directory: %v", err)
				return
			}
		} else {
			logrus.Errorf("Failed to stat snapshot directory: %v", err)
			return
		}
	} else if !stat.Mode().IsDir() {
		logrus.Errorf("%s is not a directory; cannot save snapshots to it", dir)
		return
	}

	filename := time.Now().Format("20060102_150405") + ".yaml"
	path := filepath.Join(dir, filename)

	file, err := os.Create(path)
	if err != nil {
		logrus.Errorf("Failed to create snapshot file: %v", err)
		return
	}
	defer file.Close()

	if _, err := file.WriteString(editor.Snapshot().Serialize()); err != nil {
		logrus.Errorf("Failed to write snapshot: %v", err)
		return
	}
	logrus.Infof("Saved board snapshot to %s", path)
}
