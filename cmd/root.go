package cmd

import (
	"fmt"
	"os"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mineprobs/mineprobs/board"
	"github.com/mineprobs/mineprobs/engine/solver"
	"github.com/mineprobs/mineprobs/ui"
)

var uiConfig = ui.NewConfig()
var snapshotPath = ""
var verbose = false

var rootCmd = &cobra.Command{
	Use:   "mineprobs",
	Short: "Edit a minesweeper board and see per-cell mine probabilities",
	Long: `mineprobs is an interactive minesweeper board editor. Left-click
grows numbers, right-click cycles flags, and a double left-click clears a
flagged cell. After every edit the unclicked cells are coloured by their
mine probability.

Run with no arguments for an 8x8 board
	mineprobs

Customize the board and probability settings
	mineprobs -x 16 -y 16 -m 40 --per-cell 2
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		if uiConfig.Editor.XSize <= 0 || uiConfig.Editor.YSize <= 0 {
			return fmt.Errorf(
				"board dimensions must be positive, got %dx%d",
				uiConfig.Editor.XSize, uiConfig.Editor.YSize,
			)
		}

		if snapshotPath != "" {
			raw, err := os.ReadFile(snapshotPath)
			if err != nil {
				return fmt.Errorf("reading snapshot: %w", err)
			}
			snapshot, err := board.LoadSnapshot(string(raw))
			if err != nil {
				return fmt.Errorf("loading snapshot: %w", err)
			}
			uiConfig.Editor.Snapshot = snapshot
		}

		uiConfig.Editor.Engine = solver.New()

		pixelgl.Run(func() {
			ui.Run(uiConfig)
		})
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVarP(&uiConfig.Editor.XSize, "width", "x", uiConfig.Editor.XSize, "Width of the board, in cells")
	rootCmd.Flags().IntVarP(&uiConfig.Editor.YSize, "height", "y", uiConfig.Editor.YSize, "Height of the board, in cells")
	rootCmd.Flags().IntVarP(&uiConfig.Editor.Mines, "mines", "m", uiConfig.Editor.Mines, "Total number of mines the probability engine assumes")
	rootCmd.Flags().IntVar(&uiConfig.Editor.PerCell, "per-cell", uiConfig.Editor.PerCell, "Maximum number of mines a single cell may hold")
	rootCmd.Flags().IntVar(&uiConfig.Editor.FlagCap, "flag-cap", uiConfig.Editor.FlagCap, `Highest flag count right-click cycles up to.
Conventionally kept equal to --per-cell`)
	rootCmd.Flags().IntVar(&uiConfig.CellSize, "cell-size", uiConfig.CellSize, "Cell size in pixels")
	rootCmd.Flags().StringVarP(&snapshotPath, "snapshot", "s", "", "Board snapshot file to start from")
	rootCmd.Flags().StringVar(&uiConfig.SavedSnapshotsDir, "save-dir", "", "Directory to save a board snapshot to on exit")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log pointer handling at debug level")
}
