// flexcell-inspect loads a tree description from YAML, runs a layout pass,
// and prints the computed geometry as a table or a box sketch.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/flexcell/flexcell"
	"github.com/flexcell/flexcell/internal/treespec"
)

var (
	flagWidth  int
	flagHeight int
	flagDraw   bool
	flagStats  bool
)

var rootCmd = &cobra.Command{
	Use:   "flexcell-inspect <tree.yaml>",
	Short: "Compute and display the layout of a YAML tree description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := treespec.LoadFile(args[0])
		if err != nil {
			return err
		}

		width, height := viewport()
		eng := flexcell.NewEngine()
		result, err := eng.Layout(root, width, height)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if flagDraw {
			fmt.Fprint(out, sketch(root, result, width, height))
		} else {
			printTable(out, root, result, 0)
		}
		if flagStats {
			printStats(out, eng.Stats())
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "viewport width in cells (default: terminal width)")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "viewport height in cells (default: terminal height)")
	rootCmd.Flags().BoolVar(&flagDraw, "draw", false, "sketch the boxes instead of printing the rect table")
	rootCmd.Flags().BoolVar(&flagStats, "stats", false, "print engine counters after the pass")
}

// viewport returns the requested viewport, falling back to the terminal
// size and then to 80x24.
func viewport() (int, int) {
	width, height := flagWidth, flagHeight
	if width > 0 && height > 0 {
		return width, height
	}
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if width <= 0 {
			width = tw
		}
		if height <= 0 {
			height = th
		}
	}
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	return width, height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
