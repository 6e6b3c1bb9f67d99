package cmd

import (
	"fmt"

	"deck-reconciler/feature/deck"

	"github.com/spf13/cobra"
)

// diffCmd compares two decklist files.
var diffCmd = &cobra.Command{
	Use:   "diff <left.txt> <right.txt>",
	Short: "Diff two decklist files",
	Long: `Parses both decklist files and prints a per-card comparison:
equal quantities, cards only on one side, and differing quantities with
their signed deltas.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	RootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	_, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	leftText, err := readDecklist(args[0])
	if err != nil {
		return err
	}
	rightText, err := readDecklist(args[1])
	if err != nil {
		return err
	}

	left, right := deck.Parse(leftText), deck.Parse(rightText)
	report := deck.Diff(left, right)

	for _, row := range report.Rows {
		badge := ""
		if delta, ok := deck.Delta(row.Left, row.Right, deck.SideLeft); ok {
			badge = fmt.Sprintf(" (%+d)", delta)
		}
		fmt.Printf("%-12s %3d | %3d  %s%s\n", row.Status, row.Left, row.Right, row.Name, badge)
	}
	fmt.Printf("\nequal=%d only-left=%d only-right=%d differs=%d\n",
		report.Summary.Equal, report.Summary.OnlyLeft, report.Summary.OnlyRight, report.Summary.Differs)
	return nil
}
