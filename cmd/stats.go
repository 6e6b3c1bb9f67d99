package cmd

import (
	"context"
	"fmt"
	"sort"

	"deck-reconciler/feature/stats"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// statsCmd aggregates catalog data over one decklist file.
var statsCmd = &cobra.Command{
	Use:   "stats <decklist.txt>",
	Short: "Compute cost-curve and color statistics for a decklist",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	RootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	text, err := readDecklist(args[0])
	if err != nil {
		return err
	}

	service := newDeckService(cfg, l)
	report, result, err := service.Stats(context.Background(), text)
	if err != nil {
		l.Warn("Stats computed with incomplete resolution", zap.Error(err))
	}

	fmt.Printf("cards=%d resolved=%d unresolved=%d lands=%d\n\n",
		report.Total, report.Resolved, report.Unresolved, report.Lands)

	fmt.Println("cost curve:")
	for bucket := 0; bucket <= stats.CurveCap; bucket++ {
		if count, ok := report.Curve[bucket]; ok {
			label := fmt.Sprintf("%d", bucket)
			if bucket == stats.CurveCap {
				label += "+"
			}
			fmt.Printf("  %3s  %d\n", label, count)
		}
	}

	fmt.Println("colors:")
	colors := make([]string, 0, len(report.Colors))
	for color := range report.Colors {
		colors = append(colors, color)
	}
	sort.Strings(colors)
	for _, color := range colors {
		fmt.Printf("  %3s  %d\n", color, report.Colors[color])
	}

	fmt.Printf("\nresolution: requested=%d resolved=%d tombstoned=%d errors=%d\n",
		result.Requested, result.Resolved, result.Tombstoned, result.Errors)
	return nil
}
