package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"deck-reconciler/core/storage"
	"deck-reconciler/feature/deck"
	"deck-reconciler/feature/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	mergeChoose  []string
	mergeSelect  []string
	mergeExport  string
	mergeArchive bool
)

// mergeCmd merges two decklist files into one.
var mergeCmd = &cobra.Command{
	Use:   "merge <left.txt> <right.txt>",
	Short: "Merge two decklist files into one",
	Long: `Merges both decklists into a single list. Cards present on both
sides default to the left quantity when equal and to the sum when they
differ; override per card with --choose. Cards exclusive to one side are
skipped unless opted in with --select.

Examples:
  # Default merge
  merge a.txt b.txt

  # Take the right-hand quantity for one card
  merge a.txt b.txt --choose "Lightning Bolt=right"

  # Opt an exclusive card into the merge and write the export
  merge a.txt b.txt --select "Monastery Swiftspear" --export merged.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringArrayVar(&mergeChoose, "choose", nil, "Per-card source override, formatted name=left|right|both (repeatable)")
	mergeCmd.Flags().StringArrayVar(&mergeSelect, "select", nil, "Exclusive-side card to opt into the merge (repeatable)")
	mergeCmd.Flags().StringVar(&mergeExport, "export", "", "Write the plain-text export to this file")
	mergeCmd.Flags().BoolVar(&mergeArchive, "archive", false, "Archive the export to snapshot storage")
	RootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
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

	overrides := make(map[string]deck.Choice, len(mergeChoose))
	for _, raw := range mergeChoose {
		name, side, found := strings.Cut(raw, "=")
		if !found {
			return fmt.Errorf("invalid --choose value %q, expected name=left|right|both", raw)
		}
		switch deck.Choice(side) {
		case deck.ChoiceLeft, deck.ChoiceRight, deck.ChoiceBoth:
			overrides[name] = deck.Choice(side)
		default:
			return fmt.Errorf("invalid --choose side %q, expected left, right or both", side)
		}
	}

	selected := make(map[string]bool, len(mergeSelect))
	for _, name := range mergeSelect {
		selected[name] = true
	}

	ctx := context.Background()
	service := newDeckService(cfg, l)
	result := service.Merge(ctx, leftText, rightText, overrides, selected)

	fmt.Println(result.Export)

	if mergeExport != "" {
		if err := os.WriteFile(mergeExport, []byte(result.Export), 0o644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		l.Info("Wrote merge export", zap.String("path", mergeExport))
	}

	if mergeArchive {
		if !cfg.Storage.Enabled {
			return fmt.Errorf("snapshot storage is not enabled; set STORAGE_ENABLED=true")
		}
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		svc := snapshot.NewService(client, cfg.Storage.Bucket, l)
		object, err := svc.ArchiveExport(ctx, strings.TrimSuffix(args[0], ".txt"), result.Export)
		if err != nil {
			return err
		}
		l.Info("Archived merge export", zap.String("object", object))
	}
	return nil
}
