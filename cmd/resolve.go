package cmd

import (
	"context"
	"fmt"
	"sort"

	"deck-reconciler/feature/deck"

	"github.com/spf13/cobra"
)

// resolveCmd resolves the card names of one or more decklist files.
var resolveCmd = &cobra.Command{
	Use:   "resolve <decklist.txt> [more.txt...]",
	Short: "Resolve card names against the catalog",
	Long: `Parses the given decklist files and resolves the union of their
card names against the external catalog, filling the persistent cache.
Names with no match after all fallbacks are tombstoned and reported as
unresolved.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	RootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	nameSet := make(map[string]struct{})
	for _, path := range args {
		text, err := readDecklist(path)
		if err != nil {
			return err
		}
		for _, name := range deck.Parse(text).Names() {
			nameSet[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(nameSet))
	for name := range nameSet {
		names = append(names, name)
	}
	sort.Strings(names)

	service := newDeckService(cfg, l)
	result, records, err := service.Resolve(context.Background(), names)
	if err != nil {
		return err
	}

	for _, name := range names {
		record, ok := records[name]
		switch {
		case !ok || record == nil:
			fmt.Printf("unresolved  %s\n", name)
		default:
			fmt.Printf("resolved    %s -> %s [%s]\n", name, record.Name, record.SetName)
		}
	}
	fmt.Printf("\nrequested=%d resolved=%d tombstoned=%d errors=%d\n",
		result.Requested, result.Resolved, result.Tombstoned, result.Errors)
	return nil
}
