package cmd

import (
	"context"
	"fmt"

	"deck-reconciler/core/storage"
	"deck-reconciler/feature/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// snapshotCmd is the parent command for snapshot operations.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Archive and list snapshots in object storage",
}

// snapshotCacheCmd archives the current catalog cache.
var snapshotCacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Archive the persisted catalog cache to object storage",
	RunE:  runSnapshotCache,
}

// snapshotListCmd lists archived snapshots.
var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived snapshots",
	RunE:  runSnapshotList,
}

func init() {
	snapshotCmd.AddCommand(snapshotCacheCmd)
	snapshotCmd.AddCommand(snapshotListCmd)
	RootCmd.AddCommand(snapshotCmd)
}

func runSnapshotCache(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	if !cfg.Storage.Enabled {
		return fmt.Errorf("snapshot storage is not enabled; set STORAGE_ENABLED=true")
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	ctx := context.Background()
	service := newDeckService(cfg, l)
	svc := snapshot.NewService(client, cfg.Storage.Bucket, l)
	object, err := svc.ArchiveCache(ctx, service.CacheSnapshot(ctx))
	if err != nil {
		return err
	}
	l.Info("Archived catalog cache", zap.String("object", object))
	fmt.Println(object)
	return nil
}

func runSnapshotList(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}
	defer l.Sync()

	if !cfg.Storage.Enabled {
		return fmt.Errorf("snapshot storage is not enabled; set STORAGE_ENABLED=true")
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	svc := snapshot.NewService(client, cfg.Storage.Bucket, l)
	objects, err := svc.List(context.Background(), "")
	if err != nil {
		return err
	}
	for _, object := range objects {
		fmt.Println(object)
	}
	return nil
}
