package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feldges/data-extractor/internal/config"
	"github.com/feldges/data-extractor/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List persisted companies",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	snapshots, err := openSnapshotStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer snapshots.Close()

	entries, err := snapshots.List(ctx)
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Printf("%s\t%s\n", e.ID, e.Name)
	}
	return nil
}

// openSnapshotStore picks PostgreSQL when a database URL is configured,
// filesystem snapshots otherwise.
func openSnapshotStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.DatabaseURL != "" {
		return store.ConnectPG(ctx, cfg.DatabaseURL)
	}
	return store.NewFSStore(cfg.SnapshotDir()), nil
}
