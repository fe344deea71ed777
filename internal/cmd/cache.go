package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the verdict cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show verdict cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, err := openStore(ctx)
		if err != nil {
			return fmt.Errorf("open cache store: %w", err)
		}
		defer db.Close() // nolint:errcheck // best-effort cleanup on CLI exit

		stats, err := db.Stats(ctx)
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetStyle(table.StyleRounded)
		t.AppendRow(table.Row{"Entries", stats.Entries})
		t.AppendRow(table.Row{"Expired", stats.Expired})
		t.AppendRow(table.Row{"Providers", stats.Providers})
		fmt.Println(t.Render())
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every cached verdict",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, err := openStore(ctx)
		if err != nil {
			return fmt.Errorf("open cache store: %w", err)
		}
		defer db.Close() // nolint:errcheck // best-effort cleanup on CLI exit

		if err := db.ClearCache(ctx); err != nil {
			return err
		}
		fmt.Println("Cache cleared.")
		return nil
	},
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete expired cached verdicts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		db, err := openStore(ctx)
		if err != nil {
			return fmt.Errorf("open cache store: %w", err)
		}
		defer db.Close() // nolint:errcheck // best-effort cleanup on CLI exit

		dropped, err := db.PruneExpired(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Pruned %d expired entries.\n", dropped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cachePruneCmd)
}
