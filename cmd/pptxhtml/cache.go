package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsawler/pptxhtml/internal/cache"
)

// NewCacheCmd creates the cache command and its subcommands.
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the conversion cache",
	}
	cmd.AddCommand(NewCachePurgeCmd())
	return cmd
}

// NewCachePurgeCmd creates the cache purge command.
func NewCachePurgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove cached conversions",
		Long: `Purge removes cached conversions from the cache directory. With
--older-than only entries created before that age are removed.

Examples:
  # Remove everything
  pptxhtml cache purge

  # Keep the last week
  pptxhtml cache purge --older-than 168h`,
		Args: cobra.NoArgs,
		RunE: runCachePurgeCmd,
	}
	cmd.Flags().Duration("older-than", 0, "Only remove entries older than this age")
	return cmd
}

func runCachePurgeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	age, err := cmd.Flags().GetDuration("older-than")
	if err != nil {
		return err
	}
	if age < 0 {
		return fmt.Errorf("--older-than must not be negative")
	}

	store, err := cache.Open(cfg.CacheDir)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Purge(cmd.Context(), time.Now().Add(-age))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached conversions from %s\n", n, store.Path())
	return nil
}
