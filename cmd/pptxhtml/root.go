package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/pptxhtml/internal/config"
	"github.com/tsawler/pptxhtml/internal/log"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pptxhtml",
		Short: "Convert PowerPoint presentations to HTML",
		Long: `pptxhtml converts the text of PowerPoint presentations (.pptx, .pptm, .ppsx,
.potx and their macro-enabled variants) into HTML.

Each slide becomes one page element. Consecutive bullet or numbered
paragraphs are grouped into <ul> and <ol> lists, and run formatting is kept
as <strong>, <em> and styled spans.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: $XDG_CONFIG_HOME/pptxhtml/config.yaml)")

	cmd.AddCommand(NewConvertCmd())
	cmd.AddCommand(NewInspectCmd())
	cmd.AddCommand(NewCacheCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// loadConfig reads the configuration file named by --config, or the default
// file when the flag is empty.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		if path == "" {
			path = config.DefaultPath()
		}
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	return cfg, nil
}

// setupLogger builds the stderr logger from the configured level and the
// verbose flag.
func setupLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return log.New(cmd.ErrOrStderr(), level, getVerboseFlag(cmd)), nil
}
