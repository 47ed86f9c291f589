package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tsawler/pptxhtml/internal/outline"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print a Markdown outline of a presentation",
		Long: `Inspect builds the presentation model and prints its metadata, a table of
slides with their titles and layouts, and the text shapes of each slide.`,
		Args: cobra.ExactArgs(1),
		RunE: runInspectCmd,
	}
}

func runInspectCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	logger, err := setupLogger(cmd, cfg)
	if err != nil {
		return err
	}

	path := args[0]
	data, err := readPresentation(path)
	if err != nil {
		return err
	}
	conv, err := newConverter(cfg, data, logger)
	if err != nil {
		return err
	}
	pres, err := conv.Presentation(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return outline.Write(cmd.OutOrStdout(), pres, filepath.Base(path))
}
