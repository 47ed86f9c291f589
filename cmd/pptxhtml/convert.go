package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tsawler/pptxhtml"
	"github.com/tsawler/pptxhtml/format"
	"github.com/tsawler/pptxhtml/internal/cache"
	"github.com/tsawler/pptxhtml/internal/config"
)

// NewConvertCmd creates the convert command.
func NewConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a presentation to HTML",
		Long: `Convert writes the HTML of every slide, in presentation order, to stdout
or to the file given with --output.

Converted output is cached by file content and options. Use --no-cache to
always convert.

Examples:
  # Convert to stdout
  pptxhtml convert deck.pptx

  # Wrap slides in <section> elements and write to a file
  pptxhtml convert --page-tag section -o deck.html deck.pptx

  # Template-style delimiters: [div]...[/div]
  pptxhtml convert --left-delim '[' --right-delim ']' deck.pptx

Configuration file example:
  page_tag: section
  explicit_left_align: true
  default_bullet_style: none
  concurrency: 4
  cache: true
  log_level: warn`,
		Args: cobra.ExactArgs(1),
		RunE: runConvertCmd,
	}

	cmd.Flags().StringP("output", "o", "", "Write HTML to the specified file path")
	cmd.Flags().String("page-tag", config.DefaultPageTag, "Element wrapping each slide")
	cmd.Flags().String("left-delim", config.DefaultLeftDelim, "Left delimiter of the page tag")
	cmd.Flags().String("right-delim", config.DefaultRightDelim, "Right delimiter of the page tag")
	cmd.Flags().Bool("explicit-left-align", false, `Write align="left" on left-aligned paragraphs`)
	cmd.Flags().Bool("no-cache", false, "Do not read or write the conversion cache")
	cmd.Flags().IntP("jobs", "j", 0, "Number of slides built in parallel (default from config)")

	return cmd
}

// runConvertCmd executes the convert command.
func runConvertCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyConvertFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger, err := setupLogger(cmd, cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	html, err := convertFile(ctx, cfg, args[0], logger)
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), output, html)
}

// applyConvertFlags overrides configuration values with flags the user set.
func applyConvertFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("page-tag") {
		if cfg.PageTag, err = flags.GetString("page-tag"); err != nil {
			return err
		}
	}
	if flags.Changed("left-delim") {
		if cfg.LeftDelim, err = flags.GetString("left-delim"); err != nil {
			return err
		}
	}
	if flags.Changed("right-delim") {
		if cfg.RightDelim, err = flags.GetString("right-delim"); err != nil {
			return err
		}
	}
	if flags.Changed("explicit-left-align") {
		if cfg.ExplicitLeftAlign, err = flags.GetBool("explicit-left-align"); err != nil {
			return err
		}
	}
	if flags.Changed("jobs") {
		if cfg.Concurrency, err = flags.GetInt("jobs"); err != nil {
			return err
		}
	}
	noCache, err := flags.GetBool("no-cache")
	if err != nil {
		return err
	}
	if noCache {
		cfg.Cache = false
	}
	return nil
}

// newConverter configures a converter over data from cfg.
func newConverter(cfg *config.Config, data []byte, logger *slog.Logger) (*pptxhtml.Converter, error) {
	style, err := cfg.BulletStyle()
	if err != nil {
		return nil, err
	}
	c := pptxhtml.FromBytes(data).
		PageTag(cfg.PageTag).
		Delimiters(cfg.LeftDelim, cfg.RightDelim).
		Concurrency(cfg.Concurrency).
		DefaultBulletStyle(style).
		Logger(logger)
	if cfg.ExplicitLeftAlign {
		c = c.ExplicitLeftAlign()
	}
	return c, nil
}

// readPresentation reads path and checks that it holds a presentation.
// Files with an unrecognised extension are identified by content.
func readPresentation(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, err
	}
	if format.Detect(path).Supported() {
		return data, nil
	}
	f, err := format.DetectFromReader(bytes.NewReader(data), int64(len(data)))
	if err != nil || !f.Supported() {
		return nil, fmt.Errorf("%w: %s", pptxhtml.ErrUnsupportedFormat, path)
	}
	return data, nil
}

// convertFile converts path, serving and filling the cache when enabled.
// Cache failures are logged and never fail the conversion.
func convertFile(ctx context.Context, cfg *config.Config, path string, logger *slog.Logger) (string, error) {
	data, err := readPresentation(path)
	if err != nil {
		return "", err
	}
	conv, err := newConverter(cfg, data, logger)
	if err != nil {
		return "", err
	}

	var store *cache.Store
	key := cache.Key(data, conv.Fingerprint())
	if cfg.Cache {
		store, err = cache.Open(cfg.CacheDir)
		if err != nil {
			logger.Warn("cache unavailable", "dir", cfg.CacheDir, "error", err)
		} else {
			defer store.Close()
			if e, ok, err := store.Get(ctx, key); err != nil {
				logger.Warn("cache read failed", "error", err)
			} else if ok {
				logger.Debug("cache hit", "file", path, "slides", e.Slides)
				return e.HTML, nil
			}
		}
	}

	pres, err := conv.Presentation(ctx)
	if err != nil {
		return "", fmt.Errorf("converting %s: %w", path, err)
	}
	html := conv.Renderer().Presentation(pres)

	if store != nil {
		if err := store.Put(ctx, key, html, pres.SlideCount()); err != nil {
			logger.Warn("cache write failed", "error", err)
		}
	}
	return html, nil
}

// writeOutput writes html to path, or to w when path is empty.
func writeOutput(w io.Writer, path, html string) error {
	if path == "" {
		_, err := io.WriteString(w, html)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return os.WriteFile(path, []byte(html), 0o600)
}
