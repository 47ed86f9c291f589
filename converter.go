package pptxhtml

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tsawler/pptxhtml/format"
	"github.com/tsawler/pptxhtml/model"
	"github.com/tsawler/pptxhtml/opc"
	"github.com/tsawler/pptxhtml/pptx"
	"github.com/tsawler/pptxhtml/render"
)

// Converter provides a fluent interface for converting presentations.
// Each configuration method returns a new Converter instance, making it
// safe for concurrent use and allowing method chaining.
type Converter struct {
	// Source
	filename string
	format   format.Format
	pkg      opc.Package // set by FromPackage; never closed here

	// Configuration
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Converter with a copy of options.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename: c.filename,
		format:   c.format,
		pkg:      c.pkg,
		options:  c.options.clone(),
		err:      c.err,
	}
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// PageTag sets the element name that wraps each slide. The default is div.
//
// Example:
//
//	html, err := pptxhtml.Open("deck.pptx").PageTag("section").HTML(ctx)
func (c *Converter) PageTag(tag string) *Converter {
	nc := c.clone()
	if tag == "" && nc.err == nil {
		nc.err = fmt.Errorf("page tag must not be empty")
	}
	nc.options.render.PageTag = tag
	return nc
}

// Delimiters sets the strings written around the page tag. The defaults
// are < and >. Neither may be empty.
func (c *Converter) Delimiters(left, right string) *Converter {
	nc := c.clone()
	if (left == "" || right == "") && nc.err == nil {
		nc.err = fmt.Errorf("page tag delimiters must not be empty")
	}
	nc.options.render.LeftDelim = left
	nc.options.render.RightDelim = right
	return nc
}

// ExplicitLeftAlign writes align="left" on left-aligned paragraphs and list
// items instead of omitting the attribute.
func (c *Converter) ExplicitLeftAlign() *Converter {
	nc := c.clone()
	nc.options.render.ExplicitLeftAlign = true
	return nc
}

// Concurrency bounds the number of slide parts built in parallel.
// Values below 1 use GOMAXPROCS.
func (c *Converter) Concurrency(n int) *Converter {
	nc := c.clone()
	nc.options.concurrency = n
	return nc
}

// DefaultBulletStyle sets the bullet style of paragraphs whose properties
// do not name one. The default is model.NoBullets.
func (c *Converter) DefaultBulletStyle(s model.BulletStyle) *Converter {
	nc := c.clone()
	nc.options.defaultStyle = s
	return nc
}

// Logger sets the logger for skipped elements and other recovered
// conditions. Nothing is logged by default.
func (c *Converter) Logger(l *slog.Logger) *Converter {
	nc := c.clone()
	nc.options.logger = l
	return nc
}

// Fingerprint returns a stable string identifying the options that affect
// the HTML output. Two converters with equal fingerprints render the same
// input identically.
func (c *Converter) Fingerprint() string {
	return c.options.fingerprint()
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Presentation builds and returns the document model.
func (c *Converter) Presentation(ctx context.Context) (*model.Presentation, error) {
	var pres *model.Presentation
	err := c.withPackage(func(pkg opc.Package) error {
		b := c.builder(pkg)
		if err := c.checkFormat(pkg, b); err != nil {
			return err
		}
		var err error
		pres, err = b.Build(ctx)
		return err
	})
	return pres, err
}

// HTML converts the presentation and returns one page element per slide,
// in document order.
//
// Example:
//
//	html, err := pptxhtml.Open("deck.pptx").HTML(ctx)
func (c *Converter) HTML(ctx context.Context) (string, error) {
	pres, err := c.Presentation(ctx)
	if err != nil {
		return "", err
	}
	return c.Renderer().Presentation(pres), nil
}

// Pages converts the presentation and returns the page HTML of each slide.
func (c *Converter) Pages(ctx context.Context) ([]string, error) {
	pres, err := c.Presentation(ctx)
	if err != nil {
		return nil, err
	}
	r := c.Renderer()
	pages := make([]string, 0, len(pres.Slides))
	for _, s := range pres.Slides {
		pages = append(pages, r.Page(s))
	}
	return pages, nil
}

// SlideCount returns the number of slides without building them.
func (c *Converter) SlideCount(ctx context.Context) (int, error) {
	var n int
	err := c.withPackage(func(pkg opc.Package) error {
		outline, err := c.builder(pkg).Outline(ctx)
		if err != nil {
			return err
		}
		n = len(outline.Slides)
		return nil
	})
	return n, err
}

// Renderer returns the HTML renderer configured by this Converter.
func (c *Converter) Renderer() *render.Renderer {
	return render.New(c.options.render)
}

// withPackage runs fn with the converter's package, opening and closing the
// file when the converter was created by Open.
func (c *Converter) withPackage(fn func(opc.Package) error) error {
	if c.err != nil {
		return c.err
	}
	if c.pkg != nil {
		return fn(c.pkg)
	}
	if c.filename == "" {
		return ErrNoInput
	}

	zp, err := opc.Open(c.filename)
	if err != nil {
		if c.format == format.Unknown {
			return fmt.Errorf("%w: %s", ErrUnsupportedFormat, c.filename)
		}
		return fmt.Errorf("failed to open %s: %w", c.format, err)
	}
	defer zp.Close()
	return fn(zp)
}

// checkFormat rejects files whose extension was not recognised unless the
// package's content types identify a presentation.
func (c *Converter) checkFormat(pkg opc.Package, b *pptx.Builder) error {
	if c.filename == "" || c.format != format.Unknown {
		return nil
	}
	main, err := b.MainPart()
	if err != nil {
		return err
	}
	f, err := format.DetectPackage(pkg, main)
	if err != nil {
		return err
	}
	if !f.Supported() {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, c.filename)
	}
	return nil
}

func (c *Converter) builder(pkg opc.Package) *pptx.Builder {
	return pptx.NewBuilder(pkg,
		pptx.WithLogger(c.options.logger),
		pptx.WithConcurrency(c.options.concurrency),
		pptx.WithDefaultBulletStyle(c.options.defaultStyle),
	)
}
