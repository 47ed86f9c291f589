// Package pptx builds the presentation document model from a PresentationML
// package.
//
// Construction happens in two phases. [Builder.Outline] reads the
// presentation part and resolves its master and slide id lists into ordered
// part references. [Builder.BuildMaster] and [Builder.BuildSlide] then build
// one referenced part each. [Builder.Build] runs both phases, building parts
// in parallel while keeping document order.
//
// Structural problems (a missing or unparsable part, an unresolved
// relationship, a slide without a shape tree) abort the build. Unknown
// elements and unsupported bullet types are skipped and logged at debug
// level.
package pptx

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/pptxhtml/model"
	"github.com/tsawler/pptxhtml/opc"
)

// DefaultPresentationPart is used when the package relationships do not name
// an office document.
const DefaultPresentationPart = "ppt/presentation.xml"

// Builder builds a model.Presentation from a package.
type Builder struct {
	pkg          opc.Package
	logger       *slog.Logger
	concurrency  int
	defaultStyle model.BulletStyle
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger for recovered conditions.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithConcurrency bounds the number of parts built at once.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(b *Builder) {
		if n >= 1 {
			b.concurrency = n
		}
	}
}

// WithDefaultBulletStyle sets the bullet style of paragraphs whose property
// block has neither buNone nor buAutoNum. The default is model.NoBullets.
func WithDefaultBulletStyle(s model.BulletStyle) Option {
	return func(b *Builder) {
		b.defaultStyle = s
	}
}

// NewBuilder creates a Builder reading from pkg.
func NewBuilder(pkg opc.Package, opts ...Option) *Builder {
	b := &Builder{
		pkg:          pkg,
		logger:       slog.New(slog.DiscardHandler),
		concurrency:  runtime.GOMAXPROCS(0),
		defaultStyle: model.NoBullets,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// MainPart returns the path of the presentation part.
func (b *Builder) MainPart() (string, error) {
	rels, err := opc.ReadRelationships(b.pkg, "")
	if err != nil {
		return "", err
	}
	if rel, ok := rels.FirstOfType(opc.RelOfficeDocument); ok && !rel.External {
		return rel.Target, nil
	}
	return DefaultPresentationPart, nil
}

// Outline reads the presentation part and resolves its id lists.
func (b *Builder) Outline(ctx context.Context) (*model.Outline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	main, err := b.MainPart()
	if err != nil {
		return nil, err
	}
	root, err := opc.ReadElement(b.pkg, main)
	if err != nil {
		return nil, err
	}
	rels, err := opc.ReadRelationships(b.pkg, main)
	if err != nil {
		return nil, err
	}
	return b.ParseOutline(main, root, rels)
}

// Build runs both construction phases and reads the document metadata.
// The first failure aborts the build and no partial presentation is returned.
func (b *Builder) Build(ctx context.Context) (*model.Presentation, error) {
	outline, err := b.Outline(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading presentation: %w", err)
	}

	masters, err := buildOrdered(ctx, b.concurrency, outline.Masters, b.BuildMaster)
	if err != nil {
		return nil, fmt.Errorf("building masters: %w", err)
	}
	slides, err := buildOrdered(ctx, b.concurrency, outline.Slides, b.BuildSlide)
	if err != nil {
		return nil, fmt.Errorf("building slides: %w", err)
	}
	for i, s := range slides {
		s.Number = i + 1
	}

	b.logger.Debug("built presentation", "masters", len(masters), "slides", len(slides))

	return &model.Presentation{
		Metadata: b.Metadata(),
		Masters:  masters,
		Slides:   slides,
	}, nil
}

// buildOrdered builds every ref with at most limit builds in flight.
// Results are stored by index, so output order matches refs.
func buildOrdered[T any](ctx context.Context, limit int, refs []model.PartRef, build func(context.Context, model.PartRef) (T, error)) ([]T, error) {
	out := make([]T, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, ref := range refs {
		g.Go(func() error {
			v, err := build(gctx, ref)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// partLogger returns a logger annotated with the part being built.
func (b *Builder) partLogger(part string) *slog.Logger {
	return b.logger.With("part", part)
}
