package pptxhtml

import (
	"fmt"
	"log/slog"

	"github.com/tsawler/pptxhtml/model"
	"github.com/tsawler/pptxhtml/render"
)

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	// Output
	render render.Options

	// Model building
	concurrency  int // 0 means GOMAXPROCS
	defaultStyle model.BulletStyle

	logger *slog.Logger
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		render:       render.DefaultOptions(),
		concurrency:  0,
		defaultStyle: model.NoBullets,
		logger:       nil, // discard
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	return ConvertOptions{
		render:       o.render,
		concurrency:  o.concurrency,
		defaultStyle: o.defaultStyle,
		logger:       o.logger,
	}
}

// fingerprint identifies the options that affect the rendered output.
func (o ConvertOptions) fingerprint() string {
	return fmt.Sprintf("tag=%q;left=%q;right=%q;explicit-left=%t;default-style=%s",
		o.render.PageTag, o.render.LeftDelim, o.render.RightDelim,
		o.render.ExplicitLeftAlign, o.defaultStyle)
}
