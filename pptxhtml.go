// Package pptxhtml provides a fluent API for converting PowerPoint
// presentations into HTML.
//
// Basic usage:
//
//	html, err := pptxhtml.Open("deck.pptx").HTML(ctx)
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	html, err := pptxhtml.Open("deck.pptx").
//	    PageTag("section").
//	    ExplicitLeftAlign().
//	    Concurrency(4).
//	    HTML(ctx)
//
// For lower-level access, the opc, pptx and render packages are also
// available.
package pptxhtml

import (
	"bytes"

	"github.com/tsawler/pptxhtml/format"
	"github.com/tsawler/pptxhtml/opc"
)

// Open returns a Converter for the named file. The file is opened by each
// terminal operation and closed before it returns.
//
// Example:
//
//	html, err := pptxhtml.Open("deck.pptx").HTML(ctx)
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		format:   format.Detect(filename),
		options:  defaultOptions(),
	}
}

// FromPackage creates a Converter from an already-opened package.
// The caller is responsible for closing it.
//
// Example:
//
//	pkg, err := opc.Open("deck.pptx")
//	if err != nil {
//	    // handle error
//	}
//	defer pkg.Close()
//	html, err := pptxhtml.FromPackage(pkg).HTML(ctx)
func FromPackage(pkg opc.Package) *Converter {
	return &Converter{
		pkg:     pkg,
		options: defaultOptions(),
	}
}

// FromBytes creates a Converter over an in-memory PPTX file.
func FromBytes(data []byte) *Converter {
	pkg, err := opc.NewZipPackage(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return &Converter{err: err, options: defaultOptions()}
	}
	return FromPackage(pkg)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	html := pptxhtml.Must(pptxhtml.Open("deck.pptx").HTML(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
