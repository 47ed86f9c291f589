package opc

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Package is a container of named parts. Part names are package-relative
// paths without a leading slash, e.g. "ppt/presentation.xml".
type Package interface {
	Part(name string) ([]byte, error)
}

// ZipPackage is a Package backed by a zip archive.
type ZipPackage struct {
	files  map[string]*zip.File
	closer io.Closer
}

// Open opens a zip-based package from a file on disk.
// The caller must Close the returned package.
func Open(filename string) (*ZipPackage, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening package: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening package: %w", err)
	}
	p, err := NewZipPackage(f, info.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	p.closer = f
	return p, nil
}

// NewZipPackage reads a zip-based package from r.
// An archive that cannot be read is reported as ErrMalformedPackage.
func NewZipPackage(r io.ReaderAt, size int64) (*ZipPackage, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: reading zip archive: %v", ErrMalformedPackage, err)
	}

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[strings.TrimPrefix(f.Name, "/")] = f
	}
	return &ZipPackage{files: files}, nil
}

// Part returns the content of the named part.
func (p *ZipPackage) Part(name string) ([]byte, error) {
	f, ok := p.files[strings.TrimPrefix(name, "/")]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPartNotFound, name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Close releases the underlying file, if the package owns one.
func (p *ZipPackage) Close() error {
	if p.closer != nil {
		err := p.closer.Close()
		p.closer = nil
		return err
	}
	return nil
}

// MapPackage is an in-memory Package keyed by part name.
type MapPackage map[string][]byte

// Part returns the content of the named part.
func (m MapPackage) Part(name string) ([]byte, error) {
	data, ok := m[strings.TrimPrefix(name, "/")]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPartNotFound, name)
	}
	return data, nil
}
