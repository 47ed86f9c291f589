// Package format provides presentation format detection for the pptxhtml library.
package format

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/tsawler/pptxhtml/opc"
)

// Format represents a member of the PresentationML package family.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PPTX indicates a PowerPoint presentation (.pptx).
	PPTX
	// PPTM indicates a macro-enabled presentation (.pptm).
	PPTM
	// PPSX indicates a PowerPoint slide show (.ppsx).
	PPSX
	// PPSM indicates a macro-enabled slide show (.ppsm).
	PPSM
	// POTX indicates a PowerPoint template (.potx).
	POTX
	// POTM indicates a macro-enabled template (.potm).
	POTM
)

var formats = []struct {
	format      Format
	name        string
	ext         string
	contentType string
}{
	{PPTX, "PPTX", ".pptx", "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"},
	{PPTM, "PPTM", ".pptm", "application/vnd.ms-powerpoint.presentation.macroEnabled.main+xml"},
	{PPSX, "PPSX", ".ppsx", "application/vnd.openxmlformats-officedocument.presentationml.slideshow.main+xml"},
	{PPSM, "PPSM", ".ppsm", "application/vnd.ms-powerpoint.slideshow.macroEnabled.main+xml"},
	{POTX, "POTX", ".potx", "application/vnd.openxmlformats-officedocument.presentationml.template.main+xml"},
	{POTM, "POTM", ".potm", "application/vnd.ms-powerpoint.template.macroEnabled.main+xml"},
}

// String returns the string representation of the format.
func (f Format) String() string {
	for _, e := range formats {
		if e.format == f {
			return e.name
		}
	}
	return "Unknown"
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	for _, e := range formats {
		if e.format == f {
			return e.ext
		}
	}
	return ""
}

// ContentType returns the content type of the format's main presentation part.
func (f Format) ContentType() string {
	for _, e := range formats {
		if e.format == f {
			return e.contentType
		}
	}
	return ""
}

// Supported reports whether the converter can read f.
func (f Format) Supported() bool {
	return f != Unknown
}

// Detect determines the format from a filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range formats {
		if e.ext == ext {
			return e.format
		}
	}
	return Unknown
}

// DetectContentType maps a main part content type to its format. Parameters
// after a semicolon are ignored.
func DetectContentType(contentType string) Format {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	contentType = strings.TrimSpace(contentType)
	for _, e := range formats {
		if strings.EqualFold(e.contentType, contentType) {
			return e.format
		}
	}
	return Unknown
}

// DetectPackage determines the format from the content type registered for
// the package's main part. A package without [Content_Types].xml is Unknown.
func DetectPackage(pkg opc.Package, mainPart string) (Format, error) {
	ct, err := opc.ReadContentTypes(pkg)
	if err != nil {
		if errors.Is(err, opc.ErrPartNotFound) {
			return Unknown, nil
		}
		return Unknown, err
	}
	return DetectContentType(ct.TypeOf(mainPart)), nil
}

// DetectFromReader inspects the content to determine the format. Non-zip
// content is Unknown without error.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 4)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	if !IsZip(magic[:n]) {
		return Unknown, nil
	}

	pkg, err := opc.NewZipPackage(r, size)
	if err != nil {
		return Unknown, err
	}
	return DetectPackage(pkg, "ppt/presentation.xml")
}

// IsZip reports whether data starts with the local file header signature.
func IsZip(data []byte) bool {
	return len(data) >= 4 && data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04
}
