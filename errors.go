package pptxhtml

import (
	"errors"

	"github.com/tsawler/pptxhtml/opc"
)

// Errors returned by conversions. Use errors.Is to match them.
var (
	// ErrMalformedPackage is returned when a required part is missing or not
	// well-formed XML.
	ErrMalformedPackage = opc.ErrMalformedPackage
	// ErrUnresolvedRelationship is returned when an id list entry names a
	// relationship id that does not exist.
	ErrUnresolvedRelationship = opc.ErrUnresolvedRelationship
	// ErrPartNotFound is wrapped when a part is absent from the package.
	ErrPartNotFound = opc.ErrPartNotFound
	// ErrUnsupportedFormat is returned for files that are not PresentationML
	// packages.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrNoInput is returned when a Converter has neither a file nor a package.
	ErrNoInput = errors.New("no input specified")
)

type (
	// MalformedPartError reports the part that could not be read.
	MalformedPartError = opc.MalformedPartError
	// UnresolvedRelationshipError reports the missing relationship id.
	UnresolvedRelationshipError = opc.UnresolvedRelationshipError
)
