package opc

import (
	"errors"
	"fmt"
)

// Package-level errors.
var (
	ErrMalformedPackage       = errors.New("opc: malformed package")
	ErrUnresolvedRelationship = errors.New("opc: unresolved relationship")
	ErrPartNotFound           = errors.New("opc: part not found")
)

// MalformedPartError reports a part that is missing or cannot be decoded.
// It matches ErrMalformedPackage with errors.Is.
type MalformedPartError struct {
	Path string
	Err  error
}

func (e *MalformedPartError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("opc: malformed part %q", e.Path)
	}
	return fmt.Sprintf("opc: malformed part %q: %v", e.Path, e.Err)
}

func (e *MalformedPartError) Unwrap() error { return e.Err }

// Is reports whether target is ErrMalformedPackage.
func (e *MalformedPartError) Is(target error) bool {
	return target == ErrMalformedPackage
}

// NewMalformedPartError creates a MalformedPartError for the given part.
func NewMalformedPartError(path string, err error) error {
	return &MalformedPartError{Path: path, Err: err}
}

// UnresolvedRelationshipError reports a relationship id that has no entry in
// the relationship table of its source part.
// It matches ErrUnresolvedRelationship with errors.Is.
type UnresolvedRelationshipError struct {
	ID     string
	Source string // part the relationship table belongs to
}

func (e *UnresolvedRelationshipError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("opc: unresolved relationship %q", e.ID)
	}
	return fmt.Sprintf("opc: unresolved relationship %q in %s", e.ID, e.Source)
}

// Is reports whether target is ErrUnresolvedRelationship.
func (e *UnresolvedRelationshipError) Is(target error) bool {
	return target == ErrUnresolvedRelationship
}
