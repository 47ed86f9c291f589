// Package opc provides read access to Open Packaging Conventions containers,
// the zip-based packages used by PPTX and the other Office Open XML formats.
//
// A [Package] hands out raw part bytes by name. On top of that the package
// offers three services used by the presentation builder:
//
//   - [ReadElement] decodes one part into an [Element] tree with
//     namespace-qualified names, handling byte-order marks and declared
//     legacy encodings.
//   - [ReadRelationships] loads the relationship part that belongs to a
//     source part and resolves relationship ids to part paths.
//   - [ReadContentTypes] loads [Content_Types].xml.
//
// Structural failures are reported as [*MalformedPartError] (matching
// [ErrMalformedPackage]) or [*UnresolvedRelationshipError] (matching
// [ErrUnresolvedRelationship]).
package opc
