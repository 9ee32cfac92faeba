// Package descriptor defines the type-shape model consumed by signature
// generation and identifier lookup.
//
// This package contains type definitions only. signature, identity and
// registry all import descriptor; descriptor imports only winguid. That
// keeps the descriptor model the foundational layer with no circular
// dependencies.
//
// Descriptors are treated as well-formed input supplied by a provider
// (for example the YAML registry). The two defect classes a consumer can
// report are ShapeError (a shape with no signature grammar production) and
// MissingIDError (a type that needs a declared identifier but has none).
// Both are static-data problems: there is nothing to retry.
package descriptor
