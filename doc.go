// Package versionable owns the schema-versioning contract for JSON models.
//
// Ownership boundary:
// - version enumeration and ordering primitives
//
// - field container over a JSON object payload
//
// - version-aware decode entry points and error taxonomy
//
// A model declares every schema version it has ever shipped as a closed Set
// of Cases. Decoding reads the reserved "version" discriminant from the
// payload, dispatches to the matching case's extractor, and returns an
// instance migrated to the current shape. Encoding is never version-aware:
// a model always writes its current field layout.
package versionable
