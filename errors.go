package versionable

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPayload      = errors.New("versionable: payload is not a JSON object")
	ErrMissingDiscriminant = errors.New("versionable: missing version discriminant")
	ErrInvalidDiscriminant = errors.New("versionable: invalid version discriminant")
	ErrUnhandledVersion    = errors.New("versionable: no extractor for version")
)

const (
	reasonMissing  = "missing required field"
	reasonMismatch = "type mismatch"
)

// FieldError reports a required field that is absent from the payload or
// carries a value of the wrong type.
type FieldError struct {
	Field  string
	Want   string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("versionable: field %q: want %s: %s", e.Field, e.Want, e.Reason)
}
