package versionable

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Container exposes one JSON object payload as a keyed field set. Extractors
// read whatever fields their version's layout used; migration helpers (Set,
// Clone) let an older case patch its delta and delegate to a newer case.
type Container struct {
	fields map[string]json.RawMessage
}

// NewContainer opens a raw payload as a field container. Anything other
// than a JSON object fails with ErrInvalidPayload.
func NewContainer(payload []byte) (*Container, error) {
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return &Container{fields: fields}, nil
}

// Has reports whether the payload carries the given field.
func (c *Container) Has(key string) bool {
	_, ok := c.fields[key]
	return ok
}

// Raw returns the undecoded value of one field.
func (c *Container) Raw(key string) (json.RawMessage, bool) {
	raw, ok := c.fields[key]
	return raw, ok
}

// String reads a required string field.
func (c *Container) String(key string) (string, error) {
	var v string
	if err := c.decode(key, "string", &v); err != nil {
		return "", err
	}
	return v, nil
}

// OptionalString reads a nullable string field. An absent field or a JSON
// null yields nil without error.
func (c *Container) OptionalString(key string) (*string, error) {
	raw, ok := c.fields[key]
	if !ok || isNull(raw) {
		return nil, nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, FieldError{Field: key, Want: "string", Reason: reasonMismatch}
	}
	return &v, nil
}

// Int reads a required integer field.
func (c *Container) Int(key string) (int, error) {
	var v int
	if err := c.decode(key, "integer", &v); err != nil {
		return 0, err
	}
	return v, nil
}

// Int64 reads a required integer field as int64.
func (c *Container) Int64(key string) (int64, error) {
	var v int64
	if err := c.decode(key, "integer", &v); err != nil {
		return 0, err
	}
	return v, nil
}

// Float64 reads a required number field.
func (c *Container) Float64(key string) (float64, error) {
	var v float64
	if err := c.decode(key, "number", &v); err != nil {
		return 0, err
	}
	return v, nil
}

// Bool reads a required boolean field.
func (c *Container) Bool(key string) (bool, error) {
	var v bool
	if err := c.decode(key, "boolean", &v); err != nil {
		return false, err
	}
	return v, nil
}

// Decode reads a required composite field into out.
func (c *Container) Decode(key string, out any) error {
	return c.decode(key, fmt.Sprintf("%T", out), out)
}

// Set overwrites one field with the JSON encoding of v.
func (c *Container) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("versionable: set field %q: %w", key, err)
	}
	c.fields[key] = raw
	return nil
}

// Clone returns an independent copy so a migration can patch fields without
// touching the container handed to it.
func (c *Container) Clone() *Container {
	fields := make(map[string]json.RawMessage, len(c.fields))
	for k, v := range c.fields {
		fields[k] = v
	}
	return &Container{fields: fields}
}

func (c *Container) decode(key, want string, out any) error {
	raw, ok := c.fields[key]
	if !ok {
		return FieldError{Field: key, Want: want, Reason: reasonMissing}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return FieldError{Field: key, Want: want, Reason: reasonMismatch}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
