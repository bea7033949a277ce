package fixture

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema validates fixture payloads against a compiled JSON Schema.
type Schema struct {
	compiled *jsonschema.Schema
}

// CompileSchema compiles an in-memory schema document. The name is only
// used for error reporting.
func CompileSchema(name string, src string) (*Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(name, strings.NewReader(src)); err != nil {
		return nil, fmt.Errorf("fixture: add schema %s: %w", name, err)
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("fixture: compile schema %s: %w", name, err)
	}
	return &Schema{compiled: compiled}, nil
}

// CompileSchemaFile compiles a schema from disk.
func CompileSchemaFile(path string) (*Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	compiled, err := compiler.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: compile schema %s: %w", path, err)
	}
	return &Schema{compiled: compiled}, nil
}

// Validate checks one payload against the schema and reports the first
// concrete violation.
func (s *Schema) Validate(payload []byte) error {
	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("fixture: payload is not valid JSON: %w", err)
	}
	if err := s.compiled.Validate(doc); err != nil {
		return firstViolation(err)
	}
	return nil
}

// ValidationError names the payload location that failed schema validation.
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("fixture: schema violation: %s", e.Message)
	}
	return fmt.Sprintf("fixture: schema violation at %s: %s", e.Path, e.Message)
}

func firstViolation(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &ValidationError{Message: err.Error()}
	}
	var result *ValidationError
	collectViolations(ve, &result)
	if result == nil {
		result = &ValidationError{Path: pointerToPath(ve.InstanceLocation), Message: ve.Message}
	}
	return result
}

// collectViolations walks the cause tree depth-first and keeps the first
// leaf, which carries the most specific instance location.
func collectViolations(err *jsonschema.ValidationError, result **ValidationError) {
	if err == nil || *result != nil {
		return
	}
	if len(err.Causes) == 0 {
		*result = &ValidationError{Path: pointerToPath(err.InstanceLocation), Message: err.Message}
		return
	}
	for _, cause := range err.Causes {
		collectViolations(cause, result)
	}
}

// pointerToPath converts a JSON pointer like "/middleName" to a dotted
// path like "middleName" for readable error messages.
func pointerToPath(pointer string) string {
	trimmed := strings.Trim(pointer, "/")
	if trimmed == "" {
		return ""
	}
	return strings.ReplaceAll(trimmed, "/", ".")
}
