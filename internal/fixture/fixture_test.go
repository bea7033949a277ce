package fixture

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CenterforYouthEngagement/Versionable/internal/testutil/testlog"
)

func TestFilenameIsDeterministic(t *testing.T) {
	testlog.Start(t)
	if got := Filename("Profile", 1); got != "profile_v1.json" {
		t.Fatalf("Filename = %q", got)
	}
	if got := Filename("device", 0); got != "device_v0.json" {
		t.Fatalf("Filename = %q", got)
	}
}

func TestWriterWrite(t *testing.T) {
	testlog.Start(t)
	dir := t.TempDir()
	w := NewWriter(dir, false)

	payload := json.RawMessage(`{"version":1,"firstName":"Ada","lastName":"Lovelace"}`)
	path, err := w.Write(Sample{Model: "profile", Version: 1, Payload: payload})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if filepath.Base(path) != "profile_v1.json" {
		t.Fatalf("unexpected path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != string(payload) {
		t.Fatalf("content mismatch: %s", data)
	}
}

func TestWriterWritePretty(t *testing.T) {
	testlog.Start(t)
	w := NewWriter(t.TempDir(), true)
	path, err := w.Write(Sample{Model: "profile", Version: 0, Payload: json.RawMessage(`{"version":0}`)})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Fatalf("pretty output must end with a newline")
	}
	if !strings.Contains(string(data), "\"version\": 0") {
		t.Fatalf("pretty output not indented: %s", data)
	}
}

func TestWriterRejectsUnnamedSample(t *testing.T) {
	testlog.Start(t)
	w := NewWriter(t.TempDir(), false)
	if _, err := w.Write(Sample{Payload: json.RawMessage(`{}`)}); err == nil {
		t.Fatalf("expected error for sample without model name")
	}
}

const testSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["firstName", "lastName"],
  "properties": {
    "firstName": {"type": "string"},
    "lastName": {"type": "string"}
  }
}`

func TestSchemaValidate(t *testing.T) {
	testlog.Start(t)
	schema, err := CompileSchema("person.schema.json", testSchema)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if err := schema.Validate([]byte(`{"firstName":"Ada","lastName":"Lovelace"}`)); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	err = schema.Validate([]byte(`{"firstName":"Ada"}`))
	if err == nil {
		t.Fatalf("expected violation for missing lastName")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
}

func TestSchemaValidateReportsLocation(t *testing.T) {
	testlog.Start(t)
	schema, err := CompileSchema("person.schema.json", testSchema)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	err = schema.Validate([]byte(`{"firstName":7,"lastName":"Lovelace"}`))
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if ve.Path != "firstName" {
		t.Fatalf("violation path = %q, want firstName", ve.Path)
	}
}

func TestSchemaValidateRejectsGarbagePayload(t *testing.T) {
	testlog.Start(t)
	schema, err := CompileSchema("person.schema.json", testSchema)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if err := schema.Validate([]byte(`{"broken"`)); err == nil {
		t.Fatalf("expected error for invalid JSON payload")
	}
}

func TestCompileSchemaFile(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "person.schema.json")
	if err := os.WriteFile(path, []byte(testSchema), 0o600); err != nil {
		t.Fatalf("write schema: %v", err)
	}
	schema, err := CompileSchemaFile(path)
	if err != nil {
		t.Fatalf("compile file: %v", err)
	}
	if err := schema.Validate([]byte(`{"firstName":"Ada","lastName":"Lovelace"}`)); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}

func TestPointerToPath(t *testing.T) {
	testlog.Start(t)
	cases := map[string]string{
		"":              "",
		"/":             "",
		"/middleName":   "middleName",
		"/items/0/name": "items.0.name",
	}
	for in, want := range cases {
		if got := pointerToPath(in); got != want {
			t.Fatalf("pointerToPath(%q) = %q, want %q", in, got, want)
		}
	}
}
