// Package fixture dumps recorded sample payloads to disk for diagnostics.
//
// Ownership boundary:
// - deterministic fixture naming per model/version pair
// - scoped, fallible file writes (no retry policy)
// - JSON Schema validation of payloads
package fixture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	versionable "github.com/CenterforYouthEngagement/Versionable"
	"github.com/CenterforYouthEngagement/Versionable/internal/logging"
)

// Sample is one recorded payload for a model at a specific schema version.
type Sample struct {
	Model   string
	Version versionable.Version
	Payload json.RawMessage
}

// Filename returns the deterministic fixture name for a model/version pair.
func Filename(model string, v versionable.Version) string {
	return fmt.Sprintf("%s_v%d.json", strings.ToLower(model), v)
}

// Writer dumps sample payloads into a directory. This is debug-only
// tooling; consumers of the decode protocol never depend on it.
type Writer struct {
	Dir    string
	Pretty bool
	Log    zerolog.Logger
}

func NewWriter(dir string, pretty bool) Writer {
	return Writer{Dir: dir, Pretty: pretty, Log: logging.Logger("fixture")}
}

// Write stores one sample under its deterministic filename and returns the
// path. A failed write surfaces to the caller; nothing is retried.
func (w Writer) Write(s Sample) (string, error) {
	if strings.TrimSpace(s.Model) == "" {
		return "", fmt.Errorf("fixture: sample has no model name")
	}

	data := []byte(s.Payload)
	if w.Pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return "", fmt.Errorf("fixture: indent %s v%d: %w", s.Model, s.Version, err)
		}
		buf.WriteByte('\n')
		data = buf.Bytes()
	}

	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("fixture: create dir %s: %w", w.Dir, err)
	}
	path := filepath.Join(w.Dir, Filename(s.Model, s.Version))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("fixture: write %s: %w", path, err)
	}

	w.Log.Info().
		Str("model", s.Model).
		Int("version", int(s.Version)).
		Str("path", path).
		Msg("fixture written")
	return path, nil
}
