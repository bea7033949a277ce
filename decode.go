package versionable

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/CenterforYouthEngagement/Versionable/internal/observability"
)

// DiscriminantKey is the reserved payload key carrying the schema version.
// Model field names must not collide with it.
const DiscriminantKey = "version"

// Versioned binds a model type to its declared version set. The method is
// expected to return the same Set on every call.
type Versioned[M any] interface {
	Versions() Set[M]
}

// Decode reads a payload of any declared schema version and returns an
// instance migrated to the current shape. All failures surface as typed
// errors; nothing is retried or defaulted.
func Decode[M Versioned[M]](payload []byte) (M, error) {
	var zero M
	start := time.Now()
	c, err := NewContainer(payload)
	if err != nil {
		name := zero.Versions().Name()
		observability.RecordDecode(name, -1, observability.OutcomeInvalidPayload)
		observability.ObserveDecodeDuration(name, time.Since(start))
		return zero, err
	}
	return DecodeContainer[M](c)
}

// DecodeContainer dispatches an already-opened container to the extractor
// matching its version discriminant. The extractor receives the same
// container, so it can read whatever fields its version's layout used.
func DecodeContainer[M Versioned[M]](c *Container) (M, error) {
	var zero M
	set := zero.Versions()
	start := time.Now()
	// Duration is observed on every exit, failed decodes included.
	defer func() {
		observability.ObserveDecodeDuration(set.Name(), time.Since(start))
	}()

	raw, ok := c.Raw(DiscriminantKey)
	if !ok {
		observability.RecordDecode(set.Name(), -1, observability.OutcomeMissingDiscriminant)
		return zero, ErrMissingDiscriminant
	}

	var v Version
	if err := json.Unmarshal(raw, &v); err != nil {
		observability.RecordDecode(set.Name(), -1, observability.OutcomeInvalidDiscriminant)
		return zero, fmt.Errorf("%w: %s", ErrInvalidDiscriminant, raw)
	}

	cs, ok := set.ByValue(v)
	if !ok {
		observability.RecordDecode(set.Name(), int(v), observability.OutcomeInvalidDiscriminant)
		return zero, fmt.Errorf("%w: %d", ErrInvalidDiscriminant, v)
	}
	if cs.Extract == nil {
		observability.RecordDecode(set.Name(), int(v), observability.OutcomeUnhandledVersion)
		return zero, fmt.Errorf("%w: %d", ErrUnhandledVersion, v)
	}

	m, err := cs.Extract(c)
	if err != nil {
		observability.RecordDecode(set.Name(), int(v), observability.OutcomeFieldError)
		return zero, err
	}

	if v.Compare(set.Latest()) < 0 {
		observability.RecordMigration(set.Name(), int(v))
	}
	observability.RecordDecode(set.Name(), int(v), observability.OutcomeOK)
	return m, nil
}

// Encode emits the model's current field layout and whatever version value
// it carries. Encoding is not version-aware; there is no downgrade on write.
func Encode[M Versioned[M]](m M) ([]byte, error) {
	return json.Marshal(m)
}
