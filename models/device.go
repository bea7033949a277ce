package models

import (
	"github.com/google/uuid"

	versionable "github.com/CenterforYouthEngagement/Versionable"
)

// Device is a polled edge-device record.
//
// Schema history:
//
//	v0: label, poll_secs
//	v1: poll interval moved to milliseconds (poll_ms)
//	v2: adds a stable id derived from the label
type Device struct {
	ID      uuid.UUID           `json:"id"`
	Label   string              `json:"label"`
	PollMS  int64               `json:"poll_ms"`
	Version versionable.Version `json:"version"`
}

// NewDevice builds a Device at the current schema version.
func NewDevice(label string, pollMS int64) Device {
	return Device{
		ID:      DeviceID(label),
		Label:   label,
		PollMS:  pollMS,
		Version: deviceVersions.Latest(),
	}
}

// Versions declares the schema history of Device.
func (Device) Versions() versionable.Set[Device] {
	return deviceVersions
}

var deviceVersions versionable.Set[Device]

// The extractors read deviceVersions back for Latest, so the set is built
// in init rather than in the variable initializer.
func init() {
	deviceVersions = versionable.Declare("device",
		versionable.Case[Device]{Version: 0, Explanation: "initial shape, poll interval in seconds", Extract: extractDeviceV0},
		versionable.Case[Device]{Version: 1, Explanation: "poll interval in milliseconds", Extract: extractDeviceV1},
		versionable.Case[Device]{Version: 2, Explanation: "added stable device id", Extract: extractDeviceV2},
	)
}

// DeviceID derives a stable id from the label so pre-v2 payloads migrate to
// the same device identity on every decode.
func DeviceID(label string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("versionable.device:"+label))
}

// v0 stored the poll interval in whole seconds. Convert the unit, then hand
// the patched container to the v1 extractor.
func extractDeviceV0(c *versionable.Container) (Device, error) {
	secs, err := c.Int64("poll_secs")
	if err != nil {
		return Device{}, err
	}
	cc := c.Clone()
	if err := cc.Set("poll_ms", secs*1000); err != nil {
		return Device{}, err
	}
	return extractDeviceV1(cc)
}

// v1 had no id yet. Derive it from the label and delegate to the current
// extractor.
func extractDeviceV1(c *versionable.Container) (Device, error) {
	label, err := c.String("label")
	if err != nil {
		return Device{}, err
	}
	cc := c.Clone()
	if err := cc.Set("id", DeviceID(label)); err != nil {
		return Device{}, err
	}
	return extractDeviceV2(cc)
}

func extractDeviceV2(c *versionable.Container) (Device, error) {
	var id uuid.UUID
	if err := c.Decode("id", &id); err != nil {
		return Device{}, err
	}
	label, err := c.String("label")
	if err != nil {
		return Device{}, err
	}
	pollMS, err := c.Int64("poll_ms")
	if err != nil {
		return Device{}, err
	}
	return Device{
		ID:      id,
		Label:   label,
		PollMS:  pollMS,
		Version: deviceVersions.Latest(),
	}, nil
}
