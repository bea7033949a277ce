package models

import (
	"encoding/json"
	"fmt"

	"github.com/CenterforYouthEngagement/Versionable/internal/fixture"
)

// Samples returns one recorded payload per declared version of every model
// in this package. Tests decode each one; fixturectl dumps them to disk.
func Samples() []fixture.Sample {
	return []fixture.Sample{
		{
			Model:   "profile",
			Version: 0,
			Payload: json.RawMessage(`{"version":0,"firstName":"Ada","lastName":"Lovelace"}`),
		},
		{
			Model:   "profile",
			Version: 1,
			Payload: json.RawMessage(`{"version":1,"firstName":"Ada","middleName":"X","lastName":"Lovelace"}`),
		},
		{
			Model:   "device",
			Version: 0,
			Payload: json.RawMessage(`{"version":0,"label":"gate-sensor","poll_secs":5}`),
		},
		{
			Model:   "device",
			Version: 1,
			Payload: json.RawMessage(`{"version":1,"label":"gate-sensor","poll_ms":5000}`),
		},
		{
			Model:   "device",
			Version: 2,
			Payload: json.RawMessage(fmt.Sprintf(
				`{"version":2,"id":%q,"label":"gate-sensor","poll_ms":5000}`,
				DeviceID("gate-sensor"),
			)),
		},
	}
}
