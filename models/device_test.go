package models

import (
	"reflect"
	"sort"
	"testing"

	versionable "github.com/CenterforYouthEngagement/Versionable"
	"github.com/CenterforYouthEngagement/Versionable/internal/testutil/testlog"
)

func TestDeviceDecodeEveryVersion(t *testing.T) {
	testlog.Start(t)
	want := Device{
		ID:      DeviceID("gate-sensor"),
		Label:   "gate-sensor",
		PollMS:  5000,
		Version: 2,
	}
	cases := []struct {
		name    string
		payload string
	}{
		{"v0 seconds", `{"version":0,"label":"gate-sensor","poll_secs":5}`},
		{"v1 milliseconds", `{"version":1,"label":"gate-sensor","poll_ms":5000}`},
		{"v2 with id", `{"version":2,"id":"` + DeviceID("gate-sensor").String() + `","label":"gate-sensor","poll_ms":5000}`},
	}
	for _, tc := range cases {
		got, err := versionable.Decode[Device]([]byte(tc.payload))
		if err != nil {
			t.Fatalf("%s: decode: %v", tc.name, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("%s: got %+v, want %+v", tc.name, got, want)
		}
	}
}

func TestDeviceUnitConversionFromSeconds(t *testing.T) {
	testlog.Start(t)
	got, err := versionable.Decode[Device]([]byte(`{"version":0,"label":"pump","poll_secs":30}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.PollMS != 30000 {
		t.Fatalf("poll_secs=30 must migrate to poll_ms=30000, got %d", got.PollMS)
	}
}

func TestDeviceIDIsDeterministic(t *testing.T) {
	testlog.Start(t)
	if DeviceID("pump") != DeviceID("pump") {
		t.Fatalf("same label must derive the same id")
	}
	if DeviceID("pump") == DeviceID("valve") {
		t.Fatalf("distinct labels must derive distinct ids")
	}
}

func TestDeviceRoundTripAtLatest(t *testing.T) {
	testlog.Start(t)
	in := NewDevice("pump", 1500)
	data, err := versionable.Encode(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := versionable.Decode[Device](data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch: %+v != %+v", in, out)
	}
}

func TestNewDeviceUsesLatest(t *testing.T) {
	testlog.Start(t)
	d := NewDevice("pump", 1500)
	if d.Version != deviceVersions.Latest() {
		t.Fatalf("in-code construction carries version %d, want latest", d.Version)
	}
}

func TestDeviceVersionsContract(t *testing.T) {
	testlog.Start(t)
	if err := deviceVersions.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	all := deviceVersions.All()
	if !sort.SliceIsSorted(all, func(i, j int) bool {
		return all[i].Version.Compare(all[j].Version) < 0
	}) {
		t.Fatalf("declaration order must equal sorted order")
	}
	if deviceVersions.Latest() != all[len(all)-1].Version {
		t.Fatalf("latest must be the last declared version")
	}
}
