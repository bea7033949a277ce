package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Decode outcomes recorded on the decode counter.
const (
	OutcomeOK                  = "ok"
	OutcomeInvalidPayload      = "invalid_payload"
	OutcomeMissingDiscriminant = "missing_discriminant"
	OutcomeInvalidDiscriminant = "invalid_discriminant"
	OutcomeUnhandledVersion    = "unhandled_version"
	OutcomeFieldError          = "field_error"
)

var (
	registerOnce sync.Once

	decodeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "versionable",
			Subsystem: "decode",
			Name:      "total",
			Help:      "Total versioned decode attempts.",
		},
		[]string{"model", "version", "outcome"},
	)
	migrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "versionable",
			Subsystem: "decode",
			Name:      "migrations_total",
			Help:      "Decodes that migrated a payload from an older schema version.",
		},
		[]string{"model", "from_version"},
	)
	decodeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "versionable",
			Subsystem: "decode",
			Name:      "duration_seconds",
			Help:      "Versioned decode duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"model"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(decodeTotal, migrationsTotal, decodeDuration)
	})
}

// RecordDecode counts one decode attempt. A negative version means the
// discriminant could not be read from the payload.
func RecordDecode(model string, version int, outcome string) {
	RegisterMetrics()
	decodeTotal.WithLabelValues(model, versionLabel(version), outcome).Inc()
}

func RecordMigration(model string, fromVersion int) {
	RegisterMetrics()
	migrationsTotal.WithLabelValues(model, versionLabel(fromVersion)).Inc()
}

func ObserveDecodeDuration(model string, duration time.Duration) {
	RegisterMetrics()
	decodeDuration.WithLabelValues(model).Observe(duration.Seconds())
}

func versionLabel(v int) string {
	if v < 0 {
		return "unknown"
	}
	return strconv.Itoa(v)
}
