package metrics

import (
	"time"

	"github.com/goodnatureofminers/chanverifier/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	verifierLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chanverifier",
		Subsystem: "chain_verifier",
		Name:      "lookups_total",
		Help:      "Count of funding output lookups by path and outcome.",
	}, []string{"network", "path", "status"})

	verifierLookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chanverifier",
		Subsystem: "chain_verifier",
		Name:      "lookup_duration_seconds",
		Help:      "Duration of funding output lookups.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "path", "status"})

	verifierCacheEntries = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chanverifier",
		Subsystem: "chain_verifier",
		Name:      "funding_cache_entries",
		Help:      "Number of channels with a cached funding amount.",
	}, []string{"network"})

	verifierPumpWakesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chanverifier",
		Subsystem: "chain_verifier",
		Name:      "event_pump_wakes_total",
		Help:      "Count of peer event pump wakes after a lookup resolved.",
	}, []string{"network"})
)

// ChainVerifier tracks metrics for funding output verification.
type ChainVerifier struct {
	network model.Network
}

// NewChainVerifier constructs a ChainVerifier collector.
func NewChainVerifier(network model.Network) *ChainVerifier {
	if network == "" {
		network = "unknown"
	}
	return &ChainVerifier{network: network}
}

// ObserveLookup records a finished lookup. path is "async" or "direct".
func (m ChainVerifier) ObserveLookup(path, status string, started time.Time) {
	verifierLookupsTotal.WithLabelValues(string(m.network), path, status).Inc()
	verifierLookupDuration.WithLabelValues(string(m.network), path, status).
		Observe(time.Since(started).Seconds())
}

// ObserveCacheSize records the current number of cached funding amounts.
func (m ChainVerifier) ObserveCacheSize(entries int) {
	verifierCacheEntries.WithLabelValues(string(m.network)).Set(float64(entries))
}

// ObserveWake records a peer event pump wake.
func (m ChainVerifier) ObserveWake() {
	verifierPumpWakesTotal.WithLabelValues(string(m.network)).Inc()
}
