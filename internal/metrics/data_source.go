// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/chanverifier/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dataSourceRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chanverifier",
		Subsystem: "data_source",
		Name:      "operations_total",
		Help:      "Count of blockchain data source operations.",
	}, []string{"operation", "source", "network", "status"})
	dataSourceRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chanverifier",
		Subsystem: "data_source",
		Name:      "operation_duration_seconds",
		Help:      "Duration of blockchain data source operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"operation", "source", "network", "status"})
)

// DataSource tracks calls made to a blockchain data source (REST or RPC).
type DataSource struct {
	source  string
	network model.Network
}

// NewDataSource constructs a DataSource collector.
func NewDataSource(source string, network model.Network) *DataSource {
	if source == "" {
		source = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &DataSource{source: source, network: network}
}

// Observe records a single call outcome and duration.
func (m DataSource) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	dataSourceRequestsTotal.WithLabelValues(operation, m.source, string(m.network), status).Inc()
	dataSourceRequestDuration.WithLabelValues(operation, m.source, string(m.network), status).
		Observe(time.Since(started).Seconds())
}
