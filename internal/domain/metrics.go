package domain

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects scan, registry and install counters. They are exported
// in the Prometheus textfile format when a metrics file is configured.
type Metrics struct {
	FilesScanned          *prometheus.CounterVec
	ScanErrors            *prometheus.CounterVec
	ScanDuration          prometheus.Histogram
	RegistryFetches       *prometheus.CounterVec
	RegistryFetchDuration *prometheus.HistogramVec
	FilesInstalled        prometheus.Counter
	ScenesUpgraded        prometheus.Counter

	gatherer prometheus.Gatherer
}

// NewMetrics registers the party metrics on reg. A nil reg gets a private
// registry.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	factory := promauto.With(reg)

	return &Metrics{
		FilesScanned: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "party",
			Subsystem: "scan",
			Name:      "files_total",
			Help:      "Files processed by the saves resolver, by kind.",
		}, []string{"kind"}),
		ScanErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "party",
			Subsystem: "scan",
			Name:      "errors_total",
			Help:      "Per-file problems collected during scans, by level.",
		}, []string{"level"}),
		ScanDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "party",
			Subsystem: "scan",
			Name:      "duration_seconds",
			Help:      "Duration of saves scans.",
			Buckets:   prometheus.DefBuckets,
		}),
		RegistryFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "party",
			Subsystem: "registry",
			Name:      "fetches_total",
			Help:      "Registry source fetches, by source kind and outcome.",
		}, []string{"kind", "outcome"}),
		RegistryFetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "party",
			Subsystem: "registry",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of registry source fetches.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
		FilesInstalled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "party",
			Subsystem: "install",
			Name:      "files_total",
			Help:      "Package files downloaded and written.",
		}),
		ScenesUpgraded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "party",
			Subsystem: "upgrade",
			Name:      "scenes_total",
			Help:      "Scenes rewritten by upgrades.",
		}),
		gatherer: reg,
	}
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
func (mt *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, mt.gatherer)
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}

	return "success"
}
