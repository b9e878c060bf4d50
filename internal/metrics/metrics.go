package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Drop Table Metrics
var (
	DropTableCompileDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameDropTableCompileDuration,
			Help:    HelpTextDropTableCompileDuration,
			Buckets: CompileBuckets,
		},
		[]string{LabelDomain},
	)

	DropRecordsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDropRecordsSkipped,
			Help: HelpTextDropRecordsSkipped,
		},
		[]string{LabelDomain},
	)

	DropTableSources = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameDropTableSources,
			Help: HelpTextDropTableSources,
		},
		[]string{LabelDomain},
	)
)

// Rarity Metrics
var (
	RarityLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRarityLookups,
			Help: HelpTextRarityLookups,
		},
		[]string{LabelDomain, LabelResult},
	)

	IdentityCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIdentityCacheRequests,
			Help: HelpTextIdentityCacheRequests,
		},
		[]string{LabelResult},
	)
)
