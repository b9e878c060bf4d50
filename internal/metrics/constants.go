package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Drop table metric names
const (
	MetricNameDropTableCompileDuration = "drop_table_compile_duration_seconds"
	MetricNameDropRecordsSkipped       = "drop_records_skipped_total"
	MetricNameDropTableSources         = "drop_table_sources"
)

// Rarity metric names
const (
	MetricNameRarityLookups         = "rarity_lookups_total"
	MetricNameIdentityCacheRequests = "identity_cache_requests_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextDropTableCompileDuration = "Time spent compiling a drop table resource"
	HelpTextDropRecordsSkipped       = "Number of malformed drop records skipped during compilation"
	HelpTextDropTableSources         = "Number of sources in the published drop table"

	HelpTextRarityLookups         = "Total number of rarity lookups by outcome"
	HelpTextIdentityCacheRequests = "Item identity cache lookups by outcome"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelDomain = "domain"
	LabelResult = "result"
)

// Lookup result label values
const (
	ResultHit      = "hit"
	ResultMiss     = "miss"
	ResultOverride = "override"
)

// HTTPLatencyBuckets ranges from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// CompileBuckets covers sub-millisecond fixtures up to multi-second full datasets.
var CompileBuckets = []float64{.0005, .001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5}
