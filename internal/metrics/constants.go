package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "sprout_http_requests_total"
	MetricNameHTTPRequestDuration  = "sprout_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "sprout_http_requests_in_flight"
)

// Business metric names
const (
	MetricNameActionsTotal     = "sprout_actions_total"
	MetricNameHarvestsTotal    = "sprout_harvests_total"
	MetricNameCoinsEarnedTotal = "sprout_coins_earned_total"
	MetricNameCoinsSpentTotal  = "sprout_coins_spent_total"
	MetricNameSeedsBoughtTotal = "sprout_seeds_bought_total"
	MetricNamePlotsBoughtTotal = "sprout_plots_bought_total"
	MetricNameLevelUpsTotal    = "sprout_level_ups_total"
	MetricNameSavesCreated     = "sprout_saves_created_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextActionsTotal     = "Total farm actions processed, by action and outcome"
	HelpTextHarvestsTotal    = "Total successful harvests"
	HelpTextCoinsEarnedTotal = "Total coins paid out by harvests"
	HelpTextCoinsSpentTotal  = "Total coins spent on seeds and plots"
	HelpTextSeedsBoughtTotal = "Total seeds bought, by crop"
	HelpTextPlotsBoughtTotal = "Total plots bought"
	HelpTextLevelUpsTotal    = "Total level advances"
	HelpTextSavesCreated     = "Total new saves created for first-time players"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelAction  = "action"
	LabelOutcome = "outcome"
	LabelCrop    = "crop"
)

// Outcome label values for the actions counter.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request
// duration in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
