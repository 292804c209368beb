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

// Business Metrics
var (
	ActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionsTotal,
			Help: HelpTextActionsTotal,
		},
		[]string{LabelAction, LabelOutcome},
	)

	HarvestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHarvestsTotal,
			Help: HelpTextHarvestsTotal,
		},
	)

	CoinsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsEarnedTotal,
			Help: HelpTextCoinsEarnedTotal,
		},
	)

	CoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsSpentTotal,
			Help: HelpTextCoinsSpentTotal,
		},
	)

	SeedsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSeedsBoughtTotal,
			Help: HelpTextSeedsBoughtTotal,
		},
		[]string{LabelCrop},
	)

	PlotsBought = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlotsBoughtTotal,
			Help: HelpTextPlotsBoughtTotal,
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUpsTotal,
			Help: HelpTextLevelUpsTotal,
		},
	)

	SavesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSavesCreated,
			Help: HelpTextSavesCreated,
		},
	)
)
