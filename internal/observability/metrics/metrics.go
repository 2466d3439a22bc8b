package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "billing_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	statementGenerateTotal   *prometheus.CounterVec
	statementGenerateLatency *prometheus.HistogramVec
	statementRenderTotal     *prometheus.CounterVec
	statementRenderLatency   *prometheus.HistogramVec

	statementAmountCents   prometheus.Counter
	statementVolumeCredits prometheus.Counter
	statementPerformances  prometheus.Histogram

	catalogLoadTotal *prometheus.CounterVec
)

// Init registers billing metrics with the default registry.
func Init() {
	registerOnce.Do(func() {
		statementGenerateTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "statement_generate_total",
				Help: "Total statement computations by result",
			},
			[]string{"result"},
		)
		statementGenerateLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "statement_generate_latency_seconds",
				Help:    "Statement computation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		statementRenderTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "statement_render_total",
				Help: "Total statement renders by format and result",
			},
			[]string{"format", "result"},
		)
		statementRenderLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "statement_render_latency_seconds",
				Help:    "Statement render latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		)
		statementAmountCents = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "statement_amount_cents_total",
				Help: "Total amount billed across generated statements, in cents",
			},
		)
		statementVolumeCredits = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "statement_volume_credits_total",
				Help: "Total volume credits awarded across generated statements",
			},
		)
		statementPerformances = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "statement_performances",
				Help:    "Number of performances per statement",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
			},
		)
		catalogLoadTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "catalog_load_total",
				Help: "Total play catalog loads by source and result",
			},
			[]string{"source", "result"},
		)

		prometheus.MustRegister(
			statementGenerateTotal,
			statementGenerateLatency,
			statementRenderTotal,
			statementRenderLatency,
			statementAmountCents,
			statementVolumeCredits,
			statementPerformances,
			catalogLoadTotal,
		)
	})
}

// ObserveStatementGenerate records computation latency and result.
func ObserveStatementGenerate(result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if statementGenerateTotal != nil {
		statementGenerateTotal.WithLabelValues(result).Inc()
	}
	if statementGenerateLatency != nil {
		statementGenerateLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// ObserveStatementRender records render latency by format and result.
func ObserveStatementRender(format, result string, duration time.Duration) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	if statementRenderTotal != nil {
		statementRenderTotal.WithLabelValues(format, result).Inc()
	}
	if statementRenderLatency != nil {
		statementRenderLatency.WithLabelValues(format, result).Observe(duration.Seconds())
	}
}

// AddStatementTotals accumulates billed cents and awarded credits.
func AddStatementTotals(performances int, amountCents int64, volumeCredits int) {
	if statementPerformances != nil {
		statementPerformances.Observe(float64(performances))
	}
	if amountCents > 0 && statementAmountCents != nil {
		statementAmountCents.Add(float64(amountCents))
	}
	if volumeCredits > 0 && statementVolumeCredits != nil {
		statementVolumeCredits.Add(float64(volumeCredits))
	}
}

// IncCatalogLoad increments catalog load counter.
func IncCatalogLoad(source, result string) {
	if source == "" {
		source = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	if catalogLoadTotal != nil {
		catalogLoadTotal.WithLabelValues(source, result).Inc()
	}
}

// Exported constants for callers.
const (
	ResultSuccess = resultSuccess
	ResultError   = resultError
)
