// Package metrics provides Prometheus metrics for the insights service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueriesTotal counts answered queries by keyword group and result kind
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "insights",
			Subsystem: "query",
			Name:      "answered_total",
			Help:      "Total number of answered queries by keyword group and result kind",
		},
		[]string{"group", "kind"},
	)

	// QueryDuration tracks dispatch time in seconds
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "insights",
			Subsystem: "query",
			Name:      "duration_seconds",
			Help:      "Duration of query dispatch in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"group"},
	)

	// QueryRejections counts queries refused before dispatch
	QueryRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "insights",
			Subsystem: "query",
			Name:      "rejected_total",
			Help:      "Total number of queries rejected by validation",
		},
		[]string{"reason"},
	)

	// ValidationWarnings counts results flagged as implausible
	ValidationWarnings = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "insights",
			Subsystem: "query",
			Name:      "validation_warnings_total",
			Help:      "Total number of results carrying a validation warning",
		},
	)

	// AnalyticsRuns counts advanced analytics runs by mode
	AnalyticsRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "insights",
			Subsystem: "analytics",
			Name:      "runs_total",
			Help:      "Total number of advanced analytics runs by mode",
		},
		[]string{"mode"},
	)

	// DatasetRows tracks loaded rows per source table
	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "insights",
			Subsystem: "dataset",
			Name:      "rows",
			Help:      "Rows loaded per source table",
		},
		[]string{"table"},
	)

	// SaleLines tracks the number of merged sale lines
	SaleLines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "insights",
			Subsystem: "dataset",
			Name:      "sale_lines",
			Help:      "Number of sale lines produced by the merge",
		},
	)

	// TableLoadFailures counts tables that failed to load
	TableLoadFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "insights",
			Subsystem: "dataset",
			Name:      "load_failures_total",
			Help:      "Total number of source tables that failed to load",
		},
		[]string{"table"},
	)

	// HTTPRequestsTotal tracks inbound HTTP requests
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "insights",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of inbound HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	// HTTPRequestDuration tracks inbound HTTP request duration
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "insights",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of inbound HTTP requests in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)
)
