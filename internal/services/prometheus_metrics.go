package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	statementsGenerated *prometheus.CounterVec
	generationDuration  prometheus.Histogram
	statementsPublished prometheus.Counter
	documentsRendered   *prometheus.CounterVec
	renderDuration      prometheus.Histogram
	otpEvents           *prometheus.CounterVec
	apiErrors           *prometheus.CounterVec
	statementNetIncome  prometheus.Histogram
}

// NewPrometheusMetrics registers the application metrics with reg. Pass prometheus.DefaultRegisterer
// to expose them on /metrics; tests pass a fresh registry.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		statementsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statements_generated_total",
				Help: "Total number of owner statement generation attempts",
			},
			[]string{"status"},
		),
		generationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_generation_duration_milliseconds",
				Help:    "Owner statement generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		statementsPublished: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "statements_published_total",
				Help: "Total number of owner statements published",
			},
		),
		documentsRendered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_documents_rendered_total",
				Help: "Total number of statement documents rendered",
			},
			[]string{"format", "status"},
		),
		renderDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_render_duration_milliseconds",
				Help:    "Statement document render duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		otpEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "otp_events_total",
				Help: "Total number of one-time login code events",
			},
			[]string{"event"},
		),
		apiErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API error responses",
			},
			[]string{"code", "status"},
		),
		statementNetIncome: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_net_income",
				Help:    "Net income of generated statements in currency units",
				Buckets: prometheus.ExponentialBuckets(10, 4, 8),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "statement_generated":
		if status != "" {
			m.statementsGenerated.WithLabelValues(status).Inc()
		}
	case "statement_published":
		m.statementsPublished.Inc()
	case "statement_document_rendered":
		m.documentsRendered.WithLabelValues(tags["format"], status).Inc()
	case "otp_event":
		if event := tags["event"]; event != "" {
			m.otpEvents.WithLabelValues(event).Inc()
		}
	case "api_error":
		m.apiErrors.WithLabelValues(tags["code"], status).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "statement_generation":
		m.generationDuration.Observe(float64(duration.Milliseconds()))
	case "statement_render":
		m.renderDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "statement_net_income":
		m.statementNetIncome.Observe(value)
	}
}
