package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/riskibarqy/livematch/internal/usecase"
)

// ReconcileMetrics exposes reconciliation pass outcomes on a private registry.
type ReconcileMetrics struct {
	registry *prometheus.Registry

	PassesTotal  *prometheus.CounterVec
	PassDuration *prometheus.HistogramVec
	WritesTotal  *prometheus.CounterVec
	SkippedTotal *prometheus.CounterVec
}

func NewReconcileMetrics() *ReconcileMetrics {
	registry := prometheus.NewRegistry()

	m := &ReconcileMetrics{
		registry: registry,
		PassesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "livematch_passes_total",
				Help: "Reconciliation passes by result",
			},
			[]string{"result"},
		),
		PassDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "livematch_pass_duration_seconds",
				Help:    "Wall time of one reconciliation pass including its transaction",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"result"},
		),
		WritesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "livematch_writes_total",
				Help: "Committed writes by record kind and operation",
			},
			[]string{"record", "op"},
		),
		SkippedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "livematch_skipped_records_total",
				Help: "Feed records skipped during reconciliation by reason",
			},
			[]string{"reason"},
		),
	}

	registry.MustRegister(
		m.PassesTotal,
		m.PassDuration,
		m.WritesTotal,
		m.SkippedTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *ReconcileMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *ReconcileMetrics) ObservePass(result string, duration time.Duration, tally *usecase.PassTally) {
	m.PassesTotal.WithLabelValues(result).Inc()
	if duration > 0 {
		m.PassDuration.WithLabelValues(result).Observe(duration.Seconds())
	}
	if tally == nil {
		return
	}

	m.addWrites("event", "create", tally.EventsCreated)
	m.addWrites("event", "update", tally.EventsUpdated)
	m.addWrites("event", "delete", tally.EventsDeleted)
	m.addWrites("participant", "create", tally.ParticipantsCreated)
	m.addWrites("participant", "delete", tally.ParticipantsDeleted)
	m.addWrites("statistics", "upsert", tally.StatisticsWritten)
	for reason, count := range tally.Skipped {
		m.SkippedTotal.WithLabelValues(reason).Add(float64(count))
	}
}

func (m *ReconcileMetrics) addWrites(record, op string, count int) {
	if count > 0 {
		m.WritesTotal.WithLabelValues(record, op).Add(float64(count))
	}
}
