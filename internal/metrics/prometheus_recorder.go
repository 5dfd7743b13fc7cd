package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	stageDuration  *prom.HistogramVec
	runDuration    prom.Histogram
	filesWritten   *prom.CounterVec
	rewrites       prom.Counter
	collectedPaths prom.Gauge
	outcomes       *prom.CounterVec
}

// NewPrometheusRecorder constructs metrics and registers them with reg.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "autotoc",
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual pipeline stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"}),
		runDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "autotoc",
			Name:      "run_duration_seconds",
			Help:      "Total generation run duration",
			Buckets:   prom.DefBuckets,
		}),
		filesWritten: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "autotoc",
			Name:      "files_written_total",
			Help:      "Generated files written, by kind",
		}, []string{"kind"}),
		rewrites: prom.NewCounter(prom.CounterOpts{
			Namespace: "autotoc",
			Name:      "autosummary_rewrites_total",
			Help:      "Toctree lines replaced with autosummary links",
		}),
		collectedPaths: prom.NewGauge(prom.GaugeOpts{
			Namespace: "autotoc",
			Name:      "collected_paths",
			Help:      "Files and folders collected in the last run",
		}),
		outcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "autotoc",
			Name:      "run_outcomes_total",
			Help:      "Runs by final status",
		}, []string{"outcome"}),
	}
	reg.MustRegister(pr.stageDuration, pr.runDuration, pr.filesWritten, pr.rewrites, pr.collectedPaths, pr.outcomes)
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncFilesWritten(kind FileKind) {
	if p == nil {
		return
	}
	p.filesWritten.WithLabelValues(string(kind)).Inc()
}

func (p *PrometheusRecorder) IncRewrites(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.rewrites.Add(float64(n))
}

func (p *PrometheusRecorder) SetCollectedPaths(n int) {
	if p == nil {
		return
	}
	p.collectedPaths.Set(float64(n))
}

func (p *PrometheusRecorder) IncOutcome(outcome OutcomeLabel) {
	if p == nil {
		return
	}
	p.outcomes.WithLabelValues(string(outcome)).Inc()
}
