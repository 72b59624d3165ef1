// Package metrics exposes Prometheus instruments for ranking runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Recorder struct {
	runs      *prometheus.CounterVec
	duration  prometheus.Histogram
	campaigns prometheus.Gauge
	records   prometheus.Gauge
}

// NewRecorder builds the instruments and registers them on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campaign_ranker",
			Name:      "runs_total",
			Help:      "Ranking runs by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "campaign_ranker",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a load+rank run.",
			Buckets:   prometheus.DefBuckets,
		}),
		campaigns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "campaign_ranker",
			Name:      "campaigns",
			Help:      "Campaigns in the latest report.",
		}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "campaign_ranker",
			Name:      "records",
			Help:      "Raw records read by the latest run.",
		}),
	}
	reg.MustRegister(r.runs, r.duration, r.campaigns, r.records)
	return r
}

func (r *Recorder) Success(start time.Time, records, campaigns int) {
	r.runs.WithLabelValues("ok").Inc()
	r.duration.Observe(time.Since(start).Seconds())
	r.records.Set(float64(records))
	r.campaigns.Set(float64(campaigns))
}

func (r *Recorder) Failure(start time.Time) {
	r.runs.WithLabelValues("error").Inc()
	r.duration.Observe(time.Since(start).Seconds())
}
