// Package metrics holds the Prometheus collectors of the ingest pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "campaign_lens"

// Ingest outcome labels.
const (
	OutcomeStored = "stored"
	OutcomeEmpty  = "empty"
	OutcomeFailed = "failed"
)

// Collector records ingest activity on a private registry. A nil
// *Collector is valid and records nothing.
type Collector struct {
	registry *prometheus.Registry

	files        *prometheus.CounterVec
	offerRows    prometheus.Histogram
	dailyRows    prometheus.Histogram
	droppedRows  *prometheus.CounterVec
	parseSeconds prometheus.Histogram
	stored       prometheus.Gauge
}

// New registers the collectors plus the Go and process collectors.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		files: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ingested_files_total",
			Help:      "Uploaded export files by outcome.",
		}, []string{"outcome"}),
		offerRows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "offer_rows",
			Help:      "Offer rows kept per parsed file.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
		dailyRows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "daily_rows",
			Help:      "Daily rows kept per parsed file.",
			Buckets:   prometheus.ExponentialBuckets(7, 2, 7),
		}),
		droppedRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dropped_rows_total",
			Help:      "Rows rejected by the parser, by table.",
		}, []string{"table"}),
		parseSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "parse_duration_seconds",
			Help:      "Time spent parsing one file.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
		stored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stored_campaigns",
			Help:      "Campaigns currently stored.",
		}),
	}
	c.registry.MustRegister(
		c.files, c.offerRows, c.dailyRows, c.droppedRows, c.parseSeconds, c.stored,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Parsed records one successful parse.
func (c *Collector) Parsed(d time.Duration, offers, daily, droppedOffers, droppedDaily int) {
	if c == nil {
		return
	}
	c.parseSeconds.Observe(d.Seconds())
	c.offerRows.Observe(float64(offers))
	c.dailyRows.Observe(float64(daily))
	c.droppedRows.WithLabelValues("offers").Add(float64(droppedOffers))
	c.droppedRows.WithLabelValues("daily").Add(float64(droppedDaily))
}

// File counts one upload by outcome.
func (c *Collector) File(outcome string) {
	if c == nil {
		return
	}
	c.files.WithLabelValues(outcome).Inc()
}

// Stored sets the stored campaign gauge.
func (c *Collector) Stored(n int) {
	if c == nil {
		return
	}
	c.stored.Set(float64(n))
}

// Registry exposes the registry, mainly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
