// Package prometheus exports class map metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	m, err := classmap.New(pairs, classmap.WithMetricsCollector(promcm.NewCollector(reg)))
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/classmap"
)

// Collector implements classmap.MetricsCollector with Prometheus metrics.
type Collector struct {
	builds        *prometheus.CounterVec
	buildLatency  prometheus.Histogram
	members       prometheus.Counter
	slots         prometheus.Counter
	liveBytes     prometheus.Gauge
	bytesReleased prometheus.Counter
}

var _ classmap.MetricsCollector = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "classmap_builds_total",
			Help: "Class map construction attempts",
		}, []string{"status"}),
		buildLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "classmap_build_duration_seconds",
			Help:    "Latency of class map construction",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		members: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "classmap_members_total",
			Help: "Members stored by successful builds",
		}),
		slots: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "classmap_slots_allocated_total",
			Help: "Slots allocated by successful builds",
		}),
		liveBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "classmap_live_bytes",
			Help: "Bytes held by class maps that have not been closed",
		}),
		bytesReleased: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "classmap_bytes_released_total",
			Help: "Bytes released by closed class maps",
		}),
	}
	reg.MustRegister(c.builds, c.buildLatency, c.members, c.slots, c.liveBytes, c.bytesReleased)
	return c
}

// RecordBuild implements classmap.MetricsCollector.
func (c *Collector) RecordBuild(count int, capacity uint32, duration time.Duration, err error) {
	c.buildLatency.Observe(duration.Seconds())
	if err != nil {
		c.builds.WithLabelValues("error").Inc()
		return
	}
	c.builds.WithLabelValues("ok").Inc()
	c.members.Add(float64(count))
	c.slots.Add(float64(capacity))
	c.liveBytes.Add(float64(classmap.BaseSize + int64(capacity)*classmap.EntrySize))
}

// RecordClose implements classmap.MetricsCollector.
func (c *Collector) RecordClose(byteSize int64) {
	c.liveBytes.Sub(float64(byteSize))
	c.bytesReleased.Add(float64(byteSize))
}
