package metrics

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/nlogwire/core"
	"github.com/philipp01105/nlogwire/handler"
)

var droppedLevels = []core.Level{core.DebugLevel, core.InfoLevel, core.WarnLevel, core.ErrorLevel}

// Collector exports handler statistics on every scrape.
type Collector struct {
	providers map[string]handler.StatsProvider
	names     []string

	processed *prometheus.Desc
	blocked   *prometheus.Desc
	dropped   *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector over providers keyed by handler name.
func NewCollector(namespace string, providers map[string]handler.StatsProvider) *Collector {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Collector{
		providers: providers,
		names:     names,
		processed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "handler", "processed_total"),
			"Entries written by the handler.",
			[]string{"handler"}, nil,
		),
		blocked: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "handler", "blocked_total"),
			"Times the handler queue was full and the caller blocked.",
			[]string{"handler"}, nil,
		),
		dropped: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "handler", "dropped_total"),
			"Entries dropped by the handler queue.",
			[]string{"handler", "level"}, nil,
		),
	}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.processed
	ch <- c.blocked
	ch <- c.dropped
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, name := range c.names {
		s := c.providers[name].Stats()
		ch <- prometheus.MustNewConstMetric(c.processed, prometheus.CounterValue, float64(s.ProcessedTotal), name)
		ch <- prometheus.MustNewConstMetric(c.blocked, prometheus.CounterValue, float64(s.BlockedTotal), name)
		for _, level := range droppedLevels {
			ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.CounterValue,
				float64(s.DroppedTotal[level]), name, strings.ToLower(level.String()))
		}
	}
}
