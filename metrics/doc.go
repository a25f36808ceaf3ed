// Package metrics exposes handler statistics to Prometheus.
package metrics
