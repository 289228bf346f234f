// Package metric provides Prometheus metrics for Rolodex.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: Prometheus registry and HTTP handler
//   - collector.go: custom collector over storage statistics
//
// Metrics include:
//
//   - Request latency histograms
//   - Book and contact count gauges
//   - Snapshot write and reload counters
//
// Metrics are exposed at /metrics in Prometheus format.
package metric
