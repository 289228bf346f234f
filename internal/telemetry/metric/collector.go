package metric

import "github.com/prometheus/client_golang/prometheus"

// StatsFunc reports point-in-time storage statistics.
type StatsFunc func() StoreStats

// StoreStats mirrors the counters exposed by the snapshot store.
type StoreStats struct {
	Books        int
	Contacts     int
	SnapshotSize int64
	Persists     uint64
	Reloads      uint64
}

// StoreCollector exposes storage statistics as Prometheus metrics.
// It reads the counters on every scrape, so gauge values always
// reflect the live store.
type StoreCollector struct {
	source StatsFunc

	books        *prometheus.Desc
	contacts     *prometheus.Desc
	snapshotSize *prometheus.Desc
	persists     *prometheus.Desc
	reloads      *prometheus.Desc
}

// NewStoreCollector creates a collector over the given stats source.
func NewStoreCollector(source StatsFunc) *StoreCollector {
	return &StoreCollector{
		source: source,
		books: prometheus.NewDesc(
			namespace+"_books",
			"Number of address books in the store.",
			nil, nil,
		),
		contacts: prometheus.NewDesc(
			namespace+"_contacts",
			"Number of contacts across all address books.",
			nil, nil,
		),
		snapshotSize: prometheus.NewDesc(
			namespace+"_snapshot_size_bytes",
			"Size of the JSON snapshot file in bytes.",
			nil, nil,
		),
		persists: prometheus.NewDesc(
			namespace+"_snapshot_writes_total",
			"Total snapshot files written since startup.",
			nil, nil,
		),
		reloads: prometheus.NewDesc(
			namespace+"_snapshot_reloads_total",
			"Total snapshot reloads triggered by external edits.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *StoreCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.books
	ch <- c.contacts
	ch <- c.snapshotSize
	ch <- c.persists
	ch <- c.reloads
}

// Collect implements prometheus.Collector.
func (c *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source()
	ch <- prometheus.MustNewConstMetric(c.books, prometheus.GaugeValue, float64(stats.Books))
	ch <- prometheus.MustNewConstMetric(c.contacts, prometheus.GaugeValue, float64(stats.Contacts))
	ch <- prometheus.MustNewConstMetric(c.snapshotSize, prometheus.GaugeValue, float64(stats.SnapshotSize))
	ch <- prometheus.MustNewConstMetric(c.persists, prometheus.CounterValue, float64(stats.Persists))
	ch <- prometheus.MustNewConstMetric(c.reloads, prometheus.CounterValue, float64(stats.Reloads))
}
