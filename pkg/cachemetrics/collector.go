// Package cachemetrics exports LRU cache counters as Prometheus metrics.
//
//	c := cache.NewLRUCache[string, []byte](1024)
//	prometheus.MustRegister(cachemetrics.NewCollector("thumbnails", c))
//
// The collector reads Stats on every scrape. The cache itself is not
// synchronized, so when it is mutated from other goroutines wrap it with a
// StatsSource that takes the same lock as the writers.
package cachemetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/collections/pkg/cache"
)

const namespace = "collections"

// StatsSource is anything that can report cache statistics.
// *cache.LRUCache satisfies it for every type parameter.
type StatsSource interface {
	Stats() cache.Stats
}

// StatsFunc adapts a function to StatsSource.
type StatsFunc func() cache.Stats

func (f StatsFunc) Stats() cache.Stats { return f() }

// Collector is a prometheus.Collector for one cache.
type Collector struct {
	src StatsSource

	hits      *prometheus.Desc
	misses    *prometheus.Desc
	evictions *prometheus.Desc
	entries   *prometheus.Desc
	capacity  *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector labelling every metric with cache=name.
// It panics if src is nil.
func NewCollector(name string, src StatsSource) *Collector {
	if src == nil {
		panic(ErrNilSource)
	}
	labels := prometheus.Labels{"cache": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "cache", metric), help, nil, labels)
	}
	return &Collector{
		src:       src,
		hits:      desc("hits_total", "Number of lookups that found the key."),
		misses:    desc("misses_total", "Number of lookups that did not find the key."),
		evictions: desc("evictions_total", "Number of entries evicted to make room for new keys."),
		entries:   desc("entries", "Number of entries currently cached."),
		capacity:  desc("capacity", "Maximum number of entries the cache holds."),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.evictions
	ch <- c.entries
	ch <- c.capacity
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(s.Evictions))
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(s.Len))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity))
}
