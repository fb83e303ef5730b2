// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ListingCacheMetrics counts listing cache outcomes.
// The zero value is usable; a nil receiver is a no-op.
type ListingCacheMetrics struct {
	Hits                 atomic.Uint64
	Misses               atomic.Uint64
	Errors               atomic.Uint64
	Invalidations        atomic.Uint64
	InvalidationFailures atomic.Uint64

	// Prometheus metrics (nil until Register is called)
	hitsCounter                 prometheus.Counter
	missesCounter               prometheus.Counter
	errorsCounter               prometheus.Counter
	invalidationsCounter        prometheus.Counter
	invalidationFailuresCounter prometheus.Counter

	registerOnce sync.Once
}

// Register registers the counters with registry. A nil registry is a no-op,
// and calls after the first one do nothing.
func (m *ListingCacheMetrics) Register(registry prometheus.Registerer) {
	if m == nil || registry == nil {
		return
	}

	m.registerOnce.Do(func() {
		factory := promauto.With(registry)

		m.hitsCounter = factory.NewCounter(prometheus.CounterOpts{
			Name: "opportunities_listing_cache_hits_total",
			Help: "Total number of listing pages served from cache",
		})

		m.missesCounter = factory.NewCounter(prometheus.CounterOpts{
			Name: "opportunities_listing_cache_misses_total",
			Help: "Total number of listing pages computed from the store",
		})

		m.errorsCounter = factory.NewCounter(prometheus.CounterOpts{
			Name: "opportunities_listing_cache_errors_total",
			Help: "Total number of failed cache reads and writes",
		})

		m.invalidationsCounter = factory.NewCounter(prometheus.CounterOpts{
			Name: "opportunities_listing_cache_invalidations_total",
			Help: "Total number of generation bumps",
		})

		m.invalidationFailuresCounter = factory.NewCounter(prometheus.CounterOpts{
			Name: "opportunities_listing_cache_invalidation_failures_total",
			Help: "Total number of generation bumps that failed",
		})
	})
}

// IncHit increments the hit counter.
func (m *ListingCacheMetrics) IncHit() {
	if m == nil {
		return
	}
	m.Hits.Add(1)
	if m.hitsCounter != nil {
		m.hitsCounter.Inc()
	}
}

// IncMiss increments the miss counter.
func (m *ListingCacheMetrics) IncMiss() {
	if m == nil {
		return
	}
	m.Misses.Add(1)
	if m.missesCounter != nil {
		m.missesCounter.Inc()
	}
}

// IncError increments the cache error counter.
func (m *ListingCacheMetrics) IncError() {
	if m == nil {
		return
	}
	m.Errors.Add(1)
	if m.errorsCounter != nil {
		m.errorsCounter.Inc()
	}
}

// IncInvalidation increments the invalidation counter.
func (m *ListingCacheMetrics) IncInvalidation() {
	if m == nil {
		return
	}
	m.Invalidations.Add(1)
	if m.invalidationsCounter != nil {
		m.invalidationsCounter.Inc()
	}
}

// IncInvalidationFailure increments the failed invalidation counter.
func (m *ListingCacheMetrics) IncInvalidationFailure() {
	if m == nil {
		return
	}
	m.InvalidationFailures.Add(1)
	if m.invalidationFailuresCounter != nil {
		m.invalidationFailuresCounter.Inc()
	}
}
