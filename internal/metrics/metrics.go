// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Catalog Metrics
	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_loads_total",
			Help: "Catalog collection load attempts by result",
		},
		[]string{"collection", "result"}, // result: "loaded", "malformed", "read_error"
	)

	CatalogRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_records",
			Help: "Number of records installed per catalog collection",
		},
		[]string{"collection"},
	)

	// Recommendation Metrics
	SimilarityDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "similarity_ranking_duration_seconds",
			Help:    "Time spent scoring and ranking similar movies",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	SimilarityCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "similarity_candidates",
			Help:    "Number of movies scored per similarity request",
			Buckets: prometheus.ExponentialBuckets(10, 4, 7),
		},
	)

	FilterResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "filter_result_size",
			Help:    "Number of movies left after applying criteria, before truncation",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000, 5000},
		},
	)

	CriteriaExtractions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "criteria_extractions_total",
			Help: "Chat responses inspected for criteria by outcome",
		},
		[]string{"kind"}, // kind: "criteria", "text", "nothing"
	)

	// Upstream Metrics
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Requests to upstream collaborators by outcome",
		},
		[]string{"upstream", "operation", "outcome"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Upstream request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"upstream", "operation"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions",
		},
		[]string{"cache"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the API rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordCatalogLoad records a collection load attempt. The record gauge is
// only updated when the load installed data.
func RecordCatalogLoad(collection, result string, records int) {
	CatalogLoads.WithLabelValues(collection, result).Inc()
	if result == "loaded" {
		CatalogRecords.WithLabelValues(collection).Set(float64(records))
	}
}

// RecordSimilarityRanking records one similarity computation.
func RecordSimilarityRanking(duration time.Duration, candidates int) {
	SimilarityDuration.Observe(duration.Seconds())
	SimilarityCandidates.Observe(float64(candidates))
}

// RecordFilterResult records how many movies matched a filter.
func RecordFilterResult(matched int) {
	FilterResults.Observe(float64(matched))
}

// RecordCriteriaExtraction counts an extraction outcome.
func RecordCriteriaExtraction(kind string) {
	CriteriaExtractions.WithLabelValues(kind).Inc()
}

// RecordUpstreamRequest records a call to the language model or the search
// index.
func RecordUpstreamRequest(upstream, operation, outcome string, duration time.Duration) {
	UpstreamRequests.WithLabelValues(upstream, operation, outcome).Inc()
	UpstreamDuration.WithLabelValues(upstream, operation).Observe(duration.Seconds())
}

// RecordCacheHit counts a cache hit.
func RecordCacheHit(cache string) {
	CacheHits.WithLabelValues(cache).Inc()
}

// RecordCacheMiss counts a cache miss.
func RecordCacheMiss(cache string) {
	CacheMisses.WithLabelValues(cache).Inc()
}

// RecordCacheEviction counts an eviction.
func RecordCacheEviction(cache string) {
	CacheEvictions.WithLabelValues(cache).Inc()
}
