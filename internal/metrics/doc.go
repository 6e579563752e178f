// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package metrics defines the Prometheus collectors for the service.

All collectors are registered with the default registry through promauto
and exposed at /metrics. Callers use the Record helpers rather than the
collectors directly, except for the circuit breaker vectors which the
breaker package updates itself.

# Available Metrics

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Catalog:
  - catalog_loads_total{collection, result}
  - catalog_records{collection}

Recommendations:
  - similarity_ranking_duration_seconds
  - similarity_candidates
  - filter_result_size
  - criteria_extractions_total{kind}

Upstreams:
  - upstream_requests_total{upstream, operation, outcome}
  - upstream_request_duration_seconds{upstream, operation}

Caches:
  - cache_hits_total{cache}
  - cache_misses_total{cache}
  - cache_evictions_total{cache}

Circuit breakers:
  - circuit_breaker_state{name}
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}
*/
package metrics
