// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Config contains the engine settings.
type Config struct {
	// FilterLimit caps the number of movies returned by FilterCatalog.
	FilterLimit int `json:"filter_limit"`

	// RankingCacheSize is the number of movie rankings kept in memory.
	// Zero disables the ranking cache.
	RankingCacheSize int `json:"ranking_cache_size"`

	// RankingCacheTTL bounds how long a ranking is reused.
	RankingCacheTTL time.Duration `json:"ranking_cache_ttl"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		FilterLimit:      10,
		RankingCacheSize: 1024,
		RankingCacheTTL:  30 * time.Minute,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.FilterLimit < 1 {
		return fmt.Errorf("filter_limit must be positive, got %d", c.FilterLimit)
	}
	if c.RankingCacheSize < 0 {
		return fmt.Errorf("ranking_cache_size must be non-negative, got %d", c.RankingCacheSize)
	}
	if c.RankingCacheSize > 0 && c.RankingCacheTTL <= 0 {
		return fmt.Errorf("ranking_cache_ttl must be positive when the cache is enabled, got %v", c.RankingCacheTTL)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// MarshalJSON writes durations as strings.
func (c *Config) MarshalJSON() ([]byte, error) {
	type Alias Config
	return json.Marshal(&struct {
		*Alias
		RankingCacheTTL string `json:"ranking_cache_ttl"`
	}{
		Alias:           (*Alias)(c),
		RankingCacheTTL: c.RankingCacheTTL.String(),
	})
}
