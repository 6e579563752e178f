// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateData,
		c.validateRecommend,
		c.validateOpenAI,
		c.validateSearch,
		c.validateCORS,
		c.validateRateLimits,
		c.validateLogging,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	switch strings.ToLower(c.Server.Environment) {
	case "development", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development or production, got: %s", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateData() error {
	if strings.TrimSpace(c.Data.EmbeddingsPath) == "" {
		return fmt.Errorf("EMBEDDINGS_PATH is required")
	}
	if strings.TrimSpace(c.Data.CatalogPath) == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.FilterLimit <= 0 {
		return fmt.Errorf("RECOMMEND_FILTER_LIMIT must be positive, got %d", c.Recommend.FilterLimit)
	}
	if c.Recommend.RankingCacheSize < 0 {
		return fmt.Errorf("RECOMMEND_CACHE_SIZE must not be negative, got %d", c.Recommend.RankingCacheSize)
	}
	if c.Recommend.RankingCacheSize > 0 && c.Recommend.RankingCacheTTL <= 0 {
		return fmt.Errorf("RECOMMEND_CACHE_TTL must be positive when the ranking cache is enabled")
	}
	return nil
}

// validateOpenAI only checks the section when a URL is set. A partially
// configured deployment is reported so it fails at startup, not per request.
func (c *Config) validateOpenAI() error {
	o := c.OpenAI
	if o.URL == "" && o.Key == "" && o.Model == "" {
		return nil
	}
	if o.URL == "" || o.Key == "" || o.Model == "" {
		return fmt.Errorf("OPENAI_URL, OPENAI_KEY and OPENAI_MODEL must be set together")
	}
	if err := validateHTTPURL(o.URL, "OPENAI_URL"); err != nil {
		return err
	}
	if o.APIVersion == "" {
		return fmt.Errorf("OPENAI_API_VERSION is required")
	}
	if o.Timeout <= 0 {
		return fmt.Errorf("OPENAI_TIMEOUT must be positive")
	}
	if o.RequestsPerSecond < 0 {
		return fmt.Errorf("OPENAI_RPS must not be negative")
	}
	if o.RequestsPerSecond > 0 && o.Burst < 1 {
		return fmt.Errorf("OPENAI_BURST must be at least 1 when OPENAI_RPS is set")
	}
	if o.MaxRetries < 0 || o.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be between 0 and 10")
	}
	return nil
}

func (c *Config) validateSearch() error {
	s := c.Search
	if s.URL == "" && s.Key == "" {
		return nil
	}
	if s.URL == "" || s.Key == "" {
		return fmt.Errorf("AZURE_SEARCH_URL and AZURE_SEARCH_KEY must be set together")
	}
	if err := validateHTTPURL(s.URL, "AZURE_SEARCH_URL"); err != nil {
		return err
	}
	if strings.TrimSpace(s.Index) == "" {
		return fmt.Errorf("AZURE_SEARCH_INDEX is required")
	}
	if s.APIVersion == "" {
		return fmt.Errorf("AZURE_SEARCH_API_VERSION is required")
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("AZURE_SEARCH_TIMEOUT must be positive")
	}
	if s.CacheTTL < 0 {
		return fmt.Errorf("AZURE_SEARCH_CACHE_TTL must not be negative")
	}
	return nil
}

// validateCORS rejects malformed origins and a wildcard in production.
func (c *Config) validateCORS() error {
	for _, origin := range c.Security.CORSOrigins {
		if err := validateOriginURL(origin); err != nil {
			return err
		}
	}
	if c.IsProduction() && c.hasWildcardCORS() {
		return fmt.Errorf("CORS_ORIGINS=* (wildcard) is not allowed in production. " +
			"Set specific origins: CORS_ORIGINS=https://yourdomain.com")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if CORS configuration has security concerns
// that should be logged at startup
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.hasWildcardCORS()
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if !validLogFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
