// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// The OpenAI and Search sections are optional. When either is incomplete
// the endpoints that need it answer 503 and everything else keeps working.
//
// Config is immutable after LoadWithKoanf() and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Data      DataConfig      `koanf:"data"`
	Recommend RecommendConfig `koanf:"recommend"`
	OpenAI    OpenAIConfig    `koanf:"openai"`
	Search    SearchConfig    `koanf:"search"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"` // Per-request handler timeout
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development" or "production"
}

// DataConfig locates the two catalog files.
//
// Environment Variables:
//   - EMBEDDINGS_PATH: Embeddings JSON file (default: data/embeddings.json)
//   - CATALOG_PATH: Top rated movies JSON file (default: data/topRatedMovies.json)
//   - CATALOG_WARM_ON_START: Load the catalog at startup (default: true)
type DataConfig struct {
	EmbeddingsPath string `koanf:"embeddings_path"`
	CatalogPath    string `koanf:"catalog_path"`
	WarmOnStart    bool   `koanf:"warm_on_start"`
}

// RecommendConfig tunes the recommendation engine.
type RecommendConfig struct {
	FilterLimit      int           `koanf:"filter_limit"`
	RankingCacheSize int           `koanf:"ranking_cache_size"`
	RankingCacheTTL  time.Duration `koanf:"ranking_cache_ttl"`
}

// OpenAIConfig holds the Azure OpenAI deployment settings.
//
// Environment Variables:
//   - OPENAI_URL: Resource endpoint, e.g. https://name.openai.azure.com/
//   - OPENAI_KEY: API key sent as the api-key header
//   - OPENAI_MODEL: Deployment name
//   - OPENAI_API_VERSION: api-version query parameter
type OpenAIConfig struct {
	URL               string        `koanf:"url"`
	Key               string        `koanf:"key"`
	Model             string        `koanf:"model"`
	APIVersion        string        `koanf:"api_version"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"` // 0 = unlimited
	Burst             int           `koanf:"burst"`
	MaxRetries        int           `koanf:"max_retries"` // Retries on HTTP 429
	RetryBaseDelay    time.Duration `koanf:"retry_base_delay"`
}

// Enabled reports whether enough is set to call the deployment.
func (c *OpenAIConfig) Enabled() bool {
	return c.URL != "" && c.Key != "" && c.Model != ""
}

// SearchConfig holds the Azure Cognitive Search settings.
//
// Environment Variables:
//   - AZURE_SEARCH_URL: Search service endpoint
//   - AZURE_SEARCH_KEY: API key
//   - AZURE_SEARCH_API_VERSION: api-version query parameter
//   - AZURE_SEARCH_INDEX: Index name (default: idx-movies)
type SearchConfig struct {
	URL        string        `koanf:"url"`
	Key        string        `koanf:"key"`
	APIVersion string        `koanf:"api_version"`
	Index      string        `koanf:"index"`
	Timeout    time.Duration `koanf:"timeout"`
	CacheTTL   time.Duration `koanf:"cache_ttl"` // 0 disables the detail cache
}

// Enabled reports whether enough is set to query the index.
func (c *SearchConfig) Enabled() bool {
	return c.URL != "" && c.Key != "" && c.Index != ""
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Addr returns the listen address.
func (c *ServerConfig) Addr() string {
	return joinHostPort(c.Host, c.Port)
}

// Load reads configuration from defaults, an optional file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
