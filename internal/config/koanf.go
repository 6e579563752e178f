// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/marquee/config.yaml",
	"/etc/marquee/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         60 * time.Second,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    90 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Data: DataConfig{
			EmbeddingsPath: "data/embeddings.json",
			CatalogPath:    "data/topRatedMovies.json",
			WarmOnStart:    true,
		},
		Recommend: RecommendConfig{
			FilterLimit:      10,
			RankingCacheSize: 1024,
			RankingCacheTTL:  30 * time.Minute,
		},
		OpenAI: OpenAIConfig{
			APIVersion:        "2024-02-01",
			Timeout:           60 * time.Second,
			RequestsPerSecond: 5,
			Burst:             5,
			MaxRetries:        3,
			RetryBaseDelay:    time.Second,
		},
		Search: SearchConfig{
			APIVersion: "2023-11-01",
			Index:      "idx-movies",
			Timeout:    30 * time.Second,
			CacheTTL:   time.Hour,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"http://localhost:4001"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any mapped setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	// Server
	"port":                     "server.port",
	"http_port":                "server.port",
	"http_host":                "server.host",
	"http_timeout":             "server.timeout",
	"http_read_timeout":        "server.read_timeout",
	"http_write_timeout":       "server.write_timeout",
	"http_idle_timeout":        "server.idle_timeout",
	"http_shutdown_timeout":    "server.shutdown_timeout",
	"environment":              "server.environment",
	"embeddings_path":          "data.embeddings_path",
	"catalog_path":             "data.catalog_path",
	"catalog_warm_on_start":    "data.warm_on_start",
	"recommend_filter_limit":   "recommend.filter_limit",
	"recommend_cache_size":     "recommend.ranking_cache_size",
	"recommend_cache_ttl":      "recommend.ranking_cache_ttl",
	"openai_url":               "openai.url",
	"openai_key":               "openai.key",
	"openai_model":             "openai.model",
	"openai_api_version":       "openai.api_version",
	"openai_timeout":           "openai.timeout",
	"openai_rps":               "openai.requests_per_second",
	"openai_burst":             "openai.burst",
	"openai_max_retries":       "openai.max_retries",
	"openai_retry_base_delay":  "openai.retry_base_delay",
	"azure_search_url":         "search.url",
	"azure_search_key":         "search.key",
	"azure_search_api_version": "search.api_version",
	"azure_search_index":       "search.index",
	"azure_search_timeout":     "search.timeout",
	"azure_search_cache_ttl":   "search.cache_ttl",
	"front_end_url":            "security.cors_origins",
	"cors_origins":             "security.cors_origins",
	"rate_limit_reqs":          "security.rate_limit_reqs",
	"rate_limit_window":        "security.rate_limit_window",
	"disable_rate_limit":       "security.rate_limit_disabled",
	"log_level":                "logging.level",
	"log_format":               "logging.format",
	"log_caller":               "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - PORT -> server.port
//   - OPENAI_KEY -> openai.key
//   - FRONT_END_URL -> security.cors_origins
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
