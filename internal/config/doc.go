// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package config provides centralized configuration management for Marquee.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. The result is validated once by
LoadWithKoanf and never mutated afterwards.

# Configuration Structure

  - ServerConfig: HTTP listener, timeouts and environment
  - DataConfig: Locations of the embeddings and movie catalog files
  - RecommendConfig: Filter result cap and ranking cache sizing
  - OpenAIConfig: Azure OpenAI deployment (optional)
  - SearchConfig: Azure Cognitive Search index (optional)
  - SecurityConfig: CORS origins and rate limiting
  - LoggingConfig: zerolog level, format and caller info

# Environment Variables

Server:
  - PORT / HTTP_PORT: Listen port (default: 8080)
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_TIMEOUT: Per-request handler timeout (default: 60s)
  - ENVIRONMENT: development or production (default: development)

Data:
  - EMBEDDINGS_PATH: default data/embeddings.json
  - CATALOG_PATH: default data/topRatedMovies.json
  - CATALOG_WARM_ON_START: default true

Upstreams:
  - OPENAI_URL, OPENAI_KEY, OPENAI_MODEL, OPENAI_API_VERSION
  - OPENAI_RPS, OPENAI_BURST, OPENAI_MAX_RETRIES, OPENAI_RETRY_BASE_DELAY
  - AZURE_SEARCH_URL, AZURE_SEARCH_KEY, AZURE_SEARCH_API_VERSION, AZURE_SEARCH_INDEX
  - AZURE_SEARCH_CACHE_TTL: Detail cache lifetime, 0 disables (default: 1h)

Security:
  - FRONT_END_URL / CORS_ORIGINS: Comma-separated allowed origins (default: http://localhost:4001)
  - RATE_LIMIT_REQS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include caller info (default: false)

# Config File

CONFIG_PATH points at a YAML file. Without it config.yaml, config.yml and
/etc/marquee/config.yaml are tried in order:

	server:
	  port: 8080
	data:
	  embeddings_path: /data/embeddings.json
	openai:
	  url: https://example.openai.azure.com/
	  model: gpt-35-turbo

# Thread Safety

The Config struct is immutable after LoadWithKoanf() returns, making it safe for
concurrent access from multiple goroutines without synchronization.
*/
package config
