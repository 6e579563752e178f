// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Command server runs the Marquee HTTP API.

Marquee answers two questions about a catalog of top-rated movies: which
movies are most like this one (cosine similarity over precomputed
embeddings) and which movies match these criteria (genre, MPAA rating,
release date and IMDb score bounds). Criteria come from a JSON body or
from a language model turning a conversation into a filter_movies tool
call.

# Process Layout

	marquee (root)
	├── data-layer
	│   ├── catalog-warmer   (CATALOG_WARM_ON_START, one-shot)
	│   └── ranking-pruner   (when the ranking cache is enabled)
	└── api-layer
	    └── http-server

Start-up order:

 1. Configuration: koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Catalog cache over the embeddings and catalog files (lazy, loaded once)
 4. Recommendation engine with an LRU ranking cache
 5. Optional Azure OpenAI client (rate limited, circuit breaker)
 6. Optional Azure Cognitive Search client with an in-memory Badger cache
 7. chi router and the suture supervisor tree

SIGINT and SIGTERM cancel the tree; the HTTP server drains within
HTTP_SHUTDOWN_TIMEOUT.

# Configuration

	HTTP_PORT            listen port (default 8080)
	EMBEDDINGS_PATH      embeddings file (default data/embeddings.json)
	CATALOG_PATH         catalog file (default data/topRatedMovies.json)
	OPENAI_URL, OPENAI_KEY, OPENAI_MODEL
	AZURE_SEARCH_URL, AZURE_SEARCH_KEY, AZURE_SEARCH_INDEX
	CORS_ORIGINS         comma-separated allowed origins
	LOG_LEVEL, LOG_FORMAT

A missing collaborator disables only the endpoints that need it.
*/
package main
