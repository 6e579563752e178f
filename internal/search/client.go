// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package search looks up full movie documents in an Azure Cognitive Search
// index. Results are cached in an in-memory DetailStore.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/marquee/internal/breaker"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
)

const (
	maxErrorBodySize = 64 * 1024
	upstreamName     = "search"
)

var (
	// ErrNotConfigured means the index endpoint or key is missing.
	ErrNotConfigured = errors.New("search index not configured")

	// ErrNotFound means the index has no document with that id.
	ErrNotFound = errors.New("movie not found in search index")

	// ErrInvalidID means the id cannot be used as a document key.
	ErrInvalidID = errors.New("invalid movie id")
)

// Client fetches documents from one search index.
type Client struct {
	baseURL    string
	index      string
	apiKey     string
	apiVersion string
	client     *http.Client
	breaker    *breaker.Breaker[*MovieDetails]
	store      *DetailStore
}

// NewClient creates a client. store may be nil to disable caching.
func NewClient(cfg *config.SearchConfig, store *DetailStore) (*Client, error) {
	if cfg == nil || !cfg.Enabled() {
		return nil, ErrNotConfigured
	}
	if _, err := url.Parse(cfg.URL); err != nil {
		return nil, fmt.Errorf("invalid search URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		index:      cfg.Index,
		apiKey:     cfg.Key,
		apiVersion: cfg.APIVersion,
		client:     &http.Client{Timeout: timeout},
		breaker: breaker.New[*MovieDetails](breaker.Settings{
			Name: "search-api",
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled)
			},
		}),
		store: store,
	}, nil
}

// BreakerState reports the circuit breaker state for health output.
func (c *Client) BreakerState() string {
	return c.breaker.State()
}

// GetMovie returns the document for id, from the store when cached.
func (c *Client) GetMovie(ctx context.Context, id string) (*MovieDetails, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.ContainsAny(id, "/?#") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	if c.store != nil {
		cached, ok, err := c.store.Get(id)
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("movie_id", id).Msg("Detail store read failed")
		} else if ok {
			return cached, nil
		}
	}

	start := time.Now()
	details, err := c.breaker.Execute(func() (*MovieDetails, error) {
		return c.fetch(ctx, id)
	})
	metrics.RecordUpstreamRequest(upstreamName, "get_document", outcome(err), time.Since(start))
	if err != nil {
		return nil, err
	}

	if c.store != nil {
		if err := c.store.Put(id, details); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("movie_id", id).Msg("Detail store write failed")
		}
	}
	return details, nil
}

func (c *Client) documentURL(id string) string {
	u := fmt.Sprintf("%s/indexes/%s/docs/%s", c.baseURL, url.PathEscape(c.index), url.PathEscape(id))
	if c.apiVersion != "" {
		u += "?api-version=" + url.QueryEscape(c.apiVersion)
	}
	return u
}

func (c *Client) fetch(ctx context.Context, id string) (*MovieDetails, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.documentURL(id), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, fmt.Errorf("document request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var details MovieDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, fmt.Errorf("decode movie document: %w", err)
	}
	return &details, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, breaker.ErrOpen):
		return "rejected"
	default:
		return "error"
	}
}
