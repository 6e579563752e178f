// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/marquee/internal/breaker"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/validation"
)

// maxErrorBodySize bounds how much of an error response is read.
const maxErrorBodySize = 64 * 1024

const upstreamName = "openai"

var (
	// ErrNotConfigured means the endpoint, key or model is missing.
	ErrNotConfigured = errors.New("language model not configured")

	// ErrRateLimited means every retry got HTTP 429.
	ErrRateLimited = errors.New("language model rate limit exceeded")

	// ErrInvalidRequest means the chat request failed validation before sending.
	ErrInvalidRequest = errors.New("invalid chat request")
)

// StatusError is a non-2xx response from the completions endpoint.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("chat completion failed with status %d: %s", e.StatusCode, e.Body)
}

// Client calls an Azure OpenAI chat completions deployment.
//
// Requests pass through a client-side rate limiter and a circuit breaker.
// HTTP 429 responses are retried with exponential backoff (1s, 2s, 4s...)
// unless the server sends Retry-After.
type Client struct {
	endpoint       string
	apiKey         string
	model          string
	client         *http.Client
	limiter        *rate.Limiter
	breaker        *breaker.Breaker[*ChatResponse]
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewClient creates a client from the OpenAI configuration section.
func NewClient(cfg *config.OpenAIConfig) (*Client, error) {
	if cfg == nil || !cfg.Enabled() {
		return nil, ErrNotConfigured
	}

	endpoint, err := completionsURL(cfg.URL, cfg.Model, cfg.APIVersion)
	if err != nil {
		return nil, err
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	baseDelay := cfg.RetryBaseDelay
	if baseDelay <= 0 {
		baseDelay = time.Second
	}

	return &Client{
		endpoint:       endpoint,
		apiKey:         cfg.Key,
		model:          cfg.Model,
		client:         &http.Client{Timeout: timeout},
		limiter:        rate.NewLimiter(limit, burst),
		breaker:        breaker.New[*ChatResponse](breaker.Settings{Name: "openai-api"}),
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: baseDelay,
	}, nil
}

// completionsURL builds {base}/openai/deployments/{model}/chat/completions.
func completionsURL(base, model, apiVersion string) (string, error) {
	u, err := url.Parse(strings.TrimRight(base, "/") + "/openai/deployments/" + url.PathEscape(model) + "/chat/completions")
	if err != nil {
		return "", fmt.Errorf("invalid OpenAI URL: %w", err)
	}
	if apiVersion != "" {
		q := u.Query()
		q.Set("api-version", apiVersion)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// Model returns the configured deployment name.
func (c *Client) Model() string {
	return c.model
}

// BreakerState reports the circuit breaker state for health output.
func (c *Client) BreakerState() string {
	return c.breaker.State()
}

// Complete sends a chat request and decodes the response. An empty Model
// is filled with the configured deployment.
func (c *Client) Complete(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		req.Model = c.model
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, verr.Error())
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode chat request: %w", err)
	}

	start := time.Now()
	resp, err := c.breaker.Execute(func() (*ChatResponse, error) {
		return c.send(ctx, body)
	})
	metrics.RecordUpstreamRequest(upstreamName, "chat_completions", outcome(err), time.Since(start))
	if err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().
		Str("model", resp.Model).
		Int("choices", len(resp.Choices)).
		Dur("duration", time.Since(start)).
		Msg("Chat completion received")
	return resp, nil
}

func (c *Client) send(ctx context.Context, body []byte) (*ChatResponse, error) {
	resp, err := c.doWithRetry(ctx, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(readBodyForError(resp.Body))}
	}

	var out ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	return &out, nil
}

// doWithRetry posts body, retrying on HTTP 429. The limiter is consulted
// before every attempt.
func (c *Client) doWithRetry(ctx context.Context, body []byte) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("api-key", c.apiKey)

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("HTTP request failed: %w", err)
		}
		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}
		_ = resp.Body.Close()

		if attempt >= c.maxRetries {
			return nil, fmt.Errorf("%w after %d retries", ErrRateLimited, c.maxRetries)
		}

		delay := retryDelay(resp.Header.Get("Retry-After"), c.retryBaseDelay, attempt)
		logging.Ctx(ctx).Warn().
			Int("attempt", attempt+1).
			Dur("delay", delay).
			Msg("Chat completion rate limited, backing off")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// retryDelay honours a Retry-After header in seconds and otherwise doubles
// base for every attempt.
func retryDelay(retryAfter string, base time.Duration, attempt int) time.Duration {
	if retryAfter != "" {
		if seconds, err := strconv.Atoi(strings.TrimSpace(retryAfter)); err == nil && seconds >= 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return base * time.Duration(1<<uint(attempt))
}

func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, breaker.ErrOpen):
		return "rejected"
	default:
		return "error"
	}
}
