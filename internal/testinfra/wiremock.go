// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

//go:build integration

package testinfra

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultWireMockImage is the WireMock image used to stand in for the
	// Azure OpenAI and Azure Cognitive Search endpoints.
	DefaultWireMockImage = "wiremock/wiremock:3.9.1"

	// DefaultWireMockPort is the WireMock HTTP port inside the container.
	DefaultWireMockPort = "8080"
)

// WireMockContainer is a running WireMock server.
type WireMockContainer struct {
	testcontainers.Container
	URL string
}

// WireMockOption configures the container.
type WireMockOption func(*wireMockConfig)

type wireMockConfig struct {
	image        string
	startTimeout time.Duration
	logger       *ContainerLogger
}

// WithWireMockImage sets a custom WireMock image.
func WithWireMockImage(image string) WireMockOption {
	return func(c *wireMockConfig) {
		c.image = image
	}
}

// WithStartTimeout sets how long to wait for the admin API.
func WithStartTimeout(timeout time.Duration) WireMockOption {
	return func(c *wireMockConfig) {
		c.startTimeout = timeout
	}
}

// WithTestLogger routes container logs to t.
func WithTestLogger(t *testing.T) WireMockOption {
	return func(c *wireMockConfig) {
		c.logger = NewContainerLogger(t)
	}
}

// NewWireMockContainer starts WireMock and waits for its admin API.
//
//	wm, err := testinfra.NewWireMockContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	testinfra.CleanupContainer(t, wm)
//	err = wm.Stub(ctx, testinfra.Stub{Method: "GET", URLPath: "/indexes/idx-movies/docs/42", Status: 200, JSONBody: doc})
func NewWireMockContainer(ctx context.Context, opts ...WireMockOption) (*WireMockContainer, error) {
	cfg := &wireMockConfig{
		image:        DefaultWireMockImage,
		startTimeout: 60 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        cfg.image,
			ExposedPorts: []string{DefaultWireMockPort + "/tcp"},
			WaitingFor: wait.ForHTTP("/__admin/health").
				WithPort(DefaultWireMockPort + "/tcp").
				WithStartupTimeout(cfg.startTimeout),
		},
		Started: true,
	}
	if cfg.logger != nil {
		req.Logger = cfg.logger
	}

	container, err := testcontainers.GenericContainer(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create wiremock container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, DefaultWireMockPort)
	if err != nil {
		container.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mapped port: %w", err)
	}

	return &WireMockContainer{
		Container: container,
		URL:       fmt.Sprintf("http://%s:%s", host, port.Port()),
	}, nil
}

// Stub is one WireMock request mapping.
type Stub struct {
	Method string
	// URLPath matches the path exactly; query parameters are ignored.
	URLPath string
	// Headers must be present with these exact values.
	Headers  map[string]string
	Status   int
	JSONBody any
}

// Stub registers a mapping through the admin API.
func (w *WireMockContainer) Stub(ctx context.Context, s Stub) error {
	request := map[string]any{
		"method":  s.Method,
		"urlPath": s.URLPath,
	}
	if len(s.Headers) > 0 {
		headers := make(map[string]any, len(s.Headers))
		for k, v := range s.Headers {
			headers[k] = map[string]string{"equalTo": v}
		}
		request["headers"] = headers
	}

	response := map[string]any{
		"status":  s.Status,
		"headers": map[string]string{"Content-Type": "application/json"},
	}
	if s.JSONBody != nil {
		response["jsonBody"] = s.JSONBody
	}

	body, err := json.Marshal(map[string]any{"request": request, "response": response})
	if err != nil {
		return fmt.Errorf("encode mapping: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL+"/__admin/mappings", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("register mapping: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("register mapping: status %d: %s", resp.StatusCode, msg)
	}
	return nil
}

// RequestCount returns how many received requests matched method and path.
func (w *WireMockContainer) RequestCount(ctx context.Context, method, urlPath string) (int, error) {
	body, err := json.Marshal(map[string]string{"method": method, "urlPath": urlPath})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL+"/__admin/requests/count", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("count requests: %w", err)
	}
	defer resp.Body.Close()

	var out struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode request count: %w", err)
	}
	return out.Count, nil
}
