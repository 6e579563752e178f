// Marquee - Movie Similarity and Criteria-Driven Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/middleware"
	"github.com/tomtom215/marquee/internal/models"
)

// Router assembles the chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	timeout       time.Duration
}

// NewRouter creates a Router. cfg may be nil in tests.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	timeout := 60 * time.Second
	if cfg != nil && cfg.Server.Timeout > 0 {
		timeout = cfg.Server.Timeout
	}
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromConfig(cfg)),
		timeout:       timeout,
	}
}

// Setup returns the root handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusNotFound, models.CodeRouteNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, models.CodeMethodNotAllowed, "Method not allowed", nil)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	r.Route("/api/health", func(r chi.Router) {
		r.Use(middleware.SecurityHeaders)
		r.Use(middleware.PrometheusMetrics)
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.SecurityHeaders)
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.MaxBodySize(maxRequestBodyLen))
		r.Use(middleware.Compression)
		r.Use(chimiddleware.Timeout(router.timeout))

		r.Get("/api/movies/{movieID}/similar", router.handler.SimilarMovies)
		r.Get("/api/movies/{movieID}/askQuestion", router.handler.AskQuestion)
		r.Post("/api/movies/filter", router.handler.FilterMovies)
		r.Post("/api/movie-chat", router.handler.MovieChat)
		r.Get("/api/movieCriteria", router.handler.MovieCriteria)
	})

	return r
}
