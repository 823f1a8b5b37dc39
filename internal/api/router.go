// Cinelens - Content-Based Movie Recommendation Engine
// Copyright 2026 The Cinelens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cinelens/cinelens

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/cinelens/cinelens/internal/config"
	"github.com/cinelens/cinelens/internal/dataset"
	"github.com/cinelens/cinelens/internal/model"
)

// Router assembles the HTTP surface: handlers, middleware and routes.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router with handlers wired to the given
// dependencies.
func NewRouter(store *dataset.Store, modelMgr *model.Manager, cfg *config.Config) *Router {
	return &Router{
		handler: NewHandler(store, modelMgr, cfg),
		chiMiddleware: NewChiMiddlewareFromConfig(
			cfg.API.CORSOrigins,
			cfg.API.RateLimit,
			cfg.API.RateLimitWindow,
		),
	}
}

// Handler exposes the handler set, mainly for tests.
func (router *Router) Handler() *Handler {
	return router.handler
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global stack, applied to every route in order. CORS sits here so
	// OPTIONS preflights are answered before any route matching.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestLogging())
	r.Use(router.chiMiddleware.CORS())

	router.mountHealth(r)
	router.mountAPI(r)
	router.mountObservability(r)

	return r
}

// mountHealth wires the health endpoints. Monitors and load balancers
// poll these, so they run under the permissive budget and stay out of
// the request metrics.
func (router *Router) mountHealth(r chi.Router) {
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitForHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})
}

// mountAPI wires the versioned API. Read endpoints run under the
// general budget; rebuild and evaluation walk the whole catalog, so
// they get the strict one.
func (router *Router) mountAPI(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(PrometheusMetrics())

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Get("/recommendations", router.handler.GetRecommendations)
			r.Get("/recommendations/similar/{id}", router.handler.GetSimilar)
			r.Get("/movies", router.handler.ListMovies)
			r.Get("/movies/{id}", router.handler.GetMovie)
			r.Get("/model", router.handler.GetModel)
		})

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitForExpensive())
			r.Post("/model/rebuild", router.handler.RebuildModel)
			r.Get("/evaluation", router.handler.GetEvaluation)
		})
	})
}

// mountObservability wires the Prometheus scrape endpoint and the
// Swagger UI. Neither is part of the versioned API surface.
func (router *Router) mountObservability(r chi.Router) {
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))
}
