// Package http exposes the generated datasets over a small JSON API.
package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"cmicli/internal/config"
)

// NewRouter assembles the dataset API router with its middleware
// chain and routes.
func NewRouter(cfg *config.Config, paths *config.Paths, logger *slog.Logger) chi.Router {
	metrics := NewMetrics()
	handler := NewHandler(paths, logger, metrics)

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RequestMetrics(metrics))
	if cfg.Server.RateLimit.Enabled {
		r.Use(RateLimiter(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst))
	}

	r.Get("/healthz", handler.Healthz)
	r.Method("GET", "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/datasets", handler.ListDatasets)
		r.Get("/datasets/{name}", handler.GetDataset)
		r.Post("/convert", handler.Convert)
	})

	return r
}
