// Package http wires the reference gateway server's routes.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SaErPu/expense-tracker-web/internal/adapter/http/handler"
	"github.com/SaErPu/expense-tracker-web/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	ExpenseHandler *handler.ExpenseHandler
	HealthHandler  *handler.HealthHandler
	IdempotencyTTL time.Duration
}

// NewRouter creates the HTTP router for the reference gateway server.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// Expense resource API
	r.Route("/expenses", func(r chi.Router) {
		ttl := cfg.IdempotencyTTL
		if ttl <= 0 {
			ttl = 24 * time.Hour
		}
		r.Use(middleware.NewIdempotencyMiddleware(ttl).Wrap)

		r.Get("/", cfg.ExpenseHandler.List)
		r.Post("/", cfg.ExpenseHandler.Create)
		r.Get("/{id}", cfg.ExpenseHandler.Get)
		r.Put("/{id}", cfg.ExpenseHandler.Update)
		r.Delete("/{id}", cfg.ExpenseHandler.Delete)
	})

	return r
}
