package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kebab-dev/kebab/frontend/internal/setup"
	"github.com/kebab-dev/kebab/shared/logger"
	mw "github.com/kebab-dev/kebab/shared/middleware"
	"github.com/kebab-dev/kebab/shared/middleware/metrics"
)

func SetupRouter(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(mw.RequestLogger(logger.Log))
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(mw.SecurityHeadersWithCSP(deps.Public.Api.SecureHeaders, mw.PageCSP))

	h := deps.Handler
	r.Get("/", h.IndexGetHandler)
	r.Post("/boards", h.IndexPostHandler)
	r.Get("/boards/{id}", h.BoardGetHandler)
	r.Post("/boards/{id}/delete", h.BoardDeleteHandler)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.NotFound(h.NotFoundHandler)

	return r
}
