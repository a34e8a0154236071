package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kebab-dev/kebab/backend/internal/handler"
	"github.com/kebab-dev/kebab/shared/config"
	"github.com/kebab-dev/kebab/shared/logger"
	mw "github.com/kebab-dev/kebab/shared/middleware"
	"github.com/kebab-dev/kebab/shared/middleware/metrics"
	rl "github.com/kebab-dev/kebab/shared/middleware/ratelimiter"
	"github.com/kebab-dev/kebab/shared/utils"
)

// New creates and configures a new chi router with all the routes.
func New(h *handler.Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(mw.RequestLogger(logger.Log))
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	// setup CORS for the browser client
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Public.Api.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	// JSON API only, no scripts or styles
	r.Use(mw.SecurityHeadersWithCSP(cfg.Public.Api.SecureHeaders, mw.APICSP))

	// probes and metrics are not rate limited
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/boards", func(r chi.Router) {
		if cfg.Public.Api.WriteRateLimit > 0 {
			// writes only: N per second per IP
			limiter := rl.New(cfg.Public.Api.WriteRateLimit, cfg.Public.Api.WriteRateBurst, time.Hour)
			r.Use(mw.LimitMethods(mw.RateLimit(limiter, mw.GetIP), http.MethodPost, http.MethodDelete))
		}

		r.Get("/", h.GetBoards)
		r.Post("/", h.CreateBoard)
		r.Get("/{id}", h.GetBoard)
		r.Delete("/{id}", h.DeleteBoard)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusNotFound, utils.ErrorBody{Error: "Not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusMethodNotAllowed, utils.ErrorBody{Error: "Method not allowed"})
	})

	return r
}
