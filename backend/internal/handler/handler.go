package handler

import (
	"context"
	"net/http"

	"github.com/kebab-dev/kebab/backend/internal/service"
	"github.com/kebab-dev/kebab/shared/config"
)

// HealthChecker reports whether the store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	board  service.BoardService
	health HealthChecker
	cfg    *config.Config
}

func New(board service.BoardService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{board: board, health: health, cfg: cfg}
}

// detached keeps the request's values but not its cancellation, so a client
// that goes away mid-request cannot abort a store operation halfway.
// The store applies its own query timeout.
func detached(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}
