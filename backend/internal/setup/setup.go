package setup

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/kebab-dev/kebab/backend/internal/handler"
	"github.com/kebab-dev/kebab/backend/internal/service"
	"github.com/kebab-dev/kebab/backend/internal/storage/cache"
	"github.com/kebab-dev/kebab/backend/internal/storage/pg"
	"github.com/kebab-dev/kebab/backend/internal/utils"
	"github.com/kebab-dev/kebab/shared/config"
	"github.com/kebab-dev/kebab/shared/domain"
	"github.com/kebab-dev/kebab/shared/logger"
	sharedpg "github.com/kebab-dev/kebab/shared/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config  *config.Config
	Storage *pg.Storage
	Redis   *redis.Client // nil when the board cache is disabled
	Handler *handler.Handler
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg, sharedpg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}

	boards, client := NewBoardStore(storage, cfg)
	board := service.NewBoard(boards, utils.New())
	h := handler.New(board, storage, cfg)

	return &Dependencies{
		Config:  cfg,
		Storage: storage,
		Redis:   client,
		Handler: h,
	}, nil
}

// BoardStore is the board storage used by the API and the maintenance commands.
type BoardStore interface {
	service.BoardStorage
	Reset(ctx context.Context) ([]domain.BoardId, error)
}

// NewBoardStore puts the redis board cache in front of base when it is configured.
// The returned client is nil when the cache is disabled; the caller closes it.
func NewBoardStore(base BoardStore, cfg *config.Config) (BoardStore, *redis.Client) {
	client := NewRedis(cfg)
	if client == nil {
		return base, nil
	}
	return cache.New(base, client, cfg.Public.CacheTTL), client
}

// NewRedis returns nil if redis is not configured or the cache ttl is zero.
// The client connects lazily, an unreachable redis only degrades to uncached reads.
func NewRedis(cfg *config.Config) *redis.Client {
	if cfg.Private.Redis.Addr == "" || cfg.Public.CacheTTL <= 0 {
		return nil
	}
	logger.Log.Info("board cache enabled", "addr", cfg.Private.Redis.Addr, "ttl", cfg.Public.CacheTTL)
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Private.Redis.Addr,
		Password: cfg.Private.Redis.Password,
		DB:       cfg.Private.Redis.DB,
	})
}

// Cleanup closes the store and cache connections.
func (d *Dependencies) Cleanup() {
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			logger.Log.Error("failed to close redis client", "error", err)
		}
	}
	if err := d.Storage.Cleanup(); err != nil {
		logger.Log.Error("failed to close database connection", "error", err)
	}
}
