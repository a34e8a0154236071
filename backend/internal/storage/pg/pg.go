package pg

import (
	"context"
	"database/sql"
	"time"

	"github.com/kebab-dev/kebab/shared/config"
	"github.com/kebab-dev/kebab/shared/logger"
	sharedpg "github.com/kebab-dev/kebab/shared/storage/pg"
)

type Storage struct {
	db           *sql.DB
	queryTimeout time.Duration
}

func New(ctx context.Context, cfg *config.Config, connCfg sharedpg.ConnectionConfig) (*Storage, error) {
	logger.Log.Info("connecting to db")
	db, err := sharedpg.Connect(ctx, cfg.Private.Pg, connCfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return &Storage{db: db, queryTimeout: cfg.Public.QueryTimeout}, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// Ping is used by the readiness probe.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// withTimeout bounds a single store operation. The deadline belongs to the
// store client, callers do not pass their own.
func (s *Storage) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}
