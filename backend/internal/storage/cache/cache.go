// Package cache keeps assembled boards in Redis in front of the postgres store.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kebab-dev/kebab/shared/domain"
	internal_errors "github.com/kebab-dev/kebab/shared/errors"
	"github.com/kebab-dev/kebab/shared/logger"
	"github.com/kebab-dev/kebab/shared/middleware/metrics"
)

const (
	keyPrefix = "kebab:board:"
	// tombstone marks a deleted board, fills (SETNX) never overwrite it
	tombstone = "deleted"
)

type backend interface {
	CreateBoard(ctx context.Context, title domain.Title) (*domain.Board, error)
	GetBoards(ctx context.Context) ([]domain.Board, error)
	GetBoard(ctx context.Context, id domain.BoardId) (*domain.BoardWithColumns, error)
	DeleteBoard(ctx context.Context, id domain.BoardId) error
	Reset(ctx context.Context) ([]domain.BoardId, error)
}

// Cache serves GetBoard from Redis and leaves a tombstone on every delete.
// Board lists are not cached; they change on every create.
type Cache struct {
	base  backend
	redis *redis.Client
	ttl   time.Duration
}

func New(base backend, client *redis.Client, ttl time.Duration) *Cache {
	if base == nil {
		panic("cache.New: base storage is nil")
	}
	if ttl < 0 {
		ttl = 0
	}
	return &Cache{base: base, redis: client, ttl: ttl}
}

func (c *Cache) CreateBoard(ctx context.Context, title domain.Title) (*domain.Board, error) {
	return c.base.CreateBoard(ctx, title)
}

func (c *Cache) GetBoards(ctx context.Context) ([]domain.Board, error) {
	return c.base.GetBoards(ctx)
}

func (c *Cache) GetBoard(ctx context.Context, id domain.BoardId) (*domain.BoardWithColumns, error) {
	board, deleted, ok := c.load(ctx, id)
	if deleted {
		return nil, internal_errors.NotFound("Board")
	}
	if ok {
		return board, nil
	}

	board, err := c.base.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, board)
	return board, nil
}

func (c *Cache) DeleteBoard(ctx context.Context, id domain.BoardId) error {
	err := c.base.DeleteBoard(ctx, id)
	if err != nil && !internal_errors.IsNotFound(err) {
		// the row may still be there, only drop the cached copy
		c.evict(ctx, Key(id))
		return err
	}
	c.bury(ctx, id)
	return err
}

func (c *Cache) Reset(ctx context.Context) ([]domain.BoardId, error) {
	removed, err := c.base.Reset(ctx)
	if err != nil {
		return nil, err
	}
	c.bury(ctx, removed...)
	return removed, nil
}

// load reports a cached board, or deleted when a tombstone is found.
func (c *Cache) load(ctx context.Context, id domain.BoardId) (board *domain.BoardWithColumns, deleted bool, ok bool) {
	if c.redis == nil {
		return nil, false, false
	}
	data, err := c.redis.Get(ctx, Key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.BoardCacheResults.WithLabelValues("miss").Inc()
		} else {
			// On redis errors fall back to the backing storage without failing.
			metrics.BoardCacheResults.WithLabelValues("error").Inc()
			logger.Log.Warn("board cache read failed", "board_id", id, "error", err)
		}
		return nil, false, false
	}
	if string(data) == tombstone {
		metrics.BoardCacheResults.WithLabelValues("hit").Inc()
		return nil, true, false
	}
	board = &domain.BoardWithColumns{}
	if err := json.Unmarshal(data, board); err != nil {
		metrics.BoardCacheResults.WithLabelValues("error").Inc()
		c.evict(ctx, Key(id))
		return nil, false, false
	}
	metrics.BoardCacheResults.WithLabelValues("hit").Inc()
	return board, false, true
}

func (c *Cache) store(ctx context.Context, board *domain.BoardWithColumns) {
	if c.redis == nil || c.ttl == 0 {
		return
	}
	data, err := json.Marshal(board)
	if err != nil {
		return
	}
	if err := c.redis.SetNX(ctx, Key(board.Id), data, c.ttl).Err(); err != nil {
		logger.Log.Warn("board cache write failed", "board_id", board.Id, "error", err)
	}
}

// bury replaces any cached copy of the boards with a tombstone.
func (c *Cache) bury(ctx context.Context, ids ...domain.BoardId) {
	if c.redis == nil || len(ids) == 0 {
		return
	}
	if c.ttl == 0 {
		keys := make([]string, len(ids))
		for i, id := range ids {
			keys[i] = Key(id)
		}
		c.evict(ctx, keys...)
		return
	}
	_, err := c.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range ids {
			pipe.Set(ctx, Key(id), tombstone, c.ttl)
		}
		return nil
	})
	if err != nil {
		logger.Log.Warn("board cache tombstone failed", "boards", len(ids), "error", err)
	}
}

func (c *Cache) evict(ctx context.Context, keys ...string) {
	if c.redis == nil || len(keys) == 0 {
		return
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		logger.Log.Warn("board cache eviction failed", "keys", keys, "error", err)
	}
}

// Key is the redis key holding the assembled board.
func Key(id domain.BoardId) string {
	return keyPrefix + id.String()
}
