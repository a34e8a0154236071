// Package ratelimiter keeps one token bucket per identity (usually a client IP).
package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedLimiter hands out an independent rate.Limiter per key.
// Keys idle for longer than expiration are dropped on the next sweep.
type KeyedLimiter struct {
	mu         sync.Mutex
	limiters   map[string]*entry
	limit      rate.Limit
	burst      int
	expiration time.Duration
	lastSweep  time.Time
	now        func() time.Time
}

// New creates a limiter allowing perSecond events per key with the given burst.
func New(perSecond float64, burst int, expiration time.Duration) *KeyedLimiter {
	if burst < 1 {
		burst = 1
	}
	return &KeyedLimiter{
		limiters:   make(map[string]*entry),
		limit:      rate.Limit(perSecond),
		burst:      burst,
		expiration: expiration,
		now:        time.Now,
	}
}

// Allow reports whether one more event for key may happen now.
func (k *KeyedLimiter) Allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	k.sweep(now)

	e, ok := k.limiters[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(k.limit, k.burst)}
		k.limiters[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// Len returns the number of tracked keys.
func (k *KeyedLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.limiters)
}

// sweep runs at most once per expiration period; caller holds mu.
func (k *KeyedLimiter) sweep(now time.Time) {
	if now.Sub(k.lastSweep) < k.expiration {
		return
	}
	k.lastSweep = now
	for key, e := range k.limiters {
		if now.Sub(e.lastSeen) >= k.expiration {
			delete(k.limiters, key)
		}
	}
}
