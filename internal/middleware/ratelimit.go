package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stemsi/der-api/internal/response"
)

// LimitStore decides whether one more request for key fits in the budget.
type LimitStore interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit rejects requests over budget with 429 RATE_LIMIT_EXCEEDED.
// A store error lets the request through; the limiter never turns an
// otherwise healthy request into a failure.
func RateLimit(store LimitStore, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := store.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn().Err(err).Str("request_id", response.RequestID(c)).Msg("rate limit store unavailable")
			c.Next()
			return
		}
		if !allowed {
			response.AbortFail(c, http.StatusTooManyRequests, response.ErrRateLimitExceeded)
			return
		}
		c.Next()
	}
}

// ─── In-process token bucket ───────────────────────────────────────────────

// MemoryStore implements a simple per-key token bucket.
type MemoryStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     int           // Tokens per interval
	interval time.Duration // Refill interval
	now      func() time.Time
}

type visitor struct {
	tokens   int
	lastSeen time.Time
}

// NewMemoryStore creates a bucket store (e.g., 100 requests per minute).
// Stale visitors are dropped every minute until ctx is cancelled.
func NewMemoryStore(ctx context.Context, rate int, interval time.Duration) *MemoryStore {
	if interval <= 0 {
		interval = time.Minute
	}
	ms := &MemoryStore{
		visitors: make(map[string]*visitor),
		rate:     rate,
		interval: interval,
		now:      time.Now,
	}

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				ms.cleanup()
			}
		}
	}()

	return ms
}

func (ms *MemoryStore) Allow(_ context.Context, key string) (bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	v, exists := ms.visitors[key]
	if !exists {
		v = &visitor{tokens: ms.rate, lastSeen: now}
		ms.visitors[key] = v
	}

	// Refill tokens based on elapsed time.
	refill := int(now.Sub(v.lastSeen)/ms.interval) * ms.rate
	if refill > 0 {
		v.tokens += refill
		if v.tokens > ms.rate {
			v.tokens = ms.rate
		}
		v.lastSeen = now
	}

	if v.tokens <= 0 {
		return false, nil
	}
	v.tokens--
	return true, nil
}

func (ms *MemoryStore) cleanup() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	stale := 3 * ms.interval
	if stale < 3*time.Minute {
		stale = 3 * time.Minute
	}
	for key, v := range ms.visitors {
		if ms.now().Sub(v.lastSeen) > stale {
			delete(ms.visitors, key)
		}
	}
}

// ─── Redis fixed window ────────────────────────────────────────────────────

// RedisStore counts requests per key in fixed windows shared by every
// instance pointing at the same Redis.
type RedisStore struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

func NewRedisStore(rdb *redis.Client, limit int, window time.Duration) *RedisStore {
	if window <= 0 {
		window = time.Minute
	}
	return &RedisStore{rdb: rdb, limit: limit, window: window}
}

func (rs *RedisStore) Allow(ctx context.Context, key string) (bool, error) {
	slot := time.Now().UnixNano() / int64(rs.window)
	redisKey := fmt.Sprintf("der:ratelimit:%s:%d", key, slot)

	pipe := rs.rdb.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, rs.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= int64(rs.limit), nil
}
