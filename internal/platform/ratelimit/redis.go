package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter decides whether another answer check is allowed for a client key.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Unlimited allows everything. Used when no Redis is configured.
type Unlimited struct{}

func (Unlimited) Allow(context.Context, string) (bool, error) { return true, nil }

// Connect opens a Redis client and pings it.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to Redis at %s: %w", addr, err)
	}
	return rdb, nil
}

// The counter's expiry is only set by the first hit so the window is fixed,
// not sliding.
var fixedWindowScript = redis.NewScript(`
    local n = redis.call("INCR", KEYS[1])
    if n == 1 then
        redis.call("PEXPIRE", KEYS[1], ARGV[1])
    end
    return n
`)

// RedisLimiter allows at most Limit calls per key in each Window.
type RedisLimiter struct {
	rdb    redis.Scripter
	prefix string
	Limit  int
	Window time.Duration
}

func NewRedisLimiter(rdb redis.Scripter, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		rdb:    rdb,
		prefix: "euler:check:",
		Limit:  limit,
		Window: window,
	}
}

func (l *RedisLimiter) Key(clientKey string) string {
	return l.prefix + clientKey
}

func (l *RedisLimiter) Allow(ctx context.Context, clientKey string) (bool, error) {
	if l.Limit <= 0 {
		return true, nil
	}
	n, err := fixedWindowScript.Run(ctx, l.rdb, []string{l.Key(clientKey)}, l.Window.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("RedisLimiter.Allow: %w", err)
	}
	return n <= int64(l.Limit), nil
}
