package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const pingTimeout = 3 * time.Second

type Config struct {
	L        *zap.Logger
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Cache is a Redis-backed answer cache. A nil *Cache is a valid disabled
// cache: every Get is a miss and Set/Flush are no-ops, so callers never
// branch on whether caching is configured.
type Cache struct {
	l   *zap.Logger
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis and verifies the connection with a short ping.
func New(ctx context.Context, conf Config) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{ //nolint:exhaustruct
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis at %v: %w", conf.Addr, err)
	}

	return &Cache{
		l:   conf.L,
		rdb: rdb,
		ttl: conf.TTL,
	}, nil
}

// Key derives a stable cache key from a question. Case and surrounding
// whitespace do not change the key.
func Key(question string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(question))))

	return "answer:" + hex.EncodeToString(sum[:])
}

// Get returns the cached value and whether it was present. Redis failures
// degrade to a miss with a warning, never a request failure.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	val, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}

	if err != nil {
		c.l.Warn("Answer cache read failed", zap.Error(err))

		return nil, false
	}

	return val, true
}

func (c *Cache) Set(ctx context.Context, key string, val []byte) {
	if c == nil {
		return
	}

	if err := c.rdb.Set(ctx, key, val, c.ttl).Err(); err != nil {
		c.l.Warn("Answer cache write failed", zap.Error(err))
	}
}

// Flush drops every cached answer. Called after a catalog reload or index
// rebuild so stale answers never outlive the data they were built from.
func (c *Cache) Flush(ctx context.Context) {
	if c == nil {
		return
	}

	if err := c.rdb.FlushDB(ctx).Err(); err != nil {
		c.l.Warn("Answer cache flush failed", zap.Error(err))
	}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}

	return c.rdb.Close()
}
