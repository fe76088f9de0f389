package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/remittance_pricing/internal/core/ports/repositories"
	"github.com/SscSPs/remittance_pricing/internal/middleware"
	"github.com/redis/go-redis/v9"
)

const paramKeyPrefix = "remit_pricing:param:"

// ParamCache is a read-through Redis cache in front of a ParamReader.
// Redis failures are logged and the underlying reader is used instead, so a
// cache outage never blocks pricing.
type ParamCache struct {
	client redis.Cmdable
	next   portsrepo.ParamReader
	ttl    time.Duration
}

var _ portsrepo.ParamReader = (*ParamCache)(nil)

// NewParamCache wraps next. A ttl <= 0 disables caching.
func NewParamCache(client redis.Cmdable, next portsrepo.ParamReader, ttl time.Duration) *ParamCache {
	return &ParamCache{client: client, next: next, ttl: ttl}
}

// FindParam returns the cached param, loading and caching it on a miss.
// Missing params are not cached.
func (c *ParamCache) FindParam(ctx context.Context, key string) (*domain.Param, error) {
	if c.ttl <= 0 {
		return c.next.FindParam(ctx, key)
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	raw, err := c.client.Get(ctx, paramKeyPrefix+key).Bytes()
	switch {
	case err == nil:
		var param domain.Param
		if jsonErr := json.Unmarshal(raw, &param); jsonErr == nil {
			return &param, nil
		}
		logger.Warn("Discarding undecodable cached param", slog.String("key", key))
	case errors.Is(err, redis.Nil):
	default:
		logger.Warn("Param cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	param, err := c.next.FindParam(ctx, key)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(param); err == nil {
		if err := c.client.Set(ctx, paramKeyPrefix+key, encoded, c.ttl).Err(); err != nil {
			logger.Warn("Param cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	return param, nil
}

// Invalidate drops the cached value of key.
func (c *ParamCache) Invalidate(ctx context.Context, key string) error {
	return c.client.Del(ctx, paramKeyPrefix+key).Err()
}
