package screening

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"vigia/internal/screening/metrics"
)

const cacheKeyPrefix = "compliance:check:"

// CachedVerifier is a cache-aside decorator over a Verifier. Cache failures
// are logged and bypassed: the fan-out still runs, the caller never sees a
// cache error. There is no locking around misses; concurrent misses for the
// same person run redundant idempotent checks.
type CachedVerifier struct {
	inner   Verifier
	cache   *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewCachedVerifier wraps inner with a redis report cache. A nil cache
// client disables caching entirely.
func NewCachedVerifier(inner Verifier, cache *redis.Client, ttl time.Duration, logger *slog.Logger, m *metrics.Metrics) *CachedVerifier {
	return &CachedVerifier{
		inner:   inner,
		cache:   cache,
		ttl:     ttl,
		logger:  logger,
		metrics: m,
	}
}

func (v *CachedVerifier) Verify(ctx context.Context, identification, fullName string) (Report, error) {
	if v.cache == nil {
		v.metrics.IncrementCache("bypass")
		return v.inner.Verify(ctx, identification, fullName)
	}

	key := cacheKeyPrefix + identification
	if cached, err := v.cache.Get(ctx, key).Bytes(); err == nil {
		var report Report
		if err := json.Unmarshal(cached, &report); err == nil {
			v.metrics.IncrementCache("hit")
			return report, nil
		}
		v.logger.WarnContext(ctx, "discarding corrupt cached report", "key", key, "error", err)
	} else if err != redis.Nil {
		v.logger.WarnContext(ctx, "report cache read failed", "key", key, "error", err)
	}
	v.metrics.IncrementCache("miss")

	report, err := v.inner.Verify(ctx, identification, fullName)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(report); err == nil {
		if err := v.cache.Set(ctx, key, payload, v.ttl).Err(); err != nil {
			v.logger.WarnContext(ctx, "report cache write failed", "key", key, "error", err)
		}
	}
	return report, nil
}
