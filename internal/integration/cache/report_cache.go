// Package cache implements the report cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/trackify/backend/internal/application/adapter"
	"github.com/trackify/backend/internal/domain/valueobject"
)

// DefaultReportTTL bounds how long a report entry survives without invalidation.
const DefaultReportTTL = 10 * time.Minute

const (
	keyPrefix = "reports"
	epochKey  = keyPrefix + ":epoch"
	allScope  = "all"
)

// reportCache implements adapter.ReportCache with generation counters.
//
// Every entry key embeds the global epoch and the generation of its scope.
// Invalidating an owner bumps the owner's generation and the generation of
// the unrestricted scope. Invalidating the unrestricted scope bumps the epoch,
// which retires every entry. Retired entries expire through their TTL.
type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a Redis backed report cache.
func NewReportCache(client *redis.Client, ttl time.Duration) adapter.ReportCache {
	if ttl <= 0 {
		ttl = DefaultReportTTL
	}
	return &reportCache{
		client: client,
		ttl:    ttl,
	}
}

// Get loads a cached report into dest.
func (c *reportCache) Get(ctx context.Context, scope valueobject.Scope, report, params string, dest any) (bool, error) {
	key, err := c.entryKey(ctx, scope, report, params)
	if err != nil {
		return false, err
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read report cache: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached report: %w", err)
	}
	return true, nil
}

// Set stores a report payload under the current generation.
func (c *reportCache) Set(ctx context.Context, scope valueobject.Scope, report, params string, value any) error {
	key, err := c.entryKey(ctx, scope, report, params)
	if err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write report cache: %w", err)
	}
	return nil
}

// Invalidate retires every entry visible to the scope.
func (c *reportCache) Invalidate(ctx context.Context, scope valueobject.Scope) error {
	if scope.IsAdmin {
		if err := c.client.Incr(ctx, epochKey).Err(); err != nil {
			return fmt.Errorf("failed to bump report epoch: %w", err)
		}
		return nil
	}

	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, generationKey(scopeName(scope)))
	pipe.Incr(ctx, generationKey(allScope))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to bump report generation: %w", err)
	}
	return nil
}

// entryKey builds the key of a report under the current epoch and generation.
func (c *reportCache) entryKey(ctx context.Context, scope valueobject.Scope, report, params string) (string, error) {
	name := scopeName(scope)
	values, err := c.client.MGet(ctx, epochKey, generationKey(name)).Result()
	if err != nil {
		return "", fmt.Errorf("failed to read report generation: %w", err)
	}

	return fmt.Sprintf("%s:%s:%s:%s:e%s:g%s",
		keyPrefix, name, report, params, counter(values[0]), counter(values[1])), nil
}

func scopeName(scope valueobject.Scope) string {
	if scope.IsAdmin {
		return allScope
	}
	return scope.OwnerID.String()
}

func generationKey(scope string) string {
	return keyPrefix + ":gen:" + scope
}

// counter renders an MGET value, treating a missing key as zero.
func counter(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return "0"
}

// noopReportCache never stores anything.
type noopReportCache struct{}

// NewNoopReportCache creates a report cache that always misses.
func NewNoopReportCache() adapter.ReportCache {
	return noopReportCache{}
}

// Get always misses.
func (noopReportCache) Get(context.Context, valueobject.Scope, string, string, any) (bool, error) {
	return false, nil
}

// Set discards the payload.
func (noopReportCache) Set(context.Context, valueobject.Scope, string, string, any) error {
	return nil
}

// Invalidate does nothing.
func (noopReportCache) Invalidate(context.Context, valueobject.Scope) error {
	return nil
}
