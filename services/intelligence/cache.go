// File: services/intelligence/cache.go
package intelligence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const completionKeyPrefix = "llm:completion:"

// Completer is the completion seam the cached decorator wraps.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompletionCache stores completion results keyed by prompt digest.
type CompletionCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// RedisCompletionCache backs the completion cache with the generic Redis
// cache database.
type RedisCompletionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCompletionCache(client *redis.Client, ttl time.Duration) *RedisCompletionCache {
	return &RedisCompletionCache{client: client, ttl: ttl}
}

func (c *RedisCompletionCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (c *RedisCompletionCache) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}

// CachedCompleter serves repeated prompts from the cache. Completions run
// at near-zero temperature, so a repeated prompt yields the same answer
// and a cache hit saves a model round trip. Cache failures fall through
// to the live model.
type CachedCompleter struct {
	llm    Completer
	cache  CompletionCache
	logger *zap.Logger
}

func NewCachedCompleter(llm Completer, cache CompletionCache, logger *zap.Logger) *CachedCompleter {
	return &CachedCompleter{llm: llm, cache: cache, logger: logger}
}

func (c *CachedCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	key := completionKey(prompt)
	if v, ok, err := c.cache.Get(ctx, key); err != nil {
		c.logger.Warn("completion cache read failed", zap.Error(err))
	} else if ok {
		return v, nil
	}

	out, err := c.llm.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	if err := c.cache.Set(ctx, key, out); err != nil {
		c.logger.Warn("completion cache write failed", zap.Error(err))
	}
	return out, nil
}

func completionKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return completionKeyPrefix + hex.EncodeToString(sum[:])
}
