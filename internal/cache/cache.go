package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/cloud-ru/compound-calc-go/internal/config"
)

// Cache хранилище сериализованных результатов расчетов
type Cache interface {
	// Get возвращает значение и признак попадания
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set сохраняет значение
	Set(ctx context.Context, key string, value []byte) error
}

// Key строит ключ вида "<operation>:<xxhash частей>"
func Key(operation string, parts ...string) string {
	h := xxhash.New()
	for _, p := range parts {
		_, _ = h.WriteString(p)
		_, _ = h.Write([]byte{0})
	}
	return operation + ":" + strconv.FormatUint(h.Sum64(), 16)
}

// New создает кэш по настройкам CACHE_BACKEND
func New(ctx context.Context, cfg *config.Config) (Cache, error) {
	switch cfg.CacheBackend {
	case config.CacheBackendMemory:
		return NewLRUCache(cfg.CacheSize, cfg.CacheTTL), nil
	case config.CacheBackendRedis:
		rc := NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		if err := rc.Ping(ctx); err != nil {
			return nil, fmt.Errorf("redis cache at %s: %w", cfg.RedisAddr, err)
		}
		return rc, nil
	case config.CacheBackendNone:
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %q", cfg.CacheBackend)
	}
}

// Nop кэш, который ничего не хранит
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (Nop) Set(context.Context, string, []byte) error { return nil }
