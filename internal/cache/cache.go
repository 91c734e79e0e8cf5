package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/ppiankov/cardex/internal/model"
)

// keyPrefix is bumped whenever the cached record layout changes
const keyPrefix = "cardex:v1:"

// Cache stores opaque values under string keys
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives the cache key for one input. The input kind ("text", "html",
// "ocr"), the engine settings and the lexicon fingerprint are part of the
// key, so the same bytes parsed differently never share an entry.
func Key(kind string, input []byte, cfg model.EngineConfig, lexicon string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%+v\x00%s\x00", kind, cfg, lexicon)
	h.Write(input)
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

// New builds the configured cache: memory in front of disk when a directory
// is set, memory only otherwise. It returns nil when caching is disabled.
func New(cfg model.CacheConfig) Cache {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Dir == "" {
		return NewMemoryCache(cfg.MemoryTTL, cleanupInterval(cfg.MemoryTTL))
	}
	return NewLayeredCache(cfg.MemoryTTL, cfg.Dir, cfg.DiskTTL)
}

func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 10 * time.Minute
	}
	return max(ttl/2, time.Minute)
}
