package analyzer

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/plainterms/legal-analyzer/pkg/models"
)

// resultCache memoizes quick-analysis results for a fixed time to live.
// Entries leave only by expiry or an explicit Clear. Concurrent identical
// requests during population are not deduplicated; the last write wins.
type resultCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

type cacheEntry struct {
	result *models.QuickResult
	expiry time.Time
}

func newResultCache(ttl time.Duration) *resultCache {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &resultCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

// cacheKey hashes the input text so the cache never retains document
// content as a key.
func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func (c *resultCache) get(key string) (*models.QuickResult, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiry) {
		return nil, false
	}
	return entry.result, true
}

func (c *resultCache) set(key string, result *models.QuickResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{
		result: result,
		expiry: time.Now().Add(c.ttl),
	}
}

func (c *resultCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
