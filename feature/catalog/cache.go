package catalog

import (
	"context"
	"encoding/json"
	"time"

	"deck-reconciler/core/store"

	"go.uber.org/zap"
)

// cacheStoreKey is the versioned store key for the resolved-card cache.
// Bumping the version suffix invalidates every entry at once without
// touching the store's other keys.
const cacheStoreKey = "catalog_cache_v3"

// Entry is one cached resolution outcome. A nil Record is a tombstone:
// resolution was attempted and the catalog authoritatively had no match,
// distinct from "never looked up" (key absent from the cache).
type Entry struct {
	Record    *Record   `json:"record"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Cache maps canonical names to resolution outcomes. The presence of an
// entry, tombstone or not, means no network lookup will be re-issued for
// that name in the current process lifetime. Not safe for concurrent use;
// callers synchronize externally.
type Cache struct {
	entries map[string]Entry
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]Entry)}
}

// Get returns the entry for a name, if resolution was ever attempted.
func (c *Cache) Get(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Has reports whether resolution was attempted for the name.
func (c *Cache) Has(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Put records the resolution outcome for a name. A nil record writes a
// tombstone.
func (c *Cache) Put(name string, record *Record) {
	c.entries[name] = Entry{Record: record, FetchedAt: time.Now()}
}

// Len returns the number of cached entries, tombstones included.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Missing returns the names lacking any cache entry, deduplicated,
// in first-seen order.
func (c *Cache) Missing(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	missing := make([]string, 0)
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if !c.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Snapshot returns the cache serialized as a flat JSON object, as persisted.
func (c *Cache) Snapshot() ([]byte, error) {
	return json.Marshal(c.entries)
}

// LoadCache reads the persisted cache from the store. Missing or corrupt
// data degrades to an empty cache; store failures are logged, never
// returned.
func LoadCache(ctx context.Context, st store.Store, logger *zap.Logger) *Cache {
	c := NewCache()
	raw, ok, err := st.Get(ctx, cacheStoreKey)
	if err != nil {
		logger.Warn("Failed to read catalog cache from store, starting empty", zap.Error(err))
		return c
	}
	if !ok || raw == "" {
		return c
	}
	if err := json.Unmarshal([]byte(raw), &c.entries); err != nil {
		logger.Warn("Corrupt catalog cache in store, starting empty", zap.Error(err))
		c.entries = make(map[string]Entry)
	}
	return c
}

// Save persists the full cache to the store. A write failure is logged and
// skipped: the cache keeps working in memory for this process.
func (c *Cache) Save(ctx context.Context, st store.Store, logger *zap.Logger) {
	raw, err := c.Snapshot()
	if err != nil {
		logger.Warn("Failed to serialize catalog cache", zap.Error(err))
		return
	}
	if err := st.Set(ctx, cacheStoreKey, string(raw)); err != nil {
		logger.Warn("Failed to persist catalog cache", zap.Error(err))
	}
}
