package cache

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Recommended TTLs per payload kind.
const (
	TTLSearchResults  = 1 * time.Hour
	TTLHealthScore    = 24 * time.Hour
	TTLParsedQuery    = 7 * 24 * time.Hour
	TTLProjectDetails = 1 * time.Hour

	CleanupInterval = 5 * time.Minute
)

type entry struct {
	value    interface{}
	storedAt time.Time
	ttl      time.Duration
}

// Cache is an in-memory key/value store with per-entry TTL.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (c *Cache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		value:    value,
		storedAt: c.now(),
		ttl:      ttl,
	}
}

// Get returns the stored value for key, or nil/false when the key is
// missing or its entry has expired. Expired entries are evicted on read.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.storedAt) > e.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Cleanup evicts every expired entry. Read-triggered eviction already
// handles hot keys; this catches entries nothing looks up anymore.
func (c *Cache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.entries {
		if now.Sub(e.storedAt) > e.ttl {
			delete(c.entries, key)
		}
	}
}

type Stats struct {
	Size int      `json:"size"`
	Keys []string `json:"keys"`
}

func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return Stats{Size: len(c.entries), Keys: keys}
}

// StartSweeper runs Cleanup every CleanupInterval until the returned
// stop function is called.
func (c *Cache) StartSweeper() (stop func()) {
	ticker := time.NewTicker(CleanupInterval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				c.Cleanup()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}

// Key builds a deterministic cache key from a logical prefix and a
// parameter set: nil-valued parameters are dropped and the rest are
// serialized in lexicographic key order, so semantically identical
// requests map to the same key regardless of insertion order.
func Key(prefix string, params map[string]interface{}) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == nil {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b []byte
	b = append(b, '{')
	for i, k := range keys {
		if i > 0 {
			b = append(b, ',')
		}
		name, _ := json.Marshal(k)
		val, err := json.Marshal(params[k])
		if err != nil {
			val = []byte(fmt.Sprintf("%q", fmt.Sprintf("%v", params[k])))
		}
		b = append(b, name...)
		b = append(b, ':')
		b = append(b, val...)
	}
	b = append(b, '}')

	return prefix + ":" + string(b)
}
