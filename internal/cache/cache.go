// Package cache is an explicit in-memory cache for computed aggregates,
// keyed by a normalized tuple of filter arguments. Nothing expires on its
// own; entries live until the key space they belong to is invalidated
// after a mutation.
package cache

import (
	"strings"
	"sync"
)

type Cache struct {
	mu      sync.RWMutex
	entries map[string]interface{}
}

func New() *Cache {
	return &Cache{entries: map[string]interface{}{}}
}

// Key normalizes filter arguments into a stable cache key. The first part
// names the query, the rest are its parameters; empty parameters still
// occupy a slot so "no filter" and "filter absent" hash identically.
func Key(parts ...string) string {
	return strings.Join(parts, "|")
}

func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Invalidate drops every entry whose key starts with any of the given
// prefixes. Called with no prefixes it drops everything.
func (c *Cache) Invalidate(prefixes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(prefixes) == 0 {
		c.entries = map[string]interface{}{}
		return
	}
	for key := range c.entries {
		for _, prefix := range prefixes {
			if strings.HasPrefix(key, prefix) {
				delete(c.entries, key)
				break
			}
		}
	}
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
