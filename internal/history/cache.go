package history

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of names kept by NewCached.
const DefaultCacheSize = 1024

// Cached keeps recent lookups in memory. Identically named entries, and the
// re-admission of a name after it is recorded, skip the database.
type Cached struct {
	store Store
	cache *lru.Cache[string, uint64]
}

// NewCached wraps store with an LRU of the given size.
func NewCached(store Store, size int) (*Cached, error) {
	cache, err := lru.New[string, uint64](size)
	if err != nil {
		return nil, err
	}
	return &Cached{store: store, cache: cache}, nil
}

// Lookup implements Store.
func (c *Cached) Lookup(name string) (uint64, error) {
	if count, ok := c.cache.Get(name); ok {
		return count, nil
	}
	count, err := c.store.Lookup(name)
	if err != nil {
		return 0, err
	}
	c.cache.Add(name, count)
	return count, nil
}

// Record implements Store. The cache is only updated once the write succeeds.
func (c *Cached) Record(name string, count uint64) error {
	if err := c.store.Record(name, count); err != nil {
		return err
	}
	c.cache.Add(name, count)
	return nil
}
