package watcher

import (
	"sync"
	"unique"

	"go.trai.ch/rmake/internal/core/ports"
)

// ContentCache remembers the content hash of every path it has seen so that
// rewrites which leave a file byte-identical can be ignored.
type ContentCache struct {
	mu     sync.Mutex
	hasher ports.Hasher
	sums   map[unique.Handle[string]]uint64
}

// NewContentCache creates a new ContentCache.
func NewContentCache(hasher ports.Hasher) *ContentCache {
	return &ContentCache{
		hasher: hasher,
		sums:   make(map[unique.Handle[string]]uint64),
	}
}

// Changed records the current content of paths and returns those whose content
// differs from the last observation. Paths seen for the first time and paths
// that can no longer be read count as changed.
func (c *ContentCache) Changed(paths []string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var changed []string
	for _, path := range paths {
		key := unique.Make(path)
		sum, err := c.hasher.ComputeFileHash(path)
		if err != nil {
			delete(c.sums, key)
			changed = append(changed, path)
			continue
		}
		if prev, ok := c.sums[key]; ok && prev == sum {
			continue
		}
		c.sums[key] = sum
		changed = append(changed, path)
	}
	return changed
}

// Len returns the number of paths with a recorded hash.
func (c *ContentCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sums)
}
