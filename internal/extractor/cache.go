package extractor

import (
	"crypto/sha256"
	"sync"
)

type cacheKey [sha256.Size]byte

// keyFor hashes the exact inputs of a call. The zero byte separates image
// bytes from prompt text so shifted boundaries cannot collide.
func keyFor(image []byte, prompt string) cacheKey {
	h := sha256.New()
	h.Write(image)
	h.Write([]byte{0})
	h.Write([]byte(prompt))
	var k cacheKey
	copy(k[:], h.Sum(nil))
	return k
}

// memoCache memoizes successful extraction results for the process
// lifetime. maxEntries == 0 means unbounded; when bounded, the oldest
// insertion is evicted first.
type memoCache struct {
	mu         sync.RWMutex
	entries    map[cacheKey]string
	order      []cacheKey
	maxEntries int
}

func newMemoCache(maxEntries int) *memoCache {
	return &memoCache{
		entries:    make(map[cacheKey]string),
		maxEntries: maxEntries,
	}
}

func (c *memoCache) get(k cacheKey) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[k]
	return v, ok
}

func (c *memoCache) put(k cacheKey, v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[k]; ok {
		// Concurrent identical requests may race to populate the same
		// entry; population is idempotent, so keep the first write.
		return
	}
	if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[k] = v
	c.order = append(c.order, k)
}

func (c *memoCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
