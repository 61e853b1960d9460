package surface

import (
	"container/list"
	"sync"
)

// DefaultCacheEntries bounds the mesh cache when no size is configured.
const DefaultCacheEntries = 32

// cacheKey identifies a build by the identity of its inputs. Surfaces
// are immutable once built, so pointer identity is a sound cache key.
type cacheKey struct {
	surface *Surface
	ramp    string
	values  *float64
}

func makeKey(s *Surface, field ColorField) cacheKey {
	key := cacheKey{surface: s, ramp: field.Ramp}
	if len(field.Values) > 0 {
		key.values = &field.Values[0]
	}
	return key
}

// Cache memoizes Build results keyed by input identity, with LRU
// eviction once the configured entry count is exceeded. Repeated
// renders of unchanged data reuse the previous mesh instead of
// recomputing it.
//
// Cache is safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	maxEntries int
	order      *list.List // front = most recently used
	entries    map[cacheKey]*list.Element
}

type cacheEntry struct {
	key  cacheKey
	mesh *RenderableMesh
}

// NewCache creates a mesh cache holding at most maxEntries results.
func NewCache(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheEntries
	}
	return &Cache{
		maxEntries: maxEntries,
		order:      list.New(),
		entries:    make(map[cacheKey]*list.Element),
	}
}

// Build returns the memoized mesh for the inputs, building and caching
// it on a miss.
func (c *Cache) Build(s *Surface, field ColorField) *RenderableMesh {
	key := makeKey(s, field)

	c.mu.Lock()
	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)
		mesh := elem.Value.(*cacheEntry).mesh
		c.mu.Unlock()
		return mesh
	}
	c.mu.Unlock()

	// Built outside the lock; large meshes take a while.
	mesh := Build(s, field)

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		// Another caller built the same inputs in the meantime.
		c.order.MoveToFront(elem)
		return elem.Value.(*cacheEntry).mesh
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, mesh: mesh})
	for c.order.Len() > c.maxEntries {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
	return mesh
}

// Len returns the number of cached meshes.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Invalidate drops every cached mesh.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.entries = make(map[cacheKey]*list.Element)
}
