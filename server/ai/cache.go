package ai

import (
	"container/list"
	"sync"
)

// docEmbeddings holds one document's chunks and their vectors.
type docEmbeddings struct {
	key     string
	chunks  []string
	vectors [][]float32
	element *list.Element
}

// embeddingCache is an LRU cache of per-document chunk embeddings, keyed by
// a document fingerprint. It exists so repeated queries against the same
// document do not re-embed it.
type embeddingCache struct {
	capacity int
	mu       sync.Mutex

	cache map[string]*docEmbeddings
	order *list.List
}

func newEmbeddingCache(capacity int) *embeddingCache {
	if capacity <= 0 {
		capacity = 16
	}
	return &embeddingCache{
		capacity: capacity,
		cache:    make(map[string]*docEmbeddings),
		order:    list.New(),
	}
}

func (c *embeddingCache) get(key string) ([]string, [][]float32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.cache[key]
	if !ok {
		return nil, nil, false
	}
	c.order.MoveToFront(e.element)
	return e.chunks, e.vectors, true
}

func (c *embeddingCache) set(key string, chunks []string, vectors [][]float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.cache[key]; ok {
		e.chunks = chunks
		e.vectors = vectors
		c.order.MoveToFront(e.element)
		return
	}

	e := &docEmbeddings{key: key, chunks: chunks, vectors: vectors}
	e.element = c.order.PushFront(e)
	c.cache[key] = e

	for len(c.cache) > c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		evicted := oldest.Value.(*docEmbeddings)
		c.order.Remove(oldest)
		delete(c.cache, evicted.key)
	}
}
