package engine

import "chesscore/position"

// TrimThreshold is the cache size at which the entire table is discarded and
// replaced with a fresh empty one. Finer-grained eviction is not attempted,
// matching the reference implementation's all-or-nothing reset.
const TrimThreshold = 10_000_000

// Cache is the TranspositionCache: a mapping from BoardState to a mutable
// EvalRecord shared across the search tree. Only the Searcher mutates
// records fetched from it.
type Cache struct {
	entries map[position.BoardState]*position.EvalRecord
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[position.BoardState]*position.EvalRecord)}
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Reset discards the entire table.
func (c *Cache) Reset() {
	c.entries = make(map[position.BoardState]*position.EvalRecord)
}

// TrimIfOversized resets the cache when it has grown past TrimThreshold.
func (c *Cache) TrimIfOversized() {
	if len(c.entries) > TrimThreshold {
		c.Reset()
	}
}

// LookupOrCreate returns the cached record for b, evaluating and inserting
// one if absent. The second return value reports whether a fresh
// evaluation was performed.
func (c *Cache) LookupOrCreate(b position.BoardState) (*position.EvalRecord, bool) {
	if rec, ok := c.entries[b]; ok {
		return rec, false
	}
	rec := position.Evaluate(b)
	c.entries[b] = &rec
	return &rec, true
}
