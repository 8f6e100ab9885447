package hashing

import "sync"

// tableKey identifies a subtree: a position and the depth searched below it.
type tableKey struct {
	hash  uint64
	depth int
}

// PerftTable caches subtree node counts by position hash and depth.
// It is safe for concurrent use.
type PerftTable struct {
	entries     map[tableKey]uint64
	maxCapacity int
	hits        int
	mu          sync.RWMutex
}

// NewPerftTable creates a table. maxCapacity of 0 means unlimited capacity.
func NewPerftTable(maxCapacity int) *PerftTable {
	return &PerftTable{
		entries:     make(map[tableKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the cached count for hash at depth.
func (t *PerftTable) Lookup(hash uint64, depth int) (uint64, bool) {
	t.mu.RLock()
	nodes, ok := t.entries[tableKey{hash, depth}]
	t.mu.RUnlock()
	if ok {
		t.mu.Lock()
		t.hits++
		t.mu.Unlock()
	}
	return nodes, ok
}

// Store records a count. It is dropped once the table is full.
func (t *PerftTable) Store(hash uint64, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity {
		return
	}
	t.entries[tableKey{hash, depth}] = nodes
}

// Len returns the number of cached entries.
func (t *PerftTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Hits returns the number of successful lookups.
func (t *PerftTable) Hits() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hits
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *PerftTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Reset clears the table.
func (t *PerftTable) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[tableKey]uint64)
	t.hits = 0
}
