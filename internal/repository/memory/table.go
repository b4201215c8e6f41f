// Package memory implements the repositories on process memory. It is the
// default storage driver and the fake used by service and handler tests.
package memory

import (
	"slices"
	"sync"
)

// table is an insertion-ordered collection keyed by id.
type table[T any] struct {
	mu   sync.RWMutex
	rows []T
	key  func(T) string
}

func newTable[T any](key func(T) string) *table[T] {
	return &table[T]{key: key}
}

func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.rows)
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if i := t.index(id); i >= 0 {
		return t.rows[i], true
	}
	var zero T
	return zero, false
}

func (t *table[T]) insert(row T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, row)
}

// upsert replaces the row with the same key or appends it.
func (t *table[T]) upsert(row T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i := t.index(t.key(row)); i >= 0 {
		t.rows[i] = row
		return
	}
	t.rows = append(t.rows, row)
}

// update applies fn to the row with id and reports whether it exists.
func (t *table[T]) update(id string, fn func(*T)) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.index(id)
	if i < 0 {
		return false
	}
	fn(&t.rows[i])
	return true
}

func (t *table[T]) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.index(id)
	if i < 0 {
		return false
	}
	t.rows = slices.Delete(t.rows, i, i+1)
	return true
}

// index must be called with mu held.
func (t *table[T]) index(id string) int {
	return slices.IndexFunc(t.rows, func(row T) bool { return t.key(row) == id })
}
