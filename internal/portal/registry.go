package portal

import (
	"maps"
	"slices"
	"sync"
)

// Registry keeps one Store per session in process memory. Stores are not
// persisted: a restart puts every session back on RoleUser.
type Registry struct {
	mu     sync.RWMutex
	stores map[string]*Store
}

func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

// For returns the store of sessionID, creating it on first use.
func (r *Registry) For(sessionID string) *Store {
	r.mu.RLock()
	store, ok := r.stores[sessionID]
	r.mu.RUnlock()
	if ok {
		return store
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if store, ok = r.stores[sessionID]; ok {
		return store
	}
	store = NewStore()
	r.stores[sessionID] = store
	return store
}

// Forget drops the store of sessionID and closes its subscriptions.
func (r *Registry) Forget(sessionID string) {
	r.mu.Lock()
	store, ok := r.stores[sessionID]
	delete(r.stores, sessionID)
	r.mu.Unlock()
	if ok {
		store.Close()
	}
}

// Sessions lists the session ids that currently hold a store.
func (r *Registry) Sessions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Collect(maps.Keys(r.stores))
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stores)
}
