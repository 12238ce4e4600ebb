package config

import (
	"fmt"
	"sort"
	"sync"
)

// registry is the shared thread-safe map core behind every catalog registry.
// Contents are loaded once at startup and treated as immutable by the
// execution path; Reload swaps the whole map under the write lock.
type registry[T any] struct {
	items    map[string]*T
	notFound error
	mu       sync.RWMutex
}

func newRegistry[T any](items map[string]*T, notFound error) registry[T] {
	copied := make(map[string]*T, len(items))
	for k, v := range items {
		copied[k] = v
	}
	return registry[T]{items: copied, notFound: notFound}
}

// Get retrieves an item by key (thread-safe)
func (r *registry[T]) Get(key string) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[key]
	if !exists {
		return nil, fmt.Errorf("%w: %s", r.notFound, key)
	}
	return item, nil
}

// Has checks if a key exists in the registry (thread-safe)
func (r *registry[T]) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[key]
	return exists
}

// ListAll returns all items keyed by catalog key (thread-safe, returns copy)
func (r *registry[T]) ListAll() map[string]*T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*T, len(r.items))
	for k, v := range r.items {
		result[k] = v
	}
	return result
}

// ListKeys returns all catalog keys in sorted order (thread-safe)
func (r *registry[T]) ListKeys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.items))
	for k := range r.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Count returns the number of items in the registry (thread-safe)
func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// replace swaps the registry contents; used by Reload.
func (r *registry[T]) replace(items map[string]*T) {
	copied := make(map[string]*T, len(items))
	for k, v := range items {
		copied[k] = v
	}
	r.mu.Lock()
	r.items = copied
	r.mu.Unlock()
}
