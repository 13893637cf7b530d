// Package registry provides small keyed stores used for template and
// component registration.
package registry

import "sync"

// Store is a concurrency-safe map from string keys to values of type
// T. It offers both overwrite and first-write-wins registration.
type Store[T any] struct {
	entries sync.Map
}

// Put stores value under key, replacing any existing entry.
func (s *Store[T]) Put(key string, value T) {
	s.entries.Store(key, value)
}

// PutIfAbsent stores value under key only when no entry exists yet.
// It reports whether the write happened; an existing entry is left
// untouched.
func (s *Store[T]) PutIfAbsent(key string, value T) bool {
	_, loaded := s.entries.LoadOrStore(key, value)
	return !loaded
}

// Get retrieves the value stored under key.
func (s *Store[T]) Get(key string) (T, bool) {
	val, ok := s.entries.Load(key)
	if !ok {
		var zero T
		return zero, false
	}
	return val.(T), true
}

// Delete removes the entry under key, if any.
func (s *Store[T]) Delete(key string) {
	s.entries.Delete(key)
}

// Keys returns the keys of all current entries.
func (s *Store[T]) Keys() []string {
	var keys []string
	s.entries.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	return keys
}

// Len counts current entries.
func (s *Store[T]) Len() int {
	n := 0
	s.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
