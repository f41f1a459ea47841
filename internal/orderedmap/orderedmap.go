// Package orderedmap implements a map that remembers insertion order.
package orderedmap

import (
	"errors"
	"iter"
)

var ErrDuplicateEntry = errors.New("duplicate entry")

type Map[K comparable, V any] struct {
	entries []K
	keys    map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		entries: make([]K, 0),
		keys:    make(map[K]V),
	}
}

// Set adds a new entry. If the key already exists, ErrDuplicateEntry
// is returned and the map is left untouched.
func (m *Map[K, V]) Set(key K, value V) error {
	_, exists := m.keys[key]
	if exists {
		return ErrDuplicateEntry
	}
	m.entries = append(m.entries, key)
	m.keys[key] = value
	return nil
}

// Upsert adds the entry, or overwrites the value of an existing key
// while keeping its original position. It reports whether the key
// was already present.
func (m *Map[K, V]) Upsert(key K, value V) bool {
	_, exists := m.keys[key]
	if !exists {
		m.entries = append(m.entries, key)
	}
	m.keys[key] = value
	return exists
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.entries {
			v := m.keys[k]
			if !yield(k, v) {
				break
			}
		}
	}
}
