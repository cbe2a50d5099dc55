package coll

import "iter"

// Map is an immutable view over a copied map. The zero value is an empty
// map. Copies are shallow: key and value data is shared with the source.
type Map[K comparable, V any] struct {
	entries map[K]V
}

// NewMap copies m into an immutable map. A nil map yields a map that
// converts back to nil.
func NewMap[K comparable, V any](m map[K]V) Map[K, V] {
	if m == nil {
		return Map[K, V]{}
	}
	entries := make(map[K]V, len(m))
	for k, v := range m {
		entries[k] = v
	}
	return Map[K, V]{entries: entries}
}

// NewMapFunc copies m into an immutable map, converting each value
// through f. Keys are copied as-is.
func NewMapFunc[K comparable, V, W any](m map[K]V, f func(V) W) Map[K, W] {
	if m == nil {
		return Map[K, W]{}
	}
	entries := make(map[K]W, len(m))
	for k, v := range m {
		entries[k] = f(v)
	}
	return Map[K, W]{entries: entries}
}

// MapFunc rebuilds m with each value converted through f.
func MapFunc[K comparable, V, W any](m Map[K, V], f func(V) W) Map[K, W] {
	if m.entries == nil {
		return Map[K, W]{}
	}
	entries := make(map[K]W, len(m.entries))
	for k, v := range m.entries {
		entries[k] = f(v)
	}
	return Map[K, W]{entries: entries}
}

// Len returns the number of entries.
func (m Map[K, V]) Len() int {
	return len(m.entries)
}

// Get looks up k.
func (m Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.entries[k]
	return v, ok
}

// Has reports whether k is present.
func (m Map[K, V]) Has(k K) bool {
	_, ok := m.entries[k]
	return ok
}

// All iterates entries in unspecified order.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m.entries {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Std copies the map back into a mutable Go map.
func (m Map[K, V]) Std() map[K]V {
	if m.entries == nil {
		return nil
	}
	out := make(map[K]V, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

// StdFunc copies m into a mutable Go map, converting each value through f.
func StdFunc[K comparable, V, W any](m Map[K, V], f func(V) W) map[K]W {
	if m.entries == nil {
		return nil
	}
	out := make(map[K]W, len(m.entries))
	for k, v := range m.entries {
		out[k] = f(v)
	}
	return out
}

// MapValues copies a plain map with each value converted through f.
func MapValues[K comparable, V, W any](m map[K]V, f func(V) W) map[K]W {
	if m == nil {
		return nil
	}
	out := make(map[K]W, len(m))
	for k, v := range m {
		out[k] = f(v)
	}
	return out
}
