// Package registry provides an insertion-ordered, write-once map.
package registry

// Registry maps keys to values in insertion order. Once a key is
// inserted its value is never replaced and entries are never removed.
//
// Registry is not safe for concurrent use. Owners serialize access.
type Registry[K comparable, V any] struct {
	index  map[K]int
	keys   []K
	values []V
}

// New creates a new empty registry.
func New[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{
		index: make(map[K]int),
	}
}

// Insert adds key with value if key is not present.
// Returns false, leaving the existing value in place, if key was already registered.
func (r *Registry[K, V]) Insert(key K, value V) bool {
	if _, ok := r.index[key]; ok {
		return false
	}
	r.index[key] = len(r.keys)
	r.keys = append(r.keys, key)
	r.values = append(r.values, value)
	return true
}

// Get returns the value for a key and whether it exists.
func (r *Registry[K, V]) Get(key K) (V, bool) {
	i, ok := r.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return r.values[i], true
}

// Has returns true if the key exists in the registry.
func (r *Registry[K, V]) Has(key K) bool {
	_, ok := r.index[key]
	return ok
}

// Len returns the number of entries in the registry.
func (r *Registry[K, V]) Len() int {
	return len(r.keys)
}

// Keys returns all keys in insertion order.
func (r *Registry[K, V]) Keys() []K {
	keys := make([]K, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Values returns all values in insertion order.
func (r *Registry[K, V]) Values() []V {
	values := make([]V, len(r.values))
	copy(values, r.values)
	return values
}

// Range calls fn for each entry in insertion order.
// If fn returns false, iteration stops.
func (r *Registry[K, V]) Range(fn func(K, V) bool) {
	for i, k := range r.keys {
		if !fn(k, r.values[i]) {
			return
		}
	}
}
