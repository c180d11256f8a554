// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"cmp"
	"slices"
)

// WriteSlice encodes s as a u32 element count followed by each
// element via writeElem.
func WriteSlice[T any](w *Writer, s []T, writeElem func(*Writer, T) error) error {
	if err := w.writeLen(len(s)); err != nil {
		return err
	}
	for _, v := range s {
		if err := writeElem(w, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadSlice decodes a u32-length-prefixed sequence.
func ReadSlice[T any](r *Reader, readElem func(*Reader) (T, error)) ([]T, error) {
	n, err := r.readLen()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]T, 0, r.preallocSize(n))
	for i := 0; i < n; i++ {
		v, err := readElem(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// IsDefaultSlice reports whether s is empty.
func IsDefaultSlice[T any](s []T) bool { return len(s) == 0 }

// WriteMap encodes m as a u32 pair count followed by each key/value
// pair in Go's unspecified (but, within one call, stable) map
// iteration order.
func WriteMap[K comparable, V any](w *Writer, m map[K]V, writeKey func(*Writer, K) error, writeVal func(*Writer, V) error) error {
	if err := w.writeLen(len(m)); err != nil {
		return err
	}
	for k, v := range m {
		if err := writeKey(w, k); err != nil {
			return err
		}
		if err := writeVal(w, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadMap decodes a u32-length-prefixed sequence of key/value pairs
// into a map.
func ReadMap[K comparable, V any](r *Reader, readKey func(*Reader) (K, error), readVal func(*Reader) (V, error)) (map[K]V, error) {
	n, err := r.readLen()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make(map[K]V, r.preallocSize(n))
	for i := 0; i < n; i++ {
		k, err := readKey(r)
		if err != nil {
			return nil, err
		}
		v, err := readVal(r)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// IsDefaultMap reports whether m is empty.
func IsDefaultMap[K comparable, V any](m map[K]V) bool { return len(m) == 0 }

// WriteSet encodes s (used as a set of keys) the same way WriteMap
// encodes an unordered map, omitting the (unit) values.
func WriteSet[T comparable](w *Writer, s map[T]struct{}, writeElem func(*Writer, T) error) error {
	if err := w.writeLen(len(s)); err != nil {
		return err
	}
	for v := range s {
		if err := writeElem(w, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadSet decodes a u32-length-prefixed sequence of elements into a
// set.
func ReadSet[T comparable](r *Reader, readElem func(*Reader) (T, error)) (map[T]struct{}, error) {
	n, err := r.readLen()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make(map[T]struct{}, r.preallocSize(n))
	for i := 0; i < n; i++ {
		v, err := readElem(r)
		if err != nil {
			return nil, err
		}
		out[v] = struct{}{}
	}
	return out, nil
}

// IsDefaultSet reports whether s is empty.
func IsDefaultSet[T comparable](s map[T]struct{}) bool { return len(s) == 0 }

// OrderedMap is a map whose entries are written to the wire sorted by
// key, for callers that need encoding to be deterministic across
// processes (e.g. for hashing or diffing the resulting bytes). Reading
// one back does not require the pairs to arrive in any particular
// order.
type OrderedMap[K cmp.Ordered, V any] struct {
	entries map[K]V
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[K cmp.Ordered, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{entries: make(map[K]V)}
}

// Set stores v under k.
func (m *OrderedMap[K, V]) Set(k K, v V) { m.entries[k] = v }

// Get retrieves the value stored under k, if any.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.entries[k]
	return v, ok
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int { return len(m.entries) }

// Keys returns the map's keys in ascending order.
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// WriteOrderedMap writes m's entries in ascending key order.
func WriteOrderedMap[K cmp.Ordered, V any](w *Writer, m *OrderedMap[K, V], writeKey func(*Writer, K) error, writeVal func(*Writer, V) error) error {
	keys := m.Keys()
	if err := w.writeLen(len(keys)); err != nil {
		return err
	}
	for _, k := range keys {
		if err := writeKey(w, k); err != nil {
			return err
		}
		if err := writeVal(w, m.entries[k]); err != nil {
			return err
		}
	}
	return nil
}

// ReadOrderedMap reads n key/value pairs into a fresh OrderedMap. It
// does not require the pairs to already be in ascending order.
func ReadOrderedMap[K cmp.Ordered, V any](r *Reader, readKey func(*Reader) (K, error), readVal func(*Reader) (V, error)) (*OrderedMap[K, V], error) {
	n, err := r.readLen()
	if err != nil {
		return nil, err
	}
	out := &OrderedMap[K, V]{entries: make(map[K]V, r.preallocSize(n))}
	for i := 0; i < n; i++ {
		k, err := readKey(r)
		if err != nil {
			return nil, err
		}
		v, err := readVal(r)
		if err != nil {
			return nil, err
		}
		out.entries[k] = v
	}
	return out, nil
}

// IsDefaultOrderedMap reports whether m is nil or empty.
func IsDefaultOrderedMap[K cmp.Ordered, V any](m *OrderedMap[K, V]) bool { return m == nil || m.Len() == 0 }

// OrderedSet is the set counterpart of OrderedMap: elements are
// written to the wire sorted ascending.
type OrderedSet[T cmp.Ordered] struct {
	entries map[T]struct{}
}

// NewOrderedSet returns an empty OrderedSet.
func NewOrderedSet[T cmp.Ordered]() *OrderedSet[T] {
	return &OrderedSet[T]{entries: make(map[T]struct{})}
}

// Add inserts v.
func (s *OrderedSet[T]) Add(v T) { s.entries[v] = struct{}{} }

// Has reports whether v is a member.
func (s *OrderedSet[T]) Has(v T) bool {
	_, ok := s.entries[v]
	return ok
}

// Len returns the number of members.
func (s *OrderedSet[T]) Len() int { return len(s.entries) }

// Members returns the set's elements in ascending order.
func (s *OrderedSet[T]) Members() []T {
	out := make([]T, 0, len(s.entries))
	for v := range s.entries {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// WriteOrderedSet writes s's members in ascending order.
func WriteOrderedSet[T cmp.Ordered](w *Writer, s *OrderedSet[T], writeElem func(*Writer, T) error) error {
	members := s.Members()
	if err := w.writeLen(len(members)); err != nil {
		return err
	}
	for _, v := range members {
		if err := writeElem(w, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadOrderedSet reads n elements into a fresh OrderedSet.
func ReadOrderedSet[T cmp.Ordered](r *Reader, readElem func(*Reader) (T, error)) (*OrderedSet[T], error) {
	n, err := r.readLen()
	if err != nil {
		return nil, err
	}
	out := &OrderedSet[T]{entries: make(map[T]struct{}, r.preallocSize(n))}
	for i := 0; i < n; i++ {
		v, err := readElem(r)
		if err != nil {
			return nil, err
		}
		out.entries[v] = struct{}{}
	}
	return out, nil
}

// IsDefaultOrderedSet reports whether s is nil or empty.
func IsDefaultOrderedSet[T cmp.Ordered](s *OrderedSet[T]) bool { return s == nil || s.Len() == 0 }
