// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// Box, Shared and Cow all encode transparently: each holds exactly
// one inner value and contributes nothing of its own to the wire
// form, the wire bytes for Box[T]{v}, Shared[T] wrapping v, Cow[T]{v}
// and a bare T are identical. They exist as distinct named types so a
// schema can record which ownership shape a field was declared with
// in its origin model, even though Go has no borrow checker for that
// shape to describe; callers that don't care about the distinction
// can ignore these types and encode T directly.

// Box models a uniquely-owned heap value.
type Box[T any] struct {
	Value T
}

// NewBox wraps v in a Box.
func NewBox[T any](v T) Box[T] { return Box[T]{Value: v} }

// Shared models a reference-counted value (Rc/Arc in the systems this
// format originated alongside). Go has no reference counting, so
// Shared here is just a named holder; Get always returns the same
// copy of the wrapped value.
type Shared[T any] struct {
	Value T
}

// NewShared wraps v in a Shared.
func NewShared[T any](v T) Shared[T] { return Shared[T]{Value: v} }

// Get returns the wrapped value.
func (s Shared[T]) Get() T { return s.Value }

// Cow models a value that was either borrowed or owned at the point of
// origin. Go has no borrowing, so Cow collapses to an owned holder
// identical in shape to Box; it is kept as a separate type purely to
// preserve the origin schema's intent at the type level.
type Cow[T any] struct {
	Value T
}

// NewCow wraps v in a Cow.
func NewCow[T any](v T) Cow[T] { return Cow[T]{Value: v} }

// WriteBox writes b.Value via writeElem.
func WriteBox[T any](w *Writer, b Box[T], writeElem func(*Writer, T) error) error {
	return writeElem(w, b.Value)
}

// ReadBox reads a value via readElem and wraps it in a Box.
func ReadBox[T any](r *Reader, readElem func(*Reader) (T, error)) (Box[T], error) {
	v, err := readElem(r)
	if err != nil {
		return Box[T]{}, err
	}
	return Box[T]{Value: v}, nil
}

// WriteShared writes s.Value via writeElem.
func WriteShared[T any](w *Writer, s Shared[T], writeElem func(*Writer, T) error) error {
	return writeElem(w, s.Value)
}

// ReadShared reads a value via readElem and wraps it in a Shared.
func ReadShared[T any](r *Reader, readElem func(*Reader) (T, error)) (Shared[T], error) {
	v, err := readElem(r)
	if err != nil {
		return Shared[T]{}, err
	}
	return Shared[T]{Value: v}, nil
}

// WriteCow writes c.Value via writeElem.
func WriteCow[T any](w *Writer, c Cow[T], writeElem func(*Writer, T) error) error {
	return writeElem(w, c.Value)
}

// ReadCow reads a value via readElem and wraps it in a Cow.
func ReadCow[T any](r *Reader, readElem func(*Reader) (T, error)) (Cow[T], error) {
	v, err := readElem(r)
	if err != nil {
		return Cow[T]{}, err
	}
	return Cow[T]{Value: v}, nil
}
