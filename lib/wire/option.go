// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "fmt"

// Option represents an explicitly present-or-absent value, distinct
// from a record field simply being omitted because it holds its
// type's default. An Option's wire form is a one-byte tag (0 absent,
// 1 present) followed by the full value when present — default-omit
// rules do not reapply inside an Option, so Option[uint32]{Valid:
// true, Value: 0} still writes both the tag and the four zero bytes.
type Option[T any] struct {
	Valid bool
	Value T
}

// Some wraps v as a present Option.
func Some[T any](v T) Option[T] { return Option[T]{Valid: true, Value: v} }

// None returns an absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// WriteOption writes o's tag, and if present, o.Value via writeElem.
func WriteOption[T any](w *Writer, o Option[T], writeElem func(*Writer, T) error) error {
	if !o.Valid {
		return w.WriteUint8(0)
	}
	if err := w.WriteUint8(1); err != nil {
		return err
	}
	return writeElem(w, o.Value)
}

// ReadOption reads an Option's tag and, if present, its value via
// readElem.
func ReadOption[T any](r *Reader, readElem func(*Reader) (T, error)) (Option[T], error) {
	tag, err := r.ReadUint8()
	if err != nil {
		return Option[T]{}, err
	}
	switch tag {
	case 0:
		return Option[T]{}, nil
	case 1:
		v, err := readElem(r)
		if err != nil {
			return Option[T]{}, err
		}
		return Option[T]{Valid: true, Value: v}, nil
	default:
		return Option[T]{}, &Error{Kind: KindInvalidScalar, Err: fmt.Errorf("option tag %d is neither 0 nor 1", tag)}
	}
}

// IsDefaultOption reports whether o is absent — the condition under
// which a record field holding an Option is omitted from the wire
// entirely.
func IsDefaultOption[T any](o Option[T]) bool { return !o.Valid }
