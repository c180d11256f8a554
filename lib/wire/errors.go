// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"errors"
	"fmt"
	"io"
)

// Kind classifies a decode or encode failure. It is the stable,
// matchable part of an [Error] — messages may change, Kind values
// don't.
type Kind int

const (
	// KindInsufficientInput means the underlying reader ran out of
	// bytes before a value could be fully read.
	KindInsufficientInput Kind = iota
	// KindInvalidUTF8 means a string field's bytes are not valid UTF-8.
	KindInvalidUTF8
	// KindInvalidScalar means a fixed-width value was read successfully
	// but its bit pattern does not represent a legal value of its type
	// (e.g. a bool byte other than 0/1, a code point outside the
	// Unicode scalar value range, a negative duration).
	KindInvalidScalar
	// KindUnknownFieldID means a record carried a field ID the decoder
	// has no declared field for.
	KindUnknownFieldID
	// KindUnknownVariantID means a tagged union carried a variant ID
	// the decoder has no declared case for.
	KindUnknownVariantID
	// KindTooManyFields means an encoder was asked to write more than
	// 255 non-default fields into a single record.
	KindTooManyFields
	// KindDuplicateFieldID means the same field ID appeared more than
	// once in a single record.
	KindDuplicateFieldID
	// KindSink means the underlying io.Writer returned an error.
	KindSink
	// KindSource means the underlying io.Reader returned an error other
	// than io.EOF/io.ErrUnexpectedEOF.
	KindSource
)

func (k Kind) String() string {
	switch k {
	case KindInsufficientInput:
		return "insufficient input"
	case KindInvalidUTF8:
		return "invalid utf-8"
	case KindInvalidScalar:
		return "invalid scalar"
	case KindUnknownFieldID:
		return "unknown field id"
	case KindUnknownVariantID:
		return "unknown variant id"
	case KindTooManyFields:
		return "too many fields"
	case KindDuplicateFieldID:
		return "duplicate field id"
	case KindSink:
		return "sink error"
	case KindSource:
		return "source error"
	default:
		return "unknown error kind"
	}
}

// Error is the single error type returned by this package. Field is
// only meaningful when HasField is true — it's populated by
// [Error.WithField] as an error unwinds out of a nested field or
// variant decode, so a caller can tell which field in a record failed
// without string-matching a message.
type Error struct {
	Kind     Kind
	Field    uint16
	HasField bool
	Err      error
}

func (e *Error) Error() string {
	if e.HasField {
		if e.Err != nil {
			return fmt.Sprintf("lbs: field %d: %s: %v", e.Field, e.Kind, e.Err)
		}
		return fmt.Sprintf("lbs: field %d: %s", e.Field, e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("lbs: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("lbs: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes errors.Is(err, wire.ErrUnknownFieldID) and friends work by
// comparing Kind rather than pointer identity.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// WithField attaches a field ID to err if it is an *Error that doesn't
// already carry one, returning err unchanged otherwise. Each record
// field decode calls this as its error bubbles up, so the outermost
// caller sees the ID of the field where decoding actually failed
// rather than the outermost record's.
func WithField(err error, id uint16) error {
	if err == nil {
		return nil
	}
	e, ok := err.(*Error)
	if !ok || e.HasField {
		return err
	}
	return &Error{Kind: e.Kind, Field: id, HasField: true, Err: e.Err}
}

// Sentinel errors for use with errors.Is. Each carries only a Kind —
// compare with errors.Is, not equality, since a real failure also
// carries a wrapped cause and possibly a field ID.
var (
	ErrInsufficientInput = &Error{Kind: KindInsufficientInput}
	ErrInvalidUTF8       = &Error{Kind: KindInvalidUTF8}
	ErrInvalidScalar     = &Error{Kind: KindInvalidScalar}
	ErrUnknownFieldID    = &Error{Kind: KindUnknownFieldID}
	ErrUnknownVariantID  = &Error{Kind: KindUnknownVariantID}
	ErrTooManyFields     = &Error{Kind: KindTooManyFields}
	ErrDuplicateFieldID  = &Error{Kind: KindDuplicateFieldID}
	ErrSink              = &Error{Kind: KindSink}
	ErrSource            = &Error{Kind: KindSource}
)

// IsEOF reports whether err represents the reader running dry, whether
// that happened at a value boundary or partway through a value; use
// [IsCleanEOF] to tell the two apart.
func IsEOF(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == KindInsufficientInput
}

// IsCleanEOF reports whether err represents the reader running out of
// input at the very start of a value — i.e. zero bytes of the next
// value were read — as opposed to running out partway through one. It
// works per value, not per record: input that ends between two values
// of the same record also counts as clean.
func IsCleanEOF(err error) bool {
	e, ok := err.(*Error)
	if !ok || e.Kind != KindInsufficientInput {
		return false
	}
	return errors.Is(e.Err, io.EOF)
}
