// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "fmt"

// Skip methods advance the reader past a value's bytes without
// materializing it as a Go value. They exist for callers that know a
// field's type from a schema but don't need its contents this
// decode — partial record inspection, log scrubbing, format
// conversion of the fields that do matter. They are structurally
// identical to the corresponding Read* method, minus the allocation,
// so they consume exactly as many bytes as a full decode would.
//
// Skipping is not the same thing as tolerating an unknown field ID:
// the caller here already knows the type of the field being skipped.
// An ID the decoder has no declared field for at all is always a hard
// error (see [DecodeRecord]); Skip* methods are invoked by a caller's
// own dispatch, the same as Read* methods are.

func (r *Reader) SkipUint8() error  { return r.skipRaw(1) }
func (r *Reader) SkipUint16() error { return r.skipRaw(2) }
func (r *Reader) SkipUint32() error { return r.skipRaw(4) }
func (r *Reader) SkipUint64() error { return r.skipRaw(8) }
func (r *Reader) SkipUint() error   { return r.skipRaw(8) }
func (r *Reader) SkipInt() error    { return r.skipRaw(8) }

func (r *Reader) SkipFloat32() error { return r.skipRaw(4) }
func (r *Reader) SkipFloat64() error { return r.skipRaw(8) }
func (r *Reader) SkipBool() error    { return r.skipRaw(1) }
func (r *Reader) SkipRune() error    { return r.skipRaw(4) }
func (r *Reader) SkipUnit() error    { return nil }

func (r *Reader) SkipUint128() error { return r.skipRaw(16) }
func (r *Reader) SkipInt128() error  { return r.skipRaw(16) }

func (r *Reader) SkipDuration() error  { return r.skipRaw(12) }
func (r *Reader) SkipInstant() error   { return r.skipRaw(12) }
func (r *Reader) SkipTimestamp() error { return r.skipRaw(12) }

func (r *Reader) SkipIPv4() error { return r.skipRaw(4) }
func (r *Reader) SkipIPv6() error { return r.skipRaw(16) }

func (r *Reader) SkipIP() error {
	tag, err := r.ReadUint8()
	if err != nil {
		return err
	}
	switch tag {
	case tagIPv4:
		return r.SkipIPv4()
	case tagIPv6:
		return r.SkipIPv6()
	default:
		return &Error{Kind: KindInvalidScalar, Err: fmt.Errorf("ip address tag %d is neither 0 nor 1", tag)}
	}
}

func (r *Reader) SkipIPPrefix() error {
	if err := r.SkipIP(); err != nil {
		return err
	}
	return r.SkipUint8()
}

// SkipString skips a u32-length-prefixed string without validating
// its UTF-8 or copying its bytes.
func (r *Reader) SkipString() error {
	n, err := r.readLen()
	if err != nil {
		return err
	}
	return r.skipRaw(n)
}

// SkipBytes skips a u32-length-prefixed raw blob.
func (r *Reader) SkipBytes() error { return r.SkipString() }

// SkipOption skips an optional value: a tag byte, and if it's 1, the
// wrapped value via skipElem.
func (r *Reader) SkipOption(skipElem func(*Reader) error) error {
	tag, err := r.ReadUint8()
	if err != nil {
		return err
	}
	switch tag {
	case 0:
		return nil
	case 1:
		return skipElem(r)
	default:
		return &Error{Kind: KindInvalidScalar, Err: fmt.Errorf("option tag %d is neither 0 nor 1", tag)}
	}
}

// SkipSlice skips a u32-length-prefixed sequence of elements.
func (r *Reader) SkipSlice(skipElem func(*Reader) error) error {
	n, err := r.readLen()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := skipElem(r); err != nil {
			return err
		}
	}
	return nil
}

// SkipMap skips a u32-length-prefixed sequence of key/value pairs.
func (r *Reader) SkipMap(skipKey, skipVal func(*Reader) error) error {
	n, err := r.readLen()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := skipKey(r); err != nil {
			return err
		}
		if err := skipVal(r); err != nil {
			return err
		}
	}
	return nil
}

// SkipRange skips a Range<T>'s two back-to-back elements.
func (r *Reader) SkipRange(skipElem func(*Reader) error) error {
	if err := skipElem(r); err != nil {
		return err
	}
	return skipElem(r)
}

// SkipRecord walks an entire record's wire bytes — field count plus
// each (id, value) pair — dispatching each field's value to
// skipField. skipField is responsible for rejecting IDs it doesn't
// recognize; SkipRecord itself still enforces the duplicate-ID rule
// since that's a framing-level invariant, not a per-field one.
func (r *Reader) SkipRecord(skipField func(id uint16, r *Reader) error) error {
	count, err := r.ReadUint8()
	if err != nil {
		return err
	}
	seen := make(map[uint16]bool, count)
	for i := 0; i < int(count); i++ {
		id, err := r.ReadUint16()
		if err != nil {
			return err
		}
		if seen[id] {
			return WithField(ErrDuplicateFieldID, id)
		}
		seen[id] = true
		if err := skipField(id, r); err != nil {
			return err
		}
	}
	return nil
}

// SkipUnion skips a tagged union: a variant ID byte plus whatever
// payload skipPayload consumes for that ID.
func (r *Reader) SkipUnion(skipPayload func(variantID uint8, r *Reader) error) error {
	id, err := r.ReadUint8()
	if err != nil {
		return err
	}
	return skipPayload(id, r)
}
