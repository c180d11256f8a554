// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"errors"
	"time"
)

// WriteDuration encodes a non-negative elapsed time as an 8-byte
// unsigned second count followed by a 4-byte nanosecond remainder.
// Negative durations have no wire representation and are rejected.
func (w *Writer) WriteDuration(d time.Duration) error {
	if d < 0 {
		return &Error{Kind: KindInvalidScalar, Err: errors.New("duration must not be negative")}
	}
	secs := uint64(d / time.Second)
	nanos := uint32(d % time.Second)
	if err := w.WriteUint64(secs); err != nil {
		return err
	}
	return w.WriteUint32(nanos)
}

func (r *Reader) ReadDuration() (time.Duration, error) {
	secs, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	nanos, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return time.Duration(secs)*time.Second + time.Duration(nanos), nil
}

// IsDefaultDuration reports whether d is zero.
func IsDefaultDuration(d time.Duration) bool { return d == 0 }

// WriteInstant encodes a wall-clock instant as the (necessarily
// non-negative) duration elapsed since the Unix epoch. Instant fields
// are never default-omitted by the record framer — they represent
// "when", not "how much", and zero is itself meaningful (the epoch),
// so callers should always pass present=true for them.
func (w *Writer) WriteInstant(t time.Time) error {
	since := t.Sub(time.Unix(0, 0))
	if since < 0 {
		return &Error{Kind: KindInvalidScalar, Err: errors.New("instant predates the unix epoch")}
	}
	return w.WriteDuration(since)
}

func (r *Reader) ReadInstant() (time.Time, error) {
	since, err := r.ReadDuration()
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(0, 0).Add(since).UTC(), nil
}

// WriteTimestamp encodes a calendar timestamp as an 8-byte signed
// second count (relative to the Unix epoch, may be negative for dates
// before 1970) followed by a 4-byte nanosecond remainder. Like
// Instant, Timestamp fields are never default-omitted.
func (w *Writer) WriteTimestamp(t time.Time) error {
	if err := w.WriteInt64(t.Unix()); err != nil {
		return err
	}
	return w.WriteUint32(uint32(t.Nanosecond()))
}

func (r *Reader) ReadTimestamp() (time.Time, error) {
	secs, err := r.ReadInt64()
	if err != nil {
		return time.Time{}, err
	}
	nanos, err := r.ReadUint32()
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(secs, int64(nanos)).UTC(), nil
}
