// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "bytes"

// maxRecordFields is the largest field count a record's one-byte
// count prefix can carry.
const maxRecordFields = 255

// RecordWriter accumulates a record's present fields so the one-byte
// field count can be written before any field bytes — the count has
// to precede the pairs it describes, but isn't known until every
// field has been visited, so field bytes are buffered here and
// flushed by EncodeRecord once the count is final.
type RecordWriter struct {
	buf   bytes.Buffer
	sub   *Writer
	count int
}

func newRecordWriter() *RecordWriter {
	rw := &RecordWriter{}
	rw.sub = NewWriter(&rw.buf)
	return rw
}

// WriteField writes field id and its value via encode, but only if
// present is true. Callers compute present themselves, typically as
// "not omitted by schema and not equal to the field's default" — see
// the IsDefault* helpers throughout this package.
func (rw *RecordWriter) WriteField(id uint16, present bool, encode func(*Writer) error) error {
	if !present {
		return nil
	}
	if rw.count >= maxRecordFields {
		return ErrTooManyFields
	}
	if err := rw.sub.WriteUint16(id); err != nil {
		return err
	}
	if err := encode(rw.sub); err != nil {
		return WithField(err, id)
	}
	rw.count++
	return nil
}

// EncodeRecord writes a full record: fn is called once with a fresh
// RecordWriter to populate fields via WriteField, and the resulting
// one-byte count plus buffered (id, value) pairs are then written to
// w.
func EncodeRecord(w *Writer, fn func(*RecordWriter) error) error {
	rw := newRecordWriter()
	if err := fn(rw); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(rw.count)); err != nil {
		return err
	}
	return w.writeRaw(rw.buf.Bytes())
}

// DecodeRecord reads a record's one-byte field count followed by that
// many (u16 id, value) pairs, calling handler once per pair. handler
// is responsible for decoding the value bytes for ids it recognizes
// and for returning an error wrapping [ErrUnknownFieldID] for ids it
// doesn't — DecodeRecord itself only handles the framing and the
// duplicate-ID check, since which IDs are known is caller-specific.
func DecodeRecord(r *Reader, handler func(id uint16, r *Reader) error) error {
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
		if err := handler(id, r); err != nil {
			return WithField(err, id)
		}
	}
	return nil
}
