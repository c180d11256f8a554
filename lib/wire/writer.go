// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf8"
)

// Writer encodes LBS primitives onto an underlying io.Writer in
// little-endian, fixed-width form. A Writer is not safe for concurrent
// use; each record/union/value being written should own its own
// Writer (or a nested one scoped to it, as [EncodeRecord] does
// internally).
type Writer struct {
	w   io.Writer
	buf [8]byte
}

// NewWriter wraps w for LBS encoding.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) writeRaw(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if _, err := w.w.Write(b); err != nil {
		return &Error{Kind: KindSink, Err: err}
	}
	return nil
}

// WriteUnit writes the zero-byte unit value.
func (w *Writer) WriteUnit() error { return nil }

func (w *Writer) WriteUint8(v uint8) error {
	w.buf[0] = v
	return w.writeRaw(w.buf[:1])
}

func (w *Writer) WriteUint16(v uint16) error {
	binary.LittleEndian.PutUint16(w.buf[:2], v)
	return w.writeRaw(w.buf[:2])
}

func (w *Writer) WriteUint32(v uint32) error {
	binary.LittleEndian.PutUint32(w.buf[:4], v)
	return w.writeRaw(w.buf[:4])
}

func (w *Writer) WriteUint64(v uint64) error {
	binary.LittleEndian.PutUint64(w.buf[:8], v)
	return w.writeRaw(w.buf[:8])
}

func (w *Writer) WriteInt8(v int8) error   { return w.WriteUint8(uint8(v)) }
func (w *Writer) WriteInt16(v int16) error { return w.WriteUint16(uint16(v)) }
func (w *Writer) WriteInt32(v int32) error { return w.WriteUint32(uint32(v)) }
func (w *Writer) WriteInt64(v int64) error { return w.WriteUint64(uint64(v)) }

// WriteUint and WriteInt encode the platform-width uint/int as a fixed
// 64-bit value, matching the spec's choice of a single wire width for
// pointer-sized integers regardless of host architecture.
func (w *Writer) WriteUint(v uint) error { return w.WriteUint64(uint64(v)) }
func (w *Writer) WriteInt(v int) error   { return w.WriteInt64(int64(v)) }

func (w *Writer) WriteFloat32(v float32) error { return w.WriteUint32(math.Float32bits(v)) }
func (w *Writer) WriteFloat64(v float64) error { return w.WriteUint64(math.Float64bits(v)) }

func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.WriteUint8(1)
	}
	return w.WriteUint8(0)
}

// WriteRune encodes a Unicode scalar value as a u32 code point. v must
// be a valid Unicode scalar value (not a surrogate half); callers that
// accept arbitrary int32 input should validate with utf8.ValidRune
// first.
func (w *Writer) WriteRune(v rune) error {
	if !utf8.ValidRune(v) {
		return &Error{Kind: KindInvalidScalar, Err: fmt.Errorf("%d is not a valid unicode scalar value", v)}
	}
	return w.WriteUint32(uint32(v))
}

func (w *Writer) writeLen(n int) error {
	if n < 0 || n > math.MaxUint32 {
		return &Error{Kind: KindInvalidScalar, Err: fmt.Errorf("length %d does not fit in u32", n)}
	}
	return w.WriteUint32(uint32(n))
}

// WriteString encodes v as a u32 byte length followed by its raw UTF-8
// bytes.
func (w *Writer) WriteString(v string) error {
	if err := w.writeLen(len(v)); err != nil {
		return err
	}
	return w.writeRaw([]byte(v))
}

// WriteBytes encodes a raw byte slice with the same u32-length-prefix
// framing as WriteString, for fields declared as opaque blobs.
func (w *Writer) WriteBytes(v []byte) error {
	if err := w.writeLen(len(v)); err != nil {
		return err
	}
	return w.writeRaw(v)
}
