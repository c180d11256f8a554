// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// Uint128 holds an unsigned 128-bit integer as two 64-bit limbs, Go
// having no native 128-bit integer type. Lo holds the low-order 64
// bits, Hi the high-order 64 bits; the wire form is Lo then Hi, each
// little-endian, matching a little-endian encoding of the whole
// 128-bit value.
type Uint128 struct {
	Lo, Hi uint64
}

// Int128 is the signed counterpart of Uint128. Hi is stored as the
// high 64 bits of the two's-complement 128-bit representation, so a
// negative Int128 has Hi's top bit set.
type Int128 struct {
	Lo uint64
	Hi int64
}

func (w *Writer) WriteUint128(v Uint128) error {
	if err := w.WriteUint64(v.Lo); err != nil {
		return err
	}
	return w.WriteUint64(v.Hi)
}

func (r *Reader) ReadUint128() (Uint128, error) {
	lo, err := r.ReadUint64()
	if err != nil {
		return Uint128{}, err
	}
	hi, err := r.ReadUint64()
	if err != nil {
		return Uint128{}, err
	}
	return Uint128{Lo: lo, Hi: hi}, nil
}

func (w *Writer) WriteInt128(v Int128) error {
	if err := w.WriteUint64(v.Lo); err != nil {
		return err
	}
	return w.WriteInt64(v.Hi)
}

func (r *Reader) ReadInt128() (Int128, error) {
	lo, err := r.ReadUint64()
	if err != nil {
		return Int128{}, err
	}
	hi, err := r.ReadInt64()
	if err != nil {
		return Int128{}, err
	}
	return Int128{Lo: lo, Hi: hi}, nil
}

// IsDefaultUint128 reports whether v is the zero value.
func IsDefaultUint128(v Uint128) bool { return v.Lo == 0 && v.Hi == 0 }

// IsDefaultInt128 reports whether v is the zero value.
func IsDefaultInt128(v Int128) bool { return v.Lo == 0 && v.Hi == 0 }
