// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import "math"

// Integer is any Go integer type LBS can write as a fixed-width
// primitive.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// IsDefaultInt reports whether v is zero, the natural default for
// every integer width the format supports.
func IsDefaultInt[T Integer](v T) bool { return v == 0 }

// IsDefaultBool reports whether v is false.
func IsDefaultBool(v bool) bool { return !v }

// IsDefaultRune reports whether v is the NUL scalar value.
func IsDefaultRune(v rune) bool { return v == 0 }

// IsDefaultString reports whether v is the empty string.
func IsDefaultString(v string) bool { return len(v) == 0 }

// IsDefaultBytes reports whether v is empty.
func IsDefaultBytes(v []byte) bool { return len(v) == 0 }

// IsDefaultFloat32 reports whether v's bit pattern is positive zero.
// Negative zero is a distinct bit pattern and is therefore not
// treated as default — it round-trips as an explicitly written field.
func IsDefaultFloat32(v float32) bool { return math.Float32bits(v) == 0 }

// IsDefaultFloat64 reports whether v's bit pattern is positive zero.
func IsDefaultFloat64(v float64) bool { return math.Float64bits(v) == 0 }
