// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

// Package fingerprint computes keyed, domain-separated content hashes
// over encoded LBS bytes, for deduplicating stored batches and
// detecting silent corruption. It never inspects record structure —
// it hashes whatever byte slice it's given, whether that's a single
// encoded record or an entire batch file.
package fingerprint

import (
	"github.com/zeebo/blake3"
)

// Size is the length in bytes of a Hash.
const Size = 32

// Hash is a 256-bit BLAKE3 digest.
type Hash [Size]byte

// domain keys separate hashes computed over different kinds of
// content so that, e.g., a record's hash can never collide with a
// batch's hash even if the underlying bytes happened to match —
// mirrors the teacher's artifact hashing, where chunk/container/file
// hashes are kept in disjoint spaces the same way.
var (
	recordDomainKey = paddedDomainKey("lbs.record.v1")
	batchDomainKey  = paddedDomainKey("lbs.batch.v1")
)

func paddedDomainKey(s string) [32]byte {
	var key [32]byte
	copy(key[:], s)
	return key
}

// HashRecord fingerprints a single encoded record's bytes.
func HashRecord(encoded []byte) Hash {
	return keyedHash(recordDomainKey, encoded)
}

// HashBatch fingerprints an encoded batch's bytes (a concatenation of
// one or more encoded records).
func HashBatch(encoded []byte) Hash {
	return keyedHash(batchDomainKey, encoded)
}

func keyedHash(key [32]byte, data []byte) Hash {
	h, err := blake3.NewKeyed(key[:])
	if err != nil {
		// key is always exactly 32 bytes, constructed in this package.
		panic(err)
	}
	h.Write(data)
	var out Hash
	h.Sum(out[:0])
	return out
}

// String renders h as lowercase hex.
func (h Hash) String() string {
	const hexDigits = "0123456789abcdef"
	out := make([]byte, Size*2)
	for i, b := range h {
		out[i*2] = hexDigits[b>>4]
		out[i*2+1] = hexDigits[b&0x0f]
	}
	return string(out)
}
