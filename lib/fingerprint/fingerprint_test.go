// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package fingerprint_test

import (
	"testing"

	"github.com/lbsformat/lbs-go/lib/fingerprint"
)

func TestHashRecordIsDeterministic(t *testing.T) {
	data := []byte{0x01, 0x07, 0x00, 0x2A, 0x00, 0x00, 0x00}
	a := fingerprint.HashRecord(data)
	b := fingerprint.HashRecord(data)
	if a != b {
		t.Fatal("hashing the same bytes twice must produce the same digest")
	}
}

func TestHashRecordAndHashBatchDiffer(t *testing.T) {
	data := []byte{0x01, 0x07, 0x00, 0x2A, 0x00, 0x00, 0x00}
	if fingerprint.HashRecord(data) == fingerprint.HashBatch(data) {
		t.Fatal("record and batch domains must not collide for identical bytes")
	}
}

func TestHashChangesWithContent(t *testing.T) {
	a := fingerprint.HashRecord([]byte{0x00})
	b := fingerprint.HashRecord([]byte{0x01})
	if a == b {
		t.Fatal("different content must hash differently")
	}
}

func TestStringIsLowercaseHex(t *testing.T) {
	h := fingerprint.HashRecord([]byte("lbs"))
	s := h.String()
	if len(s) != fingerprint.Size*2 {
		t.Fatalf("got length %d, want %d", len(s), fingerprint.Size*2)
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			t.Fatalf("non-hex character %q in %q", c, s)
		}
	}
}
