// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package sealed_test

import (
	"bytes"
	"testing"

	"github.com/lbsformat/lbs-go/lib/sealed"
)

func TestSealOpenRoundTrip(t *testing.T) {
	id, err := sealed.GenerateIdentity()
	if err != nil {
		t.Fatal(err)
	}
	plaintext := []byte("an encoded lbs batch, pretend this is binary")

	ciphertext, err := sealed.Seal(plaintext, id.Recipient())
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(ciphertext, plaintext) {
		t.Fatal("ciphertext must not equal plaintext")
	}

	got, err := sealed.Open(ciphertext, id)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("got %q, want %q", got, plaintext)
	}
}

func TestOpenWithWrongIdentityFails(t *testing.T) {
	id1, err := sealed.GenerateIdentity()
	if err != nil {
		t.Fatal(err)
	}
	id2, err := sealed.GenerateIdentity()
	if err != nil {
		t.Fatal(err)
	}
	ciphertext, err := sealed.Seal([]byte("secret batch"), id1.Recipient())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sealed.Open(ciphertext, id2); err == nil {
		t.Fatal("expected decryption with the wrong identity to fail")
	}
}

func TestSealRequiresRecipient(t *testing.T) {
	if _, err := sealed.Seal([]byte("x")); err == nil {
		t.Fatal("expected an error with no recipients")
	}
}
