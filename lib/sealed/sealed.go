// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

// Package sealed encrypts encoded LBS batches at rest using age. It
// operates on plain []byte payloads — unlike the credential-bundle
// sealing this package is adapted from, an encoded batch has no
// sensitivity requirement that it live in locked, non-swappable
// memory, so there is no secret.Buffer equivalent here.
package sealed

import (
	"bytes"
	"fmt"
	"io"

	"filippo.io/age"
)

// Seal encrypts plaintext to every given recipient, returning the age
// ciphertext.
func Seal(plaintext []byte, recipients ...age.Recipient) ([]byte, error) {
	if len(recipients) == 0 {
		return nil, fmt.Errorf("sealed: at least one recipient is required")
	}
	var out bytes.Buffer
	w, err := age.Encrypt(&out, recipients...)
	if err != nil {
		return nil, fmt.Errorf("sealed: encrypt: %w", err)
	}
	if _, err := w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("sealed: write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("sealed: close: %w", err)
	}
	return out.Bytes(), nil
}

// Open decrypts age ciphertext produced by Seal using identity.
func Open(ciphertext []byte, identities ...age.Identity) ([]byte, error) {
	if len(identities) == 0 {
		return nil, fmt.Errorf("sealed: at least one identity is required")
	}
	r, err := age.Decrypt(bytes.NewReader(ciphertext), identities...)
	if err != nil {
		return nil, fmt.Errorf("sealed: decrypt: %w", err)
	}
	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("sealed: read: %w", err)
	}
	return plaintext, nil
}

// GenerateIdentity creates a fresh X25519 identity for sealing batches
// to a single recipient (itself), for tests and small deployments that
// don't yet manage a recipient list externally.
func GenerateIdentity() (*age.X25519Identity, error) {
	id, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("sealed: generate identity: %w", err)
	}
	return id, nil
}
