// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package wire

// EncodeUnion writes a tagged union: a one-byte variant ID, then
// whatever bytes payload writes for that variant. payload may be nil
// for a unit variant (one that carries no data).
func EncodeUnion(w *Writer, variantID uint8, payload func(*Writer) error) error {
	if err := w.WriteUint8(variantID); err != nil {
		return err
	}
	if payload == nil {
		return nil
	}
	return payload(w)
}

// DecodeUnion reads a tagged union's one-byte variant ID and hands it
// to handler along with r, positioned at the start of that variant's
// payload (if any). handler is responsible for returning an error
// wrapping [ErrUnknownVariantID] for IDs it doesn't recognize.
func DecodeUnion(r *Reader, handler func(variantID uint8, r *Reader) error) error {
	id, err := r.ReadUint8()
	if err != nil {
		return err
	}
	return handler(id, r)
}
