// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

// Package diagnostic renders already-decoded LBS values as CBOR
// diagnostic notation for inspection tooling (lbsdump, lbsview). It
// never touches the wire format itself: LBS's binary codec stays
// hand-rolled and non-self-describing, as the spec requires, while
// this package gives operators a self-describing, human-legible view
// of a record's decoded *contents* for debugging and log capture.
package diagnostic

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var encMode = mustEncMode()

func mustEncMode() cbor.EncMode {
	opts := cbor.CanonicalEncOptions()
	mode, err := opts.EncMode()
	if err != nil {
		panic(err)
	}
	return mode
}

// Render marshals v (typically a map[string]any built by a caller from
// a decoded record's fields) to deterministic CBOR bytes using
// Canonical CBOR encoding, then formats those bytes as diagnostic
// notation.
func Render(v any) (string, error) {
	data, err := encMode.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("diagnostic: marshal: %w", err)
	}
	notation, err := cbor.Diagnose(data)
	if err != nil {
		return "", fmt.Errorf("diagnostic: diagnose: %w", err)
	}
	return notation, nil
}

// RecordFields describes one decoded record field for rendering:
// its declared name, wire ID, and decoded Go value.
type RecordFields struct {
	Name  string
	ID    uint16
	Value any
}

// RenderRecord renders a decoded record's populated fields, keyed by
// name, as CBOR diagnostic notation. Fields holding their type's
// default and therefore absent from the wire should simply not be
// included in fields — this renders what was actually on the wire,
// not the reconstructed in-memory defaults.
func RenderRecord(name string, fields []RecordFields) (string, error) {
	body := make(map[string]any, len(fields))
	for _, f := range fields {
		body[f.Name] = f.Value
	}
	return Render(map[string]any{name: body})
}
