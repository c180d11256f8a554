// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire implements the LBS (Lazy Binary Serialization) wire
// format: a compact binary codec for large, sparsely-populated
// records. A record is written as a one-byte field count followed by
// that many (field ID, value) pairs — fields holding their type's
// natural default value are omitted entirely rather than written as
// zero. Decoding starts every field at its declared default and
// overwrites only the fields whose IDs appear on the wire, so a
// record with 160 declared fields and 20 populated ones costs roughly
// 20 field writes, not 160.
//
// The format is little-endian, fixed-width, and deliberately not
// self-describing: a reader that doesn't already know a field's type
// cannot skip past its bytes. Forward compatibility therefore comes
// from field IDs never being reused, not from the wire format
// tolerating strangers — an unknown field ID is a hard decode error
// ([ErrUnknownFieldID]), not something to shrug off.
//
// [Writer] and [Reader] wrap an [io.Writer]/[io.Reader] with one
// method per primitive shape from the spec (integers, floats, strings,
// durations, IP addresses, ...); composite shapes (optionals,
// sequences, maps, sets, ...) are generic package-level functions
// such as [WriteOption] and [ReadSlice]. [EncodeRecord]/[DecodeRecord] and
// [EncodeUnion]/[DecodeUnion] implement the record and tagged-union
// framing on top of those primitives. Hand-written record/union types
// call into this package from their own Encode/Decode methods — this
// package does not generate those methods; deriving them from a
// schema is a separate concern (see package schema) left to a future
// code-generation tool.
package wire
