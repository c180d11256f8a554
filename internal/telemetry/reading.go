// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

// Package telemetry is a demonstration domain for the LBS codec: a
// sensor Reading record with the kind of field count and sparsity the
// format is built for (most readings populate a handful of its
// declared fields), plus a small Status tagged union nested inside it.
// Nothing here is part of the wire format itself — it's an example
// consumer of lib/wire, the way a
// production deployment's own record types would be.
package telemetry

import (
	"net/netip"
	"time"

	"github.com/google/uuid"

	"github.com/lbsformat/lbs-go/lib/wire"
)

// Field IDs for Reading. Never reused, never renumbered once shipped —
// that discipline is what makes forward/backward compatibility work
// under a non-self-describing wire format.
const (
	fieldDeviceID   = 0
	fieldLocation   = 1
	fieldValue      = 2
	fieldThreshold  = 3
	fieldTags       = 4
	fieldLabels     = 5
	fieldUptime     = 6
	fieldRecordedAt = 7
	fieldSourceIP   = 8
	fieldValidRange = 9
	fieldNote       = 10
	fieldSamples    = 11
	fieldStatus     = 12
)

// FieldInfo names a declared Reading field for presence reporting.
type FieldInfo struct {
	ID   uint16
	Name string
}

// fieldOrder lists every declared Reading field ID with its display
// name, in declaration order — the order FieldOrder returns them in.
var fieldOrder = []FieldInfo{
	{fieldDeviceID, "device_id"},
	{fieldLocation, "location"},
	{fieldValue, "value"},
	{fieldThreshold, "threshold"},
	{fieldTags, "tags"},
	{fieldLabels, "labels"},
	{fieldUptime, "uptime"},
	{fieldRecordedAt, "recorded_at"},
	{fieldSourceIP, "source_ip"},
	{fieldValidRange, "valid_range"},
	{fieldNote, "note"},
	{fieldSamples, "samples"},
	{fieldStatus, "status"},
}

// FieldOrder returns every declared Reading field, in declaration
// order — the order presence should be shown in.
func FieldOrder() []FieldInfo { return fieldOrder }

// Reading is one sensor observation. Most fields are left at their
// natural default on most readings — a healthy reading from a device
// with no tags or labels encodes only DeviceID, Value, RecordedAt,
// and Status.
type Reading struct {
	DeviceID   uuid.UUID
	Location   string
	Value      float64
	Threshold  wire.Option[float64]
	Tags       []string
	Labels     map[string]string
	Uptime     time.Duration
	RecordedAt time.Time // Instant: never default-omitted
	SourceIP   netip.Addr
	ValidRange wire.Range[float64]
	Note       wire.Box[string]
	Samples    *wire.SmallVec[uint32]
	Status     Status

	// Presence records which field IDs were actually read off the
	// wire for this record, as opposed to left at their declared
	// default because the encoder omitted them. Populated by Decode;
	// zero value (nil) for a Reading built directly in Go code.
	Presence map[uint16]bool
}

// Present reports whether field id was present on the wire for this
// Reading, rather than defaulted. Always true for a Reading that
// wasn't produced by Decode.
func (r Reading) Present(id uint16) bool {
	if r.Presence == nil {
		return true
	}
	return r.Presence[id]
}

func writeUUID(w *wire.Writer, id uuid.UUID) error {
	return w.WriteBytes(id[:])
}

func readUUID(r *wire.Reader) (uuid.UUID, error) {
	b, err := r.ReadBytes()
	if err != nil {
		return uuid.UUID{}, err
	}
	var id uuid.UUID
	if len(b) == len(id) {
		copy(id[:], b)
	}
	return id, nil
}

func writeFloat64Elem(w *wire.Writer, v float64) error { return w.WriteFloat64(v) }
func readFloat64Elem(r *wire.Reader) (float64, error)  { return r.ReadFloat64() }

func writeStringElem(w *wire.Writer, v string) error { return w.WriteString(v) }
func readStringElem(r *wire.Reader) (string, error)  { return r.ReadString() }

func writeUint32Elem(w *wire.Writer, v uint32) error { return w.WriteUint32(v) }
func readUint32Elem(r *wire.Reader) (uint32, error)  { return r.ReadUint32() }

// Encode writes r to w as an LBS record.
func (r Reading) Encode(w *wire.Writer) error {
	return wire.EncodeRecord(w, func(rw *wire.RecordWriter) error {
		if err := rw.WriteField(fieldDeviceID, r.DeviceID != uuid.Nil, func(w *wire.Writer) error {
			return writeUUID(w, r.DeviceID)
		}); err != nil {
			return err
		}
		if err := rw.WriteField(fieldLocation, !wire.IsDefaultString(r.Location), func(w *wire.Writer) error {
			return w.WriteString(r.Location)
		}); err != nil {
			return err
		}
		if err := rw.WriteField(fieldValue, !wire.IsDefaultFloat64(r.Value), func(w *wire.Writer) error {
			return w.WriteFloat64(r.Value)
		}); err != nil {
			return err
		}
		if err := rw.WriteField(fieldThreshold, !wire.IsDefaultOption(r.Threshold), func(w *wire.Writer) error {
			return wire.WriteOption(w, r.Threshold, writeFloat64Elem)
		}); err != nil {
			return err
		}
		if err := rw.WriteField(fieldTags, !wire.IsDefaultSlice(r.Tags), func(w *wire.Writer) error {
			return wire.WriteSlice(w, r.Tags, writeStringElem)
		}); err != nil {
			return err
		}
		if err := rw.WriteField(fieldLabels, !wire.IsDefaultMap(r.Labels), func(w *wire.Writer) error {
			return wire.WriteMap(w, r.Labels, writeStringElem, writeStringElem)
		}); err != nil {
			return err
		}
		if err := rw.WriteField(fieldUptime, !wire.IsDefaultDuration(r.Uptime), func(w *wire.Writer) error {
			return w.WriteDuration(r.Uptime)
		}); err != nil {
			return err
		}
		// RecordedAt is an Instant: never default-omitted.
		if err := rw.WriteField(fieldRecordedAt, true, func(w *wire.Writer) error {
			return w.WriteInstant(r.RecordedAt)
		}); err != nil {
			return err
		}
		if err := rw.WriteField(fieldSourceIP, !wire.IsDefaultIP(r.SourceIP), func(w *wire.Writer) error {
			return w.WriteIP(r.SourceIP)
		}); err != nil {
			return err
		}
		if err := rw.WriteField(fieldValidRange, !wire.IsDefaultRange(r.ValidRange), func(w *wire.Writer) error {
			return wire.WriteRange(w, r.ValidRange, writeFloat64Elem)
		}); err != nil {
			return err
		}
		if err := rw.WriteField(fieldNote, !wire.IsDefaultString(r.Note.Value), func(w *wire.Writer) error {
			return wire.WriteBox(w, r.Note, writeStringElem)
		}); err != nil {
			return err
		}
		if err := rw.WriteField(fieldSamples, !wire.IsDefaultSmallVec(r.Samples), func(w *wire.Writer) error {
			return wire.WriteSmallVec(w, r.Samples, writeUint32Elem)
		}); err != nil {
			return err
		}
		// Status is a tagged union: it has no natural default and is
		// never omitted, regardless of variant.
		if err := rw.WriteField(fieldStatus, true, func(w *wire.Writer) error {
			return r.Status.Encode(w)
		}); err != nil {
			return err
		}
		return nil
	})
}

// Decode populates r from an LBS record read from reader, starting
// every field at its declared default.
func (r *Reading) Decode(reader *wire.Reader) error {
	*r = Reading{Status: StatusOK(), Presence: make(map[uint16]bool)}
	return wire.DecodeRecord(reader, func(id uint16, reader *wire.Reader) error {
		r.Presence[id] = true
		switch id {
		case fieldDeviceID:
			v, err := readUUID(reader)
			if err != nil {
				return err
			}
			r.DeviceID = v
		case fieldLocation:
			v, err := reader.ReadString()
			if err != nil {
				return err
			}
			r.Location = v
		case fieldValue:
			v, err := reader.ReadFloat64()
			if err != nil {
				return err
			}
			r.Value = v
		case fieldThreshold:
			v, err := wire.ReadOption(reader, readFloat64Elem)
			if err != nil {
				return err
			}
			r.Threshold = v
		case fieldTags:
			v, err := wire.ReadSlice(reader, readStringElem)
			if err != nil {
				return err
			}
			r.Tags = v
		case fieldLabels:
			v, err := wire.ReadMap(reader, readStringElem, readStringElem)
			if err != nil {
				return err
			}
			r.Labels = v
		case fieldUptime:
			v, err := reader.ReadDuration()
			if err != nil {
				return err
			}
			r.Uptime = v
		case fieldRecordedAt:
			v, err := reader.ReadInstant()
			if err != nil {
				return err
			}
			r.RecordedAt = v
		case fieldSourceIP:
			v, err := reader.ReadIP()
			if err != nil {
				return err
			}
			r.SourceIP = v
		case fieldValidRange:
			v, err := wire.ReadRange(reader, readFloat64Elem)
			if err != nil {
				return err
			}
			r.ValidRange = v
		case fieldNote:
			v, err := wire.ReadBox(reader, readStringElem)
			if err != nil {
				return err
			}
			r.Note = v
		case fieldSamples:
			v, err := wire.ReadSmallVec(reader, readUint32Elem)
			if err != nil {
				return err
			}
			r.Samples = v
		case fieldStatus:
			var s Status
			if err := s.Decode(reader); err != nil {
				return err
			}
			r.Status = s
		default:
			return wire.WithField(wire.ErrUnknownFieldID, id)
		}
		return nil
	})
}
