// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"bytes"
	"net/netip"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lbsformat/lbs-go/lib/wire"
)

func TestReadingRoundTripSparse(t *testing.T) {
	in := Reading{
		DeviceID:   uuid.MustParse("00000000-0000-0000-0000-000000000042"),
		Value:      98.6,
		RecordedAt: time.Unix(1700000000, 0).UTC(),
	}

	var buf bytes.Buffer
	if err := in.Encode(wire.NewWriter(&buf)); err != nil {
		t.Fatal(err)
	}

	var out Reading
	if err := out.Decode(wire.NewReader(&buf)); err != nil {
		t.Fatal(err)
	}

	if out.DeviceID != in.DeviceID {
		t.Fatalf("device id: got %v, want %v", out.DeviceID, in.DeviceID)
	}
	if out.Value != in.Value {
		t.Fatalf("value: got %v, want %v", out.Value, in.Value)
	}
	if !out.RecordedAt.Equal(in.RecordedAt) {
		t.Fatalf("recorded at: got %v, want %v", out.RecordedAt, in.RecordedAt)
	}
	if out.Location != "" || out.Uptime != 0 || out.Status.Variant != statusVariantOK {
		t.Fatalf("unset fields should keep their defaults: %+v", out)
	}
}

func TestReadingRoundTripFullyPopulated(t *testing.T) {
	in := Reading{
		DeviceID:  uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		Location:  "greenhouse-3",
		Value:     21.5,
		Threshold: wire.Some(25.0),
		Tags:      []string{"soil", "outdoor"},
		Labels:    map[string]string{"zone": "west"},
		Uptime:    72 * time.Hour,
		RecordedAt: time.Unix(1700000500, 250).UTC(),
		SourceIP:  netip.MustParseAddr("192.168.1.42"),
		ValidRange: wire.Range[float64]{Start: -10, End: 50},
		Note:      wire.NewBox("recalibrated after storm"),
		Samples:   wire.SmallVecFrom([]uint32{1, 2, 3, 4, 5, 6}),
		Status:    StatusDegraded("battery low"),
	}

	var buf bytes.Buffer
	if err := in.Encode(wire.NewWriter(&buf)); err != nil {
		t.Fatal(err)
	}

	var out Reading
	if err := out.Decode(wire.NewReader(&buf)); err != nil {
		t.Fatal(err)
	}

	if out.Location != in.Location {
		t.Fatalf("location: got %q, want %q", out.Location, in.Location)
	}
	if !out.Threshold.Valid || out.Threshold.Value != 25.0 {
		t.Fatalf("threshold: got %+v", out.Threshold)
	}
	if len(out.Tags) != 2 || out.Tags[0] != "soil" {
		t.Fatalf("tags: got %v", out.Tags)
	}
	if out.Labels["zone"] != "west" {
		t.Fatalf("labels: got %v", out.Labels)
	}
	if out.Uptime != in.Uptime {
		t.Fatalf("uptime: got %v, want %v", out.Uptime, in.Uptime)
	}
	if out.SourceIP != in.SourceIP {
		t.Fatalf("source ip: got %v, want %v", out.SourceIP, in.SourceIP)
	}
	if out.ValidRange != in.ValidRange {
		t.Fatalf("valid range: got %+v, want %+v", out.ValidRange, in.ValidRange)
	}
	if out.Note.Value != in.Note.Value {
		t.Fatalf("note: got %q, want %q", out.Note.Value, in.Note.Value)
	}
	if out.Samples.Len() != 6 || out.Samples.At(5) != 6 {
		t.Fatalf("samples: got len %d", out.Samples.Len())
	}
	if out.Status.Variant != statusVariantDegraded || out.Status.Reason != "battery low" {
		t.Fatalf("status: got %+v", out.Status)
	}
}

func TestReadingOmitsDefaultFields(t *testing.T) {
	in := Reading{RecordedAt: time.Unix(0, 0).UTC()}
	var buf bytes.Buffer
	if err := in.Encode(wire.NewWriter(&buf)); err != nil {
		t.Fatal(err)
	}
	// DeviceID zero, Location empty, Value 0: RecordedAt and Status are
	// never omitted regardless of value, so count == 2.
	if buf.Bytes()[0] != 2 {
		t.Fatalf("field count = %d, want 2 (RecordedAt and Status)", buf.Bytes()[0])
	}
}

func TestReadingDecodeTracksPresence(t *testing.T) {
	in := Reading{
		DeviceID:   uuid.MustParse("00000000-0000-0000-0000-000000000042"),
		Value:      98.6,
		RecordedAt: time.Unix(1700000000, 0).UTC(),
	}
	var buf bytes.Buffer
	if err := in.Encode(wire.NewWriter(&buf)); err != nil {
		t.Fatal(err)
	}

	var out Reading
	if err := out.Decode(wire.NewReader(&buf)); err != nil {
		t.Fatal(err)
	}

	if !out.Present(fieldDeviceID) || !out.Present(fieldValue) || !out.Present(fieldRecordedAt) || !out.Present(fieldStatus) {
		t.Fatalf("expected device_id, value, recorded_at and status present, got %+v", out.Presence)
	}
	if out.Present(fieldLocation) || out.Present(fieldTags) || out.Present(fieldUptime) {
		t.Fatalf("expected omitted fields to report as not present, got %+v", out.Presence)
	}

	var fresh Reading
	if !fresh.Present(fieldLocation) {
		t.Fatal("a Reading not produced by Decode should report every field as present")
	}
}

func TestReadingRejectsUnknownFieldID(t *testing.T) {
	raw := []byte{
		0x01,
		0xFF, 0xFF,
		0x01,
	}
	var out Reading
	err := out.Decode(wire.NewReader(bytes.NewReader(raw)))
	if err == nil {
		t.Fatal("expected an unknown field id error")
	}
}

func TestStatusUnionRoundTrip(t *testing.T) {
	cases := []Status{
		StatusOK(),
		StatusDegraded("overheating"),
		StatusDown(time.Unix(1600000000, 0).UTC()),
	}
	for _, want := range cases {
		var buf bytes.Buffer
		if err := want.Encode(wire.NewWriter(&buf)); err != nil {
			t.Fatal(err)
		}
		var got Status
		if err := got.Decode(wire.NewReader(&buf)); err != nil {
			t.Fatal(err)
		}
		if got.Variant != want.Variant || got.Reason != want.Reason || !got.Since.Equal(want.Since) {
			t.Fatalf("got %+v, want %+v", got, want)
		}
	}
}

func TestDescribeEncodedSize(t *testing.T) {
	got := DescribeEncodedSize(1, 7)
	if got == "" {
		t.Fatal("expected a non-empty description")
	}
}
