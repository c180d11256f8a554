// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package diagnostic_test

import (
	"strings"
	"testing"

	"github.com/lbsformat/lbs-go/lib/diagnostic"
)

func TestRenderRecordProducesReadableNotation(t *testing.T) {
	notation, err := diagnostic.RenderRecord("Reading", []diagnostic.RecordFields{
		{Name: "device_id", ID: 0, Value: "sensor-7"},
		{Name: "value", ID: 1, Value: 98.6},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(notation, "Reading") {
		t.Fatalf("notation %q missing record name", notation)
	}
	if !strings.Contains(notation, "sensor-7") {
		t.Fatalf("notation %q missing field value", notation)
	}
}

func TestRenderRecordWithNoFields(t *testing.T) {
	notation, err := diagnostic.RenderRecord("Empty", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(notation, "Empty") {
		t.Fatalf("notation %q missing record name", notation)
	}
}
