// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package schema_test

import (
	"strings"
	"testing"

	"github.com/lbsformat/lbs-go/lib/schema"
)

const sampleYAML = `
records:
  - name: Reading
    fields:
      - {name: device_id, id: 0, kind: string}
      - {name: value, id: 1, kind: float64}
      - {name: tags, id: 2, kind: slice, element: {name: tag, id: 0, kind: string}}
unions:
  - name: Alert
    variants:
      - {name: none, id: 0}
      - {name: threshold, id: 1, payload: {name: value, id: 0, kind: float64}}
`

func TestLoadValidDocument(t *testing.T) {
	doc, err := schema.Load([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	rec, ok := doc.FindRecord("Reading")
	if !ok {
		t.Fatal("expected Reading record")
	}
	if len(rec.Fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(rec.Fields))
	}
	un, ok := doc.FindUnion("Alert")
	if !ok || len(un.Variants) != 2 {
		t.Fatalf("got union %+v", un)
	}
}

func TestValidateRejectsDuplicateFieldID(t *testing.T) {
	doc := &schema.Document{
		Records: []schema.Record{{
			Name: "Bad",
			Fields: []schema.Field{
				{Name: "a", ID: 1, Kind: schema.KindUint32},
				{Name: "b", ID: 1, Kind: schema.KindString},
			},
		}},
	}
	err := doc.Validate()
	if err == nil || !strings.Contains(err.Error(), "field id 1") {
		t.Fatalf("got %v, want a duplicate field id error", err)
	}
}

func TestValidateRejectsTooManyFields(t *testing.T) {
	fields := make([]schema.Field, 256)
	for i := range fields {
		fields[i] = schema.Field{Name: "f", ID: uint16(i), Kind: schema.KindUint8}
	}
	doc := &schema.Document{Records: []schema.Record{{Name: "TooBig", Fields: fields}}}
	if err := doc.Validate(); err == nil {
		t.Fatal("expected a too-many-fields error")
	}
}

func TestValidateRejectsDuplicateVariantID(t *testing.T) {
	doc := &schema.Document{
		Unions: []schema.Union{{
			Name: "Bad",
			Variants: []schema.Variant{
				{Name: "a", ID: 0},
				{Name: "b", ID: 0},
			},
		}},
	}
	if err := doc.Validate(); err == nil {
		t.Fatal("expected a duplicate variant id error")
	}
}
