// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema declares record and union shapes independently of
// any compiled-in Go type, so tooling can validate and describe wire
// data without linking against the Go struct that originally produced
// it. Neither lbsdump nor lbsview loads schemas through this package. A schema is not required to encode or
// decode — hand-written record/union types call directly into
// lib/wire — it exists purely as a declarative, loadable description
// for inspection and validation.
package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind names one of the wire-level shapes a field can hold.
type Kind string

const (
	KindUint8   Kind = "uint8"
	KindUint16  Kind = "uint16"
	KindUint32  Kind = "uint32"
	KindUint64  Kind = "uint64"
	KindUint128 Kind = "uint128"
	KindInt8    Kind = "int8"
	KindInt16   Kind = "int16"
	KindInt32   Kind = "int32"
	KindInt64   Kind = "int64"
	KindInt128  Kind = "int128"
	KindFloat32 Kind = "float32"
	KindFloat64 Kind = "float64"
	KindBool    Kind = "bool"
	KindRune    Kind = "rune"
	KindString  Kind = "string"
	KindBytes   Kind = "bytes"
	KindOption  Kind = "option"
	KindSlice   Kind = "slice"
	KindMap     Kind = "map"
	KindSet     Kind = "set"
	KindRecord  Kind = "record"
	KindUnion   Kind = "union"
	KindIP      Kind = "ip"
	KindIPNet   Kind = "ipnet"
	KindDuration Kind = "duration"
	KindInstant  Kind = "instant"
	KindTimestamp Kind = "timestamp"
)

// Field declares one record field: its wire ID, type, and whether it
// carries a custom default distinct from the type's natural default.
type Field struct {
	Name           string `yaml:"name"`
	ID             uint16 `yaml:"id"`
	Kind           Kind   `yaml:"kind"`
	Element        *Field `yaml:"element,omitempty"` // element type for option/slice/set
	Key            *Field `yaml:"key,omitempty"`     // key type for map
	Value          *Field `yaml:"value,omitempty"`   // value type for map
	Of             string `yaml:"of,omitempty"`       // referenced record/union name for Kind record/union
	HasCustomDefault bool `yaml:"has_custom_default,omitempty"`
	DefaultNote    string `yaml:"default_note,omitempty"`
	Omit           bool   `yaml:"omit,omitempty"` // never written; always left at its default on read
}

// Variant declares one tagged-union case.
type Variant struct {
	Name    string `yaml:"name"`
	ID      uint8  `yaml:"id"`
	Payload *Field `yaml:"payload,omitempty"`
}

// Record declares a named record's fields.
type Record struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// Union declares a named tagged union's variants.
type Union struct {
	Name     string    `yaml:"name"`
	Variants []Variant `yaml:"variants"`
}

// Document is the top-level shape of a schema YAML file: a set of
// record and union declarations that may reference one another by
// name via Field.Of/Variant.Payload.Of.
type Document struct {
	Records []Record `yaml:"records"`
	Unions  []Union  `yaml:"unions"`
}

// Load parses a schema document from YAML bytes.
func Load(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schema: parse: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the declarations' structural invariants: no two
// fields in the same record share an ID, no record declares more than
// 255 fields (the most a record's one-byte count can carry), and no
// two variants in the same union share an ID.
func (d *Document) Validate() error {
	for _, rec := range d.Records {
		if len(rec.Fields) > 255 {
			return fmt.Errorf("schema: record %q declares %d fields, more than the 255 a record can carry", rec.Name, len(rec.Fields))
		}
		seen := make(map[uint16]string, len(rec.Fields))
		for _, f := range rec.Fields {
			if prior, ok := seen[f.ID]; ok {
				return fmt.Errorf("schema: record %q: field id %d used by both %q and %q", rec.Name, f.ID, prior, f.Name)
			}
			seen[f.ID] = f.Name
		}
	}
	for _, un := range d.Unions {
		seen := make(map[uint8]string, len(un.Variants))
		for _, v := range un.Variants {
			if prior, ok := seen[v.ID]; ok {
				return fmt.Errorf("schema: union %q: variant id %d used by both %q and %q", un.Name, v.ID, prior, v.Name)
			}
			seen[v.ID] = v.Name
		}
	}
	return nil
}

// FindRecord returns the named record declaration, if any.
func (d *Document) FindRecord(name string) (Record, bool) {
	for _, rec := range d.Records {
		if rec.Name == name {
			return rec, true
		}
	}
	return Record{}, false
}

// FindUnion returns the named union declaration, if any.
func (d *Document) FindUnion(name string) (Union, bool) {
	for _, un := range d.Unions {
		if un.Name == name {
			return un, true
		}
	}
	return Union{}, false
}
