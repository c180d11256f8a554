// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"fmt"
	"time"

	"github.com/lbsformat/lbs-go/lib/wire"
)

// Status variant IDs.
const (
	statusVariantOK       = 0
	statusVariantDegraded = 1
	statusVariantDown     = 2
)

// Status is a tagged union describing a device's health at the time
// of a Reading. Exactly one of its fields is meaningful, selected by
// Variant.
type Status struct {
	Variant uint8
	Reason  string    // set when Variant == statusVariantDegraded
	Since   time.Time // set when Variant == statusVariantDown
}

// StatusOK returns the no-payload healthy variant.
func StatusOK() Status { return Status{Variant: statusVariantOK} }

// StatusDegraded returns the degraded variant carrying a reason.
func StatusDegraded(reason string) Status {
	return Status{Variant: statusVariantDegraded, Reason: reason}
}

// StatusDown returns the down variant carrying the instant the device
// was last seen healthy.
func StatusDown(since time.Time) Status {
	return Status{Variant: statusVariantDown, Since: since}
}

// Encode writes s as a tagged union.
func (s Status) Encode(w *wire.Writer) error {
	switch s.Variant {
	case statusVariantOK:
		return wire.EncodeUnion(w, statusVariantOK, nil)
	case statusVariantDegraded:
		return wire.EncodeUnion(w, statusVariantDegraded, func(w *wire.Writer) error {
			return w.WriteString(s.Reason)
		})
	case statusVariantDown:
		return wire.EncodeUnion(w, statusVariantDown, func(w *wire.Writer) error {
			return w.WriteInstant(s.Since)
		})
	default:
		return fmt.Errorf("telemetry: status: unknown variant %d", s.Variant)
	}
}

// Decode reads a tagged union into s.
func (s *Status) Decode(r *wire.Reader) error {
	return wire.DecodeUnion(r, func(variantID uint8, r *wire.Reader) error {
		switch variantID {
		case statusVariantOK:
			*s = StatusOK()
			return nil
		case statusVariantDegraded:
			reason, err := r.ReadString()
			if err != nil {
				return err
			}
			*s = StatusDegraded(reason)
			return nil
		case statusVariantDown:
			since, err := r.ReadInstant()
			if err != nil {
				return err
			}
			*s = StatusDown(since)
			return nil
		default:
			return wire.ErrUnknownVariantID
		}
	})
}

func (s Status) String() string {
	switch s.Variant {
	case statusVariantOK:
		return "ok"
	case statusVariantDegraded:
		return fmt.Sprintf("degraded: %s", s.Reason)
	case statusVariantDown:
		return fmt.Sprintf("down since %s", s.Since.Format(time.RFC3339))
	default:
		return fmt.Sprintf("unknown(%d)", s.Variant)
	}
}
