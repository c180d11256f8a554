// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

// Package batch reads and writes sequences of encoded LBS records —
// the "batch of N records" scenario from the format's own test
// vectors, where records are simply concatenated with no envelope of
// their own. It also offers an optional compressed archive framing
// for batches stored at rest.
package batch

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lbsformat/lbs-go/lib/wire"
)

// WriteAll encodes each record in order to w via encode, with no
// separators — a batch is just its records' bytes back to back.
func WriteAll[T any](w io.Writer, records []T, encode func(*wire.Writer, T) error) error {
	ww := wire.NewWriter(w)
	for i, rec := range records {
		if err := encode(ww, rec); err != nil {
			return fmt.Errorf("batch: record %d: %w", i, err)
		}
	}
	return nil
}

// ReadAll decodes records from r via decode until the stream is
// exhausted exactly at a record boundary. A short read partway through
// a record is reported as an error rather than treated as the end of
// the batch.
func ReadAll[T any](r io.Reader, decode func(*wire.Reader) (T, error)) ([]T, error) {
	br := bufio.NewReader(r)
	rr := wire.NewReader(br)
	var out []T
	for {
		if _, err := br.Peek(1); err == io.EOF {
			return out, nil
		}
		rec, err := decode(rr)
		if err != nil {
			return out, fmt.Errorf("batch: record %d: %w", len(out), err)
		}
		out = append(out, rec)
	}
}
