// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package telemetry

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// DescribeEncodedSize renders the size of an encoded Reading (or
// batch of Readings) the way an operator-facing log line or CLI
// summary would, e.g. "142 readings, 3.8 kB".
func DescribeEncodedSize(count int, byteLen int) string {
	noun := "reading"
	if count != 1 {
		noun = "readings"
	}
	return fmt.Sprintf("%d %s, %s", count, noun, humanize.Bytes(uint64(byteLen)))
}
