// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionTag identifies how an archive's payload bytes were
// compressed, written as the archive's first byte.
type CompressionTag uint8

const (
	// CompressionNone stores the batch's encoded bytes as-is.
	CompressionNone CompressionTag = iota
	// CompressionLZ4 favors decode speed over ratio.
	CompressionLZ4
	// CompressionZstd favors ratio over decode speed.
	CompressionZstd
)

func (t CompressionTag) String() string {
	switch t {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// ParseCompressionTag maps a name back to its CompressionTag, for
// config files and CLI flags.
func ParseCompressionTag(s string) (CompressionTag, error) {
	switch s {
	case "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return 0, fmt.Errorf("batch: unknown compression %q", s)
	}
}

// WriteArchive compresses encoded (the concatenated bytes of a
// batch, as produced by WriteAll into a buffer) with the given
// algorithm and writes a one-byte tag followed by the compressed
// payload to w.
func WriteArchive(w io.Writer, tag CompressionTag, encoded []byte) error {
	if _, err := w.Write([]byte{byte(tag)}); err != nil {
		return fmt.Errorf("batch: write archive tag: %w", err)
	}
	switch tag {
	case CompressionNone:
		_, err := w.Write(encoded)
		if err != nil {
			return fmt.Errorf("batch: write archive payload: %w", err)
		}
		return nil
	case CompressionLZ4:
		zw := lz4.NewWriter(w)
		if _, err := zw.Write(encoded); err != nil {
			return fmt.Errorf("batch: lz4 compress: %w", err)
		}
		return zw.Close()
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("batch: zstd writer: %w", err)
		}
		if _, err := zw.Write(encoded); err != nil {
			return fmt.Errorf("batch: zstd compress: %w", err)
		}
		return zw.Close()
	default:
		return fmt.Errorf("batch: unknown compression tag %d", tag)
	}
}

// ReadArchive reads a one-byte compression tag followed by its
// payload from r and returns the decompressed batch bytes.
func ReadArchive(r io.Reader) ([]byte, error) {
	var tagByte [1]byte
	if _, err := io.ReadFull(r, tagByte[:]); err != nil {
		return nil, fmt.Errorf("batch: read archive tag: %w", err)
	}
	tag := CompressionTag(tagByte[0])
	switch tag {
	case CompressionNone:
		return io.ReadAll(r)
	case CompressionLZ4:
		zr := lz4.NewReader(r)
		return io.ReadAll(zr)
	case CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("batch: zstd reader: %w", err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	default:
		return nil, fmt.Errorf("batch: unknown compression tag %d", tag)
	}
}

// CompressBytes is a convenience wrapper combining WriteArchive with an
// in-memory buffer, for callers that already have the full encoded
// batch in memory.
func CompressBytes(tag CompressionTag, encoded []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteArchive(&buf, tag, encoded); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressBytes is the in-memory counterpart of ReadArchive.
func DecompressBytes(archive []byte) ([]byte, error) {
	return ReadArchive(bytes.NewReader(archive))
}
