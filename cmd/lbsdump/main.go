// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

// Command lbsdump decodes an LBS batch file and prints each record in
// CBOR diagnostic notation, optionally highlighting an accompanying
// schema declaration.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"filippo.io/age"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/dustin/go-humanize"
	flag "github.com/spf13/pflag"

	"github.com/lbsformat/lbs-go/internal/config"
	"github.com/lbsformat/lbs-go/internal/telemetry"
	"github.com/lbsformat/lbs-go/lib/batch"
	"github.com/lbsformat/lbs-go/lib/diagnostic"
	"github.com/lbsformat/lbs-go/lib/fingerprint"
	"github.com/lbsformat/lbs-go/lib/sealed"
	"github.com/lbsformat/lbs-go/lib/wire"
)

func main() {
	logLevel := slog.LevelInfo
	if os.Getenv("LBS_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	defaults, err := config.Load(defaultConfigPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, "lbsdump:", err)
		os.Exit(1)
	}

	var (
		inputPath    string
		schemaPath   string
		compression  string
		showHash     bool
		identityPath string
	)
	flag.StringVarP(&inputPath, "input", "i", "", "path to an LBS batch file (required)")
	flag.StringVarP(&schemaPath, "schema", "s", defaults.SchemaPath, "path to a schema YAML file to print, syntax-highlighted")
	flag.StringVarP(&compression, "compression", "c", firstNonEmpty(defaults.Compression, "none"), "archive compression: none, lz4, or zstd")
	flag.BoolVar(&showHash, "hash", defaults.ShowHash, "print a BLAKE3 fingerprint of the batch's encoded bytes")
	flag.StringVar(&identityPath, "identity", "", "path to an age identity file; unseals the input before decompressing it")
	flag.Parse()

	if schemaPath != "" {
		logger.Debug("printing schema", "path", schemaPath)
		if err := printSchema(schemaPath); err != nil {
			fmt.Fprintln(os.Stderr, "lbsdump:", err)
			os.Exit(1)
		}
	}
	if inputPath == "" {
		if schemaPath == "" {
			fmt.Fprintln(os.Stderr, "lbsdump: --input is required")
			os.Exit(2)
		}
		return
	}
	if err := dump(logger, inputPath, compression, identityPath, showHash); err != nil {
		fmt.Fprintln(os.Stderr, "lbsdump:", err)
		os.Exit(1)
	}
}

// loadIdentities parses an age identity file (one AGE-SECRET-KEY-1...
// line per identity, '#' comments ignored) for unsealing a batch
// written by lib/sealed.Seal.
func loadIdentities(path string) ([]age.Identity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open identity file: %w", err)
	}
	defer f.Close()
	ids, err := age.ParseIdentities(f)
	if err != nil {
		return nil, fmt.Errorf("parse identity file: %w", err)
	}
	return ids, nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return dir + "/lbsdump.jsonc"
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func printSchema(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}
	return quick.Highlight(os.Stdout, string(data), "yaml", "terminal256", "monokai")
}

func dump(logger *slog.Logger, path, compression, identityPath string, showHash bool) error {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read batch: %w", err)
	}
	logger.Debug("read batch file", "path", path, "bytes", len(fileBytes))

	archived := fileBytes
	if identityPath != "" {
		identities, err := loadIdentities(identityPath)
		if err != nil {
			return err
		}
		archived, err = sealed.Open(fileBytes, identities...)
		if err != nil {
			return fmt.Errorf("unseal batch: %w", err)
		}
		logger.Debug("unsealed batch", "identity", identityPath, "bytes", len(archived))
	}

	tag, err := batch.ParseCompressionTag(compression)
	if err != nil {
		return err
	}
	encoded := archived
	if tag != batch.CompressionNone {
		encoded, err = batch.DecompressBytes(archived)
		if err != nil {
			return fmt.Errorf("decompress batch: %w", err)
		}
		logger.Debug("decompressed batch", "compression", compression, "decoded_bytes", len(encoded))
	}

	if showHash {
		h := fingerprint.HashBatch(encoded)
		fmt.Printf("fingerprint: %s\n", h)
	}

	readings, err := batch.ReadAll(bytes.NewReader(encoded), func(r *wire.Reader) (telemetry.Reading, error) {
		var rec telemetry.Reading
		err := rec.Decode(r)
		return rec, err
	})
	if err != nil {
		logger.Error("failed to decode batch", "path", path, "error", err)
		return fmt.Errorf("decode batch: %w", err)
	}
	logger.Info("decoded batch", "records", len(readings), "bytes", len(encoded))

	for i, rec := range readings {
		notation, err := diagnostic.RenderRecord("Reading", readingFields(rec))
		if err != nil {
			return fmt.Errorf("render record %d: %w", i, err)
		}
		fmt.Println(notation)
	}
	fmt.Println(telemetry.DescribeEncodedSize(len(readings), len(encoded)))
	fmt.Println("original size:", humanize.Bytes(uint64(len(fileBytes))))
	return nil
}

func readingFields(r telemetry.Reading) []diagnostic.RecordFields {
	var fields []diagnostic.RecordFields
	add := func(name string, v any) { fields = append(fields, diagnostic.RecordFields{Name: name, Value: v}) }
	if r.DeviceID.String() != "00000000-0000-0000-0000-000000000000" {
		add("device_id", r.DeviceID.String())
	}
	if r.Location != "" {
		add("location", r.Location)
	}
	if r.Value != 0 {
		add("value", r.Value)
	}
	if r.Threshold.Valid {
		add("threshold", r.Threshold.Value)
	}
	if len(r.Tags) > 0 {
		add("tags", r.Tags)
	}
	if len(r.Labels) > 0 {
		add("labels", r.Labels)
	}
	add("recorded_at", r.RecordedAt.String())
	add("status", r.Status.String())
	return fields
}
