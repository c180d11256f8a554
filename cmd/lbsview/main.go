// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

// Command lbsview is a terminal browser for LBS batch files: a list of
// decoded records on the left, the selected record's fields on the
// right, each marked as read off the wire or left at its default.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"github.com/lbsformat/lbs-go/internal/telemetry"
	"github.com/lbsformat/lbs-go/lib/batch"
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

	var inputPath string
	flag.StringVarP(&inputPath, "input", "i", "", "path to an LBS batch file (required)")
	flag.Parse()

	if inputPath == "" {
		fmt.Fprintln(os.Stderr, "lbsview: --input is required")
		os.Exit(2)
	}

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lbsview:", err)
		os.Exit(1)
	}
	logger.Debug("read batch file", "path", inputPath, "bytes", len(raw))

	readings, err := batch.ReadAll(bytes.NewReader(raw), func(r *wire.Reader) (telemetry.Reading, error) {
		var rec telemetry.Reading
		err := rec.Decode(r)
		return rec, err
	})
	if err != nil {
		logger.Error("failed to decode batch", "path", inputPath, "error", err)
		fmt.Fprintln(os.Stderr, "lbsview:", err)
		os.Exit(1)
	}
	logger.Info("decoded batch", "records", len(readings))

	m := newModel(readings)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("tui exited with error", "error", err)
		fmt.Fprintln(os.Stderr, "lbsview:", err)
		os.Exit(1)
	}
}
