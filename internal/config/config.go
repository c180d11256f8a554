// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads CLI defaults for the lbsdump command from a
// JSON-with-comments file, so operators can check in a
// commented config rather than a flags wrapper script.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// CLI holds the defaults a config file may override; each field
// mirrors a command-line flag and serves as that flag's default, so it
// applies only when the flag is not given on the command line.
type CLI struct {
	Compression string `json:"compression"`
	SchemaPath  string `json:"schemaPath"`
	ShowHash    bool   `json:"showHash"`
}

// Load reads and parses a JSONC config file. A missing file is not an
// error — it returns a zero-valued CLI so callers fall back to
// hardcoded flag defaults.
func Load(path string) (CLI, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return CLI{}, nil
		}
		return CLI{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cli CLI
	if err := json.Unmarshal(jsonc.ToJSON(raw), &cli); err != nil {
		return CLI{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cli, nil
}
