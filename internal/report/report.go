// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes a YAML summary of a conversion run next to its
// output, so a list can be traced back to the file and flags that built it.
package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/listtojson/pkg/types"
)

// Report is the on-disk representation of one conversion run.
type Report struct {
	Conversion types.ConversionStats `yaml:"conversion"`
	Timestamp  time.Time             `yaml:"timestamp"`
}

// Write saves stats to a YAML file at path.
func Write(path string, stats types.ConversionStats) error {
	r := Report{
		Conversion: stats,
		Timestamp:  time.Now().UTC(),
	}
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// Read loads a previously written report.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing report: %w", err)
	}
	return &r, nil
}
