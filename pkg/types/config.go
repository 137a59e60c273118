// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertConfig holds opt-in settings for the convert command. The zero
// value reproduces the raw, unescaped output format.
type ConvertConfig struct {
	// Escape serializes words through a JSON string encoder.
	Escape bool `json:"escape" yaml:"escape"`

	// ReportPath, when set, receives a YAML summary of the run.
	ReportPath string `json:"report" yaml:"report"`
}

// GenerateConfig holds settings for the generate command.
type GenerateConfig struct {
	// Count is the number of names to draw (default 1).
	Count int `json:"count" yaml:"count"`

	// DBPath is an optional SQLite database that remembers drawn names
	// across runs. Empty means names are only unique within one run.
	DBPath string `json:"db" yaml:"db"`

	// Seed fixes the random source; zero picks a random seed.
	Seed uint64 `json:"seed" yaml:"seed"`
}
