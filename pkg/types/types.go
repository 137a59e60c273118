// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines data structures shared between the listtojson
// converter, the run report, and the name generator.
package types

// ConversionStats summarizes one run of the list converter.
type ConversionStats struct {
	// Input is the path of the newline-delimited word list.
	Input string `json:"input" yaml:"input"`

	// Output is the path the JSON array was written to.
	Output string `json:"output" yaml:"output"`

	// Lines is the number of substrings produced by splitting on "\n",
	// including the empty element after a trailing newline.
	Lines int `json:"lines" yaml:"lines"`

	// Kept is the number of lines longer than one character.
	Kept int `json:"kept" yaml:"kept"`

	// Dropped is the number of lines discarded by the length filter.
	Dropped int `json:"dropped" yaml:"dropped"`

	// Escaped reports whether the output went through JSON string escaping.
	Escaped bool `json:"escaped" yaml:"escaped"`

	// Bytes is the size of the written output.
	Bytes int `json:"bytes" yaml:"bytes"`
}
