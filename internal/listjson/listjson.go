// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package listjson converts a newline-delimited word list into a JSON array
// of strings, the data source for random name generation.
//
// The default output is built by raw concatenation: words are wrapped in
// double quotes and joined with commas, with no escaping. A word containing
// a quote, backslash, or control character therefore produces invalid JSON.
// Options.Escape switches to a real JSON string encoder.
package listjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/listtojson/pkg/types"
)

// asciiSpace is the set trimmed from both ends of a word: ASCII whitespace
// plus the \x1c-\x1f information separators. Unicode spaces such as U+00A0
// are left in place.
const asciiSpace = " \t\n\v\f\r\x1c\x1d\x1e\x1f"

// ErrDecode is returned when the input file is not valid UTF-8 text.
var ErrDecode = errors.New("input is not valid UTF-8")

// Options selects opt-in behavior. The zero value is the raw format.
type Options struct {
	Escape bool
}

// Convert reads inputPath and writes the raw JSON array to outputPath.
func Convert(inputPath, outputPath string) error {
	_, err := ConvertWith(inputPath, outputPath, Options{})
	return err
}

// ConvertWith reads the whole of inputPath, filters and normalizes its
// lines, and writes the serialized array to outputPath, creating or
// truncating it. No output is touched if reading or decoding fails.
func ConvertWith(inputPath, outputPath string, opts Options) (types.ConversionStats, error) {
	stats := types.ConversionStats{
		Input:   inputPath,
		Output:  outputPath,
		Escaped: opts.Escape,
	}

	text, err := readText(inputPath)
	if err != nil {
		return stats, err
	}

	lines := SplitLines(text)
	words := Words(lines)
	stats.Lines = len(lines)
	stats.Kept = len(words)
	stats.Dropped = len(lines) - len(words)

	var out string
	if opts.Escape {
		out, err = EncodeEscaped(words)
		if err != nil {
			return stats, err
		}
	} else {
		out = Encode(words)
	}

	if err := writeText(outputPath, out); err != nil {
		return stats, err
	}
	stats.Bytes = len(out)
	return stats, nil
}

func readText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening input %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("reading input %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("decoding %s: %w", path, ErrDecode)
	}
	return string(data), nil
}

func writeText(path, s string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output %s: %w", path, err)
	}
	if _, err := io.WriteString(f, s); err != nil {
		f.Close()
		return fmt.Errorf("writing output %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output %s: %w", path, err)
	}
	return nil
}

// SplitLines splits text on bare "\n". A carriage return stays attached to
// the line before it, and a trailing newline yields a final empty line.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// Keep reports whether a line survives the length filter: it must hold more
// than one character, counted in runes before normalization.
func Keep(line string) bool {
	return utf8.RuneCountInString(line) > 1
}

// Normalize removes every ASCII space from line, then trims ASCII
// whitespace from both ends of the result.
func Normalize(line string) string {
	return strings.Trim(strings.ReplaceAll(line, " ", ""), asciiSpace)
}

// Words returns the normalized form of every kept line, in input order.
// Duplicates are preserved. A kept line may normalize to "".
func Words(lines []string) []string {
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		if !Keep(line) {
			continue
		}
		words = append(words, Normalize(line))
	}
	return words
}

// Encode concatenates words into ["w1","w2",...] without escaping.
func Encode(words []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, w := range words {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(w)
		b.WriteByte('"')
	}
	b.WriteByte(']')
	return b.String()
}

// EncodeEscaped serializes words as a compact JSON array with proper string
// escaping. HTML characters are not escaped.
func EncodeEscaped(words []string) (string, error) {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if words == nil {
		words = []string{}
	}
	if err := enc.Encode(words); err != nil {
		return "", fmt.Errorf("encoding words: %w", err)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
