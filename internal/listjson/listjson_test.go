// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package listjson

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeInput creates an input file with the given content in a temp dir and
// returns its path along with a sibling output path.
func writeInput(t *testing.T, content string) (in, out string) {
	t.Helper()
	dir := t.TempDir()
	in = filepath.Join(dir, "names.txt")
	out = filepath.Join(dir, "names.json")
	require.NoError(t, os.WriteFile(in, []byte(content), 0o644))
	return in, out
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "end to end",
			input: "Alice\nBo\nB\nCarmen Lee\n",
			want:  `["Alice","Bo","CarmenLee"]`,
		},
		{
			name:  "drops empty and single character lines",
			input: "\nA\nBob\nCarmen Jr",
			want:  `["Bob","CarmenJr"]`,
		},
		{
			name:  "preserves order",
			input: "Zed\nAmy",
			want:  `["Zed","Amy"]`,
		},
		{
			name:  "keeps duplicates",
			input: "Amy\nAmy\n",
			want:  `["Amy","Amy"]`,
		},
		{
			name:  "only filtered lines",
			input: "\n\nx\n-\n\n",
			want:  `[]`,
		},
		{
			name:  "empty file",
			input: "",
			want:  `[]`,
		},
		{
			name:  "carriage return is trimmed after the filter",
			input: "Alice\r\nB\r\n",
			want:  `["Alice","B"]`,
		},
		{
			name:  "line of spaces normalizes to empty word",
			input: "   \nAmy",
			want:  `["","Amy"]`,
		},
		{
			name:  "tabs are trimmed but not removed inside",
			input: "\tAl\tice\t",
			want:  "[\"Al\tice\"]",
		},
		{
			name:  "multibyte single character is dropped",
			input: "é\nÉmile",
			want:  `["Émile"]`,
		},
		{
			name:  "quote is not escaped",
			input: `Bob"the builder`,
			want:  `["Bob"thebuilder"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out := writeInput(t, tt.input)
			require.NoError(t, Convert(in, out))
			assert.Equal(t, tt.want, readOutput(t, out))
		})
	}
}

func TestConvert_UnescapedQuoteIsInvalidJSON(t *testing.T) {
	in, out := writeInput(t, "Bob\"the builder\nAlice\n")
	require.NoError(t, Convert(in, out))

	got := readOutput(t, out)
	assert.Equal(t, `["Bob"thebuilder","Alice"]`, got)
	assert.False(t, json.Valid([]byte(got)), "raw output with a quote should not be valid JSON")
}

func TestConvert_Idempotent(t *testing.T) {
	in, out := writeInput(t, "Alice\nBob\n")
	require.NoError(t, Convert(in, out))
	first := readOutput(t, out)

	require.NoError(t, Convert(in, out))
	assert.Equal(t, first, readOutput(t, out))
}

func TestConvert_OverwritesLongerOutput(t *testing.T) {
	in, out := writeInput(t, "Al\n")
	require.NoError(t, os.WriteFile(out, []byte(`["a much longer previous result"]`), 0o644))

	require.NoError(t, Convert(in, out))
	assert.Equal(t, `["Al"]`, readOutput(t, out))
}

func TestConvert_NoTrailingNewline(t *testing.T) {
	in, out := writeInput(t, "Alice\n")
	require.NoError(t, Convert(in, out))
	assert.NotContains(t, readOutput(t, out), "\n")
}

func TestConvert_Errors(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		dir := t.TempDir()
		out := filepath.Join(dir, "out.json")
		err := Convert(filepath.Join(dir, "nope.txt"), out)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.NoFileExists(t, out)
	})

	t.Run("undecodable input", func(t *testing.T) {
		dir := t.TempDir()
		in := filepath.Join(dir, "bad.txt")
		out := filepath.Join(dir, "out.json")
		require.NoError(t, os.WriteFile(in, []byte("Alice\n\xff\xfeBob\n"), 0o644))

		err := Convert(in, out)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDecode)
		assert.NoFileExists(t, out)
	})

	t.Run("unwritable output", func(t *testing.T) {
		in, _ := writeInput(t, "Alice\n")
		out := filepath.Join(t.TempDir(), "missing-dir", "out.json")

		err := Convert(in, out)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestConvertWith_Escape(t *testing.T) {
	in, out := writeInput(t, "Bob\"the builder\nback\\slash\nA&B\n")

	stats, err := ConvertWith(in, out, Options{Escape: true})
	require.NoError(t, err)

	got := readOutput(t, out)
	assert.Equal(t, `["Bob\"thebuilder","back\\slash","A&B"]`, got)
	assert.True(t, json.Valid([]byte(got)))
	assert.True(t, stats.Escaped)
}

func TestConvertWith_EscapeEmpty(t *testing.T) {
	in, out := writeInput(t, "\nA\n")
	_, err := ConvertWith(in, out, Options{Escape: true})
	require.NoError(t, err)
	assert.Equal(t, `[]`, readOutput(t, out))
}

func TestConvertWith_Stats(t *testing.T) {
	in, out := writeInput(t, "Alice\nBo\nB\nCarmen Lee\n")

	stats, err := ConvertWith(in, out, Options{})
	require.NoError(t, err)

	assert.Equal(t, in, stats.Input)
	assert.Equal(t, out, stats.Output)
	assert.Equal(t, 5, stats.Lines)
	assert.Equal(t, 3, stats.Kept)
	assert.Equal(t, 2, stats.Dropped)
	assert.Equal(t, len(`["Alice","Bo","CarmenLee"]`), stats.Bytes)
	assert.False(t, stats.Escaped)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Carmen Jr", "CarmenJr"},
		{"  Amy  ", "Amy"},
		{"Amy\r", "Amy"},
		{"\v\fAmy\t\n", "Amy"},
		{"Mary Ann\tLee", "MaryAnn\tLee"},
		{"\x1cAmy\x1f", "Amy"},
		{"\x1e\x1dAmy", "Amy"},
		{"A\x1fmy", "A\x1fmy"},
		// U+00A0 is not ASCII whitespace and survives.
		{"\u00a0Amy\u00a0", "\u00a0Amy\u00a0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestKeep(t *testing.T) {
	assert.False(t, Keep(""))
	assert.False(t, Keep("A"))
	assert.False(t, Keep("ñ"))
	assert.True(t, Keep("Bo"))
	assert.True(t, Keep("  "))
	assert.True(t, Keep("A\r"))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", ""}, SplitLines("a\nb\n"))
	assert.Equal(t, []string{""}, SplitLines(""))
	assert.Equal(t, []string{"a\r", "b"}, SplitLines("a\r\nb"))
}

func TestEncode(t *testing.T) {
	assert.Equal(t, `[]`, Encode(nil))
	assert.Equal(t, `["a"]`, Encode([]string{"a"}))
	assert.Equal(t, `["a","b"]`, Encode([]string{"a", "b"}))
}
