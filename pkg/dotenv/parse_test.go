package dotenv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		extern   LookupFunc
		expected map[string]string
		order    []string
	}{
		{
			name:     "simple assignment",
			src:      "FOO=bar",
			expected: map[string]string{"FOO": "bar"},
		},
		{
			name:     "export prefix is stripped",
			src:      "export FOO=bar",
			expected: map[string]string{"FOO": "bar"},
		},
		{
			name:     "blank lines and comments are skipped",
			src:      "\n# leading comment\nFOO=bar\n\n  # indented comment\nBAZ=qux\n",
			expected: map[string]string{"FOO": "bar", "BAZ": "qux"},
			order:    []string{"FOO", "BAZ"},
		},
		{
			name:     "unquoted value with trailing comment",
			src:      "FOO=bar # comment",
			expected: map[string]string{"FOO": "bar"},
		},
		{
			name:     "unquoted value is trimmed",
			src:      "FOO=   bar   ",
			expected: map[string]string{"FOO": "bar"},
		},
		{
			name:     "single quotes are literal",
			src:      `FOO='$BAR \n #nope'`,
			expected: map[string]string{"FOO": `$BAR \n #nope`},
		},
		{
			name:     "double quotes process escapes",
			src:      `FOO="line1\nline2\t\"quoted\"\\"`,
			expected: map[string]string{"FOO": "line1\nline2\t\"quoted\"\\"},
		},
		{
			name:     "double quotes keep hash",
			src:      `FOO="bar # not a comment"`,
			expected: map[string]string{"FOO": "bar # not a comment"},
		},
		{
			name:     "multiline double-quoted value",
			src:      "FOO=\"first\nsecond\"\nBAR=after",
			expected: map[string]string{"FOO": "first\nsecond", "BAR": "after"},
			order:    []string{"FOO", "BAR"},
		},
		{
			name:     "expansion of earlier variable",
			src:      "A=1\nB=${A}2",
			expected: map[string]string{"A": "1", "B": "12"},
		},
		{
			name:     "bare dollar expansion",
			src:      "A=hello\nB=$A world",
			expected: map[string]string{"A": "hello", "B": "hello world"},
		},
		{
			name:     "expansion inside double quotes",
			src:      "A=1\nB=\"${A}2\"",
			expected: map[string]string{"A": "1", "B": "12"},
		},
		{
			name: "expansion falls back to extern",
			src:  "B=${HOME_DIR}/data",
			extern: func(name string) (string, bool) {
				if name == "HOME_DIR" {
					return "/home/app", true
				}
				return "", false
			},
			expected: map[string]string{"B": "/home/app/data"},
		},
		{
			name: "local assignment shadows extern",
			src:  "A=local\nB=$A",
			extern: func(name string) (string, bool) {
				return "extern", true
			},
			expected: map[string]string{"A": "local", "B": "local"},
		},
		{
			name:     "unknown variable expands to empty",
			src:      "B=x${MISSING}y",
			expected: map[string]string{"B": "xy"},
		},
		{
			name:     "escaped dollar is literal",
			src:      `A=1` + "\n" + `B=\$A` + "\n" + `C="\$A"`,
			expected: map[string]string{"A": "1", "B": "$A", "C": "$A"},
		},
		{
			name:     "trailing bare dollar is literal",
			src:      "A=cost$",
			expected: map[string]string{"A": "cost$"},
		},
		{
			name:     "reassignment overwrites and keeps position",
			src:      "A=first\nB=2\nA=second",
			expected: map[string]string{"A": "second", "B": "2"},
			order:    []string{"A", "B"},
		},
		{
			name:     "crlf line endings",
			src:      "FOO=bar\r\nBAZ=qux\r\n",
			expected: map[string]string{"FOO": "bar", "BAZ": "qux"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars, err := Parse(tt.src, tt.extern)
			require.NoError(t, err)
			require.Equal(t, len(tt.expected), vars.Len())
			for name, expected := range tt.expected {
				value, ok := vars.Get(name)
				require.True(t, ok, "missing %s", name)
				assert.Equal(t, expected, value)
			}
			if tt.order != nil {
				assert.Equal(t, tt.order, vars.Names())
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{
			name: "missing equals",
			src:  "A=1\n\nNOVALUE",
			line: 3,
		},
		{
			name: "invalid variable name",
			src:  "1BAD=value",
			line: 1,
		},
		{
			name: "unterminated single quote",
			src:  "A='oops",
			line: 1,
		},
		{
			name: "unterminated double quote",
			src:  "A=\"oops\nstill open",
			line: 1,
		},
		{
			name: "junk after closing quote",
			src:  "A=1\nB=\"ok\" junk",
			line: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.line, perr.Line)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	src := "A=1\nB=\"two\nlines\"\nC='lit $A'\nD=\"tab\\there\"\nE=price\\$9\n"

	first, err := Parse(src, nil)
	require.NoError(t, err)

	again, err := Parse(first.Marshal(), nil)
	require.NoError(t, err)

	require.Equal(t, first.Names(), again.Names())
	for _, name := range first.Names() {
		want, _ := first.Get(name)
		got, _ := again.Get(name)
		assert.Equal(t, want, got, "value of %s", name)
	}
}

func TestMappingMerge(t *testing.T) {
	base, err := Parse("A=1\nB=2", nil)
	require.NoError(t, err)
	extra, err := Parse("B=override\nC=3", nil)
	require.NoError(t, err)

	base.Merge(extra)

	assert.Equal(t, []string{"A", "B", "C"}, base.Names())
	value, _ := base.Get("B")
	assert.Equal(t, "override", value)
}

func TestParseAtomic(t *testing.T) {
	vars, err := Parse("GOOD=1\nBROKEN", nil)
	assert.Nil(t, vars)
	assert.True(t, errors.Is(err, ErrMalformed))
}
