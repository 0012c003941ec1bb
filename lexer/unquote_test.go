// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestUnquote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
		err      error
		errMsg   string
	}{
		{
			name:     "double quoted",
			input:    `"foo"`,
			expected: "foo",
		},
		{
			name:     "single quoted",
			input:    `'bar'`,
			expected: "bar",
		},
		{
			name:     "empty string",
			input:    `""`,
			expected: "",
		},
		{
			name:     "escaped backslash",
			input:    `"helwo\\lorld"`,
			expected: `helwo\lorld`,
		},
		{
			name:     "all escapes",
			input:    `"\n\t\r\'\""`,
			expected: "\n\t\r'\"",
		},
		{
			name:     "unicode",
			input:    `"héllo 世界"`,
			expected: "héllo 世界",
		},
		{
			name:   "no delimiter",
			input:  "foo",
			err:    ErrDelimiter,
			errMsg: "invalid string delimiter: f",
		},
		{
			name:   "missing closing delimiter",
			input:  "'foo",
			err:    ErrDelimiter,
			errMsg: "invalid string delimiter: o",
		},
		{
			name:   "mismatched delimiters",
			input:  `'foo"`,
			err:    ErrDelimiter,
			errMsg: `invalid string delimiter: mismatched ' and "`,
		},
		{
			name:  "lone quote",
			input: `"`,
			err:   ErrDelimiter,
		},
		{
			name:  "empty input",
			input: "",
			err:   ErrDelimiter,
		},
		{
			name:   "unknown escape",
			input:  `"\l"`,
			err:    ErrUnknownEscape,
			errMsg: `unknown escape sequence: \l`,
		},
		{
			name:   "dangling escape",
			input:  `"\"`,
			err:    ErrDanglingEscape,
			errMsg: "unexpected escape at end of string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Unquote(tt.input)
			if diff := cmp.Diff(tt.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("Unquote error (-want +got):\n%s", diff)
			}
			if err != nil {
				if tt.errMsg != "" {
					if diff := cmp.Diff(tt.errMsg, err.Error()); diff != "" {
						t.Errorf("Unquote error message (-want +got):\n%s", diff)
					}
				}
				return
			}

			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Unquote (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuote_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"foo",
		"it's",
		`say "hi"`,
		"tab\there\nnewline\r",
		`back\slash`,
		`\n is not a newline`,
		"日本語",
	}

	for _, delim := range []rune{'"', '\''} {
		for _, input := range inputs {
			lit := Quote(input, delim)

			got, err := Unquote(lit)
			if err != nil {
				t.Errorf("Unquote(%s): unexpected error: %v", lit, err)
				continue
			}
			if diff := cmp.Diff(input, got); diff != "" {
				t.Errorf("Unquote(%s) (-want +got):\n%s", lit, diff)
			}
		}
	}
}

// TestQuote_DefaultRules checks that quoted literals are recognized as STR
// tokens by the default rules.
func TestQuote_DefaultRules(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()
	for _, input := range []string{"a\"b'c", "x\\\n", ""} {
		for _, delim := range []rune{'"', '\''} {
			lit := Quote(input, delim)

			var matched *Rule
			for _, r := range rules {
				if r.Match(lit) == lit {
					matched = r
					break
				}
			}
			if matched == nil || matched.Name() != NameStr {
				t.Errorf("%s: not matched as %s", lit, NameStr)
			}
		}
	}
}

func TestQuote(t *testing.T) {
	t.Parallel()

	if got, want := Quote(`a"b'c`, '"'), `"a\"b'c"`; got != want {
		t.Errorf("Quote: want: %s, got: %s", want, got)
	}
	if got, want := Quote(`a"b'c`, '\''), `'a"b\'c'`; got != want {
		t.Errorf("Quote: want: %s, got: %s", want, got)
	}
	if got, want := Quote("x", 'x'), `"x"`; got != want {
		t.Errorf("Quote: want: %s, got: %s", want, got)
	}
}
