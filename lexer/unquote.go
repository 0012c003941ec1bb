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
	"fmt"
	"strings"
	"unicode/utf8"
)

func isQuote(rn rune) bool {
	return rn == '"' || rn == '\''
}

// Unquote interprets lit as a single or double quoted string literal and
// returns the string it represents. The recognized escapes are \\, \", \',
// \n, \t and \r.
func Unquote(lit string) (string, error) {
	if lit == "" {
		return "", fmt.Errorf("%w: empty literal", ErrDelimiter)
	}

	open, openSize := utf8.DecodeRuneInString(lit)
	if !isQuote(open) {
		return "", fmt.Errorf("%w: %c", ErrDelimiter, open)
	}
	closing, closeSize := utf8.DecodeLastRuneInString(lit)
	if !isQuote(closing) {
		return "", fmt.Errorf("%w: %c", ErrDelimiter, closing)
	}
	if len(lit) < openSize+closeSize {
		return "", fmt.Errorf("%w: unterminated %s", ErrDelimiter, lit)
	}
	if open != closing {
		return "", fmt.Errorf("%w: mismatched %c and %c", ErrDelimiter, open, closing)
	}

	var b strings.Builder
	escaped := false
	for _, rn := range lit[openSize : len(lit)-closeSize] {
		if !escaped {
			if rn == '\\' {
				escaped = true
			} else {
				b.WriteRune(rn)
			}
			continue
		}

		escaped = false
		switch rn {
		case '\\', '"', '\'':
			b.WriteRune(rn)
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			return "", fmt.Errorf("%w: \\%c", ErrUnknownEscape, rn)
		}
	}
	if escaped {
		return "", ErrDanglingEscape
	}

	return b.String(), nil
}

// Quote returns s as a literal delimited by delim, which must be a single or
// double quote. Only the escapes understood by [Unquote] are produced.
func Quote(s string, delim rune) string {
	if !isQuote(delim) {
		delim = '"'
	}

	var b strings.Builder
	b.WriteRune(delim)
	for _, rn := range s {
		switch rn {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case delim:
			b.WriteByte('\\')
			b.WriteRune(rn)
		default:
			b.WriteRune(rn)
		}
	}
	b.WriteRune(delim)

	return b.String()
}
