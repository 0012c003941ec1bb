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
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ianlewis/mirthlex/value"
)

// Names of the rules returned by [DefaultRules].
const (
	NameLParen  = "LPAREN"
	NameRParen  = "RPAREN"
	NameLSquare = "LSQUARE"
	NameRSquare = "RSQUARE"
	NameLCurly  = "LCURLY"
	NameRCurly  = "RCURLY"
	NameLine    = "LINE"
	NamePragma  = "PRAGMA"
	NameComment = "COMMENT"
	NameComma   = "COMMA"
	NameStr     = "STR"
	NameInt     = "INT"
	NameWord    = "WORD"
	NameSpace   = "SPACE"
)

// DecodeInt decodes a signed decimal integer. Integers that do not fit in an
// int64 are decoded as a [value.BigInt].
//
//nolint:ireturn // value.Value is a closed sum type.
func DecodeInt(text string) (value.Value, error) {
	v, ok := decodeInt(text, 10)
	if !ok {
		return nil, fmt.Errorf("%w: invalid integer %q", ErrDecode, text)
	}
	return v, nil
}

// DecodeHex decodes a hexadecimal integer with a 0x or 0X prefix. Integers
// that do not fit in an int64 are decoded as a [value.BigInt].
//
//nolint:ireturn // value.Value is a closed sum type.
func DecodeHex(text string) (value.Value, error) {
	if len(text) < 3 || text[0] != '0' || (text[1] != 'x' && text[1] != 'X') {
		return nil, fmt.Errorf("%w: invalid hexadecimal integer %q", ErrDecode, text)
	}
	v, ok := decodeInt(text[2:], 16)
	if !ok {
		return nil, fmt.Errorf("%w: invalid hexadecimal integer %q", ErrDecode, text)
	}
	return v, nil
}

//nolint:ireturn // value.Value is a closed sum type.
func decodeInt(text string, base int) (value.Value, bool) {
	i, err := strconv.ParseInt(text, base, 64)
	if err == nil {
		return value.Int(i), true
	}
	if !errors.Is(err, strconv.ErrRange) {
		return nil, false
	}

	n, ok := new(big.Int).SetString(text, base)
	if !ok {
		return nil, false
	}
	return value.NewBigInt(n), true
}

// DecodeString decodes a quoted string literal using [Unquote].
//
//nolint:ireturn // value.Value is a closed sum type.
func DecodeString(text string) (value.Value, error) {
	s, err := Unquote(text)
	if err != nil {
		return nil, err
	}
	return value.Str(s), nil
}

// DefaultRules returns the rules for Mirth source in priority order. A new
// slice is returned on each call so callers may extend it.
//
// Since ties are broken by order, rules for more specific text must come
// before looser rules that can match the same text. For example, INT comes
// before WORD so that "123" is an integer, and the hexadecimal INT comes
// before WORD so that "0xff" is an integer.
func DefaultRules() []*Rule {
	return []*Rule{
		MustRule(KindOpen, NameLParen, `\(`, nil),
		MustRule(KindClose, NameRParen, `\)`, nil),
		MustRule(KindOpen, NameLSquare, `\[`, nil),
		MustRule(KindClose, NameRSquare, `\]`, nil),
		MustRule(KindOpen, NameLCurly, `\{`, nil),
		MustRule(KindClose, NameRCurly, `\}`, nil),
		MustRule(KindAtomic, NameLine, `\n`, nil),
		MustRule(KindAtomic, NamePragma, `#\[[^\n\[\]]*\]\n`, nil),
		MustRule(KindAtomic, NameComment, `#(?:[\r\n]+|[ \t\n])`, nil),
		MustRule(KindAtomic, NameComma, `,`, nil),
		MustRule(KindAtomic, NameStr, `"(?:[^\\"]|\\.)*"`, DecodeString),
		MustRule(KindAtomic, NameStr, `'(?:[^\\']|\\.)*'`, DecodeString),
		MustRule(KindAtomic, NameInt, `[+\-]?\d+`, DecodeInt),
		MustRule(KindAtomic, NameInt, `0[xX][0-9a-zA-Z]+`, DecodeHex),
		MustRule(KindAtomic, NameWord, `[^\s\v\x1c-\x1f\x85\p{Z}()\[\]{},]+`, nil),
		MustRule(KindIgnore, NameSpace, `[ \t\r\f\v]+`, nil),
	}
}
